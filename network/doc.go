// Package network provides a thread-safe, in-memory catalog of transit
// nodes and the directed links between them, and resolves node sequences
// into contiguous route-paths.
//
// The Network N = (V,L) follows a few fixed rules:
//
//   - Links are directed: A→B and B→A are distinct links.
//   - No self-loops (ErrLoopNotAllowed).
//   - At most one link per ordered node pair (ErrDuplicateLink).
//   - Link ids are generated atomically ("l1", "l2", …).
//   - Nodes are guarded by muNode, links and adjacency by muLink.
//
// Methods:
//
//	AddNode(n routepath.Node) error          // O(1), idempotent
//	HasNode(id string) bool                  // O(1)
//	AddLink(from, to string) (string, error) // O(1)
//	HasLink(from, to string) bool            // O(1)
//	LinkBetween(from, to string) (routepath.Link, error)
//	Nodes() []routepath.Node                 // O(V·log V), sorted by ID
//	Links() []routepath.Link                 // O(L·log L), sorted by link number
//	RoutePath(routeID, direction string, nodeIDs ...string) (*routepath.RoutePath, error)
//
// Example:
//
//	nw := network.New()
//	_, _ = nw.AddLink("A", "B")
//	_, _ = nw.AddLink("B", "C")
//	rp, err := nw.RoutePath("1001", "1", "A", "B", "C")
package network

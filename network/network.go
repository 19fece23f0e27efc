package network

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/rpdiff/routepath"
)

// AddNode registers n if missing. Re-adding an id keeps the first record.
func (nw *Network) AddNode(n routepath.Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	nw.muNode.Lock()
	defer nw.muNode.Unlock()
	if _, ok := nw.nodes[n.ID]; ok {
		return nil
	}
	cp := n
	nw.nodes[n.ID] = &cp

	return nil
}

// HasNode reports whether id is registered (empty id ⇒ false).
func (nw *Network) HasNode(id string) bool {
	if id == "" {
		return false
	}
	nw.muNode.RLock()
	defer nw.muNode.RUnlock()
	_, ok := nw.nodes[id]

	return ok
}

// Node returns a copy of the node with the given id.
func (nw *Network) Node(id string) (routepath.Node, error) {
	nw.muNode.RLock()
	defer nw.muNode.RUnlock()
	n, ok := nw.nodes[id]
	if !ok {
		return routepath.Node{}, fmt.Errorf("%q: %w", id, ErrNodeNotFound)
	}

	return *n, nil
}

// AddLink creates the directed link from→to, registering bare nodes for
// unknown endpoints, and returns its id.
//
// Errors: ErrEmptyNodeID, ErrLoopNotAllowed, ErrDuplicateLink.
func (nw *Network) AddLink(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	// lock order: muNode before muLink
	if err := nw.AddNode(routepath.Node{ID: from}); err != nil {
		return "", err
	}
	if err := nw.AddNode(routepath.Node{ID: to}); err != nil {
		return "", err
	}

	nw.muLink.Lock()
	defer nw.muLink.Unlock()
	if _, ok := nw.adjacency[from][to]; ok {
		return "", fmt.Errorf("%s→%s: %w", from, to, ErrDuplicateLink)
	}
	seq := atomic.AddUint64(&nw.nextLinkID, 1)
	id := "l" + strconv.FormatUint(seq, 10)
	nw.links[id] = &linkRecord{seq: seq, id: id, from: from, to: to}
	if nw.adjacency[from] == nil {
		nw.adjacency[from] = make(map[string]string)
	}
	nw.adjacency[from][to] = id

	return id, nil
}

// RemoveLink deletes the link with the given id.
func (nw *Network) RemoveLink(id string) error {
	nw.muLink.Lock()
	defer nw.muLink.Unlock()
	rec, ok := nw.links[id]
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrLinkNotFound)
	}
	delete(nw.links, id)
	delete(nw.adjacency[rec.from], rec.to)
	if len(nw.adjacency[rec.from]) == 0 {
		delete(nw.adjacency, rec.from)
	}

	return nil
}

// HasLink reports whether the directed link from→to exists.
func (nw *Network) HasLink(from, to string) bool {
	nw.muLink.RLock()
	defer nw.muLink.RUnlock()
	_, ok := nw.adjacency[from][to]

	return ok
}

// LinkBetween returns the link from→to with both endpoint records filled in.
func (nw *Network) LinkBetween(from, to string) (routepath.Link, error) {
	nw.muLink.RLock()
	id, ok := nw.adjacency[from][to]
	nw.muLink.RUnlock()
	if !ok {
		return routepath.Link{}, fmt.Errorf("%s→%s: %w", from, to, ErrLinkNotFound)
	}

	return nw.materialize(id, from, to)
}

// Nodes returns copies of all nodes sorted by ID.
func (nw *Network) Nodes() []routepath.Node {
	nw.muNode.RLock()
	defer nw.muNode.RUnlock()
	out := make([]routepath.Node, 0, len(nw.nodes))
	for _, n := range nw.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Links returns all links in creation order. OrderNumber is left zero.
func (nw *Network) Links() []routepath.Link {
	nw.muLink.RLock()
	recs := make([]linkRecord, 0, len(nw.links))
	for _, r := range nw.links {
		recs = append(recs, *r)
	}
	nw.muLink.RUnlock()
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	out := make([]routepath.Link, 0, len(recs))
	for _, r := range recs {
		l, err := nw.materialize(r.id, r.from, r.to)
		if err != nil {
			continue
		}
		out = append(out, l)
	}

	return out
}

// NodeCount returns the number of nodes.
func (nw *Network) NodeCount() int {
	nw.muNode.RLock()
	defer nw.muNode.RUnlock()

	return len(nw.nodes)
}

// LinkCount returns the number of links.
func (nw *Network) LinkCount() int {
	nw.muLink.RLock()
	defer nw.muLink.RUnlock()

	return len(nw.links)
}

// RoutePath resolves consecutive node ids into existing links and returns
// the contiguous route-path through them, numbered from 1.
//
// Errors: ErrTooFewNodes, ErrNodeNotFound, ErrLinkNotFound (wrapped with
// the failing hop).
func (nw *Network) RoutePath(routeID, direction string, nodeIDs ...string) (*routepath.RoutePath, error) {
	if len(nodeIDs) < 2 {
		return nil, ErrTooFewNodes
	}
	for _, id := range nodeIDs {
		if !nw.HasNode(id) {
			return nil, fmt.Errorf("%q: %w", id, ErrNodeNotFound)
		}
	}
	links := make([]routepath.Link, 0, len(nodeIDs)-1)
	for k := 0; k+1 < len(nodeIDs); k++ {
		l, err := nw.LinkBetween(nodeIDs[k], nodeIDs[k+1])
		if err != nil {
			return nil, fmt.Errorf("hop %d: %w", k+1, err)
		}
		l.OrderNumber = k + 1
		links = append(links, l)
	}

	return routepath.New(routeID, direction, links), nil
}

// materialize builds a routepath.Link from the node catalog.
func (nw *Network) materialize(id, from, to string) (routepath.Link, error) {
	start, err := nw.Node(from)
	if err != nil {
		return routepath.Link{}, err
	}
	end, err := nw.Node(to)
	if err != nil {
		return routepath.Link{}, err
	}

	return routepath.Link{ID: id, StartNode: start, EndNode: end}, nil
}

// SPDX-License-Identifier: MIT

// Package routepath defines the transit records compared by rpdiff:
// nodes, directed links between nodes, and route-paths (one directional
// variant of a route expressed as an ordered run of links).
//
// A well-formed route-path is non-empty, sorted by OrderNumber ascending,
// and contiguous: every link starts where the previous one ended.
//
//	N1 ──► N2 ──► N3 ──► N4
//	   l1     l2     l3
//
// Route-paths can be decoded from YAML or JSON documents:
//
//	rp, err := routepath.Load("1001-outbound.yaml")
//	if err != nil {
//	  // handle ErrUnknownFormat, ErrNotContiguous, ...
//	}
//	fmt.Println(rp.NodeIDs())
//
// Errors:
//   - ErrEmptyRoutePath  — route-path has no links.
//   - ErrEmptyNodeID     — a link references a node with an empty id.
//   - ErrDuplicateOrder  — two links share an OrderNumber.
//   - ErrNotContiguous   — link[n].EndNode != link[n+1].StartNode.
//   - ErrUnknownFormat   — document format cannot be determined.
package routepath

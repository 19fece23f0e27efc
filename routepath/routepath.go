// SPDX-License-Identifier: MIT

package routepath

import (
	"fmt"
	"sort"
)

// New builds a RoutePath from a copy of links sorted by OrderNumber ascending.
// The result is not validated; call Validate before relying on contiguity.
func New(routeID, direction string, links []Link) *RoutePath {
	cp := make([]Link, len(links))
	copy(cp, links)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].OrderNumber < cp[j].OrderNumber })

	return &RoutePath{RouteID: routeID, Direction: direction, Links: cp}
}

// Key returns "<routeID>/<direction>", the identity used in logs and output.
func (rp *RoutePath) Key() string {
	return rp.RouteID + "/" + rp.Direction
}

// Sort orders Links by OrderNumber ascending in place.
func (rp *RoutePath) Sort() {
	sort.SliceStable(rp.Links, func(i, j int) bool {
		return rp.Links[i].OrderNumber < rp.Links[j].OrderNumber
	})
}

// Validate checks that rp is non-empty, sorted, free of duplicate order
// numbers and contiguous. Links must already be sorted (see Sort).
//
// Errors are wrapped with the offending position, e.g.
// "link 3: routepath: links are not contiguous".
//
// Complexity: O(n).
func (rp *RoutePath) Validate() error {
	if len(rp.Links) == 0 {
		return fmt.Errorf("%s: %w", rp.Key(), ErrEmptyRoutePath)
	}
	for i, l := range rp.Links {
		if l.StartNode.ID == "" || l.EndNode.ID == "" {
			return fmt.Errorf("link %d: %w", i, ErrEmptyNodeID)
		}
		if i == 0 {
			continue
		}
		prev := rp.Links[i-1]
		if prev.OrderNumber == l.OrderNumber {
			return fmt.Errorf("link %d: order %d: %w", i, l.OrderNumber, ErrDuplicateOrder)
		}
		if prev.EndNode.ID != l.StartNode.ID {
			return fmt.Errorf("link %d: %s != %s: %w", i, prev.EndNode.ID, l.StartNode.ID, ErrNotContiguous)
		}
	}

	return nil
}

// NodeIDs returns the visited node ids in travel order.
// A route-path of n links yields n+1 ids; an empty route-path yields nil.
func (rp *RoutePath) NodeIDs() []string {
	if len(rp.Links) == 0 {
		return nil
	}
	ids := make([]string, 0, len(rp.Links)+1)
	for _, l := range rp.Links {
		ids = append(ids, l.StartNode.ID)
	}

	return append(ids, rp.Links[len(rp.Links)-1].EndNode.ID)
}

// String renders a link as "start→end".
func (l Link) String() string {
	return l.StartNode.ID + "→" + l.EndNode.ID
}

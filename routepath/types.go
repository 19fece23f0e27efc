// SPDX-License-Identifier: MIT

package routepath

import "time"

// NodeType classifies a point of the transit network.
type NodeType string

const (
	// NodeStop is a passenger stop.
	NodeStop NodeType = "stop"
	// NodeCrossroad is an intersection without boarding.
	NodeCrossroad NodeType = "crossroad"
	// NodeBorder marks a municipality border crossing.
	NodeBorder NodeType = "border"
)

// Node is a point in the transit network graph.
// Two nodes are the same node iff their IDs are equal.
type Node struct {
	// ID is the opaque network-wide identifier.
	ID string `json:"id" yaml:"id"`

	// Type is informational only; it never takes part in comparisons.
	Type NodeType `json:"type,omitempty" yaml:"type,omitempty"`

	// ShortID is the human-facing stop code, if any.
	ShortID string `json:"shortId,omitempty" yaml:"shortId,omitempty"`
}

// Link is a directed edge StartNode→EndNode used by a route-path.
// OrderNumber gives its position within the owning route-path.
type Link struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	StartNode   Node   `json:"startNode" yaml:"startNode"`
	EndNode     Node   `json:"endNode" yaml:"endNode"`
	OrderNumber int    `json:"orderNumber" yaml:"orderNumber"`
}

// RoutePath is one directional variant of a route.
type RoutePath struct {
	RouteID   string    `json:"routeId" yaml:"routeId"`
	Direction string    `json:"direction" yaml:"direction"`
	StartDate time.Time `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	Name      string    `json:"name,omitempty" yaml:"name,omitempty"`
	Links     []Link    `json:"links" yaml:"links"`
}

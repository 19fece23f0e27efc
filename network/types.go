package network

import (
	"errors"
	"sync"

	"github.com/katalvlaran/rpdiff/routepath"
)

// Sentinel errors for network operations.
var (
	// ErrEmptyNodeID indicates an empty node identifier.
	ErrEmptyNodeID = errors.New("network: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a missing node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrLinkNotFound indicates no link exists between two nodes.
	ErrLinkNotFound = errors.New("network: link not found")

	// ErrLoopNotAllowed indicates a link from a node to itself.
	ErrLoopNotAllowed = errors.New("network: self-loop not allowed")

	// ErrDuplicateLink indicates a second link for the same ordered node pair.
	ErrDuplicateLink = errors.New("network: link already exists")

	// ErrTooFewNodes indicates a route-path request with fewer than two nodes.
	ErrTooFewNodes = errors.New("network: route-path needs at least two nodes")
)

// Network is the in-memory transit network.
type Network struct {
	muNode sync.RWMutex // guards nodes
	muLink sync.RWMutex // guards links and adjacency

	nextLinkID uint64                     // atomic link id generator
	nodes      map[string]*routepath.Node // node ID → Node
	links      map[string]*linkRecord     // link ID → record

	// adjacency[from][to] = link ID
	adjacency map[string]map[string]string
}

type linkRecord struct {
	seq      uint64
	id       string
	from, to string
}

// New creates an empty Network.
func New() *Network {
	return &Network{
		nodes:     make(map[string]*routepath.Node),
		links:     make(map[string]*linkRecord),
		adjacency: make(map[string]map[string]string),
	}
}

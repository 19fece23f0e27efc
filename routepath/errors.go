// SPDX-License-Identifier: MIT

package routepath

import "errors"

var (
	// ErrEmptyRoutePath indicates a route-path without links.
	ErrEmptyRoutePath = errors.New("routepath: route-path has no links")

	// ErrEmptyNodeID indicates a link whose start or end node id is empty.
	ErrEmptyNodeID = errors.New("routepath: node id is empty")

	// ErrDuplicateOrder indicates two links with the same OrderNumber.
	ErrDuplicateOrder = errors.New("routepath: duplicate link order number")

	// ErrNotContiguous indicates consecutive links that do not share a node.
	ErrNotContiguous = errors.New("routepath: links are not contiguous")

	// ErrUnknownFormat indicates a document format other than YAML or JSON.
	ErrUnknownFormat = errors.New("routepath: unknown document format")
)

// Package rpdiff is a toolkit for reviewing changes to transit route-paths:
// the directional variants of a route, expressed as ordered runs of links
// between stops and crossroads.
//
// 🚏 What is in the box?
//
//	routepath/ — Node, Link and RoutePath records, validation, YAML/JSON codec
//	network/   — thread-safe node/link catalog that resolves stop sequences
//	             into contiguous route-paths
//	align/     — row-by-row link alignment of two route-paths
//	render/    — side-by-side text table and JSON output for alignments
//	cmd/rpdiff — command line front end (compare, validate)
//
// Quick ASCII example:
//
//	first   A→B  B→C  C→D  D
//	second  A→B  B→D   ·   D
//	             ≠    <
//
// shows a variant that skips stop C.
//
//	go install github.com/katalvlaran/rpdiff/cmd/rpdiff@latest
package rpdiff

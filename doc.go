// Package lws implements a JSON Lightweight Schema (LWS) validator: a
// bidirectional walk that checks a schema-tree of key/value patterns
// against a JSON data tree, and vice versa, producing a pretty-printed
// adjacency-list report of every key and value mismatch.
//
// Credit to the jsonutils/lws package this validator is descended from.
package lws

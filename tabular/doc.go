// Package tabular converts between core.Graph and column-oriented node and
// edge tables keyed by caller-chosen int64 node keys, and reads and writes
// those tables as CSV.
//
// A NodeTable holds one key per node and, optionally, one coordinate row per
// node. An EdgeTable holds (source key, target key) pairs. Import builds a
// graph from the two tables and returns the key → NodeID map; Export is the
// reverse, keying nodes either by position or through a KeyFunc.
//
// CSV layout:
//
//	nodes: key[,x0,x1,...]
//	edges: source,target
//
// Both files start with a header row.
package tabular

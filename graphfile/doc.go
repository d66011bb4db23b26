// Package graphfile reads and writes declarative bipartite graph documents.
//
// A document lists nodes with their partition and edges as endpoint pairs:
//
//	nodes:
//	  - {id: alice, partition: A}
//	  - {id: build, partition: B}
//	edges:
//	  - [alice, build]
//	matched:
//	  - [alice, build]
//
// YAML (gopkg.in/yaml.v3) and JSON are supported; the format follows the file extension.
// Apply loads a document into a core.Graph all-or-nothing: the document is replayed on a
// clone first and the target is only touched once the clone accepted every step.
package graphfile

// Package bimatch is an in-memory bipartite graph store with a maximum-matching engine
// and a small JSON service around both.
//
// What is in the box?
//
//	A thread-safe store where every node belongs to partition A or B and every edge
//	joins the two sides, plus Kuhn's augmenting-path matching over it:
//		• Store: add/remove nodes and edges, snapshot, clone, highlight flags
//		• Matching: maximum (Kuhn) or greedy, applied atomically as highlights
//		• Fixtures: complete, random, path, cycle, star and grid bipartite graphs
//		• Files: YAML/JSON graph documents for seeding and export
//		• Service: chi-based HTTP API with metrics, rate limiting and zap logging
//
// Layout:
//
//	core/       — Graph, Node, Edge, typed errors and the Tx used for atomic steps
//	matching/   — Maximum, Greedy, Apply, Validate
//	builder/    — deterministic bipartite constructors for tests and seeding
//	graphfile/  — graph document Load/Decode/Encode/Apply
//	internal/   — config, logging, metrics, ratelimit, httpapi
//	cmd/matchd/ — the HTTP server
//
// Quick ASCII example:
//
//	a(A)───b(B)───c(A)───d(B)
//
// has the maximum matching {a–b, c–d}. A greedy pass that started at c would take
// c–b and strand a and d; Kuhn's search moves c on to d instead.
//
//	go run ./cmd/matchd -config matchd.yaml
package bimatch

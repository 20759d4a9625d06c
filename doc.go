// Package eesen is a library of core algorithms over speech-recognition
// lattices — the weighted acyclic multigraphs of competing hypotheses that a
// decoder emits for an utterance.
//
// 🚀 What is eesen?
//
//	A pure-Go toolkit that brings together:
//		• Semiring primitives: tropical×tropical weights, stable log-add
//		• Lattice containers: arc-labeled lattices and compact lattices
//		• Structure: topological sort, connect/trim, state-time labeling
//		• Scoring: forward/backward (alpha/beta) under log or Viterbi combine
//		• Slimming: beam pruning, per-frame depth limiting, depth analytics
//		• Decoding: 1-best shortest path, word alignments, sentence lengths
//		• Rescoring: word-insertion penalties, acoustic rescoring oracles
//		• Composition: compact lattice × on-demand deterministic FST
//
// ✨ Why choose eesen?
//
//   - Deterministic – fixed topological visitation order, reproducible output
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors for caller bugs, hooks for soft warnings
//   - Small API – each algorithm lives in its own focused package
//
// Under the hood, everything is organized under focused subpackages:
//
//	semiring/  — LatticeWeight, CompactLatticeWeight, log-space arithmetic
//	lattice/   — mutable Fst container, TopSort, Connect
//	latbuild/  — deterministic lattice fixtures for tests and benchmarks
//	times/     — frame-index labeling of states
//	alphabeta/ — forward/backward scoring engine
//	prune/     — beam pruning by forward–backward cost
//	depth/     — per-frame depth limiting and depth statistics
//	shortest/  — 1-best path extraction, longest sentence length
//	align/     — linear-lattice word alignment decoding
//	rescore/   — word-insertion penalties, acoustic rescoring
//	compose/   — lazy product with a deterministic on-demand FST
//
// Quick ASCII example — a two-word compact lattice:
//
//	0 ──HELLO/"aaa"── 1 ──WORLD/"bb"── 2(final)
//
// spans five frames: HELLO covers frames 0–2, WORLD covers frames 3–4.
//
//	go get github.com/emoryjianghang/eesen
package eesen

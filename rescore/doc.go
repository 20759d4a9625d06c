// Package rescore rewrites the scores of a lattice in place without
// touching its topology.
//
// What
//
//   - Lattice replaces the acoustic cost of every frame-consuming arc using
//     an external Decodable oracle: for an arc leaving a state at frame t
//     with token label i, the acoustic component becomes
//     acoustic − LogLikelihood(t, i). Graph costs and the graph structure
//     are untouched, so the same lattice can be rescored against a new
//     acoustic model without re-decoding.
//   - AddWordInsPenalty / AddCompactWordInsPenalty add a scalar penalty to
//     the graph cost of every word-bearing arc (non-epsilon input label).
//     Penalties accumulate: applying p then q equals applying p+q.
//
// Rescoring needs every state's frame index, so the lattice is sorted
// topologically first when required; a cycle, or an oracle that runs out
// of frames before the lattice does, is reported through the warning hook
// and rescoring returns false. In the latter case the lattice may already
// be partially rewritten — the caller should discard it.
//
// The Decodable contract matches an acoustic model scoring interface:
// LogLikelihood(frame, token) for frames the model has, and
// IsLastFrame(frame) marking the final frame of the feature stream.
package rescore

// Package animator normalizes an array of raw annotation records into a
// validated, cross-referenced graph model.
//
// # Pipeline
//
// An Animator performs exactly one run over its input, as a fixed sequence
// of passes. Each pass consumes the working collection left by the previous
// one, and no pass revisits records another pass has claimed:
//
//	raw records
//	     │  canonicalize + register every record       → Canonicalized
//	     ▼
//	Extension pass  (versions, unique names)             → ExtensionsProcessed
//	     ▼
//	Container pass  (Expander seam, may add records)     → ContainersExpanded
//	     ▼
//	Node pass       (explicit nodes, in input order)     → NodesProcessed
//	     ▼
//	generic pass    (edges and every other kind)         → FullyProcessed
//
// The generic pass resolves references. A ref or edge endpoint naming an id
// that was never registered synthesizes an implicit Node, which is
// registered and processed before the referring record continues, so later
// records find it fully in place.
//
// # Errors
//
// The first violated invariant aborts the run. Errors match the sentinels
// of the animerr package with errors.Is. There is no partial result.
//
// # Concurrency
//
// A run is synchronous and single-threaded. An Animator must not be used
// from several goroutines; independent Animators share nothing.
package animator

// Package signals derives normalized authenticity signals from raw profile
// and post data. Extraction is a pure function: no I/O, deterministic for a
// given input, and every emitted value lands in [0,1] (booleans as 0 or 1).
//
// Signals that cannot be computed are omitted from the vector rather than
// defaulted, so downstream Bayesian scoring treats them as neutral evidence
// instead of being biased by a made-up value.
package signals

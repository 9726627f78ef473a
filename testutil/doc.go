// Package testutil provides testing helpers for aligned buffers.
//
// This package is intended for use in tests and benchmarks only. It
// provides an alignment assertion and deterministic byte generators for
// content round-trip tests.
package testutil

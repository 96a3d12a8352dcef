// Package view provides non-owning, bounds-checked windows over
// caller-owned buffers.
//
// A View is a one-dimensional window (base plus element count) and a
// Table is a two-dimensional window (base plus width, height and row
// stride), both generic over the four fixed unsigned element widths.
// Neither owns the memory it addresses: a view is a capability to read
// and write a range the caller already owns, valid only as long as the
// underlying buffer is valid. The zero value of either type is a valid,
// empty window.
//
// # Sub-windowing Policy
//
// Prefix, Suffix and Range return the canonical empty view when given
// out-of-range arguments. They never panic and never report an error.
// Generated callers prove their ranges upstream by static analysis;
// the clamp makes residual misuse harmless rather than undefined. An
// unexpected empty result is a signal to investigate the caller, not
// this package. Callers that want visibility into clamped requests can
// install a logger with SetLogger.
package view

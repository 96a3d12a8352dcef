// Package wuffs provides the runtime support contract linked into
// generated, statically-verified binary decoders and encoders.
//
// Generated codec packages do not allocate, raise, or block. Everything
// they need at run time reduces to three things: a way to report how a
// decode/encode step ended, safe windows over caller-owned buffers, and
// arithmetic that cannot overflow while computing offsets and lengths.
// This module supplies exactly that and nothing more.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct responsibilities:
//
//	wuffs/          Root package: placeholder types, version and flicks constants
//	├── status/     Four-way outcome protocol (ok, warning, suspension, error)
//	├── view/       Non-owning bounds-checked 1-D views and 2-D tables
//	├── num/        Saturating arithmetic and endian peek/poke primitives
//	└── cmd/        baseinfo, a terminal tool printing version and status info
//
// # Outcome Protocol
//
// A decode/encode step returns a single status.Status value:
//
//	st := decodeStep(...)
//	switch {
//	case st.IsOK():
//	    // done
//	case st.IsSuspension():
//	    // refill or flush buffers, then call decodeStep again
//	case st.IsError():
//	    return st // permanent failure
//	}
//
// A suspension carries no saved execution state here; the restartable
// state lives in the generated decoder itself.
//
// # Memory Model
//
// Views and tables never own memory. They are capabilities over ranges
// the caller already owns, valid only as long as the underlying buffer
// is valid. Out-of-range sub-windowing degrades silently to the empty
// view rather than failing: generated callers have already proven their
// ranges upstream, and the clamp exists to make misuse harmless, not to
// report it.
//
// # Thread Safety
//
// Every operation is a pure function of its arguments. Values may be
// used from multiple goroutines as long as the memory a view addresses
// is not written by one goroutine while another reads it; this layer
// performs no locking.
package wuffs

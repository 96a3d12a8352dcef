// Package num provides overflow-free arithmetic for generated decoders
// and encoders.
//
// SatAdd and SatSub clamp to the representable range instead of
// wrapping, so buffer offset and length computations can never escape
// their bounds. For every pair of inputs, SatAdd(x, y) equals
// min(x+y, maxE) and SatSub(x, y) equals max(x-y, 0), evaluated without
// truncation; clamping is the defined behavior, not a failure mode.
//
// The Peek and Poke functions load and store fixed-width values at a
// given byte order. They perform no bounds checks of their own: the
// generated caller has already proven the slice is long enough.
package num

package num

// Peek and Poke assume the caller has already proven that b is long
// enough; they index without checking, and an undersized slice panics
// like any other out-of-range Go access.

// PeekU8 loads the byte at b[0].
func PeekU8(b []byte) uint8 {
	return b[0]
}

// PeekU16BE loads a big-endian uint16 from b[0:2].
func PeekU16BE(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

// PeekU16LE loads a little-endian uint16 from b[0:2].
func PeekU16LE(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

// PeekU32BE loads a big-endian uint32 from b[0:4].
func PeekU32BE(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// PeekU32LE loads a little-endian uint32 from b[0:4].
func PeekU32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// PeekU64BE loads a big-endian uint64 from b[0:8].
func PeekU64BE(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 |
		uint64(b[3])<<32 | uint64(b[4])<<24 | uint64(b[5])<<16 |
		uint64(b[6])<<8 | uint64(b[7])
}

// PeekU64LE loads a little-endian uint64 from b[0:8].
func PeekU64LE(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 |
		uint64(b[3])<<24 | uint64(b[4])<<32 | uint64(b[5])<<40 |
		uint64(b[6])<<48 | uint64(b[7])<<56
}

// PokeU8 stores v at b[0].
func PokeU8(b []byte, v uint8) {
	b[0] = v
}

// PokeU16BE stores v big-endian into b[0:2].
func PokeU16BE(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

// PokeU16LE stores v little-endian into b[0:2].
func PokeU16LE(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// PokeU32BE stores v big-endian into b[0:4].
func PokeU32BE(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// PokeU32LE stores v little-endian into b[0:4].
func PokeU32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// PokeU64BE stores v big-endian into b[0:8].
func PokeU64BE(b []byte, v uint64) {
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

// PokeU64LE stores v little-endian into b[0:8].
func PokeU64LE(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

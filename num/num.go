package num

// Unsigned enumerates the four fixed widths the arithmetic operates on.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Min returns the smaller of x and y.
func Min[U Unsigned](x, y U) U {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max[U Unsigned](x, y U) U {
	if x > y {
		return x
	}
	return y
}

// SatAdd returns x + y, clamped to the maximum value of U on overflow.
// Unsigned addition wraps, so overflow shows up as res < x; the
// optimizer lowers the clamp branchlessly on common targets.
func SatAdd[U Unsigned](x, y U) U {
	res := x + y
	if res < x {
		var zero U
		res = ^zero
	}
	return res
}

// SatSub returns x - y, clamped to zero on underflow. Underflow shows
// up as res > x after the wrapping subtraction.
func SatSub[U Unsigned](x, y U) U {
	res := x - y
	if res > x {
		res = 0
	}
	return res
}

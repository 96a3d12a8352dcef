package status

// Canonical statuses shared by all generated codec packages. Individual
// packages register further statuses with the New* constructors at init
// time.
var (
	SuspensionShortRead  = NewSuspension("short read")
	SuspensionShortWrite = NewSuspension("short write")

	ErrBadArgument            = NewError("bad argument")
	ErrBadVersion             = NewError("bad version")
	ErrCannotReturnSuspension = NewError("cannot return a suspension")
	ErrClosedForWrites        = NewError("closed for writes")
	ErrUnexpectedEOF          = NewError("unexpected EOF")

	WarnEndOfData = NewWarning("end of data")
)

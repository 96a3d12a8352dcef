package status

import "sync"

// Category classifies a Status.
type Category uint8

const (
	CategoryOK Category = iota
	CategoryWarning
	CategorySuspension
	CategoryError
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryOK:
		return "ok"
	case CategoryWarning:
		return "warning"
	case CategorySuspension:
		return "suspension"
	case CategoryError:
		return "error"
	}
	return "invalid"
}

type repr struct {
	category Category
	message  string
}

// Status is the outcome of a single decode/encode step. The zero value
// is OK. Non-OK values reference an interned singleton, so == compares
// identity, never message content byte by byte.
type Status struct {
	r *repr
}

// OK is the distinguished success outcome, equal to the zero Status.
var OK = Status{}

var (
	internMu sync.Mutex
	interned = map[repr]*repr{}
)

// intern returns the canonical Status for (category, message), creating
// it on first use. Constructors are expected to run at package init
// time of generated code; the lock is uncontended in steady state.
func intern(c Category, message string) Status {
	if message == "" {
		return OK
	}
	key := repr{category: c, message: message}
	internMu.Lock()
	defer internMu.Unlock()
	r, ok := interned[key]
	if !ok {
		r = &key
		interned[key] = r
	}
	return Status{r: r}
}

// NewWarning returns the canonical warning Status with the given
// message. Calling it twice with the same message returns the same
// singleton. An empty message yields OK.
func NewWarning(message string) Status { return intern(CategoryWarning, message) }

// NewSuspension returns the canonical suspension Status with the given
// message.
func NewSuspension(message string) Status { return intern(CategorySuspension, message) }

// NewError returns the canonical error Status with the given message.
func NewError(message string) Status { return intern(CategoryError, message) }

// Category returns which of the four categories s belongs to.
func (s Status) Category() Category {
	if s.r == nil {
		return CategoryOK
	}
	return s.r.category
}

// IsOK reports whether s is the distinguished OK outcome.
func (s Status) IsOK() bool { return s.r == nil }

// IsWarning reports whether the operation completed with a non-fatal
// caveat.
func (s Status) IsWarning() bool { return s.r != nil && s.r.category == CategoryWarning }

// IsSuspension reports whether the operation is incomplete but
// retryable. The caller must re-invoke the same logical operation after
// supplying more input and/or more output space.
func (s Status) IsSuspension() bool { return s.r != nil && s.r.category == CategorySuspension }

// IsError reports whether the operation failed permanently.
func (s Status) IsError() bool { return s.r != nil && s.r.category == CategoryError }

// IsComplete reports whether no further re-invocation is needed or
// useful: s is OK or a warning.
func (s Status) IsComplete() bool { return s.r == nil || s.r.category == CategoryWarning }

// Message returns the human-readable diagnostic message, or "ok".
func (s Status) Message() string {
	if s.r == nil {
		return "ok"
	}
	return s.r.message
}

// String returns the message prefixed by the category, e.g.
// "error: bad argument".
func (s Status) String() string {
	if s.r == nil {
		return "ok"
	}
	return s.r.category.String() + ": " + s.r.message
}

// Error implements the error interface so non-OK statuses can cross
// into ordinary Go error handling at the library boundary. Callers
// should not wrap an OK or warning status as an error; IsComplete is
// the completion test, not a nil check.
func (s Status) Error() string { return s.Message() }

// Is reports whether target denotes the same status singleton,
// supporting errors.Is across the boundary.
func (s Status) Is(target error) bool {
	t, ok := target.(Status)
	return ok && s == t
}

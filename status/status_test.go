package status

import (
	"errors"
	"fmt"
	"testing"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name string
		s    Status
		want Category
	}{
		{"zero value", Status{}, CategoryOK},
		{"OK", OK, CategoryOK},
		{"short read", SuspensionShortRead, CategorySuspension},
		{"short write", SuspensionShortWrite, CategorySuspension},
		{"bad argument", ErrBadArgument, CategoryError},
		{"unexpected EOF", ErrUnexpectedEOF, CategoryError},
		{"end of data", WarnEndOfData, CategoryWarning},
		{"fresh warning", NewWarning("lossy conversion"), CategoryWarning},
		{"fresh suspension", NewSuspension("short work buffer"), CategorySuspension},
		{"fresh error", NewError("checksum mismatch"), CategoryError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Category(); got != tt.want {
				t.Fatalf("Category() = %v, want %v", got, tt.want)
			}

			preds := map[string]bool{
				"IsOK":         tt.s.IsOK(),
				"IsWarning":    tt.s.IsWarning(),
				"IsSuspension": tt.s.IsSuspension(),
				"IsError":      tt.s.IsError(),
			}
			trueCount := 0
			for _, v := range preds {
				if v {
					trueCount++
				}
			}
			if trueCount != 1 {
				t.Errorf("predicates are not a partition: %v", preds)
			}

			wantPred := map[Category]string{
				CategoryOK:         "IsOK",
				CategoryWarning:    "IsWarning",
				CategorySuspension: "IsSuspension",
				CategoryError:      "IsError",
			}[tt.want]
			if !preds[wantPred] {
				t.Errorf("%s = false, want true", wantPred)
			}

			if got, want := tt.s.IsComplete(), tt.s.IsOK() || tt.s.IsWarning(); got != want {
				t.Errorf("IsComplete() = %v, want %v", got, want)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	if NewError("bad argument") != ErrBadArgument {
		t.Error("re-registering the same error message must return the same singleton")
	}
	if NewSuspension("short read") != SuspensionShortRead {
		t.Error("re-registering the same suspension message must return the same singleton")
	}
	if NewError("end of data") == WarnEndOfData {
		t.Error("same message in a different category must be a distinct status")
	}
	if NewError("alpha") == NewError("beta") {
		t.Error("different messages must be distinct statuses")
	}
	if (Status{}) != OK {
		t.Error("zero Status must equal OK")
	}
	if NewWarning("") != OK {
		t.Error("empty message must collapse to OK")
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name    string
		s       Status
		message string
		str     string
	}{
		{"OK", OK, "ok", "ok"},
		{"suspension", SuspensionShortRead, "short read", "suspension: short read"},
		{"error", ErrBadVersion, "bad version", "error: bad version"},
		{"warning", WarnEndOfData, "end of data", "warning: end of data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Message(); got != tt.message {
				t.Errorf("Message() = %q, want %q", got, tt.message)
			}
			if got := tt.s.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestErrorBridge(t *testing.T) {
	var err error = ErrUnexpectedEOF
	if err.Error() != "unexpected EOF" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Error("errors.Is must match the same singleton")
	}
	if errors.Is(err, ErrBadArgument) {
		t.Error("errors.Is must not match a different singleton")
	}

	wrapped := fmt.Errorf("decoding frame 3: %w", ErrUnexpectedEOF)
	if !errors.Is(wrapped, ErrUnexpectedEOF) {
		t.Error("errors.Is must see through wrapping")
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryOK, "ok"},
		{CategoryWarning, "warning"},
		{CategorySuspension, "suspension"},
		{CategoryError, "error"},
		{Category(42), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

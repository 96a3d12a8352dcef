// Package status implements the outcome protocol for generated
// decoders and encoders.
//
// Every decode/encode step returns exactly one Status. Statuses come in
// four categories:
//
//   - OK:          the request was completed, successfully.
//   - Warnings:    the request was completed, unsuccessfully.
//   - Suspensions: the request was not completed, but can be re-tried.
//   - Errors:      the request was not completed, permanently.
//
// When a step returns a suspension, the caller should call it again
// after flushing or re-filling its buffers. Any partial progress is
// remembered by the generated decoder's own fields, not by the Status:
// a suspension is a signal, not a saved continuation.
//
// Statuses are interned singletons. Two Status values compare equal
// with == exactly when they denote the same singleton, so generated
// code can test outcomes as cheaply as comparing pointers while still
// carrying a human-readable message for diagnostics. Messages are for
// programmers, not end users; they are not localized and carry no
// contextual information such as a source filename.
//
// The zero Status is OK.
package status

package wuffs

// EmptyStruct is returned by operations that complete with nothing to
// report. Unlike a function with no results, it lets generated call
// sites uniformly assign every call's result to a variable.
//
// Go sizes zero-field structs consistently across toolchains, so no
// padding field is needed to pin the type's size.
type EmptyStruct struct{}

// Utility is a placeholder receiver type. It groups operations that do
// not act on a particular instance under a nominal type, the way other
// languages host static methods.
type Utility struct{}

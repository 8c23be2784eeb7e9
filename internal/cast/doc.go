// Package cast validates and performs zero-copy reinterpretation of raw
// byte regions as typed element slices.
//
// A region is viewable as []T only when its byte length is an exact
// multiple of T's size and its base address satisfies T's alignment.
// [Check] verifies both, [Slice] verifies and reinterprets, and
// [MustSlice] is for views whose region was already validated at
// construction time: a failure there means the backing memory was
// invalidated after the fact, which is a programming error, so it panics.
//
// The conversions bypass the Go type system via unsafe.Slice; the
// validation functions are the only supported entry points.
package cast

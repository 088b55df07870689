// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package dpack implements a compact, allocation-free codec for a subset of
// the MessagePack binary serialization format.
//
// A dpack Encoder writes primitive values -- booleans, nil, fixed-width
// signed and unsigned integers, and IEEE-754 floats -- into a caller-owned
// byte buffer using the narrowest MessagePack wire form that can represent
// each value. A dpack Decoder reads them back out, accepting any
// MessagePack integer form whose value fits the type requested by the
// caller.
//
// Unlike a general MessagePack library, dpack does not know how to frame
// maps, arrays, strings, binary blobs, or extension types; those are the
// job of a collaborator built on top of the Encoder/Decoder tag interface
// (see the tagframe and dpackstruct subpackages). dpack never allocates,
// never performs I/O, and is not safe for concurrent use by more than one
// goroutine against the same Encoder or Decoder.
//
// Every Encoder and Decoder method is a programming contract: calling any
// method before Init, after Fini, or with out-of-range range-decode bounds
// panics. Data-dependent failures -- a malformed tag byte, a value that
// does not fit the target type, a short buffer -- are reported as an
// error and latched: once a codec's error field is non-nil, every
// subsequent operation is a no-op that returns the same error.
package dpack

// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package dpack

import "fmt"

// A Code classifies a dpack error. The taxonomy mirrors the errno-like
// codes the format's reference implementation surfaces to callers.
type Code int

// Error codes returned by encode and decode operations. OK-equivalent
// success is represented by a nil error, never a Code value.
const (
	// ErrMsgSize reports an attempt to read or write past the end of the
	// buffer assigned to a codec.
	ErrMsgSize Code = iota + 1
	// ErrNoData reports an attempt to read past the end of the meaningful
	// data written to a decoder's buffer.
	ErrNoData
	// ErrProto reports a malformed tag byte: not a recognized MessagePack
	// discriminator at all.
	ErrProto
	// ErrNotSupported reports a tag that is recognized but whose handling
	// has been compiled out of this build (see the float build tag).
	ErrNotSupported
	// ErrNoMsg reports a tag that does not belong to the type family
	// expected at the current decode position (e.g. a string tag where a
	// scalar int was requested), or whose value domain cannot possibly fit
	// the requested target width.
	ErrNoMsg
	// ErrBadMsg reports a tag that matches the expected family but whose
	// payload violates a format-level rule, such as a NaN float where the
	// target forbids it.
	ErrBadMsg
	// ErrRange reports a value that is representable by the wire form and
	// the target type, but falls outside a caller-supplied [low, high]
	// bound.
	ErrRange
	// ErrNoMem reports allocation failure. The core itself never
	// allocates and never returns this code, and neither do the tagframe
	// and dpackstruct packages.
	ErrNoMem
)

var codeText = map[Code]string{
	ErrMsgSize:      "not enough space to complete operation",
	ErrNoData:       "not enough data to complete operation",
	ErrProto:        "not a valid messagepack stream",
	ErrNotSupported: "unsupported messagepack stream data",
	ErrNoMsg:        "unexpected messagepack stream data type",
	ErrBadMsg:       "invalid messagepack stream data",
	ErrRange:        "value outside requested range",
	ErrNoMem:        "memory allocation failure",
}

func (c Code) String() string {
	if s, ok := codeText[c]; ok {
		return s
	}
	return fmt.Sprintf("dpack.Code(%d)", int(c))
}

// An Error reports a dpack Code together with the operation that produced
// it. Errors returned by this package can be compared against the
// exported Code constants with errors.Is, e.g. errors.Is(err, dpack.ErrRange).
type Error struct {
	Op   string
	Code Code
}

func (e *Error) Error() string { return fmt.Sprintf("dpack: %s: %s", e.Op, e.Code) }

// Is reports whether target is the same Code as e.Code, so that callers
// may write errors.Is(err, dpack.ErrRange) instead of a type assertion.
func (e *Error) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.Code
}

// Error implements the error interface for a bare Code, so that
// dpack.ErrRange itself satisfies errors.Is comparisons against an *Error.
func (c Code) Error() string { return c.String() }

func newErr(op string, code Code) error { return &Error{Op: op, Code: code} }

// An Encoder serializes primitive values into a caller-owned buffer using
// the MessagePack wire format, always selecting the narrowest tag capable
// of representing each value.
//
// The zero Encoder is not usable; call Init before any other method.
// Calling any method on an Encoder that has not been initialized, or that
// has been finalized with Fini, is a programming error and panics.
type Encoder struct {
	buf   []byte
	used  int
	err   error
	state codecState
}

type codecState uint8

const (
	stateFresh codecState = iota
	stateLive
	stateFinal
)

// Init associates enc with buf for writing and resets its cursor and
// error state. Init panics if buf is empty; an encoder always needs room
// for at least one byte.
func (enc *Encoder) Init(buf []byte) {
	if len(buf) == 0 {
		panic("dpack: Encoder.Init: empty buffer")
	}
	enc.buf = buf
	enc.used = 0
	enc.err = nil
	enc.state = stateLive
}

// Fini releases enc's borrow of its buffer. Fini is idempotent; calling it
// more than once, or on a fresh encoder, is harmless.
func (enc *Encoder) Fini() {
	enc.buf = nil
	enc.state = stateFinal
}

// SpaceUsed returns the number of bytes written to enc's buffer so far.
func (enc *Encoder) SpaceUsed() int {
	enc.checkLive("SpaceUsed")
	return enc.used
}

// SpaceLeft returns the number of bytes remaining in enc's buffer.
func (enc *Encoder) SpaceLeft() int {
	enc.checkLive("SpaceLeft")
	return len(enc.buf) - enc.used
}

// Err returns the latched error of enc, or nil if no operation has
// failed.
func (enc *Encoder) Err() error {
	enc.checkLive("Err")
	return enc.err
}

func (enc *Encoder) checkLive(op string) {
	switch enc.state {
	case stateFresh:
		panic("dpack: Encoder." + op + ": not initialized")
	case stateFinal:
		panic("dpack: Encoder." + op + ": use after Fini")
	}
}

// fail latches err as enc's error state, if one is not already latched,
// and returns the latched error.
func (enc *Encoder) fail(err error) error {
	if enc.err == nil {
		enc.err = err
	}
	return enc.err
}

// reserve checks that enc has room for n more bytes, latching ErrMsgSize
// and returning a non-nil error if not. On success it returns the slice of
// n bytes at the current cursor and advances the cursor past them; the
// caller must fill every byte of the returned slice.
func (enc *Encoder) reserve(op string, n int) ([]byte, error) {
	enc.checkLive(op)
	if enc.err != nil {
		return nil, enc.err
	}
	if len(enc.buf)-enc.used < n {
		return nil, enc.fail(newErr(op, ErrMsgSize))
	}
	out := enc.buf[enc.used : enc.used+n]
	enc.used += n
	return out, nil
}

// A Decoder extracts primitive values from a caller-owned buffer according
// to the MessagePack wire format, accepting any integer wire form whose
// value fits the requested target type.
//
// The zero Decoder is not usable; call Init before any other method.
type Decoder struct {
	buf   []byte
	pos   int
	err   error
	state codecState
}

// Init associates dec with buf for reading and resets its cursor and
// error state. Init panics if buf is empty.
func (dec *Decoder) Init(buf []byte) {
	if len(buf) == 0 {
		panic("dpack: Decoder.Init: empty buffer")
	}
	dec.buf = buf
	dec.pos = 0
	dec.err = nil
	dec.state = stateLive
}

// Fini releases dec's borrow of its buffer. Fini is idempotent.
func (dec *Decoder) Fini() {
	dec.buf = nil
	dec.state = stateFinal
}

// DataLeft returns the number of unread bytes remaining in dec's buffer.
func (dec *Decoder) DataLeft() int {
	dec.checkLive("DataLeft")
	return len(dec.buf) - dec.pos
}

// Unused is an alias for DataLeft, named for parity with the reference
// implementation's skip-decoder concept: the number of trailing bytes a
// caller never asked to have decoded.
func (dec *Decoder) Unused() int { return dec.DataLeft() }

// Err returns the latched error of dec, or nil if no operation has
// failed.
func (dec *Decoder) Err() error {
	dec.checkLive("Err")
	return dec.err
}

func (dec *Decoder) checkLive(op string) {
	switch dec.state {
	case stateFresh:
		panic("dpack: Decoder." + op + ": not initialized")
	case stateFinal:
		panic("dpack: Decoder." + op + ": use after Fini")
	}
}

func (dec *Decoder) fail(err error) error {
	if dec.err == nil {
		dec.err = err
	}
	return dec.err
}

// peekByte returns the byte at dec's cursor without advancing it, failing
// with ErrNoData if none remains.
func (dec *Decoder) peekByte(op string) (byte, error) {
	if dec.pos >= len(dec.buf) {
		return 0, dec.fail(newErr(op, ErrNoData))
	}
	return dec.buf[dec.pos], nil
}

// take returns the next n bytes at dec's cursor and advances past them,
// failing with ErrNoData if fewer than n bytes remain.
func (dec *Decoder) take(op string, n int) ([]byte, error) {
	if len(dec.buf)-dec.pos < n {
		return nil, dec.fail(newErr(op, ErrNoData))
	}
	out := dec.buf[dec.pos : dec.pos+n]
	dec.pos += n
	return out, nil
}

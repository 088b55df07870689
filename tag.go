// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package dpack

// Wire tag bytes recognized by the core, named after the byte ranges and
// discriminators defined by the MessagePack specification.
const (
	mpPosFixIntMin byte = 0x00
	mpPosFixIntMax byte = 0x7f
	mpNil          byte = 0xc0
	mpFalse        byte = 0xc2
	mpTrue         byte = 0xc3
	mpFloat32      byte = 0xca
	mpFloat64      byte = 0xcb
	mpUint8        byte = 0xcc
	mpUint16       byte = 0xcd
	mpUint32       byte = 0xce
	mpUint64       byte = 0xcf
	mpInt8         byte = 0xd0
	mpInt16        byte = 0xd1
	mpInt32        byte = 0xd2
	mpInt64        byte = 0xd3
	mpNegFixIntMin byte = 0xe0
	mpNegFixIntMax byte = 0xff
)

// A wireKind discriminates the variant of a WireTag. It plays the role the
// spec calls a tagged union; Go has no sum types, so the union is modeled
// as a small struct with a Kind discriminant plus a payload field, the
// idiomatic stand-in used throughout this pack's protocol decoders.
type wireKind uint8

const (
	kindOther wireKind = iota
	kindFixUInt
	kindFixInt
	kindUInt8
	kindUInt16
	kindUInt32
	kindUInt64
	kindInt8
	kindInt16
	kindInt32
	kindInt64
	kindFloat32
	kindFloat64
	kindTrue
	kindFalse
	kindNil
)

// A wireTag is the decoded form of a single MessagePack tag byte: which
// family it belongs to, how many payload bytes follow it on the wire, and
// (for the fixint forms) the value folded directly into the tag byte.
type wireTag struct {
	kind    wireKind
	payload int   // number of big-endian payload bytes that follow
	fix     int64 // decoded value for kindFixUInt/kindFixInt
	raw     byte  // the tag byte itself, for kindOther diagnostics
}

// classifyTag maps a single wire byte to its wireTag. It never consumes
// payload bytes; the caller does that once the kind is known.
func classifyTag(b byte) wireTag {
	switch {
	case b >= mpPosFixIntMin && b <= mpPosFixIntMax:
		return wireTag{kind: kindFixUInt, fix: int64(b)}
	case b >= mpNegFixIntMin && b <= mpNegFixIntMax:
		return wireTag{kind: kindFixInt, fix: int64(int8(b))}
	}
	switch b {
	case mpNil:
		return wireTag{kind: kindNil}
	case mpFalse:
		return wireTag{kind: kindFalse}
	case mpTrue:
		return wireTag{kind: kindTrue}
	case mpFloat32:
		return wireTag{kind: kindFloat32, payload: 4}
	case mpFloat64:
		return wireTag{kind: kindFloat64, payload: 8}
	case mpUint8:
		return wireTag{kind: kindUInt8, payload: 1}
	case mpUint16:
		return wireTag{kind: kindUInt16, payload: 2}
	case mpUint32:
		return wireTag{kind: kindUInt32, payload: 4}
	case mpUint64:
		return wireTag{kind: kindUInt64, payload: 8}
	case mpInt8:
		return wireTag{kind: kindInt8, payload: 1}
	case mpInt16:
		return wireTag{kind: kindInt16, payload: 2}
	case mpInt32:
		return wireTag{kind: kindInt32, payload: 4}
	case mpInt64:
		return wireTag{kind: kindInt64, payload: 8}
	}
	return wireTag{kind: kindOther, raw: b}
}

// isIntFamily reports whether t belongs to the integer (including fixint)
// tag family.
func (t wireTag) isIntFamily() bool {
	switch t.kind {
	case kindFixUInt, kindFixInt, kindUInt8, kindUInt16, kindUInt32, kindUInt64,
		kindInt8, kindInt16, kindInt32, kindInt64:
		return true
	}
	return false
}

// isFloatFamily reports whether t belongs to the float tag family.
func (t wireTag) isFloatFamily() bool {
	return t.kind == kindFloat32 || t.kind == kindFloat64
}

// ReadTag returns the raw tag byte at dec's cursor without consuming its
// payload, advancing the cursor past the tag byte alone.
// It is exported for the benefit of collaborators (see the tagframe
// package) that need to inspect a tag before deciding how to consume its
// payload -- for example, to distinguish a scalar from a container.
//
// ReadTag does not classify or validate the byte: any value, including
// collection, string, binary, and extension tags, is returned as is, and
// interpreting it is the caller's job. ReadTag fails only with ErrNoData,
// when the buffer is exhausted (or with an already latched error).
func (dec *Decoder) ReadTag() (byte, error) {
	dec.checkLive("ReadTag")
	if dec.err != nil {
		return 0, dec.err
	}
	b, err := dec.peekByte("ReadTag")
	if err != nil {
		return 0, err
	}
	dec.pos++
	return b, nil
}

// WriteTag writes a single raw tag byte to enc's buffer, advancing the
// cursor by one. It is exported for collaborators that frame their own
// container tags (fixarray, fixmap, and their wide forms) atop the core's
// buffer and cursor.
func (enc *Encoder) WriteTag(b byte) error {
	enc.checkLive("WriteTag")
	dst, err := enc.reserve("WriteTag", 1)
	if err != nil {
		return err
	}
	dst[0] = b
	return nil
}

// WriteRaw copies data verbatim into enc's buffer, advancing the cursor by
// len(data). It is exported alongside WriteTag for collaborators (see the
// tagframe package) that need to write a multi-byte container length
// immediately following a tag byte.
func (enc *Encoder) WriteRaw(data []byte) error {
	enc.checkLive("WriteRaw")
	dst, err := enc.reserve("WriteRaw", len(data))
	if err != nil {
		return err
	}
	copy(dst, data)
	return nil
}

// ReadRaw consumes and returns the next n bytes at dec's cursor verbatim,
// without interpreting them as a tag. It is exported alongside ReadTag for
// collaborators that need to read a multi-byte container length
// immediately following a tag byte.
func (dec *Decoder) ReadRaw(n int) ([]byte, error) {
	dec.checkLive("ReadRaw")
	if dec.err != nil {
		return nil, dec.err
	}
	return dec.take("ReadRaw", n)
}

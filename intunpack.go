// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package dpack

import (
	"encoding/binary"
	"math"
)

// rawInt is the result of reading one integer-family tag and its payload,
// before any widening or sign-crossing has been applied to a specific
// target type.
type rawInt struct {
	unsigned bool
	uval     uint64
	sval     int64
}

// readIntTag reads one tag byte and, if it belongs to the integer family
// (fixint, fixuint, or one of the uintK/intK forms), its payload, and
// returns the decoded value in full width. The never-used byte 0xc1 fails
// with ErrProto; any other non-integer tag fails with ErrNoMsg, since this
// path is only ever reached from a scalar decode operation that already
// expected an integer.
func (dec *Decoder) readIntTag(op string) (rawInt, error) {
	dec.checkLive(op)
	if dec.err != nil {
		return rawInt{}, dec.err
	}
	b, err := dec.peekByte(op)
	if err != nil {
		return rawInt{}, err
	}
	if b == 0xc1 {
		return rawInt{}, dec.fail(newErr(op, ErrProto))
	}
	tag := classifyTag(b)
	if !tag.isIntFamily() {
		return rawInt{}, dec.fail(newErr(op, ErrNoMsg))
	}
	dec.pos++

	switch tag.kind {
	case kindFixUInt:
		return rawInt{unsigned: true, uval: uint64(tag.fix)}, nil
	case kindFixInt:
		return rawInt{unsigned: false, sval: tag.fix}, nil
	case kindUInt8:
		p, err := dec.take(op, 1)
		if err != nil {
			return rawInt{}, err
		}
		return rawInt{unsigned: true, uval: uint64(p[0])}, nil
	case kindUInt16:
		p, err := dec.take(op, 2)
		if err != nil {
			return rawInt{}, err
		}
		return rawInt{unsigned: true, uval: uint64(binary.BigEndian.Uint16(p))}, nil
	case kindUInt32:
		p, err := dec.take(op, 4)
		if err != nil {
			return rawInt{}, err
		}
		return rawInt{unsigned: true, uval: uint64(binary.BigEndian.Uint32(p))}, nil
	case kindUInt64:
		p, err := dec.take(op, 8)
		if err != nil {
			return rawInt{}, err
		}
		return rawInt{unsigned: true, uval: binary.BigEndian.Uint64(p)}, nil
	case kindInt8:
		p, err := dec.take(op, 1)
		if err != nil {
			return rawInt{}, err
		}
		return rawInt{unsigned: false, sval: int64(int8(p[0]))}, nil
	case kindInt16:
		p, err := dec.take(op, 2)
		if err != nil {
			return rawInt{}, err
		}
		return rawInt{unsigned: false, sval: int64(int16(binary.BigEndian.Uint16(p)))}, nil
	case kindInt32:
		p, err := dec.take(op, 4)
		if err != nil {
			return rawInt{}, err
		}
		return rawInt{unsigned: false, sval: int64(int32(binary.BigEndian.Uint32(p)))}, nil
	case kindInt64:
		p, err := dec.take(op, 8)
		if err != nil {
			return rawInt{}, err
		}
		return rawInt{unsigned: false, sval: int64(binary.BigEndian.Uint64(p))}, nil
	}
	panic("dpack: unreachable tag kind")
}

// decodeUint widens/validates a raw integer against an unsigned target
// whose natural maximum is max, per spec.md §4.4: any unsigned wire value
// at most max is accepted, and any non-negative signed wire value at most
// max is accepted by cross-signedness reading. Anything else escapes the
// target's domain and fails with ErrNoMsg.
func (dec *Decoder) decodeUint(op string, max uint64) (uint64, error) {
	raw, err := dec.readIntTag(op)
	if err != nil {
		return 0, err
	}
	if raw.unsigned {
		if raw.uval > max {
			return 0, dec.fail(newErr(op, ErrNoMsg))
		}
		return raw.uval, nil
	}
	if raw.sval < 0 || uint64(raw.sval) > max {
		return 0, dec.fail(newErr(op, ErrNoMsg))
	}
	return uint64(raw.sval), nil
}

// decodeInt widens/validates a raw integer against a signed target whose
// natural bounds are [min, max], per spec.md §4.4: any signed wire value
// within range is accepted, and any unsigned wire value that fits within
// [0, max] is accepted by cross-signedness reading.
func (dec *Decoder) decodeInt(op string, min, max int64) (int64, error) {
	raw, err := dec.readIntTag(op)
	if err != nil {
		return 0, err
	}
	if raw.unsigned {
		if raw.uval > uint64(max) {
			return 0, dec.fail(newErr(op, ErrNoMsg))
		}
		return int64(raw.uval), nil
	}
	if raw.sval < min || raw.sval > max {
		return 0, dec.fail(newErr(op, ErrNoMsg))
	}
	return raw.sval, nil
}

// Bounds used by decodeInt/decodeUint for each fixed-width target. Named
// to match the T_MIN/T_MAX terminology of spec.md §4.4/§4.5.
const (
	int8Min  = math.MinInt8
	int8Max  = math.MaxInt8
	int16Min = math.MinInt16
	int16Max = math.MaxInt16
	int32Min = math.MinInt32
	int32Max = math.MaxInt32
	int64Min = math.MinInt64
	int64Max = math.MaxInt64

	uint8Max  = math.MaxUint8
	uint16Max = math.MaxUint16
	uint32Max = math.MaxUint32
)

const uint64Max = ^uint64(0)

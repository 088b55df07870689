// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package dpack

import "encoding/binary"

// putUint writes the tag and big-endian payload for the narrowest wire
// form that can represent v, choosing among fixuint, uint8, uint16,
// uint32, and uint64 in that order (spec.md §4.3, unsigned cascade).
func (enc *Encoder) putUint(op string, v uint64) error {
	enc.checkLive(op)
	if enc.err != nil {
		return enc.err
	}
	switch {
	case v <= 127:
		dst, err := enc.reserve(op, 1)
		if err != nil {
			return err
		}
		dst[0] = byte(v)
	case v <= 0xff:
		dst, err := enc.reserve(op, 2)
		if err != nil {
			return err
		}
		dst[0], dst[1] = mpUint8, byte(v)
	case v <= 0xffff:
		dst, err := enc.reserve(op, 3)
		if err != nil {
			return err
		}
		dst[0] = mpUint16
		binary.BigEndian.PutUint16(dst[1:], uint16(v))
	case v <= 0xffffffff:
		dst, err := enc.reserve(op, 5)
		if err != nil {
			return err
		}
		dst[0] = mpUint32
		binary.BigEndian.PutUint32(dst[1:], uint32(v))
	default:
		dst, err := enc.reserve(op, 9)
		if err != nil {
			return err
		}
		dst[0] = mpUint64
		binary.BigEndian.PutUint64(dst[1:], v)
	}
	return nil
}

// putInt writes the tag and big-endian payload for the narrowest wire
// form that can represent v, choosing among negative fixint, positive
// fixuint, int8, int16, int32, and int64 in that order (spec.md §4.3,
// signed cascade).
func (enc *Encoder) putInt(op string, v int64) error {
	enc.checkLive(op)
	if enc.err != nil {
		return enc.err
	}
	switch {
	case v >= -32 && v < 0:
		dst, err := enc.reserve(op, 1)
		if err != nil {
			return err
		}
		dst[0] = byte(int8(v))
	case v >= 0 && v <= 127:
		dst, err := enc.reserve(op, 1)
		if err != nil {
			return err
		}
		dst[0] = byte(v)
	case v >= -128 && v <= 127:
		dst, err := enc.reserve(op, 2)
		if err != nil {
			return err
		}
		dst[0], dst[1] = mpInt8, byte(int8(v))
	case v >= -32768 && v <= 32767:
		dst, err := enc.reserve(op, 3)
		if err != nil {
			return err
		}
		dst[0] = mpInt16
		binary.BigEndian.PutUint16(dst[1:], uint16(int16(v)))
	case v >= -2147483648 && v <= 2147483647:
		dst, err := enc.reserve(op, 5)
		if err != nil {
			return err
		}
		dst[0] = mpInt32
		binary.BigEndian.PutUint32(dst[1:], uint32(int32(v)))
	default:
		dst, err := enc.reserve(op, 9)
		if err != nil {
			return err
		}
		dst[0] = mpInt64
		binary.BigEndian.PutUint64(dst[1:], uint64(v))
	}
	return nil
}

// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

//go:build !dpack_nofloat

package dpack

import (
	"encoding/binary"
	"math"
)

// Size, in bytes, of an encoded float32/float64: floats have no adaptive
// tag selection, so the shortest and longest encoding of any value of the
// type coincide.
const (
	Float32Size = 5
	Float64Size = 9
)

// EncodeFloat32 writes value as a MessagePack float32: tag 0xca followed
// by its big-endian IEEE-754 bytes. Encoding a NaN is a programming
// contract violation (spec.md §4.6) and panics.
func (enc *Encoder) EncodeFloat32(value float32) error {
	enc.checkLive("EncodeFloat32")
	if value != value {
		panic("dpack: EncodeFloat32: NaN")
	}
	if enc.err != nil {
		return enc.err
	}
	dst, err := enc.reserve("EncodeFloat32", 5)
	if err != nil {
		return err
	}
	dst[0] = mpFloat32
	binary.BigEndian.PutUint32(dst[1:], math.Float32bits(value))
	return nil
}

// DecodeFloat32 reads a MessagePack float32. Any other tag, including
// float64, fails with ErrNoMsg -- decode_float does not widen. A NaN
// payload fails with ErrBadMsg rather than being delivered to the caller.
func (dec *Decoder) DecodeFloat32() (float32, error) {
	dec.checkLive("DecodeFloat32")
	if dec.err != nil {
		return 0, dec.err
	}
	b, err := dec.peekByte("DecodeFloat32")
	if err != nil {
		return 0, err
	}
	if b != mpFloat32 {
		return 0, dec.fail(newErr("DecodeFloat32", ErrNoMsg))
	}
	dec.pos++
	p, err := dec.take("DecodeFloat32", 4)
	if err != nil {
		return 0, err
	}
	v := math.Float32frombits(binary.BigEndian.Uint32(p))
	if v != v {
		return 0, dec.fail(newErr("DecodeFloat32", ErrBadMsg))
	}
	return v, nil
}

// DecodeFloat32Min accepts values v >= low, else ErrRange. low must be
// finite; an infinite or NaN bound is a programming contract violation.
func (dec *Decoder) DecodeFloat32Min(low float32) (float32, error) {
	checkFiniteBound32("DecodeFloat32Min", low)
	v, err := dec.DecodeFloat32()
	if err != nil {
		return 0, err
	}
	if v < low {
		return 0, dec.fail(newErr("DecodeFloat32Min", ErrRange))
	}
	return v, nil
}

// DecodeFloat32Max accepts values v <= high, else ErrRange.
func (dec *Decoder) DecodeFloat32Max(high float32) (float32, error) {
	checkFiniteBound32("DecodeFloat32Max", high)
	v, err := dec.DecodeFloat32()
	if err != nil {
		return 0, err
	}
	if v > high {
		return 0, dec.fail(newErr("DecodeFloat32Max", ErrRange))
	}
	return v, nil
}

// DecodeFloat32Range accepts values in [low, high], else ErrRange.
func (dec *Decoder) DecodeFloat32Range(low, high float32) (float32, error) {
	checkFiniteBound32("DecodeFloat32Range", low)
	checkFiniteBound32("DecodeFloat32Range", high)
	if low >= high {
		panic("dpack: DecodeFloat32Range: low must be < high")
	}
	v, err := dec.DecodeFloat32()
	if err != nil {
		return 0, err
	}
	if v < low || v > high {
		return 0, dec.fail(newErr("DecodeFloat32Range", ErrRange))
	}
	return v, nil
}

// EncodeFloat64 writes value as a MessagePack float64: tag 0xcb followed
// by its big-endian IEEE-754 bytes. Encoding a NaN panics.
func (enc *Encoder) EncodeFloat64(value float64) error {
	enc.checkLive("EncodeFloat64")
	if value != value {
		panic("dpack: EncodeFloat64: NaN")
	}
	if enc.err != nil {
		return enc.err
	}
	dst, err := enc.reserve("EncodeFloat64", 9)
	if err != nil {
		return err
	}
	dst[0] = mpFloat64
	binary.BigEndian.PutUint64(dst[1:], math.Float64bits(value))
	return nil
}

// DecodeFloat64 reads a MessagePack float64 or float32, widening a
// float32 payload to double precision (spec.md §4.6). A NaN payload, in
// either width, fails with ErrBadMsg.
func (dec *Decoder) DecodeFloat64() (float64, error) {
	dec.checkLive("DecodeFloat64")
	if dec.err != nil {
		return 0, dec.err
	}
	b, err := dec.peekByte("DecodeFloat64")
	if err != nil {
		return 0, err
	}
	switch b {
	case mpFloat64:
		dec.pos++
		p, err := dec.take("DecodeFloat64", 8)
		if err != nil {
			return 0, err
		}
		v := math.Float64frombits(binary.BigEndian.Uint64(p))
		if v != v {
			return 0, dec.fail(newErr("DecodeFloat64", ErrBadMsg))
		}
		return v, nil
	case mpFloat32:
		dec.pos++
		p, err := dec.take("DecodeFloat64", 4)
		if err != nil {
			return 0, err
		}
		v32 := math.Float32frombits(binary.BigEndian.Uint32(p))
		if v32 != v32 {
			return 0, dec.fail(newErr("DecodeFloat64", ErrBadMsg))
		}
		return float64(v32), nil
	default:
		return 0, dec.fail(newErr("DecodeFloat64", ErrNoMsg))
	}
}

// DecodeFloat64Min accepts values v >= low, else ErrRange.
func (dec *Decoder) DecodeFloat64Min(low float64) (float64, error) {
	checkFiniteBound64("DecodeFloat64Min", low)
	v, err := dec.DecodeFloat64()
	if err != nil {
		return 0, err
	}
	if v < low {
		return 0, dec.fail(newErr("DecodeFloat64Min", ErrRange))
	}
	return v, nil
}

// DecodeFloat64Max accepts values v <= high, else ErrRange.
func (dec *Decoder) DecodeFloat64Max(high float64) (float64, error) {
	checkFiniteBound64("DecodeFloat64Max", high)
	v, err := dec.DecodeFloat64()
	if err != nil {
		return 0, err
	}
	if v > high {
		return 0, dec.fail(newErr("DecodeFloat64Max", ErrRange))
	}
	return v, nil
}

// DecodeFloat64Range accepts values in [low, high], else ErrRange.
func (dec *Decoder) DecodeFloat64Range(low, high float64) (float64, error) {
	checkFiniteBound64("DecodeFloat64Range", low)
	checkFiniteBound64("DecodeFloat64Range", high)
	if low >= high {
		panic("dpack: DecodeFloat64Range: low must be < high")
	}
	v, err := dec.DecodeFloat64()
	if err != nil {
		return 0, err
	}
	if v < low || v > high {
		return 0, dec.fail(newErr("DecodeFloat64Range", ErrRange))
	}
	return v, nil
}

func checkFiniteBound32(op string, v float32) {
	if v != v || math.IsInf(float64(v), 0) {
		panic("dpack: " + op + ": bound must be finite")
	}
}

func checkFiniteBound64(op string, v float64) {
	if v != v || math.IsInf(v, 0) {
		panic("dpack: " + op + ": bound must be finite")
	}
}

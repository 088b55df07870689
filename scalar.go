// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package dpack

// Size bounds, in bytes, of the shortest and longest wire encoding of each
// primitive type. Callers use these for pre-flight capacity checks before
// a batch of encode calls (spec.md §6).
const (
	BoolSize = 1
	NilSize  = 1

	StdIntSizeMin = 1 // narrowest of any integer encoding: a fixint
	StdIntSizeMax = 9 // widest: a tag byte plus an 8-byte uint64/int64 payload

	Uint8SizeMin, Uint8SizeMax   = 1, 2
	Uint16SizeMin, Uint16SizeMax = 1, 3
	Uint32SizeMin, Uint32SizeMax = 1, 5
	Uint64SizeMin, Uint64SizeMax = 1, 9

	Int8SizeMin, Int8SizeMax   = 1, 2
	Int16SizeMin, Int16SizeMax = 1, 3
	Int32SizeMin, Int32SizeMax = 1, 5
	Int64SizeMin, Int64SizeMax = 1, 9
)

// EncodeBool writes value as a MessagePack bool: a single tag byte, 0xc3
// for true or 0xc2 for false.
func (enc *Encoder) EncodeBool(value bool) error {
	enc.checkLive("EncodeBool")
	if enc.err != nil {
		return enc.err
	}
	dst, err := enc.reserve("EncodeBool", 1)
	if err != nil {
		return err
	}
	if value {
		dst[0] = mpTrue
	} else {
		dst[0] = mpFalse
	}
	return nil
}

// DecodeBool reads a MessagePack bool. Any tag other than 0xc2/0xc3 --
// including an integer 0 or 1 -- fails with ErrNoMsg.
func (dec *Decoder) DecodeBool() (bool, error) {
	dec.checkLive("DecodeBool")
	if dec.err != nil {
		return false, dec.err
	}
	b, err := dec.peekByte("DecodeBool")
	if err != nil {
		return false, err
	}
	switch b {
	case mpTrue:
		dec.pos++
		return true, nil
	case mpFalse:
		dec.pos++
		return false, nil
	default:
		return false, dec.fail(newErr("DecodeBool", ErrNoMsg))
	}
}

// EncodeNil writes the MessagePack nil tag, 0xc0.
func (enc *Encoder) EncodeNil() error {
	enc.checkLive("EncodeNil")
	if enc.err != nil {
		return enc.err
	}
	dst, err := enc.reserve("EncodeNil", 1)
	if err != nil {
		return err
	}
	dst[0] = mpNil
	return nil
}

// DecodeNil consumes a MessagePack nil tag, 0xc0. Any other tag fails with
// ErrNoMsg.
func (dec *Decoder) DecodeNil() error {
	dec.checkLive("DecodeNil")
	if dec.err != nil {
		return dec.err
	}
	b, err := dec.peekByte("DecodeNil")
	if err != nil {
		return err
	}
	if b != mpNil {
		return dec.fail(newErr("DecodeNil", ErrNoMsg))
	}
	dec.pos++
	return nil
}

// EncodeUint8 writes value using the narrowest MessagePack integer form
// that can represent it (spec.md §4.3).
func (enc *Encoder) EncodeUint8(value uint8) error { return enc.putUint("EncodeUint8", uint64(value)) }

// DecodeUint8 reads a MessagePack integer into a uint8, accepting any wire
// form whose value fits [0, 255].
func (dec *Decoder) DecodeUint8() (uint8, error) {
	v, err := dec.decodeUint("DecodeUint8", uint8Max)
	return uint8(v), err
}

// DecodeUint8Min accepts values v >= low, else ErrRange. low must not be 0.
func (dec *Decoder) DecodeUint8Min(low uint8) (uint8, error) {
	if low == 0 {
		panic("dpack: DecodeUint8Min: low must be > 0")
	}
	v, err := dec.DecodeUint8()
	if err != nil {
		return 0, err
	}
	if v < low {
		return 0, dec.fail(newErr("DecodeUint8Min", ErrRange))
	}
	return v, nil
}

// DecodeUint8Max accepts values v <= high, else ErrRange. high must not be
// uint8's natural maximum, 255.
func (dec *Decoder) DecodeUint8Max(high uint8) (uint8, error) {
	if high == uint8Max {
		panic("dpack: DecodeUint8Max: high must be < 255")
	}
	v, err := dec.DecodeUint8()
	if err != nil {
		return 0, err
	}
	if v > high {
		return 0, dec.fail(newErr("DecodeUint8Max", ErrRange))
	}
	return v, nil
}

// DecodeUint8Range accepts values in [low, high], else ErrRange. Panics if
// low >= high.
func (dec *Decoder) DecodeUint8Range(low, high uint8) (uint8, error) {
	if low >= high {
		panic("dpack: DecodeUint8Range: low must be < high")
	}
	v, err := dec.DecodeUint8()
	if err != nil {
		return 0, err
	}
	if v < low || v > high {
		return 0, dec.fail(newErr("DecodeUint8Range", ErrRange))
	}
	return v, nil
}

// EncodeUint16 writes value using the narrowest MessagePack integer form
// that can represent it.
func (enc *Encoder) EncodeUint16(value uint16) error {
	return enc.putUint("EncodeUint16", uint64(value))
}

// DecodeUint16 reads a MessagePack integer into a uint16, accepting any
// wire form whose value fits [0, 65535].
func (dec *Decoder) DecodeUint16() (uint16, error) {
	v, err := dec.decodeUint("DecodeUint16", uint16Max)
	return uint16(v), err
}

// DecodeUint16Min accepts values v >= low, else ErrRange. low must not be 0.
func (dec *Decoder) DecodeUint16Min(low uint16) (uint16, error) {
	if low == 0 {
		panic("dpack: DecodeUint16Min: low must be > 0")
	}
	v, err := dec.DecodeUint16()
	if err != nil {
		return 0, err
	}
	if v < low {
		return 0, dec.fail(newErr("DecodeUint16Min", ErrRange))
	}
	return v, nil
}

// DecodeUint16Max accepts values v <= high, else ErrRange.
func (dec *Decoder) DecodeUint16Max(high uint16) (uint16, error) {
	if high == uint16Max {
		panic("dpack: DecodeUint16Max: high must be < 65535")
	}
	v, err := dec.DecodeUint16()
	if err != nil {
		return 0, err
	}
	if v > high {
		return 0, dec.fail(newErr("DecodeUint16Max", ErrRange))
	}
	return v, nil
}

// DecodeUint16Range accepts values in [low, high], else ErrRange.
func (dec *Decoder) DecodeUint16Range(low, high uint16) (uint16, error) {
	if low >= high {
		panic("dpack: DecodeUint16Range: low must be < high")
	}
	v, err := dec.DecodeUint16()
	if err != nil {
		return 0, err
	}
	if v < low || v > high {
		return 0, dec.fail(newErr("DecodeUint16Range", ErrRange))
	}
	return v, nil
}

// EncodeUint32 writes value using the narrowest MessagePack integer form
// that can represent it.
func (enc *Encoder) EncodeUint32(value uint32) error {
	return enc.putUint("EncodeUint32", uint64(value))
}

// DecodeUint32 reads a MessagePack integer into a uint32, accepting any
// wire form whose value fits [0, 4294967295].
func (dec *Decoder) DecodeUint32() (uint32, error) {
	v, err := dec.decodeUint("DecodeUint32", uint32Max)
	return uint32(v), err
}

// DecodeUint32Min accepts values v >= low, else ErrRange. low must not be 0.
func (dec *Decoder) DecodeUint32Min(low uint32) (uint32, error) {
	if low == 0 {
		panic("dpack: DecodeUint32Min: low must be > 0")
	}
	v, err := dec.DecodeUint32()
	if err != nil {
		return 0, err
	}
	if v < low {
		return 0, dec.fail(newErr("DecodeUint32Min", ErrRange))
	}
	return v, nil
}

// DecodeUint32Max accepts values v <= high, else ErrRange.
func (dec *Decoder) DecodeUint32Max(high uint32) (uint32, error) {
	if high == uint32Max {
		panic("dpack: DecodeUint32Max: high must be < 4294967295")
	}
	v, err := dec.DecodeUint32()
	if err != nil {
		return 0, err
	}
	if v > high {
		return 0, dec.fail(newErr("DecodeUint32Max", ErrRange))
	}
	return v, nil
}

// DecodeUint32Range accepts values in [low, high], else ErrRange.
func (dec *Decoder) DecodeUint32Range(low, high uint32) (uint32, error) {
	if low >= high {
		panic("dpack: DecodeUint32Range: low must be < high")
	}
	v, err := dec.DecodeUint32()
	if err != nil {
		return 0, err
	}
	if v < low || v > high {
		return 0, dec.fail(newErr("DecodeUint32Range", ErrRange))
	}
	return v, nil
}

// EncodeUint64 writes value using the narrowest MessagePack integer form
// that can represent it.
func (enc *Encoder) EncodeUint64(value uint64) error { return enc.putUint("EncodeUint64", value) }

// DecodeUint64 reads a MessagePack integer into a uint64, accepting any
// wire form whose value fits the full uint64 range.
func (dec *Decoder) DecodeUint64() (uint64, error) {
	return dec.decodeUint("DecodeUint64", uint64Max)
}

// DecodeUint64Min accepts values v >= low, else ErrRange. low must not be 0.
func (dec *Decoder) DecodeUint64Min(low uint64) (uint64, error) {
	if low == 0 {
		panic("dpack: DecodeUint64Min: low must be > 0")
	}
	v, err := dec.DecodeUint64()
	if err != nil {
		return 0, err
	}
	if v < low {
		return 0, dec.fail(newErr("DecodeUint64Min", ErrRange))
	}
	return v, nil
}

// DecodeUint64Max accepts values v <= high, else ErrRange.
func (dec *Decoder) DecodeUint64Max(high uint64) (uint64, error) {
	if high == uint64Max {
		panic("dpack: DecodeUint64Max: high must be < max uint64")
	}
	v, err := dec.DecodeUint64()
	if err != nil {
		return 0, err
	}
	if v > high {
		return 0, dec.fail(newErr("DecodeUint64Max", ErrRange))
	}
	return v, nil
}

// DecodeUint64Range accepts values in [low, high], else ErrRange.
func (dec *Decoder) DecodeUint64Range(low, high uint64) (uint64, error) {
	if low >= high {
		panic("dpack: DecodeUint64Range: low must be < high")
	}
	v, err := dec.DecodeUint64()
	if err != nil {
		return 0, err
	}
	if v < low || v > high {
		return 0, dec.fail(newErr("DecodeUint64Range", ErrRange))
	}
	return v, nil
}

// EncodeInt8 writes value using the narrowest MessagePack integer form
// that can represent it.
func (enc *Encoder) EncodeInt8(value int8) error { return enc.putInt("EncodeInt8", int64(value)) }

// DecodeInt8 reads a MessagePack integer into an int8, accepting any wire
// form whose value fits [-128, 127].
func (dec *Decoder) DecodeInt8() (int8, error) {
	v, err := dec.decodeInt("DecodeInt8", int8Min, int8Max)
	return int8(v), err
}

// DecodeInt8Min accepts values v >= low, else ErrRange. low must not be
// int8's natural minimum, -128.
func (dec *Decoder) DecodeInt8Min(low int8) (int8, error) {
	if low == int8Min {
		panic("dpack: DecodeInt8Min: low must be > -128")
	}
	v, err := dec.DecodeInt8()
	if err != nil {
		return 0, err
	}
	if v < low {
		return 0, dec.fail(newErr("DecodeInt8Min", ErrRange))
	}
	return v, nil
}

// DecodeInt8Max accepts values v <= high, else ErrRange.
func (dec *Decoder) DecodeInt8Max(high int8) (int8, error) {
	if high == int8Max {
		panic("dpack: DecodeInt8Max: high must be < 127")
	}
	v, err := dec.DecodeInt8()
	if err != nil {
		return 0, err
	}
	if v > high {
		return 0, dec.fail(newErr("DecodeInt8Max", ErrRange))
	}
	return v, nil
}

// DecodeInt8Range accepts values in [low, high], else ErrRange.
func (dec *Decoder) DecodeInt8Range(low, high int8) (int8, error) {
	if low >= high {
		panic("dpack: DecodeInt8Range: low must be < high")
	}
	v, err := dec.DecodeInt8()
	if err != nil {
		return 0, err
	}
	if v < low || v > high {
		return 0, dec.fail(newErr("DecodeInt8Range", ErrRange))
	}
	return v, nil
}

// EncodeInt16 writes value using the narrowest MessagePack integer form
// that can represent it.
func (enc *Encoder) EncodeInt16(value int16) error { return enc.putInt("EncodeInt16", int64(value)) }

// DecodeInt16 reads a MessagePack integer into an int16, accepting any
// wire form whose value fits [-32768, 32767].
func (dec *Decoder) DecodeInt16() (int16, error) {
	v, err := dec.decodeInt("DecodeInt16", int16Min, int16Max)
	return int16(v), err
}

// DecodeInt16Min accepts values v >= low, else ErrRange.
func (dec *Decoder) DecodeInt16Min(low int16) (int16, error) {
	if low == int16Min {
		panic("dpack: DecodeInt16Min: low must be > -32768")
	}
	v, err := dec.DecodeInt16()
	if err != nil {
		return 0, err
	}
	if v < low {
		return 0, dec.fail(newErr("DecodeInt16Min", ErrRange))
	}
	return v, nil
}

// DecodeInt16Max accepts values v <= high, else ErrRange.
func (dec *Decoder) DecodeInt16Max(high int16) (int16, error) {
	if high == int16Max {
		panic("dpack: DecodeInt16Max: high must be < 32767")
	}
	v, err := dec.DecodeInt16()
	if err != nil {
		return 0, err
	}
	if v > high {
		return 0, dec.fail(newErr("DecodeInt16Max", ErrRange))
	}
	return v, nil
}

// DecodeInt16Range accepts values in [low, high], else ErrRange.
func (dec *Decoder) DecodeInt16Range(low, high int16) (int16, error) {
	if low >= high {
		panic("dpack: DecodeInt16Range: low must be < high")
	}
	v, err := dec.DecodeInt16()
	if err != nil {
		return 0, err
	}
	if v < low || v > high {
		return 0, dec.fail(newErr("DecodeInt16Range", ErrRange))
	}
	return v, nil
}

// EncodeInt32 writes value using the narrowest MessagePack integer form
// that can represent it.
func (enc *Encoder) EncodeInt32(value int32) error { return enc.putInt("EncodeInt32", int64(value)) }

// DecodeInt32 reads a MessagePack integer into an int32, accepting any
// wire form whose value fits [-2147483648, 2147483647].
func (dec *Decoder) DecodeInt32() (int32, error) {
	v, err := dec.decodeInt("DecodeInt32", int32Min, int32Max)
	return int32(v), err
}

// DecodeInt32Min accepts values v >= low, else ErrRange.
func (dec *Decoder) DecodeInt32Min(low int32) (int32, error) {
	if low == int32Min {
		panic("dpack: DecodeInt32Min: low must be > -2147483648")
	}
	v, err := dec.DecodeInt32()
	if err != nil {
		return 0, err
	}
	if v < low {
		return 0, dec.fail(newErr("DecodeInt32Min", ErrRange))
	}
	return v, nil
}

// DecodeInt32Max accepts values v <= high, else ErrRange.
func (dec *Decoder) DecodeInt32Max(high int32) (int32, error) {
	if high == int32Max {
		panic("dpack: DecodeInt32Max: high must be < 2147483647")
	}
	v, err := dec.DecodeInt32()
	if err != nil {
		return 0, err
	}
	if v > high {
		return 0, dec.fail(newErr("DecodeInt32Max", ErrRange))
	}
	return v, nil
}

// DecodeInt32Range accepts values in [low, high], else ErrRange.
func (dec *Decoder) DecodeInt32Range(low, high int32) (int32, error) {
	if low >= high {
		panic("dpack: DecodeInt32Range: low must be < high")
	}
	v, err := dec.DecodeInt32()
	if err != nil {
		return 0, err
	}
	if v < low || v > high {
		return 0, dec.fail(newErr("DecodeInt32Range", ErrRange))
	}
	return v, nil
}

// EncodeInt64 writes value using the narrowest MessagePack integer form
// that can represent it.
func (enc *Encoder) EncodeInt64(value int64) error { return enc.putInt("EncodeInt64", value) }

// DecodeInt64 reads a MessagePack integer into an int64, accepting any
// wire form whose value fits the full int64 range.
func (dec *Decoder) DecodeInt64() (int64, error) {
	return dec.decodeInt("DecodeInt64", int64Min, int64Max)
}

// DecodeInt64Min accepts values v >= low, else ErrRange.
func (dec *Decoder) DecodeInt64Min(low int64) (int64, error) {
	if low == int64Min {
		panic("dpack: DecodeInt64Min: low must be > math.MinInt64")
	}
	v, err := dec.DecodeInt64()
	if err != nil {
		return 0, err
	}
	if v < low {
		return 0, dec.fail(newErr("DecodeInt64Min", ErrRange))
	}
	return v, nil
}

// DecodeInt64Max accepts values v <= high, else ErrRange.
func (dec *Decoder) DecodeInt64Max(high int64) (int64, error) {
	if high == int64Max {
		panic("dpack: DecodeInt64Max: high must be < math.MaxInt64")
	}
	v, err := dec.DecodeInt64()
	if err != nil {
		return 0, err
	}
	if v > high {
		return 0, dec.fail(newErr("DecodeInt64Max", ErrRange))
	}
	return v, nil
}

// DecodeInt64Range accepts values in [low, high], else ErrRange.
func (dec *Decoder) DecodeInt64Range(low, high int64) (int64, error) {
	if low >= high {
		panic("dpack: DecodeInt64Range: low must be < high")
	}
	v, err := dec.DecodeInt64()
	if err != nil {
		return 0, err
	}
	if v < low || v > high {
		return 0, dec.fail(newErr("DecodeInt64Range", ErrRange))
	}
	return v, nil
}

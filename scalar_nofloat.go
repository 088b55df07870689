// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

//go:build dpack_nofloat

package dpack

// Size, in bytes, of an encoded float32/float64. Kept defined even when
// float support is compiled out so callers' pre-flight capacity
// arithmetic still compiles.
const (
	Float32Size = 5
	Float64Size = 9
)

// EncodeFloat32 always fails with ErrNotSupported in a build compiled
// with the dpack_nofloat tag (spec.md §9, open question (b): float
// support is a compile-time feature, not a runtime one).
func (enc *Encoder) EncodeFloat32(float32) error {
	enc.checkLive("EncodeFloat32")
	if enc.err != nil {
		return enc.err
	}
	return enc.fail(newErr("EncodeFloat32", ErrNotSupported))
}

// DecodeFloat32 always fails with ErrNotSupported in a dpack_nofloat build.
func (dec *Decoder) DecodeFloat32() (float32, error) {
	dec.checkLive("DecodeFloat32")
	if dec.err != nil {
		return 0, dec.err
	}
	return 0, dec.fail(newErr("DecodeFloat32", ErrNotSupported))
}

// DecodeFloat32Min always fails with ErrNotSupported in a dpack_nofloat build.
func (dec *Decoder) DecodeFloat32Min(float32) (float32, error) { return dec.DecodeFloat32() }

// DecodeFloat32Max always fails with ErrNotSupported in a dpack_nofloat build.
func (dec *Decoder) DecodeFloat32Max(float32) (float32, error) { return dec.DecodeFloat32() }

// DecodeFloat32Range always fails with ErrNotSupported in a dpack_nofloat build.
func (dec *Decoder) DecodeFloat32Range(_, _ float32) (float32, error) { return dec.DecodeFloat32() }

// EncodeFloat64 always fails with ErrNotSupported in a dpack_nofloat build.
func (enc *Encoder) EncodeFloat64(float64) error {
	enc.checkLive("EncodeFloat64")
	if enc.err != nil {
		return enc.err
	}
	return enc.fail(newErr("EncodeFloat64", ErrNotSupported))
}

// DecodeFloat64 always fails with ErrNotSupported in a dpack_nofloat build.
func (dec *Decoder) DecodeFloat64() (float64, error) {
	dec.checkLive("DecodeFloat64")
	if dec.err != nil {
		return 0, dec.err
	}
	return 0, dec.fail(newErr("DecodeFloat64", ErrNotSupported))
}

// DecodeFloat64Min always fails with ErrNotSupported in a dpack_nofloat build.
func (dec *Decoder) DecodeFloat64Min(float64) (float64, error) { return dec.DecodeFloat64() }

// DecodeFloat64Max always fails with ErrNotSupported in a dpack_nofloat build.
func (dec *Decoder) DecodeFloat64Max(float64) (float64, error) { return dec.DecodeFloat64() }

// DecodeFloat64Range always fails with ErrNotSupported in a dpack_nofloat build.
func (dec *Decoder) DecodeFloat64Range(_, _ float64) (float64, error) { return dec.DecodeFloat64() }

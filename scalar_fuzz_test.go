// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package dpack_test

import (
	"testing"

	"github.com/creachadair/dpack"
)

// FuzzDecodeInt64RoundTrip exercises the encode/decode round trip (P1)
// across arbitrary int64 inputs, standing in for the fuzzer driver
// collaborator spec.md §1 scopes out of the core.
func FuzzDecodeInt64RoundTrip(f *testing.F) {
	for _, seed := range []int64{0, 1, -1, 127, -32, -128, 128, 32767, -32768, 2147483647, -2147483648} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, v int64) {
		buf := make([]byte, dpack.Int64SizeMax)
		var enc dpack.Encoder
		enc.Init(buf)
		if err := enc.EncodeInt64(v); err != nil {
			t.Fatalf("EncodeInt64(%d): %v", v, err)
		}

		var dec dpack.Decoder
		dec.Init(buf[:enc.SpaceUsed()])
		got, err := dec.DecodeInt64()
		if err != nil {
			t.Fatalf("DecodeInt64: %v", err)
		}
		if got != v {
			t.Fatalf("DecodeInt64: got %d, want %d", got, v)
		}
		if dec.DataLeft() != 0 {
			t.Fatalf("DataLeft: got %d, want 0", dec.DataLeft())
		}
	})
}

// FuzzDecodeTagNeverPanics feeds arbitrary bytes to the decoder and
// requires that every public decode operation either succeeds or returns
// an error -- never panics on malformed input (only programming-contract
// violations from the caller may panic).
func FuzzDecodeTagNeverPanics(f *testing.F) {
	f.Add([]byte{0xc1})
	f.Add([]byte{0xcf, 0x00})
	f.Add([]byte{0xcb, 0x7f, 0xf8, 0, 0, 0, 0, 0, 0})
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) == 0 {
			return
		}
		var dec dpack.Decoder
		dec.Init(data)
		dec.DecodeUint64()
		dec.Fini()

		var dec2 dpack.Decoder
		dec2.Init(data)
		dec2.DecodeInt64()
		dec2.Fini()

		var dec3 dpack.Decoder
		dec3.Init(data)
		dec3.DecodeFloat64()
		dec3.Fini()
	})
}

// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package tagframe_test

import (
	"bytes"
	"testing"

	"github.com/creachadair/dpack"
	"github.com/creachadair/dpack/tagframe"
)

func TestArrayHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		n    int
		want []byte
	}{
		{0, []byte{0x90}},
		{15, []byte{0x9f}},
		{16, []byte{0xdc, 0x00, 0x10}},
		{65535, []byte{0xdc, 0xff, 0xff}},
		{65536, []byte{0xdd, 0x00, 0x01, 0x00, 0x00}},
	}
	for _, test := range tests {
		buf := make([]byte, 8)
		var enc dpack.Encoder
		enc.Init(buf)
		if err := tagframe.WriteArrayHeader(&enc, test.n); err != nil {
			t.Fatalf("WriteArrayHeader(%d): %v", test.n, err)
		}
		got := buf[:enc.SpaceUsed()]
		if !bytes.Equal(got, test.want) {
			t.Errorf("WriteArrayHeader(%d): got % x, want % x", test.n, got, test.want)
		}

		var dec dpack.Decoder
		dec.Init(got)
		n, err := tagframe.ReadArrayHeader(&dec)
		if err != nil {
			t.Fatalf("ReadArrayHeader: %v", err)
		}
		if n != test.n {
			t.Errorf("ReadArrayHeader: got %d, want %d", n, test.n)
		}
	}
}

func TestMapHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	var enc dpack.Encoder
	enc.Init(buf)
	if err := tagframe.WriteMapHeader(&enc, 3); err != nil {
		t.Fatalf("WriteMapHeader: %v", err)
	}
	got := buf[:enc.SpaceUsed()]
	if !bytes.Equal(got, []byte{0x83}) {
		t.Errorf("WriteMapHeader(3): got % x, want 83", got)
	}

	var dec dpack.Decoder
	dec.Init(got)
	n, err := tagframe.ReadMapHeader(&dec)
	if err != nil {
		t.Fatalf("ReadMapHeader: %v", err)
	}
	if n != 3 {
		t.Errorf("ReadMapHeader: got %d, want 3", n)
	}
}

func TestArrayOfScalars(t *testing.T) {
	values := []int32{1, -2, 300, -40000}
	buf := make([]byte, 64)
	var enc dpack.Encoder
	enc.Init(buf)
	if err := tagframe.WriteArrayHeader(&enc, len(values)); err != nil {
		t.Fatalf("WriteArrayHeader: %v", err)
	}
	for _, v := range values {
		if err := enc.EncodeInt32(v); err != nil {
			t.Fatalf("EncodeInt32(%d): %v", v, err)
		}
	}

	var dec dpack.Decoder
	dec.Init(buf[:enc.SpaceUsed()])
	n, err := tagframe.ReadArrayHeader(&dec)
	if err != nil {
		t.Fatalf("ReadArrayHeader: %v", err)
	}
	if n != len(values) {
		t.Fatalf("ReadArrayHeader: got %d, want %d", n, len(values))
	}
	for i := 0; i < n; i++ {
		v, err := dec.DecodeInt32()
		if err != nil {
			t.Fatalf("DecodeInt32[%d]: %v", i, err)
		}
		if v != values[i] {
			t.Errorf("DecodeInt32[%d]: got %d, want %d", i, v, values[i])
		}
	}
}

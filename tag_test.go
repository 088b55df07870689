// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package dpack_test

import (
	"errors"
	"testing"

	"github.com/creachadair/dpack"
)

func TestDecodeRejectsNeverUsedByte(t *testing.T) {
	// 0xc1 is reserved and never assigned a meaning by the MessagePack
	// specification; any attempt to decode it is a malformed stream.
	var dec dpack.Decoder
	dec.Init([]byte{0xc1})
	if _, err := dec.DecodeInt64(); !errors.Is(err, dpack.ErrProto) {
		t.Errorf("DecodeInt64(0xc1): got %v, want ErrProto", err)
	}
}

func TestDecodeIntRejectsContainerTag(t *testing.T) {
	// 0x90 is a fixarray tag of length 0: a valid MessagePack tag, but not
	// one the core's integer family handles, so it reports ErrNoMsg rather
	// than ErrProto (spec.md §4.2).
	var dec dpack.Decoder
	dec.Init([]byte{0x90})
	if _, err := dec.DecodeInt64(); !errors.Is(err, dpack.ErrNoMsg) {
		t.Errorf("DecodeInt64(0x90): got %v, want ErrNoMsg", err)
	}
}

func TestReadTagAdvancesCursor(t *testing.T) {
	var dec dpack.Decoder
	dec.Init([]byte{0xc3, 0x01})
	b, err := dec.ReadTag()
	if err != nil {
		t.Fatalf("ReadTag: %v", err)
	}
	if b != 0xc3 {
		t.Errorf("ReadTag: got %#x, want 0xc3", b)
	}
	if dec.DataLeft() != 1 {
		t.Errorf("DataLeft after ReadTag: got %d, want 1", dec.DataLeft())
	}
}

func TestWriteTagAdvancesCursor(t *testing.T) {
	var enc dpack.Encoder
	buf := make([]byte, 2)
	enc.Init(buf)
	if err := enc.WriteTag(0x90); err != nil {
		t.Fatalf("WriteTag: %v", err)
	}
	if enc.SpaceUsed() != 1 {
		t.Errorf("SpaceUsed: got %d, want 1", enc.SpaceUsed())
	}
	if buf[0] != 0x90 {
		t.Errorf("buffer: got %#x, want 0x90", buf[0])
	}
}

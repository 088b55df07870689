// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package dpack_test

import (
	"errors"
	"testing"

	"github.com/creachadair/dpack"
)

func TestEncoderLifecycle(t *testing.T) {
	var enc dpack.Encoder
	buf := make([]byte, 4)
	enc.Init(buf)
	if got := enc.SpaceLeft(); got != 4 {
		t.Errorf("SpaceLeft: got %d, want 4", got)
	}
	if err := enc.EncodeUint8(1); err != nil {
		t.Fatalf("EncodeUint8: unexpected error: %v", err)
	}
	if got := enc.SpaceUsed(); got != 1 {
		t.Errorf("SpaceUsed: got %d, want 1", got)
	}
	enc.Fini()
	enc.Fini() // idempotent
}

func TestEncoderInitPanicsOnEmptyBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Init(nil): expected panic, got none")
		}
	}()
	var enc dpack.Encoder
	enc.Init(nil)
}

func TestEncoderUninitializedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("SpaceUsed on fresh encoder: expected panic, got none")
		}
	}()
	var enc dpack.Encoder
	enc.SpaceUsed()
}

func TestEncoderUseAfterFiniPanics(t *testing.T) {
	var enc dpack.Encoder
	enc.Init(make([]byte, 1))
	enc.Fini()
	defer func() {
		if recover() == nil {
			t.Fatal("EncodeBool after Fini: expected panic, got none")
		}
	}()
	enc.EncodeBool(true)
}

func TestDecoderLifecycle(t *testing.T) {
	var dec dpack.Decoder
	dec.Init([]byte{0x01, 0x02})
	if got := dec.DataLeft(); got != 2 {
		t.Errorf("DataLeft: got %d, want 2", got)
	}
	if _, err := dec.DecodeUint8(); err != nil {
		t.Fatalf("DecodeUint8: unexpected error: %v", err)
	}
	if got := dec.DataLeft(); got != 1 {
		t.Errorf("DataLeft after one decode: got %d, want 1", got)
	}
	if got := dec.Unused(); got != 1 {
		t.Errorf("Unused: got %d, want 1", got)
	}
	dec.Fini()
	dec.Fini() // idempotent
}

// TestErrorStickiness verifies property P5: after any operation latches an
// error, every subsequent operation returns the same error and the cursor
// does not move.
func TestErrorStickiness(t *testing.T) {
	var enc dpack.Encoder
	enc.Init(make([]byte, 2)) // room for exactly one uint8 (tag + payload)

	if err := enc.EncodeUint8(200); err != nil { // 2 bytes: tag + payload
		t.Fatalf("EncodeUint8(200): unexpected error: %v", err)
	}
	firstErr := enc.EncodeUint8(1) // no room left
	if firstErr == nil {
		t.Fatal("EncodeUint8: expected error on full buffer, got nil")
	}
	if !errors.Is(firstErr, dpack.ErrMsgSize) {
		t.Errorf("EncodeUint8: got %v, want ErrMsgSize", firstErr)
	}
	usedAfterFail := enc.SpaceUsed()

	secondErr := enc.EncodeBool(true)
	if secondErr != firstErr && secondErr.Error() != firstErr.Error() {
		t.Errorf("latched error changed: first=%v second=%v", firstErr, secondErr)
	}
	if enc.SpaceUsed() != usedAfterFail {
		t.Errorf("cursor moved after latched error: got %d, want %d", enc.SpaceUsed(), usedAfterFail)
	}
	if enc.Err() == nil {
		t.Error("Err() returned nil after a failed operation")
	}
}

func TestDecoderErrorStickiness(t *testing.T) {
	var dec dpack.Decoder
	dec.Init([]byte{0xcc}) // uint8 tag with no payload byte

	_, err := dec.DecodeUint8()
	if !errors.Is(err, dpack.ErrNoData) {
		t.Fatalf("DecodeUint8: got %v, want ErrNoData", err)
	}
	posAfterFail := dec.DataLeft()

	_, err2 := dec.DecodeUint8()
	if err2.Error() != err.Error() {
		t.Errorf("latched error changed: first=%v second=%v", err, err2)
	}
	if dec.DataLeft() != posAfterFail {
		t.Errorf("cursor moved after latched error: got %d, want %d", dec.DataLeft(), posAfterFail)
	}
}

func TestDecodeEmptyBuffer(t *testing.T) {
	var dec dpack.Decoder
	dec.Init([]byte{0x00}) // Init requires a non-empty slice; consume its one byte
	if _, err := dec.DecodeUint8(); err != nil {
		t.Fatalf("DecodeUint8: unexpected error: %v", err)
	}
	if _, err := dec.DecodeUint8(); !errors.Is(err, dpack.ErrNoData) {
		t.Errorf("DecodeUint8 past end: got %v, want ErrNoData", err)
	}
}

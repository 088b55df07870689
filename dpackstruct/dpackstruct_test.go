// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package dpackstruct_test

import (
	"testing"

	"github.com/creachadair/dpack/dpackstruct"
	"github.com/google/go-cmp/cmp"
)

type reading struct {
	Celsius float64 `dpack:"tag=1"`
	Valid   bool    `dpack:"tag=2"`
}

type thing struct {
	Count    int32    `dpack:"tag=10"`
	Readings []reading `dpack:"tag=30"`
	Latest   *reading `dpack:"tag=20"`
	Hot      bool     `dpack:"tag=70"`
	Tallies  []int32  `dpack:"tag=40"`
}

func TestMarshalRoundTrip(t *testing.T) {
	in := &thing{
		Count: 7,
		Readings: []reading{
			{Celsius: 20.5, Valid: true},
			{Celsius: -4, Valid: false},
		},
		Latest:  &reading{Celsius: 99.9, Valid: true},
		Hot:     true,
		Tallies: []int32{17, 69, 1814, 1918, 1936},
	}

	bits, err := dpackstruct.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	t.Logf("Marshal OK, output is %d bytes", len(bits))

	out := new(thing)
	if err := dpackstruct.Unmarshal(bits, out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("Unmarshal output differs (-want, +got):\n%s", diff)
	}
}

func TestMarshalSkipsZeroFields(t *testing.T) {
	in := &thing{Count: 0, Hot: false}
	bits, err := dpackstruct.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// An entirely zero-valued struct encodes as an empty map.
	if len(bits) != 1 || bits[0] != 0x80 {
		t.Errorf("Marshal of zero struct: got % x, want 80", bits)
	}
}

func TestMarshalMap(t *testing.T) {
	in := map[uint8]int32{1: 100, 2: 200, 3: 300}
	bits, err := dpackstruct.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var out map[uint8]int32
	if err := dpackstruct.Unmarshal(bits, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("Unmarshal output differs (-want, +got):\n%s", diff)
	}
}

func TestUnmarshalSkipsUnknownField(t *testing.T) {
	type narrow struct {
		A int32 `dpack:"tag=1"`
	}
	type wide struct {
		A int32 `dpack:"tag=1"`
		B int32 `dpack:"tag=2"`
	}
	bits, err := dpackstruct.Marshal(&wide{A: 1, B: 2})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var out narrow
	if err := dpackstruct.Unmarshal(bits, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out.A != 1 {
		t.Errorf("Unmarshal: got A=%d, want 1", out.A)
	}
}

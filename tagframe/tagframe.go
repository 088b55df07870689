// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package tagframe implements MessagePack array and map framing atop a
// dpack Encoder/Decoder pair.
//
// dpack's core deliberately knows nothing about collections (spec.md §1):
// it encodes and decodes scalars only. tagframe is the collaborator that
// consumes the core through its tag hooks (WriteTag/ReadTag, WriteRaw/
// ReadRaw) to add fixarray/array16/array32 and
// fixmap/map16/map32 headers, generalizing the cascade the teacher library
// (creachadair/binpack) uses for its own tag-value framing onto the
// MessagePack container tag family.
package tagframe

import (
	"encoding/binary"
	"fmt"

	"github.com/creachadair/dpack"
)

// Container tag bytes, named after the MessagePack specification (and the
// byte values the hashicorp/go-msgpack codec driver uses for the same
// families).
const (
	fixArrayMin byte = 0x90
	fixArrayMax byte = 0x9f
	array16     byte = 0xdc
	array32     byte = 0xdd

	fixMapMin byte = 0x80
	fixMapMax byte = 0x8f
	map16     byte = 0xde
	map32     byte = 0xdf
)

const (
	fixCutoff  = 16
	max16Count = 1<<16 - 1
)

// WriteArrayHeader writes a MessagePack array header for an array of n
// elements, choosing the narrowest header form that can represent n, in
// keeping with the core's minimal-encoding policy (spec.md I5). The
// caller is responsible for encoding the n elements that follow.
func WriteArrayHeader(enc *dpack.Encoder, n int) error {
	return writeContainerHeader(enc, n, fixArrayMin, array16, array32)
}

// ReadArrayHeader reads a MessagePack array header and returns the number
// of elements the caller should expect to decode next.
func ReadArrayHeader(dec *dpack.Decoder) (int, error) {
	return readContainerHeader(dec, fixArrayMin, fixArrayMax, array16, array32)
}

// WriteMapHeader writes a MessagePack map header for a map of n entries.
// The caller is responsible for encoding the n key/value pairs that
// follow, each as a pair of scalar or nested-container values.
func WriteMapHeader(enc *dpack.Encoder, n int) error {
	return writeContainerHeader(enc, n, fixMapMin, map16, map32)
}

// ReadMapHeader reads a MessagePack map header and returns the number of
// key/value entries the caller should expect to decode next.
func ReadMapHeader(dec *dpack.Decoder) (int, error) {
	return readContainerHeader(dec, fixMapMin, fixMapMax, map16, map32)
}

func writeContainerHeader(enc *dpack.Encoder, n int, fixMin, wide16, wide32 byte) error {
	switch {
	case n < 0:
		return fmt.Errorf("tagframe: negative container length %d", n)
	case n < fixCutoff:
		return enc.WriteTag(fixMin | byte(n))
	case n <= max16Count:
		if err := enc.WriteTag(wide16); err != nil {
			return err
		}
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], uint16(n))
		return enc.WriteRaw(buf[:])
	default:
		if err := enc.WriteTag(wide32); err != nil {
			return err
		}
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], uint32(n))
		return enc.WriteRaw(buf[:])
	}
}

func readContainerHeader(dec *dpack.Decoder, fixMin, fixMax, wide16, wide32 byte) (int, error) {
	b, err := dec.ReadTag()
	if err != nil {
		return 0, err
	}
	switch {
	case b >= fixMin && b <= fixMax:
		return int(b - fixMin), nil
	case b == wide16:
		p, err := dec.ReadRaw(2)
		if err != nil {
			return 0, err
		}
		return int(binary.BigEndian.Uint16(p)), nil
	case b == wide32:
		p, err := dec.ReadRaw(4)
		if err != nil {
			return 0, err
		}
		return int(binary.BigEndian.Uint32(p)), nil
	default:
		return 0, fmt.Errorf("tagframe: tag %#x is not a container header", b)
	}
}

// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Command dpackdump reads a file containing a single dpack-encoded
// MessagePack value and prints a human-readable listing of its tags and
// values to stdout.
//
// This is the reference CLI driver collaborator spec.md §1 scopes out of
// the core ("fuzzer and sample drivers" are explicitly listed as external
// collaborators); it is built entirely on the core's exported Decoder
// surface (ReadTag/ReadRaw), never reaching into package-internal state.
// It decodes array and map headers itself rather than through the
// tagframe package.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/creachadair/dpack"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dpackdump: ")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}
	if len(data) == 0 {
		log.Fatal("empty input file")
	}

	var dec dpack.Decoder
	dec.Init(data)
	if err := dump(&dec, os.Stdout, 0); err != nil {
		log.Fatalf("dump: %v", err)
	}
}

// dump prints one encoded value at dec's cursor, recursing into arrays
// and maps, indenting nested values by depth.
func dump(dec *dpack.Decoder, w *os.File, depth int) error {
	b, err := dec.ReadTag()
	if err != nil {
		return err
	}
	indent := func() { fmt.Fprint(w, prefixOf(depth)) }

	switch {
	case b <= 0x7f:
		indent()
		fmt.Fprintf(w, "uint %d\n", b)
		return nil
	case b >= 0xe0:
		indent()
		fmt.Fprintf(w, "int %d\n", int8(b))
		return nil
	case b == 0xc0:
		indent()
		fmt.Fprintln(w, "nil")
		return nil
	case b == 0xc2, b == 0xc3:
		indent()
		fmt.Fprintf(w, "bool %t\n", b == 0xc3)
		return nil
	case b == 0xcc, b == 0xcd, b == 0xce, b == 0xcf:
		v, err := readUint(dec, b)
		if err != nil {
			return err
		}
		indent()
		fmt.Fprintf(w, "uint %d\n", v)
		return nil
	case b == 0xd0, b == 0xd1, b == 0xd2, b == 0xd3:
		v, err := readInt(dec, b)
		if err != nil {
			return err
		}
		indent()
		fmt.Fprintf(w, "int %d\n", v)
		return nil
	case b == 0xca:
		p, err := dec.ReadRaw(4)
		if err != nil {
			return err
		}
		indent()
		fmt.Fprintf(w, "float32 %d (bits)\n", binary.BigEndian.Uint32(p))
		return nil
	case b == 0xcb:
		p, err := dec.ReadRaw(8)
		if err != nil {
			return err
		}
		indent()
		fmt.Fprintf(w, "float64 %d (bits)\n", binary.BigEndian.Uint64(p))
		return nil
	case b >= 0x90 && b <= 0x9f:
		return dumpArray(dec, w, depth, int(b-0x90))
	case b == 0xdc:
		p, err := dec.ReadRaw(2)
		if err != nil {
			return err
		}
		return dumpArray(dec, w, depth, int(binary.BigEndian.Uint16(p)))
	case b == 0xdd:
		p, err := dec.ReadRaw(4)
		if err != nil {
			return err
		}
		return dumpArray(dec, w, depth, int(binary.BigEndian.Uint32(p)))
	case b >= 0x80 && b <= 0x8f:
		return dumpMap(dec, w, depth, int(b-0x80))
	case b == 0xde:
		p, err := dec.ReadRaw(2)
		if err != nil {
			return err
		}
		return dumpMap(dec, w, depth, int(binary.BigEndian.Uint16(p)))
	case b == 0xdf:
		p, err := dec.ReadRaw(4)
		if err != nil {
			return err
		}
		return dumpMap(dec, w, depth, int(binary.BigEndian.Uint32(p)))
	default:
		return fmt.Errorf("tag %#x is not a scalar or container this dumper understands", b)
	}
}

func dumpArray(dec *dpack.Decoder, w *os.File, depth, n int) error {
	fmt.Fprintf(w, "%sarray[%d]\n", prefixOf(depth), n)
	for i := 0; i < n; i++ {
		if err := dump(dec, w, depth+1); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func dumpMap(dec *dpack.Decoder, w *os.File, depth, n int) error {
	fmt.Fprintf(w, "%smap[%d]\n", prefixOf(depth), n)
	for i := 0; i < n; i++ {
		if err := dump(dec, w, depth+1); err != nil {
			return fmt.Errorf("key %d: %w", i, err)
		}
		if err := dump(dec, w, depth+1); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	return nil
}

func readUint(dec *dpack.Decoder, tag byte) (uint64, error) {
	n := map[byte]int{0xcc: 1, 0xcd: 2, 0xce: 4, 0xcf: 8}[tag]
	p, err := dec.ReadRaw(n)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, b := range p {
		v = v<<8 | uint64(b)
	}
	return v, nil
}

func readInt(dec *dpack.Decoder, tag byte) (int64, error) {
	n := map[byte]int{0xd0: 1, 0xd1: 2, 0xd2: 4, 0xd3: 8}[tag]
	p, err := dec.ReadRaw(n)
	if err != nil {
		return 0, err
	}
	v := int64(int8(p[0]))
	for _, b := range p[1:] {
		v = v<<8 | int64(b)
	}
	return v, nil
}

func prefixOf(depth int) string {
	out := make([]byte, depth*2)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}

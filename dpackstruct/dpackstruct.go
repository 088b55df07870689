// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package dpackstruct implements a struct-tag-driven Marshal/Unmarshal
// pair on top of the dpack scalar core and the tagframe container
// collaborator.
//
// This is the Go analogue of the "sample map object" the dpack C original
// ships alongside its core (original_source/sample/map_sample.c): a
// tagged-field struct, encoded as a MessagePack map whose integer keys are
// the field tags. spec.md explicitly excludes this kind of object from
// the core ("the sample map object... is explicitly excluded -- it is a
// consumer of the core"); dpackstruct lives at exactly that boundary,
// generalizing the field-tag reflection of the teacher library's own
// marshal.go/unmarshal.go (the `binpack:"tag=n"` struct tag) onto dpack's
// MessagePack wire format instead of binpack's custom one.
//
// dpackstruct handles the scalar field types the core supports -- bool,
// the fixed-width integers, float32/float64 -- plus slices and nested
// structs built from them. It does not handle strings or extension data:
// those types are out of scope for the whole of this module, not just its
// core (spec.md §1), so dpackstruct has no encoding for them (see
// DESIGN.md). A []byte is treated like any other slice and encoded as a
// MessagePack array of uint8 values, not as a MessagePack bin value.
package dpackstruct

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/creachadair/dpack"
	"github.com/creachadair/dpack/tagframe"
)

// A Marshaler encodes a value as a sequence of dpack/tagframe operations
// against enc, in place of the package's reflection-based default.
type Marshaler interface {
	MarshalDpack(enc *dpack.Encoder) error
}

// An Unmarshaler decodes a value from a sequence of dpack/tagframe
// operations against dec, in place of the package's reflection-based
// default.
type Unmarshaler interface {
	UnmarshalDpack(dec *dpack.Decoder) error
}

// Marshal encodes v into a new buffer. If v implements Marshaler, its
// MarshalDpack method is used; otherwise v is encoded by reflection.
//
// For struct types, Marshal uses the "dpack" field tag to select which
// exported fields to include and to assign them map keys:
//
//	dpack:"tag=n"
//
// Fields without a "dpack" tag are skipped. A struct is encoded as a
// MessagePack map from tag to field value; zero-valued fields are
// omitted, mirroring the "optional field" bitmap of the C original's
// sample map object.
func Marshal(v interface{}) ([]byte, error) {
	size := 64
	for {
		buf := make([]byte, size)
		var enc dpack.Encoder
		enc.Init(buf)
		err := marshalValue(&enc, reflect.ValueOf(v))
		if err == nil {
			return buf[:enc.SpaceUsed()], nil
		}
		if errors.Is(err, dpack.ErrMsgSize) {
			size *= 2
			continue
		}
		return nil, err
	}
}

func marshalValue(enc *dpack.Encoder, val reflect.Value) error {
	if m, ok := asMarshaler(val); ok {
		return m.MarshalDpack(enc)
	}
	if !val.IsValid() {
		return enc.EncodeNil()
	}
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface:
		if val.IsNil() {
			return enc.EncodeNil()
		}
		return marshalValue(enc, val.Elem())
	case reflect.Bool:
		return enc.EncodeBool(val.Bool())
	case reflect.Int8:
		return enc.EncodeInt8(int8(val.Int()))
	case reflect.Int16:
		return enc.EncodeInt16(int16(val.Int()))
	case reflect.Int32:
		return enc.EncodeInt32(int32(val.Int()))
	case reflect.Int, reflect.Int64:
		return enc.EncodeInt64(val.Int())
	case reflect.Uint8:
		return enc.EncodeUint8(uint8(val.Uint()))
	case reflect.Uint16:
		return enc.EncodeUint16(uint16(val.Uint()))
	case reflect.Uint32:
		return enc.EncodeUint32(uint32(val.Uint()))
	case reflect.Uint, reflect.Uint64:
		return enc.EncodeUint64(val.Uint())
	case reflect.Float32:
		return enc.EncodeFloat32(float32(val.Float()))
	case reflect.Float64:
		return enc.EncodeFloat64(val.Float())
	case reflect.Slice, reflect.Array:
		return marshalSlice(enc, val)
	case reflect.Map:
		return marshalMap(enc, val)
	case reflect.Struct:
		return marshalStruct(enc, val)
	default:
		return fmt.Errorf("dpackstruct: type %s cannot be marshaled", val.Type())
	}
}

func marshalSlice(enc *dpack.Encoder, val reflect.Value) error {
	n := val.Len()
	if err := tagframe.WriteArrayHeader(enc, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := marshalValue(enc, val.Index(i)); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	return nil
}

func marshalMap(enc *dpack.Encoder, val reflect.Value) error {
	keys := val.MapKeys()
	if err := tagframe.WriteMapHeader(enc, len(keys)); err != nil {
		return err
	}
	sortMapKeys(keys)
	for _, key := range keys {
		if err := marshalValue(enc, key); err != nil {
			return fmt.Errorf("map key: %w", err)
		}
		if err := marshalValue(enc, val.MapIndex(key)); err != nil {
			return fmt.Errorf("map value: %w", err)
		}
	}
	return nil
}

// sortMapKeys orders map keys deterministically when they are one of the
// scalar kinds dpackstruct supports, so that repeated marshaling of the
// same map produces identical bytes. Non-scalar keys are left in
// reflect.Value.MapKeys order.
func sortMapKeys(keys []reflect.Value) {
	if len(keys) == 0 {
		return
	}
	switch keys[0].Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Int() < keys[j].Int() })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Uint() < keys[j].Uint() })
	}
}

func marshalStruct(enc *dpack.Encoder, val reflect.Value) error {
	fields, err := fieldsOf(val.Type())
	if err != nil {
		return err
	}
	var present []fieldInfo
	for _, fi := range fields {
		if !val.Field(fi.index).IsZero() {
			present = append(present, fi)
		}
	}
	if err := tagframe.WriteMapHeader(enc, len(present)); err != nil {
		return err
	}
	for _, fi := range present {
		if err := enc.EncodeUint32(uint32(fi.tag)); err != nil {
			return err
		}
		if err := marshalValue(enc, val.Field(fi.index)); err != nil {
			return fmt.Errorf("field %q: %w", fi.name, err)
		}
	}
	return nil
}

func asMarshaler(val reflect.Value) (Marshaler, bool) {
	if !val.IsValid() {
		return nil, false
	}
	if val.CanInterface() {
		if m, ok := val.Interface().(Marshaler); ok {
			return m, true
		}
	}
	return nil, false
}

// Unmarshal decodes data into v, which must be a non-nil pointer. If v
// implements Unmarshaler, its UnmarshalDpack method is used; otherwise v
// is populated by reflection using the same "dpack" struct tag Marshal
// reads.
func Unmarshal(data []byte, v interface{}) error {
	var dec dpack.Decoder
	dec.Init(data)
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("dpackstruct: Unmarshal requires a non-nil pointer, got %T", v)
	}
	return unmarshalValue(&dec, val.Elem())
}

func unmarshalValue(dec *dpack.Decoder, val reflect.Value) error {
	if val.CanAddr() && val.Addr().CanInterface() {
		if u, ok := val.Addr().Interface().(Unmarshaler); ok {
			return u.UnmarshalDpack(dec)
		}
	}
	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return unmarshalValue(dec, val.Elem())
	case reflect.Bool:
		b, err := dec.DecodeBool()
		if err != nil {
			return err
		}
		val.SetBool(b)
		return nil
	case reflect.Int8:
		v, err := dec.DecodeInt8()
		if err != nil {
			return err
		}
		val.SetInt(int64(v))
		return nil
	case reflect.Int16:
		v, err := dec.DecodeInt16()
		if err != nil {
			return err
		}
		val.SetInt(int64(v))
		return nil
	case reflect.Int32:
		v, err := dec.DecodeInt32()
		if err != nil {
			return err
		}
		val.SetInt(int64(v))
		return nil
	case reflect.Int, reflect.Int64:
		v, err := dec.DecodeInt64()
		if err != nil {
			return err
		}
		val.SetInt(v)
		return nil
	case reflect.Uint8:
		v, err := dec.DecodeUint8()
		if err != nil {
			return err
		}
		val.SetUint(uint64(v))
		return nil
	case reflect.Uint16:
		v, err := dec.DecodeUint16()
		if err != nil {
			return err
		}
		val.SetUint(uint64(v))
		return nil
	case reflect.Uint32:
		v, err := dec.DecodeUint32()
		if err != nil {
			return err
		}
		val.SetUint(uint64(v))
		return nil
	case reflect.Uint, reflect.Uint64:
		v, err := dec.DecodeUint64()
		if err != nil {
			return err
		}
		val.SetUint(v)
		return nil
	case reflect.Float32:
		v, err := dec.DecodeFloat32()
		if err != nil {
			return err
		}
		val.SetFloat(float64(v))
		return nil
	case reflect.Float64:
		v, err := dec.DecodeFloat64()
		if err != nil {
			return err
		}
		val.SetFloat(v)
		return nil
	case reflect.Slice:
		return unmarshalSlice(dec, val)
	case reflect.Map:
		return unmarshalMap(dec, val)
	case reflect.Struct:
		return unmarshalStruct(dec, val)
	default:
		return fmt.Errorf("dpackstruct: type %s cannot be unmarshaled", val.Type())
	}
}

func unmarshalSlice(dec *dpack.Decoder, val reflect.Value) error {
	n, err := tagframe.ReadArrayHeader(dec)
	if err != nil {
		return fmt.Errorf("array header: %w", err)
	}
	out := reflect.MakeSlice(val.Type(), n, n)
	for i := 0; i < n; i++ {
		if err := unmarshalValue(dec, out.Index(i)); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	val.Set(out)
	return nil
}

func unmarshalMap(dec *dpack.Decoder, val reflect.Value) error {
	n, err := tagframe.ReadMapHeader(dec)
	if err != nil {
		return fmt.Errorf("map header: %w", err)
	}
	mtype := val.Type()
	out := reflect.MakeMapWithSize(mtype, n)
	for i := 0; i < n; i++ {
		key := reflect.New(mtype.Key()).Elem()
		if err := unmarshalValue(dec, key); err != nil {
			return fmt.Errorf("map key %d: %w", i, err)
		}
		elem := reflect.New(mtype.Elem()).Elem()
		if err := unmarshalValue(dec, elem); err != nil {
			return fmt.Errorf("map value %d: %w", i, err)
		}
		out.SetMapIndex(key, elem)
	}
	val.Set(out)
	return nil
}

func unmarshalStruct(dec *dpack.Decoder, val reflect.Value) error {
	fields, err := fieldsOf(val.Type())
	if err != nil {
		return err
	}
	find := func(tag uint32) *fieldInfo {
		for i := range fields {
			if fields[i].tag == tag {
				return &fields[i]
			}
		}
		return nil
	}

	n, err := tagframe.ReadMapHeader(dec)
	if err != nil {
		return fmt.Errorf("map header: %w", err)
	}
	for i := 0; i < n; i++ {
		tag, err := dec.DecodeUint32()
		if err != nil {
			return fmt.Errorf("field tag %d: %w", i, err)
		}
		fi := find(tag)
		if fi == nil {
			// Unknown field tags are skipped, matching the teacher
			// library's forward-compatible behavior: a reader built
			// against an older struct definition should not choke on a
			// newer field it doesn't know about.
			if err := skipValue(dec); err != nil {
				return fmt.Errorf("skipping unknown field tag %d: %w", tag, err)
			}
			continue
		}
		if err := unmarshalValue(dec, val.Field(fi.index)); err != nil {
			return fmt.Errorf("field %q: %w", fi.name, err)
		}
	}
	return nil
}

// skipValue consumes and discards one encoded value of any shape -- a
// scalar, or a container of further values -- without knowing its type.
// It is used to tolerate unknown struct field tags written by a newer
// version of a type.
func skipValue(dec *dpack.Decoder) error {
	b, err := dec.ReadTag()
	if err != nil {
		return err
	}
	switch {
	case b <= 0x7f, b >= 0xe0:
		return nil // fixint, no payload
	case b == 0xc0, b == 0xc2, b == 0xc3:
		return nil // nil, false, true
	case b == 0xca, b == 0xce, b == 0xd2:
		_, err := dec.ReadRaw(4)
		return err
	case b == 0xcb, b == 0xcf, b == 0xd3:
		_, err := dec.ReadRaw(8)
		return err
	case b == 0xcc, b == 0xd0:
		_, err := dec.ReadRaw(1)
		return err
	case b == 0xcd, b == 0xd1:
		_, err := dec.ReadRaw(2)
		return err
	case b >= 0x90 && b <= 0x9f:
		return skipN(dec, int(b-0x90))
	case b == 0xdc:
		p, err := dec.ReadRaw(2)
		if err != nil {
			return err
		}
		return skipN(dec, int(binary.BigEndian.Uint16(p)))
	case b == 0xdd:
		p, err := dec.ReadRaw(4)
		if err != nil {
			return err
		}
		return skipN(dec, int(binary.BigEndian.Uint32(p)))
	case b >= 0x80 && b <= 0x8f:
		return skipN(dec, int(b-0x80)*2)
	case b == 0xde:
		p, err := dec.ReadRaw(2)
		if err != nil {
			return err
		}
		return skipN(dec, int(binary.BigEndian.Uint16(p))*2)
	case b == 0xdf:
		p, err := dec.ReadRaw(4)
		if err != nil {
			return err
		}
		return skipN(dec, int(binary.BigEndian.Uint32(p))*2)
	default:
		return fmt.Errorf("dpackstruct: cannot skip tag %#x", b)
	}
}

func skipN(dec *dpack.Decoder, n int) error {
	for i := 0; i < n; i++ {
		if err := skipValue(dec); err != nil {
			return err
		}
	}
	return nil
}

type fieldInfo struct {
	index int
	name  string
	tag   uint32
}

func fieldsOf(t reflect.Type) ([]fieldInfo, error) {
	var out []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		raw, ok := f.Tag.Lookup("dpack")
		if !ok {
			continue
		}
		tag, err := parseTag(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		out = append(out, fieldInfo{index: i, name: f.Name, tag: tag})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].tag < out[j].tag })
	for i := 0; i < len(out)-1; i++ {
		if out[i].tag == out[i+1].tag {
			return nil, fmt.Errorf("duplicate field tag %d", out[i].tag)
		}
	}
	return out, nil
}

func parseTag(s string) (uint32, error) {
	for _, part := range strings.Split(s, ",") {
		if v, ok := strings.CutPrefix(part, "tag="); ok {
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return 0, fmt.Errorf("invalid tag %q: %w", v, err)
			}
			return uint32(n), nil
		}
	}
	return 0, fmt.Errorf("missing tag= in struct tag %q", s)
}

// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jdwp

import (
	"bytes"
	eb "encoding/binary"
	"reflect"

	"github.com/pkg/errors"
	"github.com/skylot/jdwp/data/binary"
	"github.com/skylot/jdwp/data/endian"
)

// Value is a value read from or written to the VM. It is one of:
// bool, byte, Char, int16, int (or int32), int64, float32, float64,
// ObjectID, ThreadID, ThreadGroupID, StringID, ClassLoaderID, ClassObjectID,
// ArrayID, or nil (void).
// On the wire a Value is prefixed with its one-byte Tag; the Go type of the
// value determines the tag that is written.
type Value interface{}

// ValueSlice is a list of values.
type ValueSlice []Value

// FieldAssignment pairs a field with the value to store in it. The value is
// written untagged; its Go type must match the field's declared type.
type FieldAssignment struct {
	Field FieldID
	Value Value
}

// ArrayRegion is a contiguous run of array elements sharing a single tag.
// Primitive elements are carried untagged; object reference elements each
// carry their own tag byte.
type ArrayRegion struct {
	Tag    Tag
	Values ValueSlice
}

// TagOf returns the tag corresponding to the value's Go type.
func TagOf(v Value) (Tag, error) {
	switch v.(type) {
	case ArrayID:
		return TagArray, nil
	case byte:
		return TagByte, nil
	case Char:
		return TagChar, nil
	case ObjectID:
		return TagObject, nil
	case float32:
		return TagFloat, nil
	case float64:
		return TagDouble, nil
	case int, int32:
		return TagInt, nil
	case int16:
		return TagShort, nil
	case int64:
		return TagLong, nil
	case nil:
		return TagVoid, nil
	case bool:
		return TagBoolean, nil
	case StringID:
		return TagString, nil
	case ThreadID:
		return TagThread, nil
	case ThreadGroupID:
		return TagThreadGroup, nil
	case ClassLoaderID:
		return TagClassLoader, nil
	case ClassObjectID:
		return TagClassObject, nil
	default:
		return 0, errors.Wrapf(ErrUnexpectedType, "no tag for value of type %T", v)
	}
}

// encodeValue writes the tag byte followed by the value's payload.
func (c *Codec) encodeValue(w binary.Writer, v Value) error {
	tag, err := TagOf(v)
	if err != nil {
		w.SetError(err)
		return err
	}
	w.Uint8(uint8(tag))
	if v == nil {
		return w.Error()
	}
	return c.encode(w, reflect.ValueOf(v))
}

// decodeValue reads a tag byte and then the payload it implies.
func (c *Codec) decodeValue(r binary.Reader) (Value, error) {
	tag := Tag(r.Uint8())
	if err := r.Error(); err != nil {
		return nil, err
	}
	return c.decodeUntaggedValue(r, tag)
}

// decodeUntaggedValue reads the payload of a value whose tag is known from
// context.
func (c *Codec) decodeUntaggedValue(r binary.Reader, tag Tag) (Value, error) {
	var v Value
	switch tag {
	case TagArray:
		v = ArrayID(binary.ReadUint(r, c.idSizes.ObjectIDSize))
	case TagByte:
		v = r.Uint8()
	case TagChar:
		v = Char(r.Int16())
	case TagObject:
		v = ObjectID(binary.ReadUint(r, c.idSizes.ObjectIDSize))
	case TagFloat:
		v = r.Float32()
	case TagDouble:
		v = r.Float64()
	case TagInt:
		v = int(r.Int32())
	case TagLong:
		v = r.Int64()
	case TagShort:
		v = r.Int16()
	case TagVoid:
		v = nil
	case TagBoolean:
		v = r.Bool()
	case TagString:
		v = StringID(binary.ReadUint(r, c.idSizes.ObjectIDSize))
	case TagThread:
		v = ThreadID(binary.ReadUint(r, c.idSizes.ObjectIDSize))
	case TagThreadGroup:
		v = ThreadGroupID(binary.ReadUint(r, c.idSizes.ObjectIDSize))
	case TagClassLoader:
		v = ClassLoaderID(binary.ReadUint(r, c.idSizes.ObjectIDSize))
	case TagClassObject:
		v = ClassObjectID(binary.ReadUint(r, c.idSizes.ObjectIDSize))
	default:
		err := errors.Wrapf(ErrInvalidTag, "tag 0x%02x", uint8(tag))
		r.SetError(err)
		return nil, err
	}
	return v, r.Error()
}

// encodeFieldAssignments writes a count-prefixed list of field/value pairs.
// The values are written untagged, as the VM knows each field's declared
// type.
func (c *Codec) encodeFieldAssignments(w binary.Writer, assignments []FieldAssignment) error {
	w.Int32(int32(len(assignments)))
	for _, a := range assignments {
		if err := c.encode(w, reflect.ValueOf(a.Field)); err != nil {
			return err
		}
		if a.Value == nil {
			continue
		}
		if err := c.encode(w, reflect.ValueOf(a.Value)); err != nil {
			return err
		}
	}
	return w.Error()
}

// encodeArrayRegion writes the region's tag, element count and elements.
// Primitive elements are written untagged; reference elements are written as
// full tagged values.
func (c *Codec) encodeArrayRegion(w binary.Writer, region ArrayRegion) error {
	w.Uint8(uint8(region.Tag))
	w.Int32(int32(len(region.Values)))
	for _, v := range region.Values {
		if region.Tag.IsPrimitive() {
			if v == nil {
				continue // void elements carry no payload
			}
			if err := c.encode(w, reflect.ValueOf(v)); err != nil {
				return err
			}
		} else {
			if err := c.encodeValue(w, v); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

// decodeArrayRegion reads a region tag, element count and elements.
func (c *Codec) decodeArrayRegion(r binary.Reader) (ArrayRegion, error) {
	tag := Tag(r.Uint8())
	count := int(r.Int32())
	if err := r.Error(); err != nil {
		return ArrayRegion{}, err
	}
	if _, err := tag.Size(c.idSizes); err != nil {
		r.SetError(err)
		return ArrayRegion{}, err
	}
	if count < 0 {
		err := errors.Errorf("negative array region length %d", count)
		r.SetError(err)
		return ArrayRegion{}, err
	}
	region := ArrayRegion{Tag: tag, Values: make(ValueSlice, 0, count)}
	for i := 0; i < count; i++ {
		var v Value
		var err error
		if tag.IsPrimitive() {
			v, err = c.decodeUntaggedValue(r, tag)
		} else {
			v, err = c.decodeValue(r)
		}
		if err != nil {
			return ArrayRegion{}, err
		}
		region.Values = append(region.Values, v)
	}
	return region, r.Error()
}

// EncodeValue encodes a tagged value to its wire form: a tag byte followed
// by the value's payload.
func (c *Codec) EncodeValue(v Value) ([]byte, error) {
	buf := bytes.Buffer{}
	w := endian.Writer(&buf, eb.BigEndian)
	if err := c.encodeValue(w, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeValue decodes a tagged value from its wire form.
func (c *Codec) DecodeValue(data []byte) (Value, error) {
	r := endian.Reader(bytes.NewReader(data), eb.BigEndian)
	v, err := c.decodeValue(r)
	return v, truncated(err)
}

// EncodeUntaggedValue encodes a value's payload without the leading tag
// byte, for contexts where the tag is known out-of-band.
func (c *Codec) EncodeUntaggedValue(v Value) ([]byte, error) {
	if v == nil {
		return []byte{}, nil
	}
	buf := bytes.Buffer{}
	w := endian.Writer(&buf, eb.BigEndian)
	if err := c.encode(w, reflect.ValueOf(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeUntaggedValue decodes a value's payload using a tag supplied by the
// caller.
func (c *Codec) DecodeUntaggedValue(data []byte, tag Tag) (Value, error) {
	r := endian.Reader(bytes.NewReader(data), eb.BigEndian)
	v, err := c.decodeUntaggedValue(r, tag)
	return v, truncated(err)
}

// EncodeArrayRegion encodes an array region to its wire form.
func (c *Codec) EncodeArrayRegion(region ArrayRegion) ([]byte, error) {
	buf := bytes.Buffer{}
	w := endian.Writer(&buf, eb.BigEndian)
	if err := c.encodeArrayRegion(w, region); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeArrayRegion decodes an array region from its wire form.
func (c *Codec) DecodeArrayRegion(data []byte) (ArrayRegion, error) {
	r := endian.Reader(bytes.NewReader(data), eb.BigEndian)
	region, err := c.decodeArrayRegion(r)
	return region, truncated(err)
}

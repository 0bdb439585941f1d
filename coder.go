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
	"io"
	"reflect"

	"github.com/pkg/errors"
	"github.com/skylot/jdwp/data/binary"
	"github.com/skylot/jdwp/data/endian"
)

var (
	tyValue         = reflect.TypeOf((*Value)(nil)).Elem()
	tyEvent         = reflect.TypeOf((*Event)(nil)).Elem()
	tyEventModifier = reflect.TypeOf((*EventModifier)(nil)).Elem()
)

func unbox(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface {
		return v.Elem()
	}
	return v
}

// truncated rewrites stream exhaustion into ErrInsufficientData, leaving all
// other errors untouched.
func truncated(err error) error {
	switch errors.Cause(err) {
	case io.EOF, io.ErrUnexpectedEOF:
		return errors.Wrap(ErrInsufficientData, err.Error())
	}
	return err
}

// encode writes the value v to w, using the JDWP encoding scheme.
func (c *Codec) encode(w binary.Writer, v reflect.Value) error {
	t := v.Type()
	o := v.Interface()

	switch t {
	case tyEventModifier:
		// EventModifier's are prefixed with their 1-byte modKind.
		w.Uint8(o.(EventModifier).modKind())

	case tyValue:
		// Values are prefixed with their 1-byte tag.
		tag, err := TagOf(o)
		if err != nil {
			w.SetError(err)
			return err
		}
		w.Uint8(uint8(tag))
		if o == nil {
			// Void carries no payload.
			return w.Error()
		}
	}

	switch o := o.(type) {
	case ReferenceTypeID, ClassID, InterfaceID, ArrayTypeID:
		binary.WriteUint(w, c.idSizes.ReferenceTypeIDSize, unbox(v).Uint())

	case MethodID:
		binary.WriteUint(w, c.idSizes.MethodIDSize, unbox(v).Uint())

	case FieldID:
		binary.WriteUint(w, c.idSizes.FieldIDSize, unbox(v).Uint())

	case FrameID:
		binary.WriteUint(w, c.idSizes.FrameIDSize, unbox(v).Uint())

	case ObjectID, ThreadID, ThreadGroupID, StringID, ModuleID, ClassLoaderID, ClassObjectID, ArrayID:
		binary.WriteUint(w, c.idSizes.ObjectIDSize, unbox(v).Uint())

	case ThreadOnlyEventModifier, InstanceOnlyEventModifier:
		binary.WriteUint(w, c.idSizes.ObjectIDSize, unbox(v).Uint())

	case ClassOnlyEventModifier:
		binary.WriteUint(w, c.idSizes.ReferenceTypeIDSize, unbox(v).Uint())

	case []byte: // Optimisation
		w.Uint32(uint32(len(o)))
		w.Data(o)

	default:
		switch t.Kind() {
		case reflect.Ptr, reflect.Interface:
			return c.encode(w, v.Elem())
		case reflect.String:
			w.Uint32(uint32(v.Len()))
			w.Data([]byte(v.String()))
		case reflect.Uint8:
			w.Uint8(uint8(v.Uint()))
		case reflect.Uint64:
			w.Uint64(v.Uint())
		case reflect.Int8:
			w.Int8(int8(v.Int()))
		case reflect.Int16:
			w.Int16(int16(v.Int()))
		case reflect.Int32, reflect.Int:
			w.Int32(int32(v.Int()))
		case reflect.Int64:
			w.Int64(v.Int())
		case reflect.Float32:
			w.Float32(float32(v.Float()))
		case reflect.Float64:
			w.Float64(v.Float())
		case reflect.Bool:
			w.Bool(v.Bool())
		case reflect.Struct:
			for i, count := 0, v.NumField(); i < count; i++ {
				if err := c.encode(w, v.Field(i)); err != nil {
					return err
				}
			}
		case reflect.Slice:
			count := v.Len()
			w.Uint32(uint32(count))
			for i := 0; i < count; i++ {
				if err := c.encode(w, v.Index(i)); err != nil {
					return err
				}
			}
		default:
			err := errors.Wrapf(ErrUnexpectedType, "cannot encode %v %v", t.Name(), t.Kind())
			w.SetError(err)
			return err
		}
	}
	return w.Error()
}

// decode reads the value v from r, using the JDWP encoding scheme.
func (c *Codec) decode(r binary.Reader, v reflect.Value) error {
	switch v.Type() {
	case tyEvent:
		kind := EventKind(r.Uint8())
		if err := r.Error(); err != nil {
			return err
		}
		event := kind.event()
		if event == nil {
			err := errors.Wrapf(ErrInvalidEventKind, "event kind %d", uint8(kind))
			r.SetError(err)
			return err
		}
		v.Set(reflect.ValueOf(event))
		v = v.Elem()
		// Continue to decode the event body below.

	case tyValue:
		value, err := c.decodeValue(r)
		if err != nil {
			return err
		}
		if value == nil {
			v.Set(reflect.New(v.Type()).Elem())
		} else {
			v.Set(reflect.ValueOf(value))
		}
		return r.Error()
	}

	t := v.Type()
	o := v.Interface()
	switch o.(type) {
	case ReferenceTypeID, ClassID, InterfaceID, ArrayTypeID:
		v.Set(reflect.ValueOf(binary.ReadUint(r, c.idSizes.ReferenceTypeIDSize)).Convert(t))

	case MethodID:
		v.Set(reflect.ValueOf(binary.ReadUint(r, c.idSizes.MethodIDSize)).Convert(t))

	case FieldID:
		v.Set(reflect.ValueOf(binary.ReadUint(r, c.idSizes.FieldIDSize)).Convert(t))

	case FrameID:
		v.Set(reflect.ValueOf(binary.ReadUint(r, c.idSizes.FrameIDSize)).Convert(t))

	case ObjectID, ThreadID, ThreadGroupID, StringID, ModuleID, ClassLoaderID, ClassObjectID, ArrayID:
		v.Set(reflect.ValueOf(binary.ReadUint(r, c.idSizes.ObjectIDSize)).Convert(t))

	case EventModifier:
		err := errors.Wrap(ErrUnexpectedType, "event modifiers cannot be decoded")
		r.SetError(err)
		return err

	default:
		switch t.Kind() {
		case reflect.Ptr, reflect.Interface:
			return c.decode(r, v.Elem())
		case reflect.String:
			data := make([]byte, r.Uint32())
			r.Data(data)
			v.Set(reflect.ValueOf(string(data)).Convert(t))
		case reflect.Bool:
			v.Set(reflect.ValueOf(r.Bool()).Convert(t))
		case reflect.Uint8:
			v.Set(reflect.ValueOf(r.Uint8()).Convert(t))
		case reflect.Uint64:
			v.Set(reflect.ValueOf(r.Uint64()).Convert(t))
		case reflect.Int8:
			v.Set(reflect.ValueOf(r.Int8()).Convert(t))
		case reflect.Int16:
			v.Set(reflect.ValueOf(r.Int16()).Convert(t))
		case reflect.Int32, reflect.Int:
			v.Set(reflect.ValueOf(r.Int32()).Convert(t))
		case reflect.Int64:
			v.Set(reflect.ValueOf(r.Int64()).Convert(t))
		case reflect.Float32:
			v.Set(reflect.ValueOf(r.Float32()).Convert(t))
		case reflect.Float64:
			v.Set(reflect.ValueOf(r.Float64()).Convert(t))
		case reflect.Struct:
			for i, count := 0, v.NumField(); i < count; i++ {
				if err := c.decode(r, v.Field(i)); err != nil {
					return err
				}
			}
		case reflect.Slice:
			count := int(r.Uint32())
			if err := r.Error(); err != nil {
				return err
			}
			slice := reflect.MakeSlice(t, count, count)
			for i := 0; i < count; i++ {
				if err := c.decode(r, slice.Index(i)); err != nil {
					return err
				}
			}
			v.Set(slice)
		default:
			err := errors.Wrapf(ErrUnexpectedType, "cannot decode %v %v", t.Name(), t.Kind())
			r.SetError(err)
			return err
		}
	}
	return r.Error()
}

// encodeCommand encodes req as the body of a command packet and returns the
// complete framed packet with a zero id.
func (c *Codec) encodeCommand(cmd cmd, req interface{}) ([]byte, error) {
	body := bytes.Buffer{}
	if req != nil {
		w := endian.Writer(&body, eb.BigEndian)
		if err := c.encode(w, reflect.ValueOf(req)); err != nil {
			return nil, err
		}
	}
	pkt := frameCommand(cmd, body.Bytes())
	c.log.V(2).Info("encoded command packet",
		"cmdSet", uint8(cmd.set), "cmdID", uint8(cmd.id), "len", len(pkt))
	return pkt, nil
}

// encodeCommandFunc encodes a command whose body cannot be expressed as a
// plain struct, delegating the body writes to fn.
func (c *Codec) encodeCommandFunc(cmd cmd, fn func(w binary.Writer) error) ([]byte, error) {
	body := bytes.Buffer{}
	w := endian.Writer(&body, eb.BigEndian)
	if err := fn(w); err != nil {
		return nil, err
	}
	if err := w.Error(); err != nil {
		return nil, err
	}
	pkt := frameCommand(cmd, body.Bytes())
	c.log.V(2).Info("encoded command packet",
		"cmdSet", uint8(cmd.set), "cmdID", uint8(cmd.id), "len", len(pkt))
	return pkt, nil
}

// decodeReply decodes a reply packet body into out. Trailing bytes are
// ignored; running short returns ErrInsufficientData.
func (c *Codec) decodeReply(data []byte, out interface{}) error {
	r := endian.Reader(bytes.NewReader(data), eb.BigEndian)
	if err := c.decode(r, reflect.ValueOf(out)); err != nil {
		return truncated(err)
	}
	c.log.V(2).Info("decoded reply packet body", "len", len(data))
	return nil
}

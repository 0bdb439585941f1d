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

import "github.com/pkg/errors"

// Tag is a one-byte identifier of a value's type. It drives the size and
// shape of the value's on-wire payload.
type Tag uint8

const (
	// TagArray is the tag for an array object value.
	TagArray = Tag('[')
	// TagByte is the tag for a byte value.
	TagByte = Tag('B')
	// TagChar is the tag for a 16-bit character value.
	TagChar = Tag('C')
	// TagObject is the tag for an object value.
	TagObject = Tag('L')
	// TagFloat is the tag for a 32-bit floating-point value.
	TagFloat = Tag('F')
	// TagDouble is the tag for a 64-bit floating-point value.
	TagDouble = Tag('D')
	// TagInt is the tag for a 32-bit integer value.
	TagInt = Tag('I')
	// TagLong is the tag for a 64-bit integer value.
	TagLong = Tag('J')
	// TagShort is the tag for a 16-bit integer value.
	TagShort = Tag('S')
	// TagVoid is the tag for a void value. It has a zero-byte payload.
	TagVoid = Tag('V')
	// TagBoolean is the tag for a boolean value.
	TagBoolean = Tag('Z')
	// TagString is the tag for a string object value.
	TagString = Tag('s')
	// TagThread is the tag for a thread object value.
	TagThread = Tag('t')
	// TagThreadGroup is the tag for a thread group object value.
	TagThreadGroup = Tag('g')
	// TagClassLoader is the tag for a class loader object value.
	TagClassLoader = Tag('l')
	// TagClassObject is the tag for a class object value.
	TagClassObject = Tag('c')
)

// IsPrimitive returns true if the tag identifies a primitive (or void) value,
// false if it identifies an object reference.
func (t Tag) IsPrimitive() bool {
	switch t {
	case TagByte, TagChar, TagFloat, TagDouble, TagInt, TagLong, TagShort, TagVoid, TagBoolean:
		return true
	}
	return false
}

// Size returns the byte width of the tag's payload. Object reference tags
// have the width of the negotiated ObjectIDSize.
func (t Tag) Size(sizes IDSizes) (int32, error) {
	switch t {
	case TagBoolean, TagByte:
		return 1, nil
	case TagChar, TagShort:
		return 2, nil
	case TagFloat, TagInt:
		return 4, nil
	case TagDouble, TagLong:
		return 8, nil
	case TagVoid:
		return 0, nil
	case TagArray, TagObject, TagString, TagThread, TagThreadGroup, TagClassLoader, TagClassObject:
		return sizes.ObjectIDSize, nil
	}
	return 0, errors.Wrapf(ErrInvalidTag, "tag 0x%02x", uint8(t))
}

func (t Tag) String() string {
	switch t {
	case TagArray:
		return "Array"
	case TagByte:
		return "Byte"
	case TagChar:
		return "Char"
	case TagObject:
		return "Object"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagShort:
		return "Short"
	case TagVoid:
		return "Void"
	case TagBoolean:
		return "Boolean"
	case TagString:
		return "String"
	case TagThread:
		return "Thread"
	case TagThreadGroup:
		return "ThreadGroup"
	case TagClassLoader:
		return "ClassLoader"
	case TagClassObject:
		return "ClassObject"
	default:
		return "Tag<" + string(rune(t)) + ">"
	}
}

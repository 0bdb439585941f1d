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
	"reflect"

	"github.com/skylot/jdwp/data/binary"
)

// EncodeArrayLength encodes an ArrayReference Length command.
func (c *Codec) EncodeArrayLength(array ArrayID) ([]byte, error) {
	return c.encodeCommand(cmdArrayReferenceLength, array)
}

// DecodeArrayLengthReply decodes the body of a Length reply.
func (c *Codec) DecodeArrayLengthReply(data []byte) (int, error) {
	var res int
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeArrayGetValues encodes an ArrayReference GetValues command for
// length elements starting at firstIndex.
func (c *Codec) EncodeArrayGetValues(array ArrayID, firstIndex, length int) ([]byte, error) {
	return c.encodeCommand(cmdArrayReferenceGetValues, struct {
		Array         ArrayID
		First, Length int
	}{array, firstIndex, length})
}

// DecodeArrayGetValuesReply decodes the body of an ArrayReference GetValues
// reply: an array region.
func (c *Codec) DecodeArrayGetValuesReply(data []byte) (ArrayRegion, error) {
	return c.DecodeArrayRegion(data)
}

// EncodeArraySetValues encodes an ArrayReference SetValues command. The
// values are written untagged; each value's Go type must match the array's
// element type. The reply is an Ack.
func (c *Codec) EncodeArraySetValues(array ArrayID, firstIndex int, values ...Value) ([]byte, error) {
	return c.encodeCommandFunc(cmdArrayReferenceSetValues, func(w binary.Writer) error {
		if err := c.encode(w, reflect.ValueOf(array)); err != nil {
			return err
		}
		w.Int32(int32(firstIndex))
		w.Int32(int32(len(values)))
		for _, v := range values {
			if err := c.encode(w, reflect.ValueOf(v)); err != nil {
				return err
			}
		}
		return w.Error()
	})
}

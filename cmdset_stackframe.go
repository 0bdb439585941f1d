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

// VariableRequest names a variable slot to fetch, along with the tag of the
// variable's declared type.
type VariableRequest struct {
	Index int
	Tag   Tag
}

// EncodeFrameGetValues encodes a StackFrame GetValues command for the given
// slots.
func (c *Codec) EncodeFrameGetValues(thread ThreadID, frame FrameID, slots ...VariableRequest) ([]byte, error) {
	return c.encodeCommand(cmdStackFrameGetValues, struct {
		Thread ThreadID
		Frame  FrameID
		Slots  []VariableRequest
	}{thread, frame, slots})
}

// DecodeFrameGetValuesReply decodes the body of a StackFrame GetValues
// reply: one tagged value per requested slot, in request order.
func (c *Codec) DecodeFrameGetValuesReply(data []byte) (ValueSlice, error) {
	res := ValueSlice{}
	err := c.decodeReply(data, &res)
	return res, err
}

// VariableAssignmentRequest pairs a variable slot with the value to store in
// it.
type VariableAssignmentRequest struct {
	Index int
	Value Value
}

// EncodeFrameSetValues encodes a StackFrame SetValues command. The reply is
// an Ack.
func (c *Codec) EncodeFrameSetValues(thread ThreadID, frame FrameID, slots ...VariableAssignmentRequest) ([]byte, error) {
	return c.encodeCommand(cmdStackFrameSetValues, struct {
		Thread ThreadID
		Frame  FrameID
		Slots  []VariableAssignmentRequest
	}{thread, frame, slots})
}

// EncodeThisObject encodes a StackFrame ThisObject command.
func (c *Codec) EncodeThisObject(thread ThreadID, frame FrameID) ([]byte, error) {
	return c.encodeCommand(cmdStackFrameThisObject, struct {
		Thread ThreadID
		Frame  FrameID
	}{thread, frame})
}

// DecodeThisObjectReply decodes the body of a ThisObject reply. The object
// is 0 for static or native frames.
func (c *Codec) DecodeThisObjectReply(data []byte) (TaggedObjectID, error) {
	res := TaggedObjectID{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodePopFrames encodes a StackFrame PopFrames command, popping all frames
// up to and including frame. The reply is an Ack.
func (c *Codec) EncodePopFrames(thread ThreadID, frame FrameID) ([]byte, error) {
	return c.encodeCommand(cmdStackFramePopFrames, struct {
		Thread ThreadID
		Frame  FrameID
	}{thread, frame})
}

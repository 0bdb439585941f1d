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

// EncodeSuperclass encodes a ClassType Superclass command.
func (c *Codec) EncodeSuperclass(class ClassID) ([]byte, error) {
	return c.encodeCommand(cmdClassTypeSuperclass, class)
}

// DecodeSuperclassReply decodes the body of a Superclass reply. The id is 0
// if the class is java.lang.Object.
func (c *Codec) DecodeSuperclassReply(data []byte) (ClassID, error) {
	res := ClassID(0)
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeSetStaticFieldValues encodes a ClassType SetValues command. The
// values are written untagged; each value's Go type must match the field's
// declared type. The reply is an Ack.
func (c *Codec) EncodeSetStaticFieldValues(class ClassID, assignments ...FieldAssignment) ([]byte, error) {
	return c.encodeCommandFunc(cmdClassTypeSetValues, func(w binary.Writer) error {
		if err := c.encode(w, reflect.ValueOf(class)); err != nil {
			return err
		}
		return c.encodeFieldAssignments(w, assignments)
	})
}

// InvokeResult is the result of an invoke: the method's return value, and
// the exception thrown by the invoke, if any.
type InvokeResult struct {
	Result    Value
	Exception TaggedObjectID
}

// EncodeInvokeStaticMethod encodes a ClassType InvokeMethod command.
func (c *Codec) EncodeInvokeStaticMethod(class ClassID, thread ThreadID, method MethodID, options InvokeOptions, args ...Value) ([]byte, error) {
	return c.encodeCommand(cmdClassTypeInvokeMethod, struct {
		Class   ClassID
		Thread  ThreadID
		Method  MethodID
		Args    ValueSlice
		Options InvokeOptions
	}{class, thread, method, args, options})
}

// DecodeInvokeStaticMethodReply decodes the body of a ClassType
// InvokeMethod reply.
func (c *Codec) DecodeInvokeStaticMethodReply(data []byte) (InvokeResult, error) {
	res := InvokeResult{}
	err := c.decodeReply(data, &res)
	return res, err
}

// NewInstanceResult is the result of a constructor invoke: the newly created
// object, and the exception thrown by the constructor, if any.
type NewInstanceResult struct {
	Result    TaggedObjectID
	Exception TaggedObjectID
}

// EncodeNewInstance encodes a ClassType NewInstance command invoking the
// given constructor.
func (c *Codec) EncodeNewInstance(class ClassID, thread ThreadID, constructor MethodID, options InvokeOptions, args ...Value) ([]byte, error) {
	return c.encodeCommand(cmdClassTypeNewInstance, struct {
		Class       ClassID
		Thread      ThreadID
		Constructor MethodID
		Args        ValueSlice
		Options     InvokeOptions
	}{class, thread, constructor, args, options})
}

// DecodeNewInstanceReply decodes the body of a NewInstance reply.
func (c *Codec) DecodeNewInstanceReply(data []byte) (NewInstanceResult, error) {
	res := NewInstanceResult{}
	err := c.decodeReply(data, &res)
	return res, err
}

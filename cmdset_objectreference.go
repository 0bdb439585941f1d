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

// EncodeObjectType encodes an ObjectReference ReferenceType command.
func (c *Codec) EncodeObjectType(object ObjectID) ([]byte, error) {
	return c.encodeCommand(cmdObjectReferenceReferenceType, object)
}

// DecodeObjectTypeReply decodes the body of an ObjectReference
// ReferenceType reply.
func (c *Codec) DecodeObjectTypeReply(data []byte) (ObjectType, error) {
	res := ObjectType{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeFieldValues encodes an ObjectReference GetValues command for the
// given instance fields.
func (c *Codec) EncodeFieldValues(object ObjectID, fields ...FieldID) ([]byte, error) {
	return c.encodeCommand(cmdObjectReferenceGetValues, struct {
		Object ObjectID
		Fields []FieldID
	}{object, fields})
}

// DecodeFieldValuesReply decodes the body of an ObjectReference GetValues
// reply: one tagged value per requested field, in request order.
func (c *Codec) DecodeFieldValuesReply(data []byte) (ValueSlice, error) {
	res := ValueSlice{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeSetFieldValues encodes an ObjectReference SetValues command. The
// values are written untagged; each value's Go type must match the field's
// declared type. The reply is an Ack.
func (c *Codec) EncodeSetFieldValues(object ObjectID, assignments ...FieldAssignment) ([]byte, error) {
	return c.encodeCommandFunc(cmdObjectReferenceSetValues, func(w binary.Writer) error {
		if err := c.encode(w, reflect.ValueOf(object)); err != nil {
			return err
		}
		return c.encodeFieldAssignments(w, assignments)
	})
}

// MonitorInfo describes the monitor state of an object.
type MonitorInfo struct {
	Owner      ThreadID // Owning thread, or 0 if unowned
	EntryCount int      // Number of times the owner has entered the monitor
	Waiters    []ThreadID
}

// EncodeMonitorInfo encodes an ObjectReference MonitorInfo command.
func (c *Codec) EncodeMonitorInfo(object ObjectID) ([]byte, error) {
	return c.encodeCommand(cmdObjectReferenceMonitorInfo, object)
}

// DecodeMonitorInfoReply decodes the body of a MonitorInfo reply.
func (c *Codec) DecodeMonitorInfoReply(data []byte) (MonitorInfo, error) {
	res := MonitorInfo{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeInvokeMethod encodes an ObjectReference InvokeMethod command.
func (c *Codec) EncodeInvokeMethod(object ObjectID, thread ThreadID, class ClassID, method MethodID, options InvokeOptions, args ...Value) ([]byte, error) {
	return c.encodeCommand(cmdObjectReferenceInvokeMethod, struct {
		Object  ObjectID
		Thread  ThreadID
		Class   ClassID
		Method  MethodID
		Args    ValueSlice
		Options InvokeOptions
	}{object, thread, class, method, args, options})
}

// DecodeInvokeMethodReply decodes the body of an ObjectReference
// InvokeMethod reply.
func (c *Codec) DecodeInvokeMethodReply(data []byte) (InvokeResult, error) {
	res := InvokeResult{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeDisableCollection encodes a DisableCollection command, preventing
// garbage collection of the object. The reply is an Ack.
func (c *Codec) EncodeDisableCollection(object ObjectID) ([]byte, error) {
	return c.encodeCommand(cmdObjectReferenceDisableCollection, object)
}

// EncodeEnableCollection encodes an EnableCollection command, re-enabling
// garbage collection of the object. The reply is an Ack.
func (c *Codec) EncodeEnableCollection(object ObjectID) ([]byte, error) {
	return c.encodeCommand(cmdObjectReferenceEnableCollection, object)
}

// EncodeIsCollected encodes an IsCollected command.
func (c *Codec) EncodeIsCollected(object ObjectID) ([]byte, error) {
	return c.encodeCommand(cmdObjectReferenceIsCollected, object)
}

// DecodeIsCollectedReply decodes the body of an IsCollected reply.
func (c *Codec) DecodeIsCollectedReply(data []byte) (bool, error) {
	var res bool
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeReferringObjects encodes a ReferringObjects command. A maxReferrers
// of 0 requests all referring objects.
func (c *Codec) EncodeReferringObjects(object ObjectID, maxReferrers int) ([]byte, error) {
	return c.encodeCommand(cmdObjectReferenceReferringObjects, struct {
		Object       ObjectID
		MaxReferrers int
	}{object, maxReferrers})
}

// DecodeReferringObjectsReply decodes the body of a ReferringObjects reply.
func (c *Codec) DecodeReferringObjectsReply(data []byte) ([]TaggedObjectID, error) {
	res := []TaggedObjectID{}
	err := c.decodeReply(data, &res)
	return res, err
}

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

// EncodeThreadName encodes a ThreadReference Name command.
func (c *Codec) EncodeThreadName(thread ThreadID) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceName, thread)
}

// DecodeThreadNameReply decodes the body of a Name reply.
func (c *Codec) DecodeThreadNameReply(data []byte) (string, error) {
	var res string
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeSuspend encodes a ThreadReference Suspend command. The reply is an
// Ack.
func (c *Codec) EncodeSuspend(thread ThreadID) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceSuspend, thread)
}

// EncodeResume encodes a ThreadReference Resume command. The reply is an
// Ack.
func (c *Codec) EncodeResume(thread ThreadID) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceResume, thread)
}

// ThreadStatusInfo describes a thread's execution and suspension state.
type ThreadStatusInfo struct {
	Status        ThreadStatus
	SuspendStatus SuspendStatus
}

// EncodeThreadStatus encodes a ThreadReference Status command.
func (c *Codec) EncodeThreadStatus(thread ThreadID) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceStatus, thread)
}

// DecodeThreadStatusReply decodes the body of a Status reply.
func (c *Codec) DecodeThreadStatusReply(data []byte) (ThreadStatusInfo, error) {
	res := ThreadStatusInfo{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeThreadGroup encodes a ThreadReference ThreadGroup command.
func (c *Codec) EncodeThreadGroup(thread ThreadID) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceThreadGroup, thread)
}

// DecodeThreadGroupReply decodes the body of a ThreadGroup reply.
func (c *Codec) DecodeThreadGroupReply(data []byte) (ThreadGroupID, error) {
	res := ThreadGroupID(0)
	err := c.decodeReply(data, &res)
	return res, err
}

// FrameInfo describes a single stack frame.
type FrameInfo struct {
	Frame    FrameID
	Location Location
}

// EncodeFrames encodes a ThreadReference Frames command. A length of -1
// requests all remaining frames.
func (c *Codec) EncodeFrames(thread ThreadID, start, length int) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceFrames, struct {
		Thread        ThreadID
		Start, Length int
	}{thread, start, length})
}

// DecodeFramesReply decodes the body of a Frames reply.
func (c *Codec) DecodeFramesReply(data []byte) ([]FrameInfo, error) {
	res := []FrameInfo{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeFrameCount encodes a ThreadReference FrameCount command.
func (c *Codec) EncodeFrameCount(thread ThreadID) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceFrameCount, thread)
}

// DecodeFrameCountReply decodes the body of a FrameCount reply.
func (c *Codec) DecodeFrameCountReply(data []byte) (int, error) {
	var res int
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeOwnedMonitors encodes a ThreadReference OwnedMonitors command.
func (c *Codec) EncodeOwnedMonitors(thread ThreadID) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceOwnedMonitors, thread)
}

// DecodeOwnedMonitorsReply decodes the body of an OwnedMonitors reply.
func (c *Codec) DecodeOwnedMonitorsReply(data []byte) ([]TaggedObjectID, error) {
	res := []TaggedObjectID{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeCurrentContendedMonitor encodes a ThreadReference
// CurrentContendedMonitor command.
func (c *Codec) EncodeCurrentContendedMonitor(thread ThreadID) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceCurrentContendedMonitor, thread)
}

// DecodeCurrentContendedMonitorReply decodes the body of a
// CurrentContendedMonitor reply. The object is 0 if the thread is not
// waiting on a monitor.
func (c *Codec) DecodeCurrentContendedMonitorReply(data []byte) (TaggedObjectID, error) {
	res := TaggedObjectID{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeStop encodes a ThreadReference Stop command, stopping the thread
// with the given throwable object. The reply is an Ack.
func (c *Codec) EncodeStop(thread ThreadID, throwable ObjectID) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceStop, struct {
		Thread    ThreadID
		Throwable ObjectID
	}{thread, throwable})
}

// EncodeInterrupt encodes a ThreadReference Interrupt command. The reply is
// an Ack.
func (c *Codec) EncodeInterrupt(thread ThreadID) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceInterrupt, thread)
}

// EncodeSuspendCount encodes a ThreadReference SuspendCount command.
func (c *Codec) EncodeSuspendCount(thread ThreadID) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceSuspendCount, thread)
}

// DecodeSuspendCountReply decodes the body of a SuspendCount reply.
func (c *Codec) DecodeSuspendCountReply(data []byte) (int, error) {
	var res int
	err := c.decodeReply(data, &res)
	return res, err
}

// MonitorStackDepthInfo pairs an owned monitor with the stack depth at which
// it was acquired.
type MonitorStackDepthInfo struct {
	Monitor TaggedObjectID
	Depth   int // Stack depth, or -1 if not determinable
}

// EncodeOwnedMonitorsStackDepthInfo encodes a ThreadReference
// OwnedMonitorsStackDepthInfo command.
func (c *Codec) EncodeOwnedMonitorsStackDepthInfo(thread ThreadID) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceOwnedMonitorsStackDepth, thread)
}

// DecodeOwnedMonitorsStackDepthInfoReply decodes the body of an
// OwnedMonitorsStackDepthInfo reply.
func (c *Codec) DecodeOwnedMonitorsStackDepthInfoReply(data []byte) ([]MonitorStackDepthInfo, error) {
	res := []MonitorStackDepthInfo{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeForceEarlyReturn encodes a ThreadReference ForceEarlyReturn command,
// making the thread's topmost frame return value without executing further
// bytecodes. The reply is an Ack.
func (c *Codec) EncodeForceEarlyReturn(thread ThreadID, value Value) ([]byte, error) {
	return c.encodeCommand(cmdThreadReferenceForceEarlyReturn, struct {
		Thread ThreadID
		Value  Value
	}{thread, value})
}

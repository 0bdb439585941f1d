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

// EncodeThreadGroupName encodes a ThreadGroupReference Name command.
func (c *Codec) EncodeThreadGroupName(group ThreadGroupID) ([]byte, error) {
	return c.encodeCommand(cmdThreadGroupReferenceName, group)
}

// DecodeThreadGroupNameReply decodes the body of a ThreadGroupReference
// Name reply.
func (c *Codec) DecodeThreadGroupNameReply(data []byte) (string, error) {
	var res string
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeThreadGroupParent encodes a ThreadGroupReference Parent command.
func (c *Codec) EncodeThreadGroupParent(group ThreadGroupID) ([]byte, error) {
	return c.encodeCommand(cmdThreadGroupReferenceParent, group)
}

// DecodeThreadGroupParentReply decodes the body of a Parent reply. The id is
// 0 for a top-level thread group.
func (c *Codec) DecodeThreadGroupParentReply(data []byte) (ThreadGroupID, error) {
	res := ThreadGroupID(0)
	err := c.decodeReply(data, &res)
	return res, err
}

// ThreadGroupChildren lists the live threads and subgroups directly
// contained in a thread group.
type ThreadGroupChildren struct {
	ChildThreads []ThreadID
	ChildGroups  []ThreadGroupID
}

// EncodeThreadGroupChildren encodes a ThreadGroupReference Children command.
func (c *Codec) EncodeThreadGroupChildren(group ThreadGroupID) ([]byte, error) {
	return c.encodeCommand(cmdThreadGroupReferenceChildren, group)
}

// DecodeThreadGroupChildrenReply decodes the body of a Children reply.
func (c *Codec) DecodeThreadGroupChildrenReply(data []byte) (ThreadGroupChildren, error) {
	res := ThreadGroupChildren{}
	err := c.decodeReply(data, &res)
	return res, err
}

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

// EncodeReflectedType encodes a ClassObjectReference ReflectedType command.
func (c *Codec) EncodeReflectedType(object ClassObjectID) ([]byte, error) {
	return c.encodeCommand(cmdClassObjectReferenceReflectedType, object)
}

// DecodeReflectedTypeReply decodes the body of a ReflectedType reply.
func (c *Codec) DecodeReflectedTypeReply(data []byte) (ObjectType, error) {
	res := ObjectType{}
	err := c.decodeReply(data, &res)
	return res, err
}

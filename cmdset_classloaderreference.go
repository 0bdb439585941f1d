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

// EncodeVisibleClasses encodes a ClassLoaderReference VisibleClasses
// command.
func (c *Codec) EncodeVisibleClasses(loader ClassLoaderID) ([]byte, error) {
	return c.encodeCommand(cmdClassLoaderReferenceVisibleClasses, loader)
}

// DecodeVisibleClassesReply decodes the body of a VisibleClasses reply: all
// reference types for which the class loader is the initiating loader.
func (c *Codec) DecodeVisibleClassesReply(data []byte) ([]ObjectType, error) {
	res := []ObjectType{}
	err := c.decodeReply(data, &res)
	return res, err
}

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

// EncodeStringValue encodes a StringReference Value command.
func (c *Codec) EncodeStringValue(str StringID) ([]byte, error) {
	return c.encodeCommand(cmdStringReferenceValue, str)
}

// DecodeStringValueReply decodes the body of a StringReference Value reply:
// the string's characters as UTF-8.
func (c *Codec) DecodeStringValueReply(data []byte) (string, error) {
	var res string
	err := c.decodeReply(data, &res)
	return res, err
}

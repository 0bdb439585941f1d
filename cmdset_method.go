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

// LineTableEntry maps a code index to a source line.
type LineTableEntry struct {
	LineCodeIndex int64
	LineNumber    int
}

// LineTable is the line number information for a method.
type LineTable struct {
	Start int64 // Lowest valid code index for the method, or -1 if native
	End   int64 // Highest valid code index for the method, or -1 if native
	Lines []LineTableEntry
}

// EncodeLineTable encodes a Method LineTable command.
func (c *Codec) EncodeLineTable(ty ReferenceTypeID, method MethodID) ([]byte, error) {
	return c.encodeCommand(cmdMethodLineTable, struct {
		Ty     ReferenceTypeID
		Method MethodID
	}{ty, method})
}

// DecodeLineTableReply decodes the body of a LineTable reply.
func (c *Codec) DecodeLineTableReply(data []byte) (LineTable, error) {
	res := LineTable{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeVariableTable encodes a Method VariableTable command.
func (c *Codec) EncodeVariableTable(ty ReferenceTypeID, method MethodID) ([]byte, error) {
	return c.encodeCommand(cmdMethodVariableTable, struct {
		Ty     ReferenceTypeID
		Method MethodID
	}{ty, method})
}

// DecodeVariableTableReply decodes the body of a VariableTable reply.
func (c *Codec) DecodeVariableTableReply(data []byte) (VariableTable, error) {
	res := VariableTable{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeBytecodes encodes a Method Bytecodes command.
func (c *Codec) EncodeBytecodes(ty ReferenceTypeID, method MethodID) ([]byte, error) {
	return c.encodeCommand(cmdMethodBytecodes, struct {
		Ty     ReferenceTypeID
		Method MethodID
	}{ty, method})
}

// DecodeBytecodesReply decodes the body of a Bytecodes reply.
func (c *Codec) DecodeBytecodesReply(data []byte) ([]byte, error) {
	res := []byte{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeIsObsolete encodes a Method IsObsolete command.
func (c *Codec) EncodeIsObsolete(ty ReferenceTypeID, method MethodID) ([]byte, error) {
	return c.encodeCommand(cmdMethodIsObsolete, struct {
		Ty     ReferenceTypeID
		Method MethodID
	}{ty, method})
}

// DecodeIsObsoleteReply decodes the body of an IsObsolete reply: true if the
// method was replaced by RedefineClasses.
func (c *Codec) DecodeIsObsoleteReply(data []byte) (bool, error) {
	var res bool
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeVariableTableWithGeneric encodes a Method VariableTableWithGeneric
// command.
func (c *Codec) EncodeVariableTableWithGeneric(ty ReferenceTypeID, method MethodID) ([]byte, error) {
	return c.encodeCommand(cmdMethodVariableTableWithGeneric, struct {
		Ty     ReferenceTypeID
		Method MethodID
	}{ty, method})
}

// DecodeVariableTableWithGenericReply decodes the body of a
// VariableTableWithGeneric reply.
func (c *Codec) DecodeVariableTableWithGenericReply(data []byte) (VariableTableWithGeneric, error) {
	res := VariableTableWithGeneric{}
	err := c.decodeReply(data, &res)
	return res, err
}

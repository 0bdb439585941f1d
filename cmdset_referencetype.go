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

// EncodeTypeSignature encodes a ReferenceType Signature command.
func (c *Codec) EncodeTypeSignature(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeSignature, ty)
}

// DecodeTypeSignatureReply decodes the body of a Signature reply: the JNI
// signature of the reference type.
func (c *Codec) DecodeTypeSignatureReply(data []byte) (string, error) {
	var res string
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeTypeClassLoader encodes a ReferenceType ClassLoader command.
func (c *Codec) EncodeTypeClassLoader(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeClassLoader, ty)
}

// DecodeTypeClassLoaderReply decodes the body of a ClassLoader reply. An id
// of 0 means the type was loaded by the system class loader.
func (c *Codec) DecodeTypeClassLoaderReply(data []byte) (ClassLoaderID, error) {
	res := ClassLoaderID(0)
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeTypeModifiers encodes a ReferenceType Modifiers command.
func (c *Codec) EncodeTypeModifiers(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeModifiers, ty)
}

// DecodeTypeModifiersReply decodes the body of a Modifiers reply.
func (c *Codec) DecodeTypeModifiersReply(data []byte) (ModBits, error) {
	res := ModBits(0)
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeFields encodes a ReferenceType Fields command.
func (c *Codec) EncodeFields(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeFields, ty)
}

// DecodeFieldsReply decodes the body of a Fields reply. Fields are returned
// in the order they occur in the class file.
func (c *Codec) DecodeFieldsReply(data []byte) (Fields, error) {
	var res Fields
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeMethods encodes a ReferenceType Methods command.
func (c *Codec) EncodeMethods(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeMethods, ty)
}

// DecodeMethodsReply decodes the body of a Methods reply. Methods are
// returned in the order they occur in the class file.
func (c *Codec) DecodeMethodsReply(data []byte) (Methods, error) {
	var res Methods
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeStaticFieldValues encodes a ReferenceType GetValues command for the
// given static fields.
func (c *Codec) EncodeStaticFieldValues(ty ReferenceTypeID, fields ...FieldID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeGetValues, struct {
		Ty     ReferenceTypeID
		Fields []FieldID
	}{ty, fields})
}

// DecodeStaticFieldValuesReply decodes the body of a ReferenceType GetValues
// reply: one tagged value per requested field, in request order.
func (c *Codec) DecodeStaticFieldValuesReply(data []byte) (ValueSlice, error) {
	res := ValueSlice{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeSourceFile encodes a ReferenceType SourceFile command.
func (c *Codec) EncodeSourceFile(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeSourceFile, ty)
}

// DecodeSourceFileReply decodes the body of a SourceFile reply.
func (c *Codec) DecodeSourceFileReply(data []byte) (string, error) {
	var res string
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeNestedTypes encodes a ReferenceType NestedTypes command.
func (c *Codec) EncodeNestedTypes(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeNestedTypes, ty)
}

// DecodeNestedTypesReply decodes the body of a NestedTypes reply.
func (c *Codec) DecodeNestedTypesReply(data []byte) ([]ObjectType, error) {
	res := []ObjectType{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeTypeStatus encodes a ReferenceType Status command.
func (c *Codec) EncodeTypeStatus(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeStatus, ty)
}

// DecodeTypeStatusReply decodes the body of a Status reply.
func (c *Codec) DecodeTypeStatusReply(data []byte) (ClassStatus, error) {
	res := ClassStatus(0)
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeImplemented encodes a ReferenceType Interfaces command, listing the
// interfaces directly implemented or extended by the type.
func (c *Codec) EncodeImplemented(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeInterfaces, ty)
}

// DecodeImplementedReply decodes the body of an Interfaces reply.
func (c *Codec) DecodeImplementedReply(data []byte) ([]InterfaceID, error) {
	res := []InterfaceID{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeClassObject encodes a ReferenceType ClassObject command.
func (c *Codec) EncodeClassObject(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeClassObject, ty)
}

// DecodeClassObjectReply decodes the body of a ClassObject reply.
func (c *Codec) DecodeClassObjectReply(data []byte) (ClassObjectID, error) {
	res := ClassObjectID(0)
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeSourceDebugExtension encodes a ReferenceType SourceDebugExtension
// command.
func (c *Codec) EncodeSourceDebugExtension(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeSourceDebugExtension, ty)
}

// DecodeSourceDebugExtensionReply decodes the body of a
// SourceDebugExtension reply.
func (c *Codec) DecodeSourceDebugExtensionReply(data []byte) (string, error) {
	var res string
	err := c.decodeReply(data, &res)
	return res, err
}

// TypeSignatureWithGeneric is a type's JNI signature along with its generic
// signature, if there is one.
type TypeSignatureWithGeneric struct {
	Signature        string
	GenericSignature string
}

// EncodeTypeSignatureWithGeneric encodes a ReferenceType
// SignatureWithGeneric command.
func (c *Codec) EncodeTypeSignatureWithGeneric(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeSignatureWithGeneric, ty)
}

// DecodeTypeSignatureWithGenericReply decodes the body of a
// SignatureWithGeneric reply.
func (c *Codec) DecodeTypeSignatureWithGenericReply(data []byte) (TypeSignatureWithGeneric, error) {
	res := TypeSignatureWithGeneric{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeFieldsWithGeneric encodes a ReferenceType FieldsWithGeneric command.
func (c *Codec) EncodeFieldsWithGeneric(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeFieldsWithGeneric, ty)
}

// DecodeFieldsWithGenericReply decodes the body of a FieldsWithGeneric
// reply.
func (c *Codec) DecodeFieldsWithGenericReply(data []byte) ([]FieldWithGeneric, error) {
	res := []FieldWithGeneric{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeMethodsWithGeneric encodes a ReferenceType MethodsWithGeneric
// command.
func (c *Codec) EncodeMethodsWithGeneric(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeMethodsWithGeneric, ty)
}

// DecodeMethodsWithGenericReply decodes the body of a MethodsWithGeneric
// reply.
func (c *Codec) DecodeMethodsWithGenericReply(data []byte) ([]MethodWithGeneric, error) {
	res := []MethodWithGeneric{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeInstances encodes a ReferenceType Instances command. A maxInstances
// of 0 requests all instances.
func (c *Codec) EncodeInstances(ty ReferenceTypeID, maxInstances int) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeInstances, struct {
		Ty           ReferenceTypeID
		MaxInstances int
	}{ty, maxInstances})
}

// DecodeInstancesReply decodes the body of an Instances reply.
func (c *Codec) DecodeInstancesReply(data []byte) ([]TaggedObjectID, error) {
	res := []TaggedObjectID{}
	err := c.decodeReply(data, &res)
	return res, err
}

// ClassFileVersion describes the class file format version of a type.
type ClassFileVersion struct {
	MajorVersion int
	MinorVersion int
}

// EncodeClassFileVersion encodes a ReferenceType ClassFileVersion command.
func (c *Codec) EncodeClassFileVersion(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeClassFileVersion, ty)
}

// DecodeClassFileVersionReply decodes the body of a ClassFileVersion reply.
func (c *Codec) DecodeClassFileVersionReply(data []byte) (ClassFileVersion, error) {
	res := ClassFileVersion{}
	err := c.decodeReply(data, &res)
	return res, err
}

// ConstantPool is a type's constant pool in class file format.
type ConstantPool struct {
	Count int    // Total number of constant pool entries plus one
	Bytes []byte // Raw bytes of the constant pool
}

// EncodeConstantPool encodes a ReferenceType ConstantPool command.
func (c *Codec) EncodeConstantPool(ty ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdReferenceTypeConstantPool, ty)
}

// DecodeConstantPoolReply decodes the body of a ConstantPool reply.
func (c *Codec) DecodeConstantPoolReply(data []byte) (ConstantPool, error) {
	res := ConstantPool{}
	err := c.decodeReply(data, &res)
	return res, err
}

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

// Version describes the JDWP version.
type Version struct {
	Description string // Text information on the VM version
	JDWPMajor   int    // Major JDWP Version number
	JDWPMinor   int    // Minor JDWP Version number
	Version     string // Target VM JRE version, as in the java.version property
	Name        string // Target VM name, as in the java.vm.name property
}

// EncodeVersion encodes a VirtualMachine Version command.
func (c *Codec) EncodeVersion() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineVersion, nil)
}

// DecodeVersionReply decodes the body of a Version reply.
func (c *Codec) DecodeVersionReply(data []byte) (Version, error) {
	res := Version{}
	err := c.decodeReply(data, &res)
	return res, err
}

// ClassBySignatureInfo describes one loaded class matching a requested
// signature.
type ClassBySignatureInfo struct {
	Kind   TypeTag         // Kind of reference type
	TypeID ReferenceTypeID // Matching loaded reference type
	Status ClassStatus     // The class status
}

// ClassID returns the class identifier for the matched class.
func (c ClassBySignatureInfo) ClassID() ClassID {
	return ClassID(c.TypeID)
}

// EncodeClassesBySignature encodes a ClassesBySignature command for the
// given JNI signature (for example "Ljava/lang/String;").
func (c *Codec) EncodeClassesBySignature(signature string) ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineClassesBySignature, signature)
}

// DecodeClassesBySignatureReply decodes the body of a ClassesBySignature
// reply.
func (c *Codec) DecodeClassesBySignatureReply(data []byte) ([]ClassBySignatureInfo, error) {
	res := []ClassBySignatureInfo{}
	err := c.decodeReply(data, &res)
	return res, err
}

// ClassInfo describes a loaded class.
type ClassInfo struct {
	Kind      TypeTag         // Kind of reference type
	TypeID    ReferenceTypeID // Loaded reference type
	Signature string          // The class signature
	Status    ClassStatus     // The class status
}

// EncodeAllClasses encodes an AllClasses command.
func (c *Codec) EncodeAllClasses() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineAllClasses, nil)
}

// DecodeAllClassesReply decodes the body of an AllClasses reply.
func (c *Codec) DecodeAllClassesReply(data []byte) ([]ClassInfo, error) {
	res := []ClassInfo{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeAllThreads encodes an AllThreads command.
func (c *Codec) EncodeAllThreads() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineAllThreads, nil)
}

// DecodeAllThreadsReply decodes the body of an AllThreads reply.
func (c *Codec) DecodeAllThreadsReply(data []byte) ([]ThreadID, error) {
	res := []ThreadID{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeTopLevelThreadGroups encodes a TopLevelThreadGroups command.
func (c *Codec) EncodeTopLevelThreadGroups() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineTopLevelThreadGroups, nil)
}

// DecodeTopLevelThreadGroupsReply decodes the body of a TopLevelThreadGroups
// reply.
func (c *Codec) DecodeTopLevelThreadGroupsReply(data []byte) ([]ThreadGroupID, error) {
	res := []ThreadGroupID{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeDispose encodes a Dispose command. The reply is an Ack.
func (c *Codec) EncodeDispose() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineDispose, nil)
}

// EncodeIDSizes encodes an IDSizes command. This must be the first command
// issued on a session; its reply fixes the identifier widths used by every
// subsequent command.
func (c *Codec) EncodeIDSizes() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineIDSizes, nil)
}

// DecodeIDSizesReply decodes the body of an IDSizes reply.
func (c *Codec) DecodeIDSizesReply(data []byte) (IDSizes, error) {
	res := IDSizes{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeSuspendAll encodes a VirtualMachine Suspend command, suspending all
// threads. The reply is an Ack.
func (c *Codec) EncodeSuspendAll() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineSuspend, nil)
}

// EncodeResumeAll encodes a VirtualMachine Resume command, resuming all
// threads. The reply is an Ack.
func (c *Codec) EncodeResumeAll() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineResume, nil)
}

// EncodeExit encodes an Exit command terminating the VM with the given exit
// code. The reply is an Ack.
func (c *Codec) EncodeExit(code int) ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineExit, code)
}

// EncodeCreateString encodes a CreateString command.
func (c *Codec) EncodeCreateString(str string) ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineCreateString, str)
}

// DecodeCreateStringReply decodes the body of a CreateString reply.
func (c *Codec) DecodeCreateStringReply(data []byte) (StringID, error) {
	res := StringID(0)
	err := c.decodeReply(data, &res)
	return res, err
}

// Capabilities describes the capabilities of the target VM.
type Capabilities struct {
	CanWatchFieldModification     bool
	CanWatchFieldAccess           bool
	CanGetBytecodes               bool
	CanGetSyntheticAttribute      bool
	CanGetOwnedMonitorInfo        bool
	CanGetCurrentContendedMonitor bool
	CanGetMonitorInfo             bool
}

// EncodeCapabilities encodes a Capabilities command.
func (c *Codec) EncodeCapabilities() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineCapabilities, nil)
}

// DecodeCapabilitiesReply decodes the body of a Capabilities reply.
func (c *Codec) DecodeCapabilitiesReply(data []byte) (Capabilities, error) {
	res := Capabilities{}
	err := c.decodeReply(data, &res)
	return res, err
}

// ClassPaths describes the class path information of the target VM. The
// classpath and bootclasspath lists are siblings; each entry is resolved
// against the base directory.
type ClassPaths struct {
	BaseDir        string
	Classpaths     []string
	Bootclasspaths []string
}

// EncodeClassPaths encodes a ClassPaths command.
func (c *Codec) EncodeClassPaths() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineClassPaths, nil)
}

// DecodeClassPathsReply decodes the body of a ClassPaths reply.
func (c *Codec) DecodeClassPathsReply(data []byte) (ClassPaths, error) {
	res := ClassPaths{}
	err := c.decodeReply(data, &res)
	return res, err
}

// ObjectDisposeRequest names an object to dispose along with the number of
// times its reference count was incremented by the back-end.
type ObjectDisposeRequest struct {
	Object   ObjectID
	RefCount int
}

// EncodeDisposeObjects encodes a DisposeObjects command. The reply is an
// Ack.
func (c *Codec) EncodeDisposeObjects(requests ...ObjectDisposeRequest) ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineDisposeObjects, requests)
}

// EncodeHoldEvents encodes a HoldEvents command. The reply is an Ack.
func (c *Codec) EncodeHoldEvents() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineHoldEvents, nil)
}

// EncodeReleaseEvents encodes a ReleaseEvents command. The reply is an Ack.
func (c *Codec) EncodeReleaseEvents() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineReleaseEvents, nil)
}

// CapabilitiesNew describes the extended capabilities of the target VM. The
// trailing reserved flags are unassigned by the protocol but present on the
// wire.
type CapabilitiesNew struct {
	Capabilities
	CanRedefineClasses               bool
	CanAddMethod                     bool
	CanUnrestrictedlyRedefineClasses bool
	CanPopFrames                     bool
	CanUseInstanceFilters            bool
	CanGetSourceDebugExtension       bool
	CanRequestVMDeathEvent           bool
	CanSetDefaultStratum             bool
	CanGetInstanceInfo               bool
	CanRequestMonitorEvents          bool
	CanGetMonitorFrameInfo           bool
	CanUseSourceNameFilters          bool
	CanGetConstantPool               bool
	CanForceEarlyReturn              bool
	Reserved22                       bool
	Reserved23                       bool
	Reserved24                       bool
	Reserved25                       bool
	Reserved26                       bool
	Reserved27                       bool
	Reserved28                       bool
	Reserved29                       bool
	Reserved30                       bool
	Reserved31                       bool
	Reserved32                       bool
}

// EncodeCapabilitiesNew encodes a CapabilitiesNew command.
func (c *Codec) EncodeCapabilitiesNew() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineCapabilitiesNew, nil)
}

// DecodeCapabilitiesNewReply decodes the body of a CapabilitiesNew reply.
func (c *Codec) DecodeCapabilitiesNewReply(data []byte) (CapabilitiesNew, error) {
	res := CapabilitiesNew{}
	err := c.decodeReply(data, &res)
	return res, err
}

// ClassDefinition pairs a reference type with replacement class file bytes.
type ClassDefinition struct {
	Type      ReferenceTypeID
	Classfile []byte // bytes in JVM class file format
}

// EncodeRedefineClasses encodes a RedefineClasses command. The reply is an
// Ack.
func (c *Codec) EncodeRedefineClasses(classes ...ClassDefinition) ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineRedefineClasses, classes)
}

// EncodeSetDefaultStratum encodes a SetDefaultStratum command. The reply is
// an Ack.
func (c *Codec) EncodeSetDefaultStratum(stratum string) ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineSetDefaultStratum, stratum)
}

// GenericClassInfo describes a loaded class with its generic signature.
type GenericClassInfo struct {
	Kind             TypeTag
	TypeID           ReferenceTypeID
	Signature        string
	GenericSignature string
	Status           ClassStatus
}

// EncodeAllClassesWithGeneric encodes an AllClassesWithGeneric command.
func (c *Codec) EncodeAllClassesWithGeneric() ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineAllClassesWithGeneric, nil)
}

// DecodeAllClassesWithGenericReply decodes the body of an
// AllClassesWithGeneric reply.
func (c *Codec) DecodeAllClassesWithGenericReply(data []byte) ([]GenericClassInfo, error) {
	res := []GenericClassInfo{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EncodeInstanceCounts encodes an InstanceCounts command.
func (c *Codec) EncodeInstanceCounts(types ...ReferenceTypeID) ([]byte, error) {
	return c.encodeCommand(cmdVirtualMachineInstanceCounts, types)
}

// DecodeInstanceCountsReply decodes the body of an InstanceCounts reply. The
// counts are returned in the order the types were requested.
func (c *Codec) DecodeInstanceCountsReply(data []byte) ([]int64, error) {
	res := []int64{}
	err := c.decodeReply(data, &res)
	return res, err
}

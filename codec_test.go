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

package jdwp_test

import (
	"bytes"
	eb "encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylot/jdwp"
	"github.com/skylot/jdwp/data/binary"
	"github.com/skylot/jdwp/data/endian"
)

// body builds a packet body using the same primitives the codec reads with.
func body(build func(w binary.Writer)) []byte {
	buf := bytes.Buffer{}
	w := endian.Writer(&buf, eb.BigEndian)
	build(w)
	if err := w.Error(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func writeString(w binary.Writer, s string) {
	w.Uint32(uint32(len(s)))
	w.Data([]byte(s))
}

func TestEncodeIDSizesPacket(t *testing.T) {
	codec := newCodec(t)
	pkt, err := codec.EncodeIDSizes()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x0b,
		0x00, 0x00, 0x00, 0x00,
		0x00,
		0x01, 0x07,
	}, pkt)
}

func TestEncodeSuspendAllPacket(t *testing.T) {
	codec := newCodec(t)
	pkt, err := codec.EncodeSuspendAll()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x0b,
		0x00, 0x00, 0x00, 0x00,
		0x00,
		0x01, 0x08,
	}, pkt)
}

func TestEncodeExitPacket(t *testing.T) {
	codec := newCodec(t)
	pkt, err := codec.EncodeExit(42)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x0f,
		0x00, 0x00, 0x00, 0x00,
		0x00,
		0x01, 0x0a,
		0x00, 0x00, 0x00, 0x2a,
	}, pkt)
}

func TestEncodeClassesBySignaturePacket(t *testing.T) {
	codec := newCodec(t)
	pkt, err := codec.EncodeClassesBySignature("Ljava/lang/String;")
	require.NoError(t, err)

	require.Equal(t, 33, len(pkt))
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x21}, pkt[0:4])
	assert.Equal(t, []byte{0x01, 0x02}, pkt[9:11])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x12}, pkt[11:15])
	assert.Equal(t, []byte("Ljava/lang/String;"), pkt[15:])
}

func TestEveryEncoderSatisfiesHeaderInvariants(t *testing.T) {
	codec := newCodec(t)
	encoders := []struct {
		name   string
		encode func() ([]byte, error)
	}{
		{"Version", codec.EncodeVersion},
		{"AllClasses", codec.EncodeAllClasses},
		{"AllThreads", codec.EncodeAllThreads},
		{"TopLevelThreadGroups", codec.EncodeTopLevelThreadGroups},
		{"Dispose", codec.EncodeDispose},
		{"CreateString", func() ([]byte, error) { return codec.EncodeCreateString("x") }},
		{"Capabilities", codec.EncodeCapabilities},
		{"CapabilitiesNew", codec.EncodeCapabilitiesNew},
		{"ClassPaths", codec.EncodeClassPaths},
		{"DisposeObjects", func() ([]byte, error) {
			return codec.EncodeDisposeObjects(jdwp.ObjectDisposeRequest{Object: 1, RefCount: 2})
		}},
		{"HoldEvents", codec.EncodeHoldEvents},
		{"ReleaseEvents", codec.EncodeReleaseEvents},
		{"RedefineClasses", func() ([]byte, error) {
			return codec.EncodeRedefineClasses(jdwp.ClassDefinition{Type: 1, Classfile: []byte{0xca, 0xfe}})
		}},
		{"SetDefaultStratum", func() ([]byte, error) { return codec.EncodeSetDefaultStratum("Java") }},
		{"AllClassesWithGeneric", codec.EncodeAllClassesWithGeneric},
		{"InstanceCounts", func() ([]byte, error) { return codec.EncodeInstanceCounts(1, 2) }},
		{"TypeSignature", func() ([]byte, error) { return codec.EncodeTypeSignature(1) }},
		{"TypeClassLoader", func() ([]byte, error) { return codec.EncodeTypeClassLoader(1) }},
		{"TypeModifiers", func() ([]byte, error) { return codec.EncodeTypeModifiers(1) }},
		{"Fields", func() ([]byte, error) { return codec.EncodeFields(1) }},
		{"Methods", func() ([]byte, error) { return codec.EncodeMethods(1) }},
		{"StaticFieldValues", func() ([]byte, error) { return codec.EncodeStaticFieldValues(1, 2, 3) }},
		{"SourceFile", func() ([]byte, error) { return codec.EncodeSourceFile(1) }},
		{"NestedTypes", func() ([]byte, error) { return codec.EncodeNestedTypes(1) }},
		{"TypeStatus", func() ([]byte, error) { return codec.EncodeTypeStatus(1) }},
		{"Implemented", func() ([]byte, error) { return codec.EncodeImplemented(1) }},
		{"ClassObject", func() ([]byte, error) { return codec.EncodeClassObject(1) }},
		{"SourceDebugExtension", func() ([]byte, error) { return codec.EncodeSourceDebugExtension(1) }},
		{"TypeSignatureWithGeneric", func() ([]byte, error) { return codec.EncodeTypeSignatureWithGeneric(1) }},
		{"FieldsWithGeneric", func() ([]byte, error) { return codec.EncodeFieldsWithGeneric(1) }},
		{"MethodsWithGeneric", func() ([]byte, error) { return codec.EncodeMethodsWithGeneric(1) }},
		{"Instances", func() ([]byte, error) { return codec.EncodeInstances(1, 10) }},
		{"ClassFileVersion", func() ([]byte, error) { return codec.EncodeClassFileVersion(1) }},
		{"ConstantPool", func() ([]byte, error) { return codec.EncodeConstantPool(1) }},
		{"Superclass", func() ([]byte, error) { return codec.EncodeSuperclass(1) }},
		{"SetStaticFieldValues", func() ([]byte, error) {
			return codec.EncodeSetStaticFieldValues(1, jdwp.FieldAssignment{Field: 2, Value: int(3)})
		}},
		{"InvokeStaticMethod", func() ([]byte, error) {
			return codec.EncodeInvokeStaticMethod(1, 2, 3, jdwp.InvokeSingleThreaded, int(4))
		}},
		{"NewInstance", func() ([]byte, error) { return codec.EncodeNewInstance(1, 2, 3, 0) }},
		{"NewArrayInstance", func() ([]byte, error) { return codec.EncodeNewArrayInstance(1, 16) }},
		{"LineTable", func() ([]byte, error) { return codec.EncodeLineTable(1, 2) }},
		{"VariableTable", func() ([]byte, error) { return codec.EncodeVariableTable(1, 2) }},
		{"Bytecodes", func() ([]byte, error) { return codec.EncodeBytecodes(1, 2) }},
		{"IsObsolete", func() ([]byte, error) { return codec.EncodeIsObsolete(1, 2) }},
		{"VariableTableWithGeneric", func() ([]byte, error) { return codec.EncodeVariableTableWithGeneric(1, 2) }},
		{"ObjectType", func() ([]byte, error) { return codec.EncodeObjectType(1) }},
		{"FieldValues", func() ([]byte, error) { return codec.EncodeFieldValues(1, 2) }},
		{"SetFieldValues", func() ([]byte, error) {
			return codec.EncodeSetFieldValues(1, jdwp.FieldAssignment{Field: 2, Value: int(3)})
		}},
		{"MonitorInfo", func() ([]byte, error) { return codec.EncodeMonitorInfo(1) }},
		{"InvokeMethod", func() ([]byte, error) { return codec.EncodeInvokeMethod(1, 2, 3, 4, 0) }},
		{"DisableCollection", func() ([]byte, error) { return codec.EncodeDisableCollection(1) }},
		{"EnableCollection", func() ([]byte, error) { return codec.EncodeEnableCollection(1) }},
		{"IsCollected", func() ([]byte, error) { return codec.EncodeIsCollected(1) }},
		{"ReferringObjects", func() ([]byte, error) { return codec.EncodeReferringObjects(1, 0) }},
		{"StringValue", func() ([]byte, error) { return codec.EncodeStringValue(1) }},
		{"ThreadName", func() ([]byte, error) { return codec.EncodeThreadName(1) }},
		{"Suspend", func() ([]byte, error) { return codec.EncodeSuspend(1) }},
		{"Resume", func() ([]byte, error) { return codec.EncodeResume(1) }},
		{"ThreadStatus", func() ([]byte, error) { return codec.EncodeThreadStatus(1) }},
		{"ThreadGroup", func() ([]byte, error) { return codec.EncodeThreadGroup(1) }},
		{"Frames", func() ([]byte, error) { return codec.EncodeFrames(1, 0, -1) }},
		{"FrameCount", func() ([]byte, error) { return codec.EncodeFrameCount(1) }},
		{"OwnedMonitors", func() ([]byte, error) { return codec.EncodeOwnedMonitors(1) }},
		{"CurrentContendedMonitor", func() ([]byte, error) { return codec.EncodeCurrentContendedMonitor(1) }},
		{"Stop", func() ([]byte, error) { return codec.EncodeStop(1, 2) }},
		{"Interrupt", func() ([]byte, error) { return codec.EncodeInterrupt(1) }},
		{"SuspendCount", func() ([]byte, error) { return codec.EncodeSuspendCount(1) }},
		{"OwnedMonitorsStackDepthInfo", func() ([]byte, error) { return codec.EncodeOwnedMonitorsStackDepthInfo(1) }},
		{"ForceEarlyReturn", func() ([]byte, error) { return codec.EncodeForceEarlyReturn(1, int(0)) }},
		{"ThreadGroupName", func() ([]byte, error) { return codec.EncodeThreadGroupName(1) }},
		{"ThreadGroupParent", func() ([]byte, error) { return codec.EncodeThreadGroupParent(1) }},
		{"ThreadGroupChildren", func() ([]byte, error) { return codec.EncodeThreadGroupChildren(1) }},
		{"ArrayLength", func() ([]byte, error) { return codec.EncodeArrayLength(1) }},
		{"ArrayGetValues", func() ([]byte, error) { return codec.EncodeArrayGetValues(1, 0, 4) }},
		{"ArraySetValues", func() ([]byte, error) { return codec.EncodeArraySetValues(1, 0, int(1), int(2)) }},
		{"VisibleClasses", func() ([]byte, error) { return codec.EncodeVisibleClasses(1) }},
		{"EventRequestSet", func() ([]byte, error) {
			return codec.EncodeEventRequestSet(jdwp.Breakpoint, jdwp.SuspendAll)
		}},
		{"EventRequestClear", func() ([]byte, error) { return codec.EncodeEventRequestClear(jdwp.Breakpoint, 1) }},
		{"ClearAllBreakpoints", codec.EncodeClearAllBreakpoints},
		{"FrameGetValues", func() ([]byte, error) {
			return codec.EncodeFrameGetValues(1, 2, jdwp.VariableRequest{Index: 0, Tag: jdwp.TagInt})
		}},
		{"FrameSetValues", func() ([]byte, error) {
			return codec.EncodeFrameSetValues(1, 2, jdwp.VariableAssignmentRequest{Index: 0, Value: int(3)})
		}},
		{"ThisObject", func() ([]byte, error) { return codec.EncodeThisObject(1, 2) }},
		{"PopFrames", func() ([]byte, error) { return codec.EncodePopFrames(1, 2) }},
		{"ReflectedType", func() ([]byte, error) { return codec.EncodeReflectedType(1) }},
	}

	for _, test := range encoders {
		pkt, err := test.encode()
		require.NoError(t, err, test.name)

		length, err := jdwp.ReadLength(pkt)
		require.NoError(t, err, test.name)
		assert.Equal(t, uint32(len(pkt)), length, test.name)

		flags, err := jdwp.ReadFlags(pkt)
		require.NoError(t, err, test.name)
		assert.Equal(t, uint8(0), flags, test.name)

		id, err := jdwp.ReadPacketID(pkt)
		require.NoError(t, err, test.name)
		assert.Equal(t, uint32(0), id, test.name)

		assert.False(t, jdwp.IsReply(pkt), test.name)
		assert.False(t, jdwp.IsEvent(pkt), test.name)
	}
}

func TestDecodeIDSizesReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		w.Int32(8)
		w.Int32(8)
		w.Int32(8)
		w.Int32(8)
		w.Int32(8)
	})
	sizes, err := codec.DecodeIDSizesReply(data)
	require.NoError(t, err)
	assert.Equal(t, jdwp.DefaultIDSizes(), sizes)
}

func TestDecodeVersionReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		writeString(w, "Java Debug Wire Protocol")
		w.Int32(1)
		w.Int32(8)
		writeString(w, "1.8.0_292")
		writeString(w, "OpenJDK 64-Bit Server VM")
	})

	version, err := codec.DecodeVersionReply(data)
	require.NoError(t, err)
	assert.Equal(t, jdwp.Version{
		Description: "Java Debug Wire Protocol",
		JDWPMajor:   1,
		JDWPMinor:   8,
		Version:     "1.8.0_292",
		Name:        "OpenJDK 64-Bit Server VM",
	}, version)
}

func TestDecodeClassesBySignatureReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		w.Uint32(1)
		w.Uint8(uint8(jdwp.Class))
		w.Uint64(0x55)
		w.Int32(7)
	})

	classes, err := codec.DecodeClassesBySignatureReply(data)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, jdwp.Class, classes[0].Kind)
	assert.Equal(t, jdwp.ReferenceTypeID(0x55), classes[0].TypeID)
	assert.Equal(t, jdwp.ClassID(0x55), classes[0].ClassID())
	assert.Equal(t, jdwp.StatusVerified|jdwp.StatusPrepared|jdwp.StatusInitialized, classes[0].Status)
}

func TestDecodeFieldsReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		w.Uint32(2)
		w.Uint64(1)
		writeString(w, "value")
		writeString(w, "I")
		w.Int32(int32(jdwp.ModPrivate))
		w.Uint64(2)
		writeString(w, "CACHE")
		writeString(w, "Ljava/util/Map;")
		w.Int32(int32(jdwp.ModStatic | jdwp.ModFinal))
	})

	fields, err := codec.DecodeFieldsReply(data)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "value", fields[0].Name)
	assert.True(t, fields[0].ModBits.Private())
	assert.Equal(t, jdwp.FieldID(2), fields[1].ID)
	assert.True(t, fields[1].ModBits.Static())
	assert.NotNil(t, fields.FindByName("CACHE"))
	assert.Nil(t, fields.FindByName("missing"))
}

func TestDecodeMethodsReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		w.Uint32(1)
		w.Uint64(3)
		writeString(w, "add")
		writeString(w, "(II)I")
		w.Int32(int32(jdwp.ModPublic | jdwp.ModStatic))
	})

	methods, err := codec.DecodeMethodsReply(data)
	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, jdwp.MethodID(3), methods[0].ID)
	assert.NotNil(t, methods.FindBySignature("add", "(II)I"))
	assert.Nil(t, methods.FindBySignature("add", "(I)I"))
}

func TestDecodeStaticFieldValuesReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		w.Uint32(2)
		w.Uint8(uint8(jdwp.TagInt))
		w.Int32(42)
		w.Uint8(uint8(jdwp.TagString))
		w.Uint64(0x99)
	})

	values, err := codec.DecodeStaticFieldValuesReply(data)
	require.NoError(t, err)
	assert.Equal(t, jdwp.ValueSlice{int(42), jdwp.StringID(0x99)}, values)
}

func TestDecodeClassPathsReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		writeString(w, "/work")
		w.Uint32(2)
		writeString(w, "lib/a.jar")
		writeString(w, "classes")
		w.Uint32(1)
		writeString(w, "jre/lib/rt.jar")
	})

	paths, err := codec.DecodeClassPathsReply(data)
	require.NoError(t, err)
	assert.Equal(t, jdwp.ClassPaths{
		BaseDir:        "/work",
		Classpaths:     []string{"lib/a.jar", "classes"},
		Bootclasspaths: []string{"jre/lib/rt.jar"},
	}, paths)
}

func TestDecodeCapabilitiesNewReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		for i := 0; i < 32; i++ {
			w.Bool(i%2 == 0)
		}
	})

	caps, err := codec.DecodeCapabilitiesNewReply(data)
	require.NoError(t, err)
	assert.True(t, caps.CanWatchFieldModification) // flag 1
	assert.False(t, caps.CanWatchFieldAccess)      // flag 2
	assert.True(t, caps.CanGetMonitorInfo)         // flag 7
	assert.False(t, caps.CanRedefineClasses)       // flag 8
	assert.True(t, caps.Reserved31)
	assert.False(t, caps.Reserved32)
}

func TestDecodeInvokeStaticMethodReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		w.Uint8(uint8(jdwp.TagInt))
		w.Int32(10)
		w.Uint8(uint8(jdwp.TagObject))
		w.Uint64(0)
	})

	res, err := codec.DecodeInvokeStaticMethodReply(data)
	require.NoError(t, err)
	assert.Equal(t, int(10), res.Result)
	assert.Equal(t, jdwp.TaggedObjectID{Type: jdwp.TagObject, Object: 0}, res.Exception)
}

func TestDecodeLineTableReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		w.Int64(0)
		w.Int64(20)
		w.Uint32(2)
		w.Int64(0)
		w.Int32(10)
		w.Int64(5)
		w.Int32(11)
	})

	table, err := codec.DecodeLineTableReply(data)
	require.NoError(t, err)
	assert.Equal(t, jdwp.LineTable{
		Start: 0,
		End:   20,
		Lines: []jdwp.LineTableEntry{{0, 10}, {5, 11}},
	}, table)
}

func TestDecodeVariableTableReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		w.Int32(1)
		w.Uint32(2)
		w.Uint64(0)
		writeString(w, "this")
		writeString(w, "LCalculator;")
		w.Int32(20)
		w.Int32(0)
		w.Uint64(4)
		writeString(w, "i")
		writeString(w, "I")
		w.Int32(16)
		w.Int32(1)
	})

	table, err := codec.DecodeVariableTableReply(data)
	require.NoError(t, err)
	assert.Equal(t, 1, table.ArgCount)
	require.Len(t, table.Slots, 2)
	assert.Equal(t, "this", table.Slots[0].Name)

	args := table.ArgumentSlots()
	require.Len(t, args, 1)
	assert.Equal(t, "this", args[0].Name)
}

func TestDecodeFramesReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		w.Uint32(1)
		w.Uint64(7)
		w.Uint8(uint8(jdwp.Class))
		w.Uint64(2)
		w.Uint64(3)
		w.Uint64(0x10)
	})

	frames, err := codec.DecodeFramesReply(data)
	require.NoError(t, err)
	assert.Equal(t, []jdwp.FrameInfo{{
		Frame: 7,
		Location: jdwp.Location{
			Type:     jdwp.Class,
			Class:    2,
			Method:   3,
			Location: 0x10,
		},
	}}, frames)
}

func TestDecodeThreadGroupChildrenReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		w.Uint32(2)
		w.Uint64(1)
		w.Uint64(2)
		w.Uint32(1)
		w.Uint64(3)
	})

	children, err := codec.DecodeThreadGroupChildrenReply(data)
	require.NoError(t, err)
	assert.Equal(t, jdwp.ThreadGroupChildren{
		ChildThreads: []jdwp.ThreadID{1, 2},
		ChildGroups:  []jdwp.ThreadGroupID{3},
	}, children)
}

func TestDecodeConstantPoolReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) {
		w.Int32(3)
		w.Uint32(4)
		w.Data([]byte{0xca, 0xfe, 0xba, 0xbe})
	})

	pool, err := codec.DecodeConstantPoolReply(data)
	require.NoError(t, err)
	assert.Equal(t, 3, pool.Count)
	assert.Equal(t, []byte{0xca, 0xfe, 0xba, 0xbe}, pool.Bytes)
}

func TestDecodeReplyInsufficientData(t *testing.T) {
	codec := newCodec(t)

	_, err := codec.DecodeVersionReply([]byte{0x00, 0x00})
	assert.ErrorIs(t, err, jdwp.ErrInsufficientData)

	_, err = codec.DecodeIDSizesReply([]byte{0x00, 0x00, 0x00, 0x08})
	assert.ErrorIs(t, err, jdwp.ErrInsufficientData)

	// A string length running past the end of the body.
	data := body(func(w binary.Writer) { w.Uint32(100) })
	_, err = codec.DecodeVersionReply(data)
	assert.ErrorIs(t, err, jdwp.ErrInsufficientData)
}

func TestEncodeEventRequestSet(t *testing.T) {
	codec := newCodec(t)
	pkt, err := codec.EncodeEventRequestSet(jdwp.Breakpoint, jdwp.SuspendAll,
		jdwp.CountEventModifier(1),
		jdwp.ClassMatchEventModifier("Foo*"),
	)
	require.NoError(t, err)

	expected := append([]byte{
		0x00, 0x00, 0x00, 0x1f,
		0x00, 0x00, 0x00, 0x00,
		0x00,
		0x0f, 0x01,
		0x02,                   // eventKind Breakpoint
		0x02,                   // suspendPolicy All
		0x00, 0x00, 0x00, 0x02, // two modifiers
		0x01,                   // modKind Count
		0x00, 0x00, 0x00, 0x01, // count 1
		0x05,                   // modKind ClassMatch
		0x00, 0x00, 0x00, 0x04, // pattern length
	}, []byte("Foo*")...)
	assert.Equal(t, expected, pkt)
}

func TestEncodeEventRequestSetIDModifiers(t *testing.T) {
	sizes := jdwp.IDSizes{
		FieldIDSize:         4,
		MethodIDSize:        4,
		ObjectIDSize:        4,
		ReferenceTypeIDSize: 4,
		FrameIDSize:         4,
	}
	codec, err := jdwp.NewCodec(sizes)
	require.NoError(t, err)

	pkt, err := codec.EncodeEventRequestSet(jdwp.MethodEntry, jdwp.SuspendEventThread,
		jdwp.ThreadOnlyEventModifier(0x0102),
		jdwp.ClassOnlyEventModifier(0x0304),
		jdwp.InstanceOnlyEventModifier(0x0506),
	)
	require.NoError(t, err)

	// Thread, class and instance ids all use the negotiated 4-byte width.
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x20,
		0x00, 0x00, 0x00, 0x00,
		0x00,
		0x0f, 0x01,
		0x28,
		0x01,
		0x00, 0x00, 0x00, 0x03,
		0x03, 0x00, 0x00, 0x01, 0x02,
		0x04, 0x00, 0x00, 0x03, 0x04,
		0x0b, 0x00, 0x00, 0x05, 0x06,
	}, pkt)
}

func TestEncodeEventRequestSetStructModifiers(t *testing.T) {
	codec := newCodec(t)
	pkt, err := codec.EncodeEventRequestSet(jdwp.Exception, jdwp.SuspendNone,
		jdwp.ExceptionOnlyEventModifier{ExceptionOrNull: 1, Caught: true, Uncaught: false},
		jdwp.StepEventModifier{Thread: 2, Size: 1, Depth: 0},
		jdwp.LocationOnlyEventModifier{Type: jdwp.Class, Class: 3, Method: 4, Location: 5},
		jdwp.SourceNameMatchEventModifier("*.kt"),
	)
	require.NoError(t, err)

	length, err := jdwp.ReadLength(pkt)
	require.NoError(t, err)
	assert.Equal(t, uint32(len(pkt)), length)

	// kind + policy + count.
	offset := jdwp.PacketHeaderSize + 1 + 1 + 4
	assert.Equal(t, uint8(8), pkt[offset]) // ExceptionOnly
	offset += 1 + 8 + 1 + 1
	assert.Equal(t, uint8(10), pkt[offset]) // Step
	offset += 1 + 8 + 4 + 4
	assert.Equal(t, uint8(7), pkt[offset]) // LocationOnly
	offset += 1 + 1 + 8 + 8 + 8
	assert.Equal(t, uint8(12), pkt[offset]) // SourceNameMatch
	offset += 1 + 4 + 4
	assert.Equal(t, len(pkt), offset)
}

func TestDecodeEventRequestSetReply(t *testing.T) {
	codec := newCodec(t)
	data := body(func(w binary.Writer) { w.Int32(77) })
	id, err := codec.DecodeEventRequestSetReply(data)
	require.NoError(t, err)
	assert.Equal(t, jdwp.EventRequestID(77), id)
}

func TestSmallIDSizesRoundTrip(t *testing.T) {
	sizes := jdwp.IDSizes{
		FieldIDSize:         2,
		MethodIDSize:        4,
		ObjectIDSize:        4,
		ReferenceTypeIDSize: 8,
		FrameIDSize:         1,
	}
	codec, err := jdwp.NewCodec(sizes)
	require.NoError(t, err)

	// Value payloads follow ObjectIDSize.
	data, err := codec.EncodeValue(jdwp.ObjectID(0x01020304))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x4c, 0x01, 0x02, 0x03, 0x04}, data)

	// Frames replies mix FrameID and ReferenceTypeID widths.
	reply := body(func(w binary.Writer) {
		w.Uint32(1)
		w.Uint8(9) // frame id, 1 byte
		w.Uint8(uint8(jdwp.Class))
		w.Uint64(2)              // class id, 8 bytes
		binary.WriteUint(w, 4, 3) // method id, 4 bytes
		w.Uint64(0x10)
	})
	frames, err := codec.DecodeFramesReply(reply)
	require.NoError(t, err)
	assert.Equal(t, jdwp.FrameID(9), frames[0].Frame)
	assert.Equal(t, jdwp.MethodID(3), frames[0].Location.Method)
}

func TestNewCodecRejectsBadSizes(t *testing.T) {
	_, err := jdwp.NewCodec(jdwp.IDSizes{
		FieldIDSize:         3,
		MethodIDSize:        8,
		ObjectIDSize:        8,
		ReferenceTypeIDSize: 8,
		FrameIDSize:         8,
	})
	assert.Error(t, err)
}

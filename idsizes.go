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

import "github.com/pkg/errors"

// IDSizes describes the byte widths of all the variably sized identifier
// types. The widths are negotiated once per session with the
// VirtualMachine IDSizes command, before any other identifier-carrying
// command is sent, and are fixed for the session's lifetime.
type IDSizes struct {
	FieldIDSize         int32 // FieldID size in bytes
	MethodIDSize        int32 // MethodID size in bytes
	ObjectIDSize        int32 // ObjectID size in bytes
	ReferenceTypeIDSize int32 // ReferenceTypeID size in bytes
	FrameIDSize         int32 // FrameID size in bytes
}

// DefaultIDSizes returns the sizes used by every mainstream VM: 8 bytes for
// each identifier kind.
func DefaultIDSizes() IDSizes {
	return IDSizes{
		FieldIDSize:         8,
		MethodIDSize:        8,
		ObjectIDSize:        8,
		ReferenceTypeIDSize: 8,
		FrameIDSize:         8,
	}
}

func (s IDSizes) validate() error {
	for _, size := range []int32{
		s.FieldIDSize, s.MethodIDSize, s.ObjectIDSize, s.ReferenceTypeIDSize, s.FrameIDSize,
	} {
		switch size {
		case 1, 2, 4, 8:
		default:
			return errors.Errorf("invalid identifier size %d", size)
		}
	}
	return nil
}

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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skylot/jdwp"
)

func TestErrorText(t *testing.T) {
	assert.Equal(t, "No error has occurred.", jdwp.ErrNone.Text())
	assert.Equal(t, "The virtual machine is not running.", jdwp.ErrVMDead.Text())
	assert.Equal(t, "An unexpected internal error has occurred.", jdwp.ErrInternal.Text())
	assert.Equal(t,
		"The function needed to allocate memory and no more memory was available for allocation.",
		jdwp.ErrOutOfMemory.Text())
	assert.Equal(t, "", jdwp.Error(9999).Text())
}

func TestErrorImplementsError(t *testing.T) {
	assert.EqualError(t, jdwp.ErrVMDead, "jdwp error 112: The virtual machine is not running.")
	assert.EqualError(t, jdwp.Error(9999), "jdwp error 9999")
}

func TestErrorCodeValues(t *testing.T) {
	for code, want := range map[jdwp.Error]uint16{
		jdwp.ErrNone:              0,
		jdwp.ErrInvalidThread:     10,
		jdwp.ErrInvalidObject:     20,
		jdwp.ErrNotImplemented:    99,
		jdwp.ErrAbsentInformation: 101,
		jdwp.ErrOutOfMemory:       110,
		jdwp.ErrVMDead:            112,
		jdwp.ErrInternal:          113,
		jdwp.ErrInvalidTagValue:   500,
		jdwp.ErrInvalidCount:      512,
	} {
		assert.Equal(t, want, uint16(code))
	}
}

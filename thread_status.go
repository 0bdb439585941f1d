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

import "fmt"

// ThreadStatus is an enumerator of thread execution state.
type ThreadStatus int

const (
	// ThreadZombie describes a thread that has terminated.
	ThreadZombie = ThreadStatus(0)
	// ThreadRunning describes a runnable thread.
	ThreadRunning = ThreadStatus(1)
	// ThreadSleeping describes a thread sleeping in Thread.sleep.
	ThreadSleeping = ThreadStatus(2)
	// ThreadMonitor describes a thread blocked waiting on a monitor.
	ThreadMonitor = ThreadStatus(3)
	// ThreadWait describes a thread waiting in Object.wait.
	ThreadWait = ThreadStatus(4)
)

func (t ThreadStatus) String() string {
	switch t {
	case ThreadZombie:
		return "Zombie"
	case ThreadRunning:
		return "Running"
	case ThreadSleeping:
		return "Sleeping"
	case ThreadMonitor:
		return "Monitor"
	case ThreadWait:
		return "Wait"
	default:
		return fmt.Sprintf("ThreadStatus<%d>", int(t))
	}
}

// SuspendStatus is a bitfield of thread suspension state.
type SuspendStatus int

// SuspendStatusSuspended is set while the thread is suspended by an event or
// a debugger command.
const SuspendStatusSuspended = SuspendStatus(1)

func (s SuspendStatus) String() string {
	if s&SuspendStatusSuspended != 0 {
		return "Suspended"
	}
	return "Running"
}

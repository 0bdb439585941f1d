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

// CompositeEvent is the decoded body of an event packet: a suspend policy
// and one or more events raised together by the VM.
type CompositeEvent struct {
	SuspendPolicy SuspendPolicy
	Events        []Event
}

// Event is the interface implemented by all events raised by the VM.
type Event interface {
	Request() EventRequestID
	Kind() EventKind
}

// DecodeCompositeEvent decodes the body of a composite event packet
// (command set 64, command 100).
func (c *Codec) DecodeCompositeEvent(data []byte) (CompositeEvent, error) {
	res := CompositeEvent{}
	err := c.decodeReply(data, &res)
	return res, err
}

// EventVMStart represents an event raised when the virtual machine is started.
type EventVMStart struct {
	RequestID EventRequestID
	Thread    ThreadID
}

// EventVMDeath represents an event raised when the virtual machine is stopped.
type EventVMDeath struct {
	RequestID EventRequestID
}

// EventSingleStep represents an event raised when a single-step has been completed.
type EventSingleStep struct {
	RequestID EventRequestID
	Thread    ThreadID
	Location  Location
}

// EventBreakpoint represents an event raised when a breakpoint has been hit.
type EventBreakpoint struct {
	RequestID EventRequestID
	Thread    ThreadID
	Location  Location
}

// EventMethodEntry represents an event raised when a method has been entered.
type EventMethodEntry struct {
	RequestID EventRequestID
	Thread    ThreadID
	Location  Location
}

// EventMethodExit represents an event raised when a method has been exited.
type EventMethodExit struct {
	RequestID EventRequestID
	Thread    ThreadID
	Location  Location
}

// EventMethodExitWithReturnValue represents an event raised when a method
// has been exited, carrying the value it returned.
type EventMethodExitWithReturnValue struct {
	RequestID EventRequestID
	Thread    ThreadID
	Location  Location
	Value     Value
}

// EventMonitorContendedEnter represents an event raised when a thread starts
// contending for a monitor.
type EventMonitorContendedEnter struct {
	RequestID EventRequestID
	Thread    ThreadID
	Monitor   TaggedObjectID
	Location  Location
}

// EventMonitorContendedEntered represents an event raised when a thread
// acquires a contended monitor.
type EventMonitorContendedEntered struct {
	RequestID EventRequestID
	Thread    ThreadID
	Monitor   TaggedObjectID
	Location  Location
}

// EventMonitorWait represents an event raised when a thread begins waiting
// on a monitor.
type EventMonitorWait struct {
	RequestID EventRequestID
	Thread    ThreadID
	Monitor   TaggedObjectID
	Location  Location
	Timeout   int64
}

// EventMonitorWaited represents an event raised when a thread finishes
// waiting on a monitor.
type EventMonitorWaited struct {
	RequestID EventRequestID
	Thread    ThreadID
	Monitor   TaggedObjectID
	Location  Location
	TimedOut  bool
}

// EventException represents an event raised when an exception is thrown.
type EventException struct {
	RequestID     EventRequestID
	Thread        ThreadID
	Location      Location
	Exception     TaggedObjectID
	CatchLocation Location
}

// EventThreadStart represents an event raised when a new thread is started.
type EventThreadStart struct {
	RequestID EventRequestID
	Thread    ThreadID
}

// EventThreadDeath represents an event raised when a thread is stopped.
type EventThreadDeath struct {
	RequestID EventRequestID
	Thread    ThreadID
}

// EventClassPrepare represents an event raised when a class enters the prepared state.
type EventClassPrepare struct {
	RequestID EventRequestID
	Thread    ThreadID
	ClassKind TypeTag
	ClassType ReferenceTypeID
	Signature string
	Status    ClassStatus
}

// EventClassUnload represents an event raised when a class is unloaded.
type EventClassUnload struct {
	RequestID EventRequestID
	Signature string
}

// EventFieldAccess represents an event raised when a field is accessed.
type EventFieldAccess struct {
	RequestID EventRequestID
	Thread    ThreadID
	Location  Location
	FieldKind TypeTag
	FieldType ReferenceTypeID
	Field     FieldID
	Object    TaggedObjectID
}

// EventFieldModification represents an event raised when a field is modified.
type EventFieldModification struct {
	RequestID EventRequestID
	Thread    ThreadID
	Location  Location
	FieldKind TypeTag
	FieldType ReferenceTypeID
	Field     FieldID
	Object    TaggedObjectID
	NewValue  Value
}

// Request returns the identifier of the event request that raised the event,
// or 0 for automatically generated events.
func (e EventVMStart) Request() EventRequestID                   { return e.RequestID }
func (e EventVMDeath) Request() EventRequestID                   { return e.RequestID }
func (e EventSingleStep) Request() EventRequestID                { return e.RequestID }
func (e EventBreakpoint) Request() EventRequestID                { return e.RequestID }
func (e EventMethodEntry) Request() EventRequestID               { return e.RequestID }
func (e EventMethodExit) Request() EventRequestID                { return e.RequestID }
func (e EventMethodExitWithReturnValue) Request() EventRequestID { return e.RequestID }
func (e EventMonitorContendedEnter) Request() EventRequestID     { return e.RequestID }
func (e EventMonitorContendedEntered) Request() EventRequestID   { return e.RequestID }
func (e EventMonitorWait) Request() EventRequestID               { return e.RequestID }
func (e EventMonitorWaited) Request() EventRequestID             { return e.RequestID }
func (e EventException) Request() EventRequestID                 { return e.RequestID }
func (e EventThreadStart) Request() EventRequestID               { return e.RequestID }
func (e EventThreadDeath) Request() EventRequestID               { return e.RequestID }
func (e EventClassPrepare) Request() EventRequestID              { return e.RequestID }
func (e EventClassUnload) Request() EventRequestID               { return e.RequestID }
func (e EventFieldAccess) Request() EventRequestID               { return e.RequestID }
func (e EventFieldModification) Request() EventRequestID         { return e.RequestID }

// Kind returns VMStart
func (EventVMStart) Kind() EventKind { return VMStart }

// Kind returns VMDeath
func (EventVMDeath) Kind() EventKind { return VMDeath }

// Kind returns SingleStep
func (EventSingleStep) Kind() EventKind { return SingleStep }

// Kind returns Breakpoint
func (EventBreakpoint) Kind() EventKind { return Breakpoint }

// Kind returns MethodEntry
func (EventMethodEntry) Kind() EventKind { return MethodEntry }

// Kind returns MethodExit
func (EventMethodExit) Kind() EventKind { return MethodExit }

// Kind returns MethodExitWithReturnValue
func (EventMethodExitWithReturnValue) Kind() EventKind { return MethodExitWithReturnValue }

// Kind returns MonitorContendedEnter
func (EventMonitorContendedEnter) Kind() EventKind { return MonitorContendedEnter }

// Kind returns MonitorContendedEntered
func (EventMonitorContendedEntered) Kind() EventKind { return MonitorContendedEntered }

// Kind returns MonitorWait
func (EventMonitorWait) Kind() EventKind { return MonitorWait }

// Kind returns MonitorWaited
func (EventMonitorWaited) Kind() EventKind { return MonitorWaited }

// Kind returns Exception
func (EventException) Kind() EventKind { return Exception }

// Kind returns ThreadStart
func (EventThreadStart) Kind() EventKind { return ThreadStart }

// Kind returns ThreadDeath
func (EventThreadDeath) Kind() EventKind { return ThreadDeath }

// Kind returns ClassPrepare
func (EventClassPrepare) Kind() EventKind { return ClassPrepare }

// Kind returns ClassUnload
func (EventClassUnload) Kind() EventKind { return ClassUnload }

// Kind returns FieldAccess
func (EventFieldAccess) Kind() EventKind { return FieldAccess }

// Kind returns FieldModification
func (EventFieldModification) Kind() EventKind { return FieldModification }

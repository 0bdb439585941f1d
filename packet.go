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

import (
	eb "encoding/binary"

	"github.com/pkg/errors"
)

// JDWP uses the following layouts for all communication:
//
// struct cmdPacket {
//   length uint32       4 bytes
//   id     uint32       4 bytes
//   flags  uint8        1 byte
//   cmdSet uint8        1 byte
//   cmd    uint8        1 byte
//   data   []byte       N bytes
// }
//
// struct replyPacket {
//   length uint32       4 bytes
//   id     uint32       4 bytes
//   flags  uint8        1 byte
//   err    uint16       2 bytes
//   data   []byte       N bytes
// }

// PacketHeaderSize is the size in bytes of the header shared by command,
// reply and event packets.
const PacketHeaderSize = 11

// FlagReply is the flags bit distinguishing reply packets from command
// packets.
const FlagReply = uint8(0x80)

// Ack is the decoded form of an acknowledgement-only reply: a reply packet
// whose body is empty.
type Ack struct{}

// frameCommand builds a complete command packet around body, with the length
// filled in and the packet id left at zero for the transport to patch.
func frameCommand(cmd cmd, body []byte) []byte {
	pkt := make([]byte, PacketHeaderSize+len(body))
	eb.BigEndian.PutUint32(pkt[0:4], uint32(len(pkt)))
	pkt[9] = uint8(cmd.set)
	pkt[10] = uint8(cmd.id)
	copy(pkt[PacketHeaderSize:], body)
	return pkt
}

func checkHeader(packet []byte) error {
	if len(packet) < PacketHeaderSize {
		return errors.Wrapf(ErrInsufficientData, "packet header needs %d bytes, have %d",
			PacketHeaderSize, len(packet))
	}
	return nil
}

// ReadLength returns the total packet length declared in the header.
func ReadLength(packet []byte) (uint32, error) {
	if err := checkHeader(packet); err != nil {
		return 0, err
	}
	return eb.BigEndian.Uint32(packet[0:4]), nil
}

// ReadPacketID returns the packet's correlation id.
func ReadPacketID(packet []byte) (uint32, error) {
	if err := checkHeader(packet); err != nil {
		return 0, err
	}
	return eb.BigEndian.Uint32(packet[4:8]), nil
}

// ReadFlags returns the packet's flags byte.
func ReadFlags(packet []byte) (uint8, error) {
	if err := checkHeader(packet); err != nil {
		return 0, err
	}
	return packet[8], nil
}

// ReadErrorCode returns the error code of a reply packet. Only meaningful
// when IsReply reports true.
func ReadErrorCode(packet []byte) (Error, error) {
	if err := checkHeader(packet); err != nil {
		return 0, err
	}
	return Error(eb.BigEndian.Uint16(packet[9:11])), nil
}

// ReadCommandSet returns the command set of a command packet. Only
// meaningful when IsReply reports false.
func ReadCommandSet(packet []byte) (uint8, error) {
	if err := checkHeader(packet); err != nil {
		return 0, err
	}
	return packet[9], nil
}

// ReadCommandID returns the command id of a command packet. Only meaningful
// when IsReply reports false.
func ReadCommandID(packet []byte) (uint8, error) {
	if err := checkHeader(packet); err != nil {
		return 0, err
	}
	return packet[10], nil
}

// IsReply returns true if the packet's reply flag is set.
func IsReply(packet []byte) bool {
	flags, err := ReadFlags(packet)
	return err == nil && flags&FlagReply != 0
}

// IsEvent returns true if the packet is a composite event sent by the VM: a
// command packet with the event command set and composite command id.
func IsEvent(packet []byte) bool {
	if IsReply(packet) {
		return false
	}
	set, err := ReadCommandSet(packet)
	if err != nil {
		return false
	}
	id, err := ReadCommandID(packet)
	if err != nil {
		return false
	}
	return cmdSet(set) == cmdSetEvent && cmdID(id) == cmdCompositeEvent
}

// SetPacketID patches the packet's correlation id in place. Encoders emit
// packets with a zero id; the transport assigns the real id just before
// sending.
func SetPacketID(packet []byte, id uint32) error {
	if err := checkHeader(packet); err != nil {
		return err
	}
	eb.BigEndian.PutUint32(packet[4:8], id)
	return nil
}

// Body returns the packet's payload: the bytes after the header.
func Body(packet []byte) ([]byte, error) {
	if err := checkHeader(packet); err != nil {
		return nil, err
	}
	return packet[PacketHeaderSize:], nil
}

// DecodeAck checks that an acknowledgement-only reply carries no body.
func (c *Codec) DecodeAck(data []byte) (Ack, error) {
	if len(data) != 0 {
		return Ack{}, errors.Wrapf(ErrUnexpectedType, "ack reply carries %d unexpected bytes", len(data))
	}
	return Ack{}, nil
}

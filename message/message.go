/*
github.com/imace/galaxy - A distributed in-memory cache-coherence messaging core.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/

package message

import "time"

// Direction records whether a message was built locally for sending, or was
// produced by decoding bytes off the wire.
type Direction uint8

const (
	DirectionOutgoing Direction = iota
	DirectionIncoming
)

// Message is the common surface of every wire message variant. Transient
// fields (peer, direction, timestamp) are never serialized; the rest of the
// accessors mirror the serialized field set of spec.md's data model.
//
// The codec hooks (sizeFlat..setPayloadBuffers) are unexported: every
// implementation lives in this package, so an interface-level "virtual
// dispatch" substitute is enough without exporting internals callers should
// never touch directly.
type Message interface {
	Type() Type
	MessageID() int64
	SetMessageID(id int64)
	Flags() Flags
	IsResponse() bool
	IsBroadcast() bool
	IsReplyRequired() bool
	SetReplyRequired(v bool) error
	Peer() int16
	SetPeer(p int16) error
	Direction() Direction
	Timestamp() time.Time
	SetTimestamp(t time.Time)
	// Line returns the message's cache line, or -1 for variants with no
	// line field (invariant 6).
	Line() int64
	// Size returns the exact number of bytes EncodeFlat will write for m.
	Size() int
	Clone() Message
	CloneDataBuffers() Message

	sizeFlat() int
	writeFlat(mb *MsgBuffer)
	readFlat(r fieldReader) error

	writeVectorHeader(mb *MsgBuffer)
	readVectorHeader(mb *MsgBuffer) ([]int, error)

	payloadBuffers() [][]byte
	setPayloadBuffers(bufs [][]byte) error

	setIncoming()
}

// header carries the fields common to every variant: the wire tag, the
// messageId, the flags bitset, and the transient addressing/bookkeeping
// fields. Every variant struct embeds header (directly or via lineBody) and
// most inherit its accessors unmodified; size1/write1/read1-equivalent
// methods are shadowed by embedding structs that add fields, which call back
// into header's own methods explicitly (Go has no virtual dispatch through
// embedding, so each level calls "super" by naming the embedded field).
type header struct {
	typ       Type
	messageId int64
	flags     Flags
	peer      int16
	direction Direction
	timestamp time.Time
}

func newHeader(t Type) header {
	return header{typ: t, messageId: UnassignedMessageID}
}

func (h *header) Type() Type            { return h.typ }
func (h *header) MessageID() int64       { return h.messageId }
func (h *header) SetMessageID(id int64)  { h.messageId = id }
func (h *header) Flags() Flags          { return h.flags }
func (h *header) IsResponse() bool      { return h.flags&FlagResponse != 0 }
func (h *header) IsBroadcast() bool     { return h.flags&FlagBroadcast != 0 }
func (h *header) IsReplyRequired() bool { return h.flags&FlagReplyRequired != 0 }

func (h *header) SetReplyRequired(v bool) error {
	if h.direction == DirectionIncoming {
		return ErrIncomingStateMutation
	}
	if v {
		h.flags |= FlagReplyRequired
	} else {
		h.flags &^= FlagReplyRequired
	}
	return nil
}

func (h *header) Peer() int16 { return h.peer }

func (h *header) SetPeer(p int16) error {
	if h.direction == DirectionIncoming {
		return ErrIncomingStateMutation
	}
	h.peer = p
	return nil
}

func (h *header) Direction() Direction         { return h.direction }
func (h *header) setIncoming()                 { h.direction = DirectionIncoming }
func (h *header) Timestamp() time.Time         { return h.timestamp }
func (h *header) SetTimestamp(t time.Time)     { h.timestamp = t }

// Line is -1 by default; lineBody shadows this for variants that carry one.
func (h *header) Line() int64 { return -1 }

// sizeFlat/writeFlat/readFlat for the common prefix: [tag:1][messageId:8][flags:1].
// readFlat here only reads messageId+flags: the tag byte is already consumed
// by the dispatcher in codec.go in order to pick which struct to allocate.

func (h *header) sizeFlat() int { return 1 + 8 + 1 }

func (h *header) writeFlat(mb *MsgBuffer) {
	mb.AddByte(byte(h.typ))
	mb.AddInt64(h.messageId)
	mb.AddByte(byte(h.flags))
}

func (h *header) readFlat(r fieldReader) error {
	id, err := r.ReadInt64()
	if err != nil {
		return err
	}
	flagByte, err := r.ReadByte()
	if err != nil {
		return err
	}
	h.messageId = id
	h.flags = Flags(flagByte)
	return nil
}

func (h *header) writeVectorHeader(mb *MsgBuffer) { h.writeFlat(mb) }

func (h *header) readVectorHeader(mb *MsgBuffer) ([]int, error) {
	return nil, h.readFlat(mb)
}

func (h *header) payloadBuffers() [][]byte { return nil }

func (h *header) setPayloadBuffers(bufs [][]byte) error {
	if len(bufs) != 0 {
		return ErrInconsistentLength
	}
	return nil
}

func (h *header) clone() header { return *h }

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

import (
	"sort"

	"github.com/imace/galaxy/config"
)

func newOutgoingRequest(t Type, peer int16) header {
	h := newHeader(t)
	h.peer = peer
	if RequiresResponse(t) {
		h.flags |= FlagReplyRequired
	}
	return h
}

func newOutgoingBroadcast(t Type, peers []int16) header {
	h := newHeader(t)
	h.peer = BroadcastPeer
	h.flags |= FlagBroadcast
	if RequiresResponse(t) {
		h.flags |= FlagReplyRequired
	}
	// The original implementation sorts the destination node list of a
	// broadcast constructor. The list is not part of the wire format (§3)
	// and the header does not keep it: the sorted copy below is not used
	// afterwards, so it affects neither the bytes nor the send order.
	sorted := append([]int16(nil), peers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return h
}

func newResponse(t Type, to Message) (header, error) {
	if to.MessageID() < 0 {
		return header{}, ErrNegativeResponseID
	}
	h := newHeader(t)
	h.peer = to.Peer()
	h.messageId = to.MessageID()
	h.flags = FlagResponse
	return h, nil
}

// NewGet builds an outgoing GET or GETX request for line, addressed to
// peer, with REPLY_REQUIRED set by default (GET and GETX are both in the
// REQUIRES_RESPONSE set).
func NewGet(t Type, peer int16, line int64) (*Get, error) {
	if t != TypeGet && t != TypeGetX {
		return nil, ErrInvalidGetType
	}
	return &Get{lineBody: lineBody{header: newOutgoingRequest(t, peer), line: line}}, nil
}

// NewLineMessage builds a plain outgoing DEL, NOT_FOUND, MSGACK or TIMEOUT
// for line, addressed to peer.
func NewLineMessage(t Type, peer int16, line int64) *LineMessage {
	return &LineMessage{lineBody: lineBody{header: newOutgoingRequest(t, peer), line: line}}
}

// NewInvAck builds a standalone INVACK, not necessarily in reply to a
// received INV (e.g. on eviction).
func NewInvAck(peer int16, line int64) *LineMessage {
	return NewLineMessage(TypeInvAck, peer, line)
}

// NewInvAckResponse builds an INVACK replying to req (an INV).
func NewInvAckResponse(req Message) (*LineMessage, error) {
	h, err := newResponse(TypeInvAck, req)
	if err != nil {
		return nil, err
	}
	return &LineMessage{lineBody: lineBody{header: h, line: req.Line()}}, nil
}

// NewInv builds an outgoing INV for line, recording previousOwner so the
// recipient can forward correctly if ownership moved again in flight.
func NewInv(peer int16, line int64, previousOwner int16) *Inv {
	return &Inv{
		lineBody:      lineBody{header: newOutgoingRequest(TypeInv, peer), line: line},
		previousOwner: previousOwner,
	}
}

// NewPut builds an outgoing PUT response granting line/version/data to a
// requester. PUT is always a response (per the coherence protocol it
// replies to a GET); the caller supplies the request it answers.
func NewPut(req Message, version uint64, data []byte) (*Put, error) {
	if len(data) > config.MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}
	h, err := newResponse(TypePut, req)
	if err != nil {
		return nil, err
	}
	return &Put{lineBody: lineBody{header: h, line: req.Line()}, version: version, payload: data}, nil
}

// NewPutx builds an outgoing PUTX response granting exclusive ownership of
// line/version/data, along with the sharers that must be invalidated.
func NewPutx(req Message, version uint64, sharers []int16, data []byte) (*Putx, error) {
	if len(sharers) > config.MaxSharers {
		return nil, ErrTooManySharers
	}
	if len(data) > config.MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}
	h, err := newResponse(TypePutX, req)
	if err != nil {
		return nil, err
	}
	return &Putx{
		lineBody: lineBody{header: h, line: req.Line()},
		version:  version,
		sharers:  sharers,
		payload:  data,
	}, nil
}

// NewChngdOwnr announces a change of ownership for line. certain is true
// when sent by the node that just became owner, false when relayed as a
// forwarded hint by a third party.
func NewChngdOwnr(peer int16, line int64, certain bool, newOwner int16) *ChngdOwnr {
	return &ChngdOwnr{
		lineBody: lineBody{header: newOutgoingRequest(TypeChngdOwnr, peer), line: line},
		certain:  certain,
		newOwner: newOwner,
	}
}

// NewBackup builds an outgoing BACKUP. The original implementation always
// addresses BACKUP to a single fixed backup node (node 0); this
// constructor preserves that by taking no peer parameter — callers that
// need a different backup peer call SetPeer afterward.
func NewBackup(line int64, version uint64, data []byte) (*Backup, error) {
	if len(data) > config.MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}
	return &Backup{lineBody: lineBody{header: newOutgoingRequest(TypeBackup, 0), line: line}, version: version, payload: data}, nil
}

// Backup is an alias for Put: BACKUP is wire-encoded exactly like PUT
// (spec.md: "BACKUP (encoded as PUT's body)"), so it reuses Put's struct
// and every size1/write1/read1 method; only the type tag differs.
type Backup = Put

// NewBackupAck acknowledges a BACKUP, confirming the stored line/version.
func NewBackupAck(req Message, version uint64) (*BackupAck, error) {
	h, err := newResponse(TypeBackupAck, req)
	if err != nil {
		return nil, err
	}
	return &BackupAck{lineBody: lineBody{header: h, line: req.Line()}, version: version}, nil
}

// NewBackupPacket batches backups into one BACKUP_PACKET identified by id,
// addressed (like BACKUP) to backup node 0 by default.
func NewBackupPacket(id uint64) *BackupPacket {
	return &BackupPacket{header: newOutgoingRequest(TypeBackupPacket, 0), id: id}
}

// AddBackup appends one inlined backup to the packet.
func (m *BackupPacket) AddBackup(line int64, version uint64, data []byte) error {
	if len(data) > config.MaxPayloadLen {
		return ErrPayloadTooLarge
	}
	m.backups = append(m.backups, backupEntry{line: line, version: version, payload: data})
	return nil
}

// NewBackupPacketAck acknowledges an entire BACKUP_PACKET by its id.
func NewBackupPacketAck(req Message) (*BackupPacketAck, error) {
	h, err := newResponse(TypeBackupPacketAck, req)
	if err != nil {
		return nil, err
	}
	bp, ok := req.(*BackupPacket)
	var id uint64
	if ok {
		id = bp.id
	}
	return &BackupPacketAck{header: h, id: id}, nil
}

// NewMsg builds an outgoing MSG carrying an application-level payload
// addressed to line's owner.
func NewMsg(peer int16, line int64, data []byte) (*Msg, error) {
	if len(data) > config.MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}
	return &Msg{lineBody: lineBody{header: newOutgoingRequest(TypeMsg, peer), line: line}, data: data}, nil
}

// NewAck builds a plain ACK replying to req.
func NewAck(req Message) (*Ack, error) {
	h, err := newResponse(TypeAck, req)
	if err != nil {
		return nil, err
	}
	return &Ack{header: h}, nil
}

// newBroadcastHeaderFor builds the header of a broadcast request (e.g. a
// multi-peer INV) instead of a unicast one; it is a thin wrapper around
// newOutgoingBroadcast.
func newBroadcastHeaderFor(t Type, peers []int16) header {
	return newOutgoingBroadcast(t, peers)
}

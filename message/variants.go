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

// Ack carries no body at all. It is the sole wire representation of ACK,
// consumed by the transport layer and never forwarded to the cache.
type Ack struct {
	header
}

func (m *Ack) Size() int                 { return m.sizeFlat() }
func (m *Ack) Clone() Message           { c := *m; return &c }
func (m *Ack) CloneDataBuffers() Message { return m.Clone() }

// Get is the shared shape of GET and GETX: just a line id. Which tag a
// given Get carries is recorded in its embedded header, not in the Go type.
type Get struct {
	lineBody
}

func (m *Get) Size() int                 { return m.sizeFlat() }
func (m *Get) Clone() Message           { c := *m; return &c }
func (m *Get) CloneDataBuffers() Message { return m.Clone() }

// LineMessage is the shared shape of DEL, INVACK, NOT_FOUND, MSGACK and
// TIMEOUT: also just a line id. INVACK reaches the cache layer (e.g. on an
// eviction with no preceding INV); ACK itself never does — that distinction
// lives in the cache layer's handling of the Type, not in this struct.
type LineMessage struct {
	lineBody
}

func (m *LineMessage) Size() int                 { return m.sizeFlat() }
func (m *LineMessage) Clone() Message           { c := *m; return &c }
func (m *LineMessage) CloneDataBuffers() Message { return m.Clone() }

// Inv requests invalidation of a line, recording the peer that held
// ownership immediately before this INV was issued so the recipient can
// forward correctly if ownership moved again in flight.
type Inv struct {
	lineBody
	previousOwner int16
}

func (m *Inv) PreviousOwner() int16      { return m.previousOwner }
func (m *Inv) SetPreviousOwner(p int16) { m.previousOwner = p }

func (m *Inv) sizeFlat() int { return m.lineBody.sizeFlat() + 2 }

func (m *Inv) writeFlat(mb *MsgBuffer) {
	m.lineBody.writeFlat(mb)
	mb.AddInt16(m.previousOwner)
}

func (m *Inv) readFlat(r fieldReader) error {
	if err := m.lineBody.readFlat(r); err != nil {
		return err
	}
	v, err := r.ReadInt16()
	if err != nil {
		return err
	}
	m.previousOwner = v
	return nil
}

func (m *Inv) writeVectorHeader(mb *MsgBuffer) { m.writeFlat(mb) }

func (m *Inv) readVectorHeader(mb *MsgBuffer) ([]int, error) {
	return nil, m.readFlat(mb)
}

func (m *Inv) Size() int { return m.sizeFlat() }

func (m *Inv) Clone() Message {
	c := &Inv{lineBody: m.lineBody.clone(), previousOwner: m.previousOwner}
	return c
}
func (m *Inv) CloneDataBuffers() Message { return m.Clone() }

// ChngdOwnr announces an ownership change for a line. certain distinguishes
// an authoritative update, sent by the node that just became owner, from a
// forwarded hint relayed by a third party that merely heard about it.
type ChngdOwnr struct {
	lineBody
	certain  bool
	newOwner int16
}

func (m *ChngdOwnr) Certain() bool       { return m.certain }
func (m *ChngdOwnr) NewOwner() int16     { return m.newOwner }
func (m *ChngdOwnr) SetNewOwner(p int16) { m.newOwner = p }

func (m *ChngdOwnr) sizeFlat() int { return m.lineBody.sizeFlat() + 1 + 2 }

func (m *ChngdOwnr) writeFlat(mb *MsgBuffer) {
	m.lineBody.writeFlat(mb)
	mb.AddBool(m.certain)
	mb.AddInt16(m.newOwner)
}

func (m *ChngdOwnr) readFlat(r fieldReader) error {
	if err := m.lineBody.readFlat(r); err != nil {
		return err
	}
	certain, err := r.ReadBool()
	if err != nil {
		return err
	}
	newOwner, err := r.ReadInt16()
	if err != nil {
		return err
	}
	m.certain = certain
	m.newOwner = newOwner
	return nil
}

func (m *ChngdOwnr) writeVectorHeader(mb *MsgBuffer) { m.writeFlat(mb) }

func (m *ChngdOwnr) readVectorHeader(mb *MsgBuffer) ([]int, error) {
	return nil, m.readFlat(mb)
}

func (m *ChngdOwnr) Size() int { return m.sizeFlat() }

func (m *ChngdOwnr) Clone() Message {
	return &ChngdOwnr{lineBody: m.lineBody.clone(), certain: m.certain, newOwner: m.newOwner}
}
func (m *ChngdOwnr) CloneDataBuffers() Message { return m.Clone() }

// BackupAck acknowledges a BACKUP, confirming the line and version that
// were durably stored.
type BackupAck struct {
	lineBody
	version uint64
}

func (m *BackupAck) Version() uint64 { return m.version }

func (m *BackupAck) sizeFlat() int { return m.lineBody.sizeFlat() + 8 }

func (m *BackupAck) writeFlat(mb *MsgBuffer) {
	m.lineBody.writeFlat(mb)
	mb.AddUint64(m.version)
}

func (m *BackupAck) readFlat(r fieldReader) error {
	if err := m.lineBody.readFlat(r); err != nil {
		return err
	}
	v, err := r.ReadUint64()
	if err != nil {
		return err
	}
	m.version = v
	return nil
}

func (m *BackupAck) writeVectorHeader(mb *MsgBuffer) { m.writeFlat(mb) }

func (m *BackupAck) readVectorHeader(mb *MsgBuffer) ([]int, error) {
	return nil, m.readFlat(mb)
}

func (m *BackupAck) Size() int { return m.sizeFlat() }

func (m *BackupAck) Clone() Message {
	return &BackupAck{lineBody: m.lineBody.clone(), version: m.version}
}
func (m *BackupAck) CloneDataBuffers() Message { return m.Clone() }

// BackupPacketAck acknowledges an entire BACKUP_PACKET by its id.
type BackupPacketAck struct {
	header
	id uint64
}

func (m *BackupPacketAck) ID() uint64 { return m.id }

func (m *BackupPacketAck) sizeFlat() int { return m.header.sizeFlat() + 8 }

func (m *BackupPacketAck) writeFlat(mb *MsgBuffer) {
	m.header.writeFlat(mb)
	mb.AddUint64(m.id)
}

func (m *BackupPacketAck) readFlat(r fieldReader) error {
	if err := m.header.readFlat(r); err != nil {
		return err
	}
	id, err := r.ReadUint64()
	if err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *BackupPacketAck) writeVectorHeader(mb *MsgBuffer) { m.writeFlat(mb) }

func (m *BackupPacketAck) readVectorHeader(mb *MsgBuffer) ([]int, error) {
	return nil, m.readFlat(mb)
}

func (m *BackupPacketAck) Size() int { return m.sizeFlat() }

func (m *BackupPacketAck) Clone() Message {
	return &BackupPacketAck{header: m.header.clone(), id: m.id}
}
func (m *BackupPacketAck) CloneDataBuffers() Message { return m.Clone() }

// Msg carries an inline, length-prefixed byte payload addressed to the
// application layer above the cache (not a scatter/gather payload buffer:
// the bytes are copied directly into the header in both wire forms).
type Msg struct {
	lineBody
	data []byte
}

func (m *Msg) Data() []byte { return m.data }

func (m *Msg) sizeFlat() int { return m.lineBody.sizeFlat() + 2 + len(m.data) }

func (m *Msg) writeFlat(mb *MsgBuffer) {
	m.lineBody.writeFlat(mb)
	mb.AddUint16(uint16(len(m.data)))
	mb.AddBytes(m.data)
}

func (m *Msg) readFlat(r fieldReader) error {
	if err := m.lineBody.readFlat(r); err != nil {
		return err
	}
	n, err := r.ReadUint16()
	if err != nil {
		return err
	}
	data, err := r.ReadBytes(int(n))
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

func (m *Msg) writeVectorHeader(mb *MsgBuffer) { m.writeFlat(mb) }

func (m *Msg) readVectorHeader(mb *MsgBuffer) ([]int, error) {
	return nil, m.readFlat(mb)
}

func (m *Msg) Size() int { return m.sizeFlat() }

func (m *Msg) Clone() Message {
	return &Msg{lineBody: m.lineBody.clone(), data: m.data}
}

func (m *Msg) CloneDataBuffers() Message {
	return &Msg{lineBody: m.lineBody.clone(), data: cloneBytes(m.data)}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

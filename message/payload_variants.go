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

// Put carries one opaque payload buffer alongside a version. The same
// struct serves both PUT and BACKUP (spec.md: "BACKUP (encoded as PUT's
// body)") — which tag a given Put carries lives entirely in its embedded
// header, not in the Go type, mirroring the Java factory's dispatch table.
type Put struct {
	lineBody
	version uint64
	payload []byte
}

func (m *Put) Version() uint64  { return m.version }
func (m *Put) Payload() []byte  { return m.payload }

func (m *Put) sizeFlat() int {
	return m.lineBody.sizeFlat() + 8 + 2 + len(m.payload)
}

func (m *Put) writeFlat(mb *MsgBuffer) {
	m.lineBody.writeFlat(mb)
	mb.AddUint64(m.version)
	mb.AddUint16(uint16(len(m.payload)))
	mb.AddBytes(m.payload)
}

func (m *Put) readFlat(r fieldReader) error {
	if err := m.lineBody.readFlat(r); err != nil {
		return err
	}
	version, err := r.ReadUint64()
	if err != nil {
		return err
	}
	n, err := r.ReadUint16()
	if err != nil {
		return err
	}
	payload, err := r.ReadBytes(int(n))
	if err != nil {
		return err
	}
	m.version = version
	m.payload = payload
	return nil
}

func (m *Put) writeVectorHeader(mb *MsgBuffer) {
	m.lineBody.writeVectorHeader(mb)
	mb.AddUint64(m.version)
	mb.AddUint16(uint16(len(m.payload)))
}

func (m *Put) readVectorHeader(mb *MsgBuffer) ([]int, error) {
	if _, err := m.lineBody.readVectorHeader(mb); err != nil {
		return nil, err
	}
	version, err := mb.ReadUint64()
	if err != nil {
		return nil, err
	}
	n, err := mb.ReadUint16()
	if err != nil {
		return nil, err
	}
	m.version = version
	return []int{int(n)}, nil
}

func (m *Put) payloadBuffers() [][]byte { return [][]byte{m.payload} }

func (m *Put) setPayloadBuffers(bufs [][]byte) error {
	if len(bufs) != 1 {
		return ErrInconsistentLength
	}
	m.payload = bufs[0]
	return nil
}

func (m *Put) Size() int { return m.sizeFlat() }

func (m *Put) Clone() Message {
	return &Put{lineBody: m.lineBody.clone(), version: m.version, payload: m.payload}
}

func (m *Put) CloneDataBuffers() Message {
	return &Put{lineBody: m.lineBody.clone(), version: m.version, payload: cloneBytes(m.payload)}
}

// Putx is PUT plus the sharer array of a PUTX grant: the peers that already
// hold a read copy of the line being granted for exclusive ownership.
type Putx struct {
	lineBody
	version uint64
	sharers []int16
	payload []byte
}

func (m *Putx) Version() uint64   { return m.version }
func (m *Putx) Sharers() []int16  { return m.sharers }
func (m *Putx) Payload() []byte   { return m.payload }

func (m *Putx) sizeFlat() int {
	return m.lineBody.sizeFlat() + 8 + 2 + 2*len(m.sharers) + 2 + len(m.payload)
}

func (m *Putx) writeFlat(mb *MsgBuffer) {
	m.lineBody.writeFlat(mb)
	mb.AddUint64(m.version)
	mb.AddUint16(uint16(len(m.sharers)))
	for _, s := range m.sharers {
		mb.AddInt16(s)
	}
	mb.AddUint16(uint16(len(m.payload)))
	mb.AddBytes(m.payload)
}

func (m *Putx) readFlat(r fieldReader) error {
	if err := m.lineBody.readFlat(r); err != nil {
		return err
	}
	version, err := r.ReadUint64()
	if err != nil {
		return err
	}
	sharerCount, err := r.ReadUint16()
	if err != nil {
		return err
	}
	sharers := make([]int16, sharerCount)
	for i := range sharers {
		s, err := r.ReadInt16()
		if err != nil {
			return err
		}
		sharers[i] = s
	}
	n, err := r.ReadUint16()
	if err != nil {
		return err
	}
	payload, err := r.ReadBytes(int(n))
	if err != nil {
		return err
	}
	m.version = version
	m.sharers = sharers
	m.payload = payload
	return nil
}

func (m *Putx) writeVectorHeader(mb *MsgBuffer) {
	m.lineBody.writeVectorHeader(mb)
	mb.AddUint64(m.version)
	mb.AddUint16(uint16(len(m.sharers)))
	for _, s := range m.sharers {
		mb.AddInt16(s)
	}
	mb.AddUint16(uint16(len(m.payload)))
}

func (m *Putx) readVectorHeader(mb *MsgBuffer) ([]int, error) {
	if _, err := m.lineBody.readVectorHeader(mb); err != nil {
		return nil, err
	}
	version, err := mb.ReadUint64()
	if err != nil {
		return nil, err
	}
	sharerCount, err := mb.ReadUint16()
	if err != nil {
		return nil, err
	}
	sharers := make([]int16, sharerCount)
	for i := range sharers {
		s, err := mb.ReadInt16()
		if err != nil {
			return nil, err
		}
		sharers[i] = s
	}
	n, err := mb.ReadUint16()
	if err != nil {
		return nil, err
	}
	m.version = version
	m.sharers = sharers
	return []int{int(n)}, nil
}

func (m *Putx) payloadBuffers() [][]byte { return [][]byte{m.payload} }

func (m *Putx) setPayloadBuffers(bufs [][]byte) error {
	if len(bufs) != 1 {
		return ErrInconsistentLength
	}
	m.payload = bufs[0]
	return nil
}

func (m *Putx) Size() int { return m.sizeFlat() }

func (m *Putx) Clone() Message {
	return &Putx{lineBody: m.lineBody.clone(), version: m.version, sharers: m.sharers, payload: m.payload}
}

func (m *Putx) CloneDataBuffers() Message {
	return &Putx{
		lineBody: m.lineBody.clone(),
		version:  m.version,
		sharers:  m.sharers,
		payload:  cloneBytes(m.payload),
	}
}

// backupEntry is one BACKUP inlined into a BACKUP_PACKET: a line, version
// and payload with no tag/messageId/flags of its own (spec.md's "NoHeader"
// encoding — the packet's own header covers the whole group).
type backupEntry struct {
	line    int64
	version uint64
	payload []byte
}

func (e backupEntry) sizeNoHeader() int { return 8 + 8 + 2 + len(e.payload) }

func (e backupEntry) writeNoHeaderFlat(mb *MsgBuffer) {
	mb.AddInt64(e.line)
	mb.AddUint64(e.version)
	mb.AddUint16(uint16(len(e.payload)))
	mb.AddBytes(e.payload)
}

func (e *backupEntry) readNoHeaderFlat(r fieldReader) error {
	line, err := r.ReadInt64()
	if err != nil {
		return err
	}
	version, err := r.ReadUint64()
	if err != nil {
		return err
	}
	n, err := r.ReadUint16()
	if err != nil {
		return err
	}
	payload, err := r.ReadBytes(int(n))
	if err != nil {
		return err
	}
	e.line, e.version, e.payload = line, version, payload
	return nil
}

func (e backupEntry) writeNoHeaderFixed(mb *MsgBuffer) {
	mb.AddInt64(e.line)
	mb.AddUint64(e.version)
}

func (e *backupEntry) readNoHeaderFixed(mb *MsgBuffer) error {
	line, err := mb.ReadInt64()
	if err != nil {
		return err
	}
	version, err := mb.ReadUint64()
	if err != nil {
		return err
	}
	e.line, e.version = line, version
	return nil
}

// BackupPacket batches several BACKUPs addressed to the same backup peer
// into one wire message, identified by a monotonic id assigned by the
// backup writer.
type BackupPacket struct {
	header
	id      uint64
	backups []backupEntry
}

func (m *BackupPacket) ID() uint64     { return m.id }
func (m *BackupPacket) Count() int     { return len(m.backups) }

// BackupLine returns the line of the i'th inlined backup.
func (m *BackupPacket) BackupLine(i int) int64 { return m.backups[i].line }

// BackupVersion returns the version of the i'th inlined backup.
func (m *BackupPacket) BackupVersion(i int) uint64 { return m.backups[i].version }

// BackupPayload returns the payload of the i'th inlined backup.
func (m *BackupPacket) BackupPayload(i int) []byte { return m.backups[i].payload }

func (m *BackupPacket) sizeFlat() int {
	size := m.header.sizeFlat() + 8 + 4
	for _, e := range m.backups {
		size += e.sizeNoHeader()
	}
	return size
}

func (m *BackupPacket) writeFlat(mb *MsgBuffer) {
	m.header.writeFlat(mb)
	mb.AddUint64(m.id)
	mb.AddUint32(uint32(len(m.backups)))
	for _, e := range m.backups {
		e.writeNoHeaderFlat(mb)
	}
}

func (m *BackupPacket) readFlat(r fieldReader) error {
	if err := m.header.readFlat(r); err != nil {
		return err
	}
	id, err := r.ReadUint64()
	if err != nil {
		return err
	}
	count, err := r.ReadUint32()
	if err != nil {
		return err
	}
	backups := make([]backupEntry, count)
	for i := range backups {
		if err := backups[i].readNoHeaderFlat(r); err != nil {
			return err
		}
	}
	m.id = id
	m.backups = backups
	return nil
}

func (m *BackupPacket) writeVectorHeader(mb *MsgBuffer) {
	m.header.writeVectorHeader(mb)
	mb.AddUint64(m.id)
	mb.AddUint32(uint32(len(m.backups)))
	for _, e := range m.backups {
		e.writeNoHeaderFixed(mb)
	}
	for _, e := range m.backups {
		mb.AddUint16(uint16(len(e.payload)))
	}
}

func (m *BackupPacket) readVectorHeader(mb *MsgBuffer) ([]int, error) {
	if _, err := m.header.readVectorHeader(mb); err != nil {
		return nil, err
	}
	id, err := mb.ReadUint64()
	if err != nil {
		return nil, err
	}
	count, err := mb.ReadUint32()
	if err != nil {
		return nil, err
	}
	backups := make([]backupEntry, count)
	for i := range backups {
		if err := backups[i].readNoHeaderFixed(mb); err != nil {
			return nil, err
		}
	}
	lens := make([]int, count)
	for i := range lens {
		n, err := mb.ReadUint16()
		if err != nil {
			return nil, err
		}
		lens[i] = int(n)
	}
	m.id = id
	m.backups = backups
	return lens, nil
}

func (m *BackupPacket) payloadBuffers() [][]byte {
	bufs := make([][]byte, len(m.backups))
	for i, e := range m.backups {
		bufs[i] = e.payload
	}
	return bufs
}

func (m *BackupPacket) setPayloadBuffers(bufs [][]byte) error {
	if len(bufs) != len(m.backups) {
		return ErrInconsistentLength
	}
	for i := range m.backups {
		m.backups[i].payload = bufs[i]
	}
	return nil
}

func (m *BackupPacket) Size() int { return m.sizeFlat() }

func (m *BackupPacket) Clone() Message {
	backups := append([]backupEntry(nil), m.backups...)
	return &BackupPacket{header: m.header.clone(), id: m.id, backups: backups}
}

func (m *BackupPacket) CloneDataBuffers() Message {
	backups := make([]backupEntry, len(m.backups))
	for i, e := range m.backups {
		backups[i] = backupEntry{line: e.line, version: e.version, payload: cloneBytes(e.payload)}
	}
	return &BackupPacket{header: m.header.clone(), id: m.id, backups: backups}
}

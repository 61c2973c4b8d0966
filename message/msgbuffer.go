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
	"github.com/imace/galaxy/config"
)

// MsgBuffer is a byte-cursor buffer used to serialize and deserialize
// message headers. Write/Add operations append to the end of the buffer.
// Read operations read starting at the current read offset, advancing it
// by the number of bytes consumed. Peek operations do not change the read
// offset. At/WriteAt operations read/write at an explicit index, used for
// backpatching a length field once the rest of the message is known.
type MsgBuffer struct {
	buff        []byte
	readOffset  int
	writeOffset int
}

// NewMsgBuffer creates a new empty buffer for building an outgoing message.
func NewMsgBuffer() *MsgBuffer {
	return &MsgBuffer{buff: make([]byte, 0, 64)}
}

// ToMsgBuffer wraps an existing byte slice for reading; the read offset
// starts at 0 and the write offset at len(buff) (appends go after it).
func ToMsgBuffer(buff []byte) *MsgBuffer {
	return &MsgBuffer{buff: buff, writeOffset: len(buff)}
}

// Bytes returns the full backing slice (from offset 0, not the read offset).
func (mb *MsgBuffer) Bytes() []byte {
	return mb.buff
}

// RemainingLen returns the number of unread bytes.
func (mb *MsgBuffer) RemainingLen() int {
	return len(mb.buff) - mb.readOffset
}

// GetReadOffset returns the current read offset.
func (mb *MsgBuffer) GetReadOffset() int {
	return mb.readOffset
}

// AddByte appends a single byte and returns its offset.
func (mb *MsgBuffer) AddByte(v byte) int {
	off := mb.writeOffset
	mb.buff = append(mb.buff, v)
	mb.writeOffset++
	return off
}

// AddBool appends a boolean encoded as a single byte (0 or 1).
func (mb *MsgBuffer) AddBool(v bool) int {
	if v {
		return mb.AddByte(1)
	}
	return mb.AddByte(0)
}

// AddBytes appends v verbatim and returns its length and offset.
func (mb *MsgBuffer) AddBytes(v []byte) (n int, offset int) {
	off := mb.writeOffset
	mb.buff = append(mb.buff, v...)
	mb.writeOffset += len(v)
	return len(v), off
}

// AddUint16 encodes v big-endian and appends it, returning its offset.
func (mb *MsgBuffer) AddUint16(v uint16) int {
	off := mb.writeOffset
	var tmp [2]byte
	config.Encoding.PutUint16(tmp[:], v)
	mb.buff = append(mb.buff, tmp[:]...)
	mb.writeOffset += 2
	return off
}

// AddInt16 encodes v as its two's-complement uint16 representation.
func (mb *MsgBuffer) AddInt16(v int16) int {
	return mb.AddUint16(uint16(v))
}

// AddUint32 encodes v big-endian and appends it, returning its offset.
func (mb *MsgBuffer) AddUint32(v uint32) int {
	off := mb.writeOffset
	var tmp [4]byte
	config.Encoding.PutUint32(tmp[:], v)
	mb.buff = append(mb.buff, tmp[:]...)
	mb.writeOffset += 4
	return off
}

// AddUint64 encodes v big-endian and appends it, returning its offset.
func (mb *MsgBuffer) AddUint64(v uint64) int {
	off := mb.writeOffset
	var tmp [8]byte
	config.Encoding.PutUint64(tmp[:], v)
	mb.buff = append(mb.buff, tmp[:]...)
	mb.writeOffset += 8
	return off
}

// AddInt64 encodes v as its two's-complement uint64 representation.
func (mb *MsgBuffer) AddInt64(v int64) int {
	return mb.AddUint64(uint64(v))
}

// WriteUint16At overwrites the two bytes at offset with v's big-endian encoding.
func (mb *MsgBuffer) WriteUint16At(offset int, v uint16) error {
	if len(mb.buff) < offset+2 {
		return ErrTruncated
	}
	config.Encoding.PutUint16(mb.buff[offset:offset+2], v)
	return nil
}

// ReadByte reads a byte and advances the read offset.
func (mb *MsgBuffer) ReadByte() (byte, error) {
	if mb.readOffset >= len(mb.buff) {
		return 0, ErrTruncated
	}
	v := mb.buff[mb.readOffset]
	mb.readOffset++
	return v, nil
}

// ReadBool reads a byte and interprets it as a boolean: 0 is false, any
// other value is true.
func (mb *MsgBuffer) ReadBool() (bool, error) {
	v, err := mb.ReadByte()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadBytes reads n bytes and advances the read offset. The returned slice
// shares storage with the buffer (zero-copy).
func (mb *MsgBuffer) ReadBytes(n int) ([]byte, error) {
	if n < 0 || mb.readOffset+n > len(mb.buff) {
		return nil, ErrTruncated
	}
	v := mb.buff[mb.readOffset : mb.readOffset+n]
	mb.readOffset += n
	return v, nil
}

// ReadUint16 reads a big-endian uint16 and advances the read offset.
func (mb *MsgBuffer) ReadUint16() (uint16, error) {
	if mb.readOffset+2 > len(mb.buff) {
		return 0, ErrTruncated
	}
	v := config.Encoding.Uint16(mb.buff[mb.readOffset : mb.readOffset+2])
	mb.readOffset += 2
	return v, nil
}

// ReadInt16 reads a big-endian two's-complement int16 and advances the read offset.
func (mb *MsgBuffer) ReadInt16() (int16, error) {
	v, err := mb.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a big-endian uint32 and advances the read offset.
func (mb *MsgBuffer) ReadUint32() (uint32, error) {
	if mb.readOffset+4 > len(mb.buff) {
		return 0, ErrTruncated
	}
	v := config.Encoding.Uint32(mb.buff[mb.readOffset : mb.readOffset+4])
	mb.readOffset += 4
	return v, nil
}

// ReadUint64 reads a big-endian uint64 and advances the read offset.
func (mb *MsgBuffer) ReadUint64() (uint64, error) {
	if mb.readOffset+8 > len(mb.buff) {
		return 0, ErrTruncated
	}
	v := config.Encoding.Uint64(mb.buff[mb.readOffset : mb.readOffset+8])
	mb.readOffset += 8
	return v, nil
}

// ReadInt64 reads a big-endian two's-complement int64 and advances the read offset.
func (mb *MsgBuffer) ReadInt64() (int64, error) {
	v, err := mb.ReadUint64()
	return int64(v), err
}

// PeekUint32At returns the uint32 at the current read offset plus offs,
// without moving the read offset.
func (mb *MsgBuffer) PeekUint32At(offs int) (uint32, error) {
	offset := mb.readOffset + offs
	if offset+4 > len(mb.buff) {
		return 0, ErrTruncated
	}
	return config.Encoding.Uint32(mb.buff[offset : offset+4]), nil
}

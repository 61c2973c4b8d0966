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
	"fmt"
	"io"
)

// newByType allocates the zero-valued concrete struct backing tag, with
// its header's typ field already set. It mirrors the Java factory's
// newMessage(Type) switch: several tags share one struct.
func newByType(t Type) (Message, error) {
	switch t {
	case TypeGet, TypeGetX:
		return &Get{lineBody: lineBody{header: newHeader(t)}}, nil
	case TypeDel, TypeInvAck, TypeNotFound, TypeTimeout, TypeMsgAck:
		return &LineMessage{lineBody: lineBody{header: newHeader(t)}}, nil
	case TypeInv:
		return &Inv{lineBody: lineBody{header: newHeader(t)}}, nil
	case TypePut, TypeBackup:
		return &Put{lineBody: lineBody{header: newHeader(t)}}, nil
	case TypePutX:
		return &Putx{lineBody: lineBody{header: newHeader(t)}}, nil
	case TypeChngdOwnr:
		return &ChngdOwnr{lineBody: lineBody{header: newHeader(t)}}, nil
	case TypeBackupAck:
		return &BackupAck{lineBody: lineBody{header: newHeader(t)}}, nil
	case TypeBackupPacket:
		return &BackupPacket{header: newHeader(t)}, nil
	case TypeBackupPacketAck:
		return &BackupPacketAck{header: newHeader(t)}, nil
	case TypeMsg:
		return &Msg{lineBody: lineBody{header: newHeader(t)}}, nil
	case TypeAck:
		return &Ack{header: newHeader(t)}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, uint8(t))
	}
}

// EncodeFlat writes m's flat-stream encoding to w and returns the number
// of bytes written.
func EncodeFlat(w io.Writer, m Message) (int, error) {
	mb := newMsgBufferSize(m.Size())
	m.writeFlat(mb)
	return w.Write(mb.Bytes())
}

func newMsgBufferSize(n int) *MsgBuffer {
	mb := NewMsgBuffer()
	if n > 0 {
		mb.buff = make([]byte, 0, n)
	}
	return mb
}

// DecodeFlat reads exactly one flat-stream message from r.
func DecodeFlat(r io.Reader) (Message, error) {
	var tagBuf [1]byte
	if _, err := io.ReadFull(r, tagBuf[:]); err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	t := Type(tagBuf[0])
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, tagBuf[0])
	}
	m, err := newByType(t)
	if err != nil {
		return nil, err
	}
	sr := &streamReader{r: r}
	if err := m.readFlat(sr); err != nil {
		return nil, err
	}
	m.setIncoming()
	return m, nil
}

// DecodeFlatBytes decodes exactly one flat-stream message from a
// self-contained byte slice, failing on trailing bytes.
func DecodeFlatBytes(buf []byte) (Message, error) {
	if len(buf) == 0 {
		return nil, ErrTruncated
	}
	t := Type(buf[0])
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, buf[0])
	}
	m, err := newByType(t)
	if err != nil {
		return nil, err
	}
	mb := ToMsgBuffer(buf[1:])
	if err := m.readFlat(mb); err != nil {
		return nil, err
	}
	if mb.RemainingLen() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInconsistentLength, mb.RemainingLen())
	}
	m.setIncoming()
	return m, nil
}

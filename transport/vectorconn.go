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

package transport

import (
	"encoding/binary"
	"io"
	"net"

	"github.com/imace/galaxy/message"
)

// VectorConn drives message.EncodeVector/DecodeVector over a net.Conn,
// writing with net.Buffers so payload buffers reach the kernel without an
// extra copy. The buffer-vector layout itself is exactly spec.md §6's; this
// type adds a 4-byte big-endian length prefix ahead of the header buffer so
// a stream reader on the other end knows where the header ends and the
// concatenated payload bytes begin (EncodeVector's header already carries
// every payload's length, so nothing else needs to be framed).
type VectorConn struct {
	conn net.Conn
}

// NewVectorConn wraps conn for vectored sends and reads.
func NewVectorConn(conn net.Conn) *VectorConn {
	return &VectorConn{conn: conn}
}

// WriteMessage writes m's buffer-vector encoding in a single writev-style
// call and returns the number of bytes written.
func (c *VectorConn) WriteMessage(m message.Message) (int64, error) {
	bufs := message.EncodeVector(m)

	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], uint32(len(bufs[0])))

	out := make(net.Buffers, 0, len(bufs)+1)
	out = append(out, lenPrefix[:])
	out = append(out, bufs...)
	return out.WriteTo(c.conn)
}

// ReadMessage reads one vector-form message: the length-prefixed header
// buffer, decoded via message.DecodeVectorHeader to learn each payload's
// length, then exactly that many payload bytes, sliced per length and
// attached via message.FinishDecodeVector.
func (c *VectorConn) ReadMessage() (message.Message, error) {
	var lenPrefix [4]byte
	if _, err := io.ReadFull(c.conn, lenPrefix[:]); err != nil {
		return nil, err
	}
	header := make([]byte, binary.BigEndian.Uint32(lenPrefix[:]))
	if _, err := io.ReadFull(c.conn, header); err != nil {
		return nil, err
	}

	m, lens, err := message.DecodeVectorHeader(header)
	if err != nil {
		return nil, err
	}
	if len(lens) == 0 {
		return message.FinishDecodeVector(m, nil)
	}

	total := 0
	for _, n := range lens {
		total += n
	}
	payload := make([]byte, total)
	if _, err := io.ReadFull(c.conn, payload); err != nil {
		return nil, err
	}

	bufs := make([][]byte, len(lens))
	offset := 0
	for i, n := range lens {
		bufs[i] = payload[offset : offset+n]
		offset += n
	}
	return message.FinishDecodeVector(m, bufs)
}

// ReadLoop reads vector-form messages until ctx-independent EOF/error or
// handle returns an error.
func (c *VectorConn) ReadLoop(handle Handler) error {
	for {
		m, err := c.ReadMessage()
		if err != nil {
			return err
		}
		if err := handle(m); err != nil {
			return err
		}
	}
}

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

import "fmt"

// EncodeVector produces m's scatter-gather encoding: buffer 0 is the
// header (tag, messageId, flags, fixed fields, and every payload length
// batched up front); buffers 1..N are the raw payload buffers, returned by
// reference, not copied. Buffer 0 is "fresh" and may be mutated by the
// transport; buffers 1..N are whatever the caller handed the message and
// must be cloned via CloneDataBuffers if the send is deferred.
func EncodeVector(m Message) [][]byte {
	mb := NewMsgBuffer()
	m.writeVectorHeader(mb)
	payloads := m.payloadBuffers()
	out := make([][]byte, 1+len(payloads))
	out[0] = mb.Bytes()
	copy(out[1:], payloads)
	return out
}

// DecodeVectorHeader decodes just the header buffer (bufs[0] of an
// EncodeVector result), returning the message with its fixed fields
// populated and the lengths of the payload buffers it expects. It is split
// out from DecodeVector so a stream-based transport can read the header
// buffer, learn the payload lengths, then read exactly that many payload
// bytes before calling FinishDecodeVector — without needing the whole
// message pre-split into [][]byte up front.
func DecodeVectorHeader(header []byte) (Message, []int, error) {
	if len(header) == 0 {
		return nil, nil, ErrTruncated
	}
	t := Type(header[0])
	if !t.IsValid() {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownTag, header[0])
	}
	m, err := newByType(t)
	if err != nil {
		return nil, nil, err
	}
	mb := ToMsgBuffer(header[1:])
	lens, err := m.readVectorHeader(mb)
	if err != nil {
		return nil, nil, err
	}
	if mb.RemainingLen() != 0 {
		return nil, nil, fmt.Errorf("%w: %d trailing bytes in header buffer", ErrCrossFormDecode, mb.RemainingLen())
	}
	return m, lens, nil
}

// FinishDecodeVector attaches payloadBufs (already validated against the
// lengths DecodeVectorHeader returned) to m and marks it incoming.
func FinishDecodeVector(m Message, payloadBufs [][]byte) (Message, error) {
	if len(payloadBufs) > 0 {
		if err := m.setPayloadBuffers(payloadBufs); err != nil {
			return nil, err
		}
	}
	m.setIncoming()
	return m, nil
}

// DecodeVector consumes a scatter-gather encoding produced by EncodeVector:
// bufs[0] is the header buffer, bufs[1:] are the payload buffers by
// reference (not copied). For a message with at least one payload buffer,
// decoding a flat-stream buffer here (or vice versa, decoding a vector
// header with DecodeFlat) is a framing error: the two forms are not
// interchangeable. For a message with no payload buffer the flat encoding
// and the vector header buffer are the same bytes, so either decodes it.
func DecodeVector(bufs [][]byte) (Message, error) {
	if len(bufs) == 0 {
		return nil, ErrTruncated
	}
	m, lens, err := DecodeVectorHeader(bufs[0])
	if err != nil {
		return nil, err
	}
	payloadBufs := bufs[1:]
	if len(payloadBufs) != len(lens) {
		return nil, fmt.Errorf("%w: header declares %d payload buffers, got %d", ErrInconsistentLength, len(lens), len(payloadBufs))
	}
	for i, want := range lens {
		if len(payloadBufs[i]) != want {
			return nil, fmt.Errorf("%w: payload buffer %d is %d bytes, header declared %d", ErrInconsistentLength, i, len(payloadBufs[i]), want)
		}
	}
	return FinishDecodeVector(m, payloadBufs)
}

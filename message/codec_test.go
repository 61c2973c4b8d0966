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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) []Message {
	t.Helper()

	get, err := NewGet(TypeGetX, 4, 100)
	require.NoError(t, err)

	del := NewLineMessage(TypeDel, 4, 101)

	inv := NewInv(4, 102, 9)

	get2, err := NewGet(TypeGet, 4, 103)
	require.NoError(t, err)
	get2.SetMessageID(50)
	put, err := NewPut(get2, 7, []byte("hello"))
	require.NoError(t, err)

	putx, err := NewPutx(get2, 8, []int16{1, 2, 3}, []byte("putx-payload"))
	require.NoError(t, err)

	chngd := NewChngdOwnr(4, 104, true, 6)

	backup, err := NewBackup(105, 1, []byte("backup-payload"))
	require.NoError(t, err)
	backup.SetMessageID(51)

	bp := NewBackupPacket(55)
	require.NoError(t, bp.AddBackup(200, 1, []byte("a")))
	require.NoError(t, bp.AddBackup(201, 2, []byte("bb")))
	bp.SetMessageID(52)

	bpack, err := NewBackupAck(backup, 1)
	require.NoError(t, err)

	bpAck, err := NewBackupPacketAck(bp)
	require.NoError(t, err)

	msg, err := NewMsg(4, 106, []byte("app payload"))
	require.NoError(t, err)

	get.SetMessageID(53)
	ack, err := NewAck(get)
	require.NoError(t, err)

	return []Message{get, del, inv, put, putx, chngd, backup, bp, bpack, bpAck, msg, ack}
}

func TestEncodeDecodeFlatRoundTrip(t *testing.T) {
	for _, m := range buildSample(t) {
		var buf bytes.Buffer
		n, err := EncodeFlat(&buf, m)
		require.NoError(t, err)
		assert.Equal(t, m.Size(), n)
		assert.Equal(t, m.Size(), buf.Len())

		decoded, err := DecodeFlat(&buf)
		require.NoError(t, err, "type %v", m.Type())
		assert.Equal(t, m.Type(), decoded.Type())
		assert.Equal(t, m.MessageID(), decoded.MessageID())
		assert.Equal(t, m.Flags(), decoded.Flags())
		assert.Equal(t, m.Line(), decoded.Line())
		assert.Equal(t, DirectionIncoming, decoded.Direction())
		assert.Equal(t, 0, buf.Len())
	}
}

func TestDecodeFlatDoesNotOverreadOnPersistentStream(t *testing.T) {
	a := NewLineMessage(TypeDel, 1, 10)
	b := NewLineMessage(TypeNotFound, 1, 20)

	var buf bytes.Buffer
	_, err := EncodeFlat(&buf, a)
	require.NoError(t, err)
	_, err = EncodeFlat(&buf, b)
	require.NoError(t, err)

	d1, err := DecodeFlat(&buf)
	require.NoError(t, err)
	assert.Equal(t, TypeDel, d1.Type())
	assert.Equal(t, int64(10), d1.Line())

	d2, err := DecodeFlat(&buf)
	require.NoError(t, err)
	assert.Equal(t, TypeNotFound, d2.Type())
	assert.Equal(t, int64(20), d2.Line())

	assert.Equal(t, 0, buf.Len())
}

func TestDecodeFlatBytesRejectsTrailingBytes(t *testing.T) {
	m := NewLineMessage(TypeDel, 1, 10)
	var buf bytes.Buffer
	_, err := EncodeFlat(&buf, m)
	require.NoError(t, err)
	buf.WriteByte(0xFF)

	_, err = DecodeFlatBytes(buf.Bytes())
	assert.ErrorIs(t, err, ErrInconsistentLength)
}

func TestDecodeFlatUnknownTag(t *testing.T) {
	_, err := DecodeFlatBytes([]byte{0xFF})
	assert.ErrorIs(t, err, ErrUnknownTag)
}

func TestDecodeFlatTruncated(t *testing.T) {
	m := NewLineMessage(TypeDel, 1, 10)
	var buf bytes.Buffer
	_, err := EncodeFlat(&buf, m)
	require.NoError(t, err)

	truncated := buf.Bytes()[:buf.Len()-2]
	_, err = DecodeFlat(bytes.NewReader(truncated))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSizeMatchesWrittenBytes(t *testing.T) {
	for _, m := range buildSample(t) {
		mb := NewMsgBuffer()
		m.writeFlat(mb)
		assert.Equal(t, m.Size(), len(mb.Bytes()))
	}
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeVectorRoundTrip(t *testing.T) {
	for _, m := range buildSample(t) {
		bufs := EncodeVector(m)
		decoded, err := DecodeVector(bufs)
		require.NoError(t, err, "type %v", m.Type())
		assert.Equal(t, m.Type(), decoded.Type())
		assert.Equal(t, m.MessageID(), decoded.MessageID())
		assert.Equal(t, m.Line(), decoded.Line())
		assert.Equal(t, DirectionIncoming, decoded.Direction())
	}
}

func TestEncodeVectorPayloadBuffersAreByReference(t *testing.T) {
	put, err := NewPut(mustGet(t), 1, []byte("zero-copy"))
	require.NoError(t, err)

	bufs := EncodeVector(put)
	require.Len(t, bufs, 2)
	assert.Same(t, &put.payload[0], &bufs[1][0])
}

func TestDecodeVectorRejectsFlatBuffer(t *testing.T) {
	// The cross-form asymmetry is only guaranteed for messages with at
	// least one payload buffer (spec.md §8); use Put rather than a
	// payload-less LineMessage so the flat and vector encodings actually
	// diverge.
	m, err := NewPut(mustGet(t), 1, []byte("payload"))
	require.NoError(t, err)
	mb := NewMsgBuffer()
	m.writeFlat(mb)

	_, err = DecodeVector([][]byte{mb.Bytes()})
	assert.ErrorIs(t, err, ErrCrossFormDecode)
}

func TestDecodeFlatRejectsVectorBuffer(t *testing.T) {
	put, err := NewPut(mustGet(t), 1, []byte("payload"))
	require.NoError(t, err)
	bufs := EncodeVector(put)

	_, err = DecodeFlatBytes(bufs[0])
	if err == nil {
		t.Error("decoding a vector header buffer as a flat stream should fail")
	}
}

func TestDecodeVectorPayloadLengthMismatch(t *testing.T) {
	put, err := NewPut(mustGet(t), 1, []byte("abc"))
	require.NoError(t, err)
	bufs := EncodeVector(put)
	bufs[1] = []byte("too-long-for-declared-length")

	_, err = DecodeVector(bufs)
	assert.ErrorIs(t, err, ErrInconsistentLength)
}

func TestBackupPacketVectorBatchesLengthsAfterFixedFields(t *testing.T) {
	bp := NewBackupPacket(9)
	require.NoError(t, bp.AddBackup(1, 1, []byte("aa")))
	require.NoError(t, bp.AddBackup(2, 2, []byte("bbbb")))

	bufs := EncodeVector(bp)
	require.Len(t, bufs, 3)
	assert.Equal(t, []byte("aa"), bufs[1])
	assert.Equal(t, []byte("bbbb"), bufs[2])

	decoded, err := DecodeVector(bufs)
	require.NoError(t, err)
	dbp := decoded.(*BackupPacket)
	assert.Equal(t, 2, dbp.Count())
	assert.Equal(t, int64(1), dbp.BackupLine(0))
	assert.Equal(t, []byte("aa"), dbp.BackupPayload(0))
	assert.Equal(t, int64(2), dbp.BackupLine(1))
	assert.Equal(t, []byte("bbbb"), dbp.BackupPayload(1))
}

func mustGet(t *testing.T) *Get {
	t.Helper()
	g, err := NewGet(TypeGet, 4, 42)
	require.NoError(t, err)
	g.SetMessageID(1)
	return g
}

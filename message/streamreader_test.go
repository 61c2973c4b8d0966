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

func TestStreamReaderReadsFixedWidthFields(t *testing.T) {
	mb := NewMsgBuffer()
	mb.AddByte(7)
	mb.AddBool(true)
	mb.AddUint16(0x0102)
	mb.AddUint32(0x01020304)
	mb.AddUint64(0x0102030405060708)
	mb.AddBytes([]byte("tail"))

	sr := &streamReader{r: bytes.NewReader(mb.Bytes())}

	b, err := sr.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(7), b)

	boolVal, err := sr.ReadBool()
	require.NoError(t, err)
	assert.True(t, boolVal)

	u16, err := sr.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), u16)

	u32, err := sr.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), u32)

	u64, err := sr.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), u64)

	tail, err := sr.ReadBytes(4)
	require.NoError(t, err)
	assert.Equal(t, "tail", string(tail))
}

func TestStreamReaderMapsShortReadsToTruncated(t *testing.T) {
	sr := &streamReader{r: bytes.NewReader([]byte{1, 2})}
	_, err := sr.ReadUint64()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestStreamReaderReadBytesZero(t *testing.T) {
	sr := &streamReader{r: bytes.NewReader(nil)}
	b, err := sr.ReadBytes(0)
	require.NoError(t, err)
	assert.Nil(t, b)
}

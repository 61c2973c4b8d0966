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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMsgBufferUint16(t *testing.T) {
	mb := NewMsgBuffer()
	var v1 uint16 = math.MaxUint16
	var v2 uint16

	mb.AddUint16(v1)
	mb.AddUint16(v2)
	mb.AddUint16(v1)

	c1, err := mb.ReadUint16()
	assert.Nil(t, err)
	assert.Equal(t, v1, c1)

	c2, err := mb.ReadUint16()
	assert.Nil(t, err)
	assert.Equal(t, v2, c2)

	_, err = mb.ReadUint64()
	if err == nil {
		t.Error("should have out of bounds error")
	}
}

func TestMsgBufferUint64(t *testing.T) {
	mb := NewMsgBuffer()
	var v1 uint64 = math.MaxUint64
	var v2 uint64

	mb.AddUint64(v1)
	mb.AddUint64(v2)

	c1, err := mb.ReadUint64()
	assert.Nil(t, err)
	assert.Equal(t, v1, c1)

	c2, err := mb.ReadUint64()
	assert.Nil(t, err)
	assert.Equal(t, v2, c2)
}

func TestMsgBufferBytes(t *testing.T) {
	mb := NewMsgBuffer()
	someString := "the quick brown fox jumps over the lazy dog"

	mb.AddBytes([]byte(someString))

	result, err := mb.ReadBytes(len(someString))
	assert.Nil(t, err)
	assert.Equal(t, someString, string(result))

	_, err = mb.ReadBytes(1)
	if err == nil {
		t.Error("should have gotten out of bounds error on empty remainder")
	}
}

func TestMsgBufferReadBytesOutOfBounds(t *testing.T) {
	mb := ToMsgBuffer([]byte{1, 2, 3})
	_, err := mb.ReadBytes(4)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestMsgBufferBigEndian(t *testing.T) {
	mb := NewMsgBuffer()
	mb.AddUint32(0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, mb.Bytes())
}

func TestMsgBufferWriteUint16At(t *testing.T) {
	mb := NewMsgBuffer()
	mb.AddUint16(0)
	mb.AddBytes([]byte("payload"))
	err := mb.WriteUint16At(0, uint16(len("payload")))
	assert.Nil(t, err)

	rb := ToMsgBuffer(mb.Bytes())
	n, err := rb.ReadUint16()
	assert.Nil(t, err)
	assert.Equal(t, uint16(7), n)
}

func TestMsgBufferRemainingLen(t *testing.T) {
	mb := ToMsgBuffer([]byte{1, 2, 3, 4})
	assert.Equal(t, 4, mb.RemainingLen())
	_, err := mb.ReadByte()
	assert.Nil(t, err)
	assert.Equal(t, 3, mb.RemainingLen())
}

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
)

func TestChecksumPayloadDeterministic(t *testing.T) {
	a := ChecksumPayload([]byte("hello"))
	b := ChecksumPayload([]byte("hello"))
	assert.Equal(t, a, b)
}

func TestChecksumPayloadDiffersOnDifferentInput(t *testing.T) {
	a := ChecksumPayload([]byte("hello"))
	b := ChecksumPayload([]byte("hellp"))
	assert.NotEqual(t, a, b)
}

func TestChecksumPayloadEmpty(t *testing.T) {
	a := ChecksumPayload(nil)
	assert.Len(t, a, ChecksumLen)
}

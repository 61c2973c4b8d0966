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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetConInfoFromString(t *testing.T) {
	nci, err := NetConInfoFromString("tcp://127.0.0.1:1234")
	require.NoError(t, err)
	assert.Equal(t, "tcp", nci.Nw)
	assert.Equal(t, "127.0.0.1:1234", nci.Addr)
	assert.Equal(t, "tcp", nci.Network())
	assert.Equal(t, "127.0.0.1:1234", nci.String())
}

func TestNetConInfoFromStringRejectsMissingScheme(t *testing.T) {
	_, err := NetConInfoFromString("127.0.0.1:1234")
	if err == nil {
		t.Error("expected an error for a string with no scheme separator")
	}
}

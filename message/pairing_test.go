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

func TestPairRequestResponse(t *testing.T) {
	req, err := NewGet(TypeGet, 3, 10)
	require.NoError(t, err)
	req.SetMessageID(5)

	ack, err := NewAck(req)
	require.NoError(t, err)

	assert.True(t, Pair(req, ack))
	assert.True(t, Pair(ack, req))
	assert.Equal(t, PairingKey(req), PairingKey(ack))
}

func TestPairRejectsMismatchedMessageID(t *testing.T) {
	req, err := NewGet(TypeGet, 3, 10)
	require.NoError(t, err)
	req.SetMessageID(5)

	ack, err := NewAck(req)
	require.NoError(t, err)
	ack.SetMessageID(6)

	assert.False(t, Pair(req, ack))
}

func TestPairRejectsTwoRequestsOrTwoResponses(t *testing.T) {
	req, err := NewGet(TypeGet, 3, 10)
	require.NoError(t, err)
	req.SetMessageID(5)

	req2, err := NewGet(TypeGet, 3, 11)
	require.NoError(t, err)
	req2.SetMessageID(5)

	assert.False(t, Pair(req, req2))

	resp, err := NewAck(req)
	require.NoError(t, err)
	resp2, err := NewAck(req2)
	require.NoError(t, err)

	assert.False(t, Pair(resp, resp2))
}

func TestPairRejectsWhenReplyNotRequired(t *testing.T) {
	req := NewLineMessage(TypeDel, 3, 10)
	req.SetMessageID(5)

	resp, err := NewAck(req)
	require.NoError(t, err)

	assert.False(t, Pair(req, resp))
}

func TestPairBroadcastMatchesAnyPeer(t *testing.T) {
	h := newOutgoingBroadcast(TypeInv, []int16{1, 2, 3})
	inv := &Inv{lineBody: lineBody{header: h, line: 10}, previousOwner: 1}
	inv.SetMessageID(5)

	ack, err := NewInvAckResponse(inv)
	require.NoError(t, err)
	require.NoError(t, ack.SetPeer(9))

	assert.True(t, Pair(inv, ack))
}

func TestPairRejectsUnassignedMessageID(t *testing.T) {
	req, err := NewGet(TypeGet, 3, 10)
	require.NoError(t, err)
	req.SetMessageID(5)

	ack, err := NewAck(req)
	require.NoError(t, err)

	req.SetMessageID(UnassignedMessageID)
	ack.SetMessageID(UnassignedMessageID)

	assert.False(t, Pair(req, ack))
}

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

// PairingKey returns the value request/response pairing is keyed on. It is
// intentionally not an equality or hash override: the REDESIGN FLAGS call
// for pairing as a standalone predicate, separate from Go's == semantics.
func PairingKey(m Message) int64 { return m.MessageID() }

// Pair reports whether a and b are a matching request/response: exactly
// one of them carries RESPONSE, their messageIds agree and are
// non-negative, the request had REPLY_REQUIRED set, and either the request
// was a broadcast (pairs with a response from any peer) or the peers
// match.
func Pair(a, b Message) bool {
	if a.MessageID() < 0 || a.MessageID() != b.MessageID() {
		return false
	}
	if a.IsResponse() == b.IsResponse() {
		return false
	}
	req, resp := a, b
	if a.IsResponse() {
		req, resp = b, a
	}
	if !req.IsReplyRequired() {
		return false
	}
	if req.IsBroadcast() {
		return true
	}
	return req.Peer() == resp.Peer()
}

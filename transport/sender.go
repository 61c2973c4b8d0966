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

// Package transport is the external-collaborator boundary this module
// defines but does not fully own: the interface the cache/backup-writer
// hold to emit a message, plus a minimal net.Conn-backed implementation of
// it. Membership, retry policy and cache semantics are out of scope — they
// belong to whatever consumes this package.
package transport

import (
	"context"

	"github.com/imace/galaxy/message"
)

// Sender is the interface a producer holds to emit a message to a peer.
// Implementations own framing and connection lifecycle; callers are never
// handed a raw net.Conn.
type Sender interface {
	Send(ctx context.Context, peer int16, m message.Message) error
	Close() error
}

// Handler processes one message read off a connection. Returning a non-nil
// error terminates the read loop that called it.
type Handler func(m message.Message) error

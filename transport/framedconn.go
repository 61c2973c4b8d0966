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
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/imace/galaxy/logging"
	"github.com/imace/galaxy/message"
)

// FramedConn drives message.EncodeFlat/DecodeFlat over a single net.Conn.
// Sends queue onto an internal channel and are written by one dedicated
// goroutine, mirroring the teacher's per-connection sendChan/loopSend split
// (consensus/channel/csnet's NetConnectionTCP): Send itself never blocks on
// the network.
type FramedConn struct {
	conn net.Conn
	peer int16

	sendChan chan message.Message
	closed   chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// NewFramedConn wraps conn, which must already be connected to peer.
// queueSize bounds the number of outgoing messages buffered before Send
// blocks.
func NewFramedConn(conn net.Conn, peer int16, queueSize int) *FramedConn {
	c := &FramedConn{
		conn:     conn,
		peer:     peer,
		sendChan: make(chan message.Message, queueSize),
		closed:   make(chan struct{}),
	}
	c.wg.Add(1)
	go c.loopSend()
	return c
}

func (c *FramedConn) loopSend() {
	defer c.wg.Done()
	for m := range c.sendChan {
		if _, err := message.EncodeFlat(c.conn, m); err != nil {
			logging.Warningf("framedconn: write to %v failed: %v", c.peer, err)
			return
		}
	}
}

// Send queues m for delivery to peer. The connection is unicast, so peer
// must match the connection's peer unless m is a broadcast. Buffers are
// cloned before queueing: the caller's buffers are not guaranteed to
// outlive this call, but the send loop may not drain the queue until
// later (the payload-buffer ownership contract of §5).
func (c *FramedConn) Send(ctx context.Context, peer int16, m message.Message) error {
	if peer != c.peer && !m.IsBroadcast() {
		return fmt.Errorf("transport: connection is to peer %d, message addressed to %d", c.peer, peer)
	}
	clone := m.CloneDataBuffers()
	select {
	case c.sendChan <- clone:
		return nil
	case <-c.closed:
		return net.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReadMessage reads and decodes exactly one flat-stream message.
func (c *FramedConn) ReadMessage() (message.Message, error) {
	return message.DecodeFlat(c.conn)
}

// ReadLoop reads messages until ctx is cancelled or a read/handle error
// occurs, passing each decoded message to handle in turn.
func (c *FramedConn) ReadLoop(ctx context.Context, handle Handler) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		m, err := c.ReadMessage()
		if err != nil {
			return err
		}
		if err := handle(m); err != nil {
			return err
		}
	}
}

// Close stops the send loop and closes the underlying connection.
func (c *FramedConn) Close() error {
	c.once.Do(func() {
		close(c.closed)
		close(c.sendChan)
	})
	c.wg.Wait()
	return c.conn.Close()
}

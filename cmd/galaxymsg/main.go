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

/*
This package contains a command that loads a flat-stream-encoded message
from a file, prints a human-readable dump of it, and optionally round-trips
it through the buffer-vector form to show the two encodings are not
interchangeable.
*/
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/imace/galaxy/logging"
	"github.com/imace/galaxy/message"
)

func main() {
	var inFile string
	var showVector bool

	flag.StringVar(&inFile, "f", "message.bin", "Path to file containing one flat-stream-encoded message")
	flag.BoolVar(&showVector, "vector", false, "Also round-trip the message through the buffer-vector form")
	flag.Parse()

	inFile = filepath.Join(inFile)
	logging.Print("Loading message from file: ", inFile)

	raw, err := ioutil.ReadFile(inFile)
	if err != nil {
		panic(err)
	}

	m, err := message.DecodeFlatBytes(raw)
	if err != nil {
		panic(err)
	}

	dump(m)

	if showVector {
		logging.Print("Round-tripping through the buffer-vector form...")
		bufs := message.EncodeVector(m)
		fmt.Println("vector buffers:", len(bufs))
		for i, b := range bufs {
			fmt.Printf("  buf[%d] len=%d\n", i, len(b))
		}

		vm, err := message.DecodeVector(bufs)
		if err != nil {
			panic(err)
		}
		fmt.Println("decoded from vector form:")
		dump(vm)

		if len(bufs) == 1 {
			fmt.Println("message has no payload buffers: its flat encoding and vector header buffer are the same bytes")
		} else if _, err := message.DecodeVector([][]byte{raw}); err == nil {
			panic("expected decoding a flat buffer as a vector header to fail")
		} else {
			fmt.Println("decoding the original flat bytes as a vector header failed as expected:", err)
		}
	}

	return
}

func dump(m message.Message) {
	fmt.Printf("type=%s messageId=%d peer=%d line=%d size=%d\n",
		m.Type(), m.MessageID(), m.Peer(), m.Line(), m.Size())
	fmt.Printf("  response=%v broadcast=%v replyRequired=%v\n",
		m.IsResponse(), m.IsBroadcast(), m.IsReplyRequired())

	switch v := m.(type) {
	case *message.Get:
		fmt.Println("  get, no payload")
	case *message.LineMessage:
		fmt.Println("  line message, no payload")
	case *message.Inv:
		fmt.Println("  inv, no payload")
	case *message.ChngdOwnr:
		fmt.Println("  chngdOwnr, no payload")
	case *message.Put:
		fmt.Printf("  version=%d payloadLen=%d\n", v.Version(), len(v.Payload()))
	case *message.Putx:
		fmt.Printf("  version=%d sharers=%v payloadLen=%d\n", v.Version(), v.Sharers(), len(v.Payload()))
	case *message.BackupAck:
		fmt.Println("  backupAck, no payload")
	case *message.BackupPacket:
		fmt.Printf("  id=%d entries=%d\n", v.ID(), v.Count())
		for i := 0; i < v.Count(); i++ {
			fmt.Printf("    entry[%d] line=%d version=%d payloadLen=%d\n",
				i, v.BackupLine(i), v.BackupVersion(i), len(v.BackupPayload(i)))
		}
	case *message.BackupPacketAck:
		fmt.Println("  backupPacketAck, no payload")
	case *message.Msg:
		fmt.Printf("  payloadLen=%d\n", len(v.Data()))
	case *message.Ack:
		fmt.Println("  ack, no payload")
	default:
		fmt.Println("  unrecognized message type")
	}
}

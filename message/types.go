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

import "fmt"

// Type is the tag byte identifying a message variant on the wire.
// The ordinal order is part of the wire contract and MUST stay stable
// across versions: new variants are appended, never inserted.
type Type uint8

const (
	TypeGet Type = iota
	TypeGetX
	TypeInv
	TypeInvAck
	TypePut
	TypePutX
	TypeDel
	TypeChngdOwnr
	TypeNotFound
	TypeTimeout
	TypeBackup
	TypeBackupAck
	TypeBackupPacket
	TypeBackupPacketAck
	TypeMsg
	TypeMsgAck
	TypeAck

	numTypes
)

// String returns the type name as used in logs and the CLI dump tool.
func (t Type) String() string {
	switch t {
	case TypeGet:
		return "GET"
	case TypeGetX:
		return "GETX"
	case TypeInv:
		return "INV"
	case TypeInvAck:
		return "INVACK"
	case TypePut:
		return "PUT"
	case TypePutX:
		return "PUTX"
	case TypeDel:
		return "DEL"
	case TypeChngdOwnr:
		return "CHNGD_OWNR"
	case TypeNotFound:
		return "NOT_FOUND"
	case TypeTimeout:
		return "TIMEOUT"
	case TypeBackup:
		return "BACKUP"
	case TypeBackupAck:
		return "BACKUPACK"
	case TypeBackupPacket:
		return "BACKUP_PACKET"
	case TypeBackupPacketAck:
		return "BACKUP_PACKETACK"
	case TypeMsg:
		return "MSG"
	case TypeMsgAck:
		return "MSGACK"
	case TypeAck:
		return "ACK"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// IsValid reports whether t is within the closed set of defined types.
func (t Type) IsValid() bool {
	return t < numTypes
}

// requiresResponse is the REQUIRES_RESPONSE set from the spec: outgoing
// requests of these types default to REPLY_REQUIRED set.
var requiresResponse = map[Type]bool{
	TypeGet:          true,
	TypeGetX:         true,
	TypeInv:          true,
	TypeBackupPacket: true,
}

// RequiresResponse reports whether t is in the REQUIRES_RESPONSE set.
func RequiresResponse(t Type) bool {
	return requiresResponse[t]
}

// Flags is the 8-bit flag bitset carried by every message on the wire.
type Flags uint8

const (
	FlagResponse      Flags = 1 << 0
	FlagBroadcast     Flags = 1 << 1
	FlagReplyRequired Flags = 1 << 2
)

// BroadcastPeer is the sentinel peer value meaning "every reachable peer".
const BroadcastPeer int16 = -1

// UnassignedMessageID is the sentinel messageId meaning "not yet assigned".
const UnassignedMessageID int64 = -1

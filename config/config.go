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
General configuration settings for the message/codec/transport layers.
*/
package config

import "encoding/binary"

// Encoding is the byte order used by every wire-format integer field.
// Fixed big-endian by the wire contract, not a style choice.
var Encoding = binary.BigEndian

const (
	// MaxPayloadLen is the largest a single payload buffer may be.
	MaxPayloadLen = 65535
	// MaxSharers is the largest the sharer array on a PUTX may be.
	MaxSharers = 65535
)

type Logtype int

const (
	GOLOG Logtype = iota // uses the default go logger
	FMT                  // prints logs using fmt package
)

type LogFmtLevel int

const (
	LOGERROR LogFmtLevel = iota
	LOGWARNING
	LOGINFO
)

const (
	LoggingType     = GOLOG
	LoggingFmtLevel = LOGERROR
)

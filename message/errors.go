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
	"errors"
	"fmt"
)

// Framing errors: the decoder surfaces these to the transport, which
// typically resets the connection.
var (
	ErrUnknownTag          = fmt.Errorf("galaxy/message: unknown wire tag byte")
	ErrTruncated           = fmt.Errorf("galaxy/message: truncated input")
	ErrPayloadTooLarge     = fmt.Errorf("galaxy/message: payload exceeds maximum of 65535 bytes")
	ErrInconsistentLength  = fmt.Errorf("galaxy/message: declared length does not match bytes written")
	ErrCrossFormDecode     = fmt.Errorf("galaxy/message: buffer vector form decoded with the flat-stream reader (or vice versa)")
)

// Construction errors: programming errors from violating a smart
// constructor's invariants. Fail fast.
var (
	ErrInvalidGetType        = fmt.Errorf("galaxy/message: GET constructor requires type GET or GETX")
	ErrNegativeResponseID     = fmt.Errorf("galaxy/message: response message must have a non-negative messageId")
	ErrLineMismatch           = fmt.Errorf("galaxy/message: response line does not match request line")
	ErrTooManySharers         = fmt.Errorf("galaxy/message: sharer array exceeds 65535 elements")
)

// State errors: calling a direction-sensitive setter on an incoming message.
var (
	ErrIncomingStateMutation = fmt.Errorf("galaxy/message: cannot mutate direction-sensitive state on an incoming message")
)

// IsFramingError reports whether err is one of the framing-error sentinels.
func IsFramingError(err error) bool {
	return isOneOf(err, ErrUnknownTag, ErrTruncated, ErrPayloadTooLarge, ErrInconsistentLength, ErrCrossFormDecode)
}

// IsConstructionError reports whether err is one of the construction-error sentinels.
func IsConstructionError(err error) bool {
	return isOneOf(err, ErrInvalidGetType, ErrNegativeResponseID, ErrLineMismatch, ErrTooManySharers)
}

// IsStateError reports whether err is the state-error sentinel.
func IsStateError(err error) bool {
	return isOneOf(err, ErrIncomingStateMutation)
}

func isOneOf(err error, sentinels ...error) bool {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}

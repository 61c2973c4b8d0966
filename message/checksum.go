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

import "golang.org/x/crypto/blake2b"

// ChecksumLen is the length in bytes of a ChecksumPayload digest.
const ChecksumLen = 32

// ChecksumPayload returns a blake2b-256 digest of v. It is not part of the
// wire format: PUT/PUTX/BACKUP/BACKUP_PACKET bytes are unchanged by this
// helper. A backup writer or cache layer may call it to get an out-of-band
// integrity digest of a payload buffer before or after a send.
func ChecksumPayload(v []byte) [ChecksumLen]byte {
	hf, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	hf.Write(v)
	var out [ChecksumLen]byte
	copy(out[:], hf.Sum(nil))
	return out
}

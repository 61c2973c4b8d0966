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

// lineBody is the base shape shared by every variant that carries a line
// id: header plus a single u64 line field. Get, LineMessage, Inv, Put,
// Putx, ChngdOwnr, BackupAck and Msg all embed it; Inv/Put/Putx/ChngdOwnr/
// BackupAck/Msg add fields on top and shadow size1/write1/read1, calling back into
// lineBody's own versions by name (the "super" call).
type lineBody struct {
	header
	line int64
}

func newLineBody(t Type, line int64) lineBody {
	return lineBody{header: newHeader(t), line: line}
}

func (b *lineBody) Line() int64    { return b.line }
func (b *lineBody) SetLine(l int64) { b.line = l }

func (b *lineBody) sizeFlat() int { return b.header.sizeFlat() + 8 }

func (b *lineBody) writeFlat(mb *MsgBuffer) {
	b.header.writeFlat(mb)
	mb.AddInt64(b.line)
}

func (b *lineBody) readFlat(r fieldReader) error {
	if err := b.header.readFlat(r); err != nil {
		return err
	}
	line, err := r.ReadInt64()
	if err != nil {
		return err
	}
	b.line = line
	return nil
}

func (b *lineBody) writeVectorHeader(mb *MsgBuffer) { b.writeFlat(mb) }

func (b *lineBody) readVectorHeader(mb *MsgBuffer) ([]int, error) {
	return nil, b.readFlat(mb)
}

func (b *lineBody) clone() lineBody {
	return lineBody{header: b.header.clone(), line: b.line}
}

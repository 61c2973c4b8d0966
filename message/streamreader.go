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
	"io"

	"github.com/imace/galaxy/config"
)

// fieldReader is the read side of the byte-cursor contract that every
// variant's readFlat is written against (readVectorHeader always takes a
// *MsgBuffer). *MsgBuffer
// satisfies it by slicing an in-memory buffer; *streamReader satisfies it
// by pulling exactly as many bytes as each field needs directly off an
// io.Reader, so DecodeFlat can read one message from a persistent
// connection without consuming bytes belonging to the next one.
type fieldReader interface {
	ReadByte() (byte, error)
	ReadBool() (bool, error)
	ReadBytes(n int) ([]byte, error)
	ReadUint16() (uint16, error)
	ReadInt16() (int16, error)
	ReadUint32() (uint32, error)
	ReadUint64() (uint64, error)
	ReadInt64() (int64, error)
}

type streamReader struct {
	r io.Reader
}

func (s *streamReader) read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncated
		}
		return nil, err
	}
	return buf, nil
}

func (s *streamReader) ReadByte() (byte, error) {
	b, err := s.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *streamReader) ReadBool() (bool, error) {
	b, err := s.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (s *streamReader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrTruncated
	}
	if n == 0 {
		return nil, nil
	}
	return s.read(n)
}

func (s *streamReader) ReadUint16() (uint16, error) {
	b, err := s.read(2)
	if err != nil {
		return 0, err
	}
	return config.Encoding.Uint16(b), nil
}

func (s *streamReader) ReadInt16() (int16, error) {
	v, err := s.ReadUint16()
	return int16(v), err
}

func (s *streamReader) ReadUint32() (uint32, error) {
	b, err := s.read(4)
	if err != nil {
		return 0, err
	}
	return config.Encoding.Uint32(b), nil
}

func (s *streamReader) ReadUint64() (uint64, error) {
	b, err := s.read(8)
	if err != nil {
		return 0, err
	}
	return config.Encoding.Uint64(b), nil
}

func (s *streamReader) ReadInt64() (int64, error) {
	v, err := s.ReadUint64()
	return int64(v), err
}

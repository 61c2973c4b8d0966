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
	"fmt"
	"net"
	"strings"
)

// NetConInfo stores a remote peer's network address and network kind (e.g.
// "tcp" or "tcp4"). It carries no peer identity or key material: that lives
// one layer up, in whatever maps a peer node number to a NetConInfo.
type NetConInfo struct {
	Addr string
	Nw   string
}

// Network returns nci.Nw, satisfying net.Addr.
func (nci NetConInfo) Network() string { return nci.Nw }

// String returns nci.Addr, satisfying net.Addr and fmt.Stringer.
func (nci NetConInfo) String() string { return nci.Addr }

// NetConInfoFromAddr builds a NetConInfo from a net.Addr, as returned by
// net.Conn.RemoteAddr after Accept or Dial.
func NetConInfoFromAddr(addr net.Addr) NetConInfo {
	return NetConInfo{Addr: addr.String(), Nw: addr.Network()}
}

// NetConInfoFromString parses a "tcp://host:port" style string into its
// network kind and address.
func NetConInfoFromString(s string) (NetConInfo, error) {
	idx := strings.Index(s, "://")
	if idx < 0 {
		return NetConInfo{}, fmt.Errorf("transport: invalid NetConInfo string %q, want scheme://addr", s)
	}
	return NetConInfo{Nw: s[:idx], Addr: s[idx+len("://"):]}, nil
}

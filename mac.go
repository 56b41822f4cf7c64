package uuid

import (
	"crypto/rand"
	"net"
	"sync"
)

// discoverMAC returns the first IEEE 802 hardware address found among
// the host's network interfaces, and whether one was found at all.
// Grounded on macAddress() in tideland-go-uuid: walk net.Interfaces(),
// take the first whose HardwareAddr has at least six octets.
func discoverMAC() (addr [6]byte, ok bool) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return addr, false
	}
	for _, iface := range ifaces {
		if len(iface.HardwareAddr) >= 6 {
			copy(addr[:], iface.HardwareAddr[:6])
			return addr, true
		}
	}
	return addr, false
}

var (
	cachedMAC   [6]byte
	cachedMACOK bool
	macOnce     sync.Once
)

// hostMAC discovers and caches the host's MAC address for the lifetime
// of the process. Discovery runs at most once; every Generator shares
// the result, the way a single host only has one real MAC address to
// find regardless of how many Generator instances exist.
func hostMAC() (addr [6]byte, ok bool) {
	macOnce.Do(func() {
		cachedMAC, cachedMACOK = discoverMAC()
	})
	return cachedMAC, cachedMACOK
}

// randomMulticastNode draws six random octets and forces the IEEE 802
// multicast bit and the locally-administered bit of the first octet,
// per RFC 4122 §4.5. BuggyMulticastBit restores the historical
// draft-leach encoding error (most-significant-bit-as-multicast) for
// bug-compatibility with legacy producers; by default the correct
// least-significant-bit encoding is used.
func randomMulticastNode(node *[6]byte) error {
	if _, err := rand.Read(node[:]); err != nil {
		return wrap(SystemError, "failed to read random node bytes: %v", err)
	}
	if BuggyMulticastBit {
		node[0] |= 0x80 // historical draft-leach-uuids-guids encoding error
	} else {
		node[0] |= 0x01 // IEEE 802 multicast bit, correctly placed (LSB)
	}
	// BuggyMulticastBit only changes which bit position encodes the
	// multicast flag; the locally-administered bit (0x02 of the same
	// octet) is set the same way in either mode.
	node[0] |= 0x02
	return nil
}

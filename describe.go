package uuid

import (
	"fmt"
	"strings"
	"time"
)

// Describe renders a human-readable breakdown of u, mirroring
// uuid_dump() in OSSP uuid: the canonical string, the decoded variant
// and version, and whatever version-specific fields that version
// carries. It never errors; an unrecognized variant or version simply
// yields a shorter description rather than a failure, since describing
// is a diagnostic, not a validating, operation.
func Describe(u UUID) string {
	var b strings.Builder
	fmt.Fprintf(&b, "uuid: %s\n", u.String())
	fmt.Fprintf(&b, "variant: %s\n", describeVariant(u.Variant()))

	if u.Variant() != VariantRFC4122 {
		return b.String()
	}

	fmt.Fprintf(&b, "version: %d\n", u.Version())

	switch u.Version() {
	case 1:
		describeV1(&b, u)
	case 3:
		b.WriteString("content: name-based, MD5, [not decipherable]\n")
	case 4:
		b.WriteString("content: random, [no semantics]\n")
	default:
		// no further fields for versions this port doesn't generate
	}

	return b.String()
}

func describeVariant(v Variant) string {
	switch v {
	case VariantNCS:
		return "NCS backward compatible"
	case VariantRFC4122:
		return "DCE 1.1, ISO/IEC 11578:1996"
	case VariantMicrosoft:
		return "Microsoft backward compatible"
	default:
		return "reserved for future use"
	}
}

func describeV1(b *strings.Builder, u UUID) {
	ticks := decodeV1Ticks(u)

	// ticks counts 100ns intervals since the Gregorian epoch; split
	// back into whole seconds, the microsecond remainder, and the
	// sub-microsecond 100ns remainder, the way uuid_dump formats
	// "%Y-%m-%d %H:%M:%S.%06d.%d UTC" rather than a single ISO
	// fractional second.
	hundredNanos := ticks - gregorianOffset
	tNsec := hundredNanos % 10
	micros := hundredNanos / 10
	tUsec := micros % 1_000_000
	tSec := micros / 1_000_000

	t := time.Unix(int64(tSec), 0).UTC()
	fmt.Fprintf(b, "content: time, %s.%06d.%d UTC\n", t.Format("2006-01-02 15:04:05"), tUsec, tNsec)

	clockSeq := uint16(u[8]&0x3f)<<8 | uint16(u[9])
	fmt.Fprintf(b, "clock-seq: %d\n", clockSeq)

	node := u[10:16]
	kind := "unicast"
	if node[0]&0x01 != 0 {
		kind = "multicast"
	}
	scope := "global"
	if node[0]&0x02 != 0 {
		scope = "local"
	}
	fmt.Fprintf(b, "node: %02x:%02x:%02x:%02x:%02x:%02x (%s, %s)\n",
		node[0], node[1], node[2], node[3], node[4], node[5], scope, kind)
}

// decodeV1Ticks reassembles the 60-bit tick count from its three
// split fields, the inverse of the deposit in generateV1.
func decodeV1Ticks(u UUID) uint64 {
	timeLow := uint64(u[0])<<24 | uint64(u[1])<<16 | uint64(u[2])<<8 | uint64(u[3])
	timeMid := uint64(u[4])<<8 | uint64(u[5])
	timeHi := uint64(u[6]&0x0f)<<8 | uint64(u[7])
	return timeHi<<48 | timeMid<<32 | timeLow
}

package uuid

import "encoding/hex"

// isHexDigit reports whether b is an ASCII hex digit, case-insensitive.
func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isCanonicalForm reports whether s has the exact grammar
// 8hex-4hex-4hex-4hex-12hex, case-insensitive on the hex digits, no
// surrounding whitespace, no URN prefix.
func isCanonicalForm(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < 36; i++ {
		switch i {
		case 8, 13, 18, 23:
			if s[i] != '-' {
				return false
			}
		default:
			if !isHexDigit(s[i]) {
				return false
			}
		}
	}
	return true
}

// Parse parses the canonical 36-character string representation of a
// UUID. Hex digits may be mixed case; the grammar is otherwise strict:
// wrong length, a misplaced hyphen, or a non-hex digit all yield an
// InvalidArgument error, and the returned UUID is Nil.
func Parse(s string) (UUID, error) {
	var u UUID
	if !isCanonicalForm(s) {
		return u, wrap(InvalidArgument, "parse: %q is not a valid UUID", s)
	}
	h := s[0:8] + s[9:13] + s[14:18] + s[19:23] + s[24:36]
	if _, err := hex.Decode(u[:], []byte(h)); err != nil {
		return u, wrap(InvalidArgument, "parse: %q is not a valid UUID: %v", s, err)
	}
	return u, nil
}

// Format returns u's canonical string representation. It is equivalent
// to u.String but named to mirror the parse/format pairing in spec.
func Format(u UUID) string {
	return u.String()
}

// MustParse is like Parse but panics on error, for callers parsing a
// compile-time constant where a returned error can never be handled
// meaningfully (e.g. initializing a package-level namespace UUID).
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

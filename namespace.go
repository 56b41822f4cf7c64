package uuid

// Well-known namespace UUIDs for Version 3 generation, as tabulated by
// RFC 4122 Appendix C (and uuid_ns_table in OSSP uuid).
var (
	NamespaceDNS  = UUID{0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
	NamespaceURL  = UUID{0x6b, 0xa7, 0xb8, 0x11, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
	NamespaceOID  = UUID{0x6b, 0xa7, 0xb8, 0x12, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
	NamespaceX500 = UUID{0x6b, 0xa7, 0xb8, 0x14, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
)

var wellKnownNamespaces = map[string]UUID{
	"DNS":  NamespaceDNS,
	"URL":  NamespaceURL,
	"OID":  NamespaceOID,
	"X500": NamespaceX500,
}

// resolveNamespace resolves ns to its 16-octet form, either by looking
// it up in the well-known table ("DNS", "URL", "OID", "X500") or, for
// anything else, by parsing it as a 36-character UUID string.
func resolveNamespace(ns string) (UUID, error) {
	if u, ok := wellKnownNamespaces[ns]; ok {
		return u, nil
	}
	u, err := Parse(ns)
	if err != nil {
		return UUID{}, wrap(InvalidArgument, "namespace %q is neither a well-known name nor a valid UUID", ns)
	}
	return u, nil
}

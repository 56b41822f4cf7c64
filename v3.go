package uuid

// generateV3 computes a name-based UUID by MD5-hashing the namespace
// UUID's sixteen octets followed by the raw bytes of name, per RFC
// 4122 §4.3. The digest is written into a buffer distinct from the
// working UUID so a failed or partial hash can never leave a
// half-formed identifier lying around in the result.
func (g *Generator) generateV3(r V3Request) (UUID, error) {
	ns, err := resolveNamespace(r.Namespace)
	if err != nil {
		return Nil, err
	}

	g.md5.Reset()
	g.md5.Write(ns[:])
	g.md5.Write([]byte(r.Name))

	var digest [16]byte
	g.md5.Sum(digest[:0])

	u := Unpack(digest)
	brand(&u, 3)
	return u, nil
}

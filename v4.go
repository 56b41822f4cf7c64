package uuid

// generateV4 fills all 128 bits with cryptographically random octets
// drawn from the Generator's buffered entropy, and brands the result,
// per RFC 4122 §4.4. No other state on the Generator participates.
func (g *Generator) generateV4(r V4Request) (UUID, error) {
	b, err := g.drawRandom(16)
	if err != nil {
		return Nil, err
	}
	var u UUID
	copy(u[:], b)
	brand(&u, 4)
	return u, nil
}

package uuid

import (
	"crypto/md5"
	"crypto/rand"
	"hash"
	"sync"
	"time"
)

// BuggyMulticastBit restores the historical draft-leach-uuids-guids
// encoding error for the synthesized multicast node address (the
// specification mistakenly describes the *most* significant bit of the
// first node octet as the multicast bit, when it is actually the
// *least* significant bit in memory and hexadecimal-string order).
// OSSP uuid exposes this as the compile-time WITH_RFC2518 option; here
// it is a package variable so legacy-producer bug-compatibility can be
// opted into at runtime without a build tag. Default: false (correct
// encoding).
var BuggyMulticastBit = false

// Request selects a generation algorithm and its arguments. The three
// implementations — V1Request, V3Request, V4Request — replace the
// variadic uuid_generate(uuid, mode, ...) surface of the C original
// with a type-safe, exhaustively-switchable shape.
type Request interface {
	isRequest()
}

// V1Request generates a time-and-node based UUID. MulticastRandom
// forces a synthetic, randomly-drawn multicast node address even when
// a real MAC address is available (the UUID_MCASTRND mode flag).
type V1Request struct {
	MulticastRandom bool
}

// V3Request generates an MD5 name-based UUID. Namespace is either one
// of the well-known names "DNS", "URL", "OID", "X500", or a
// 36-character UUID string; Name is the arbitrary-length name to hash
// within that namespace.
type V3Request struct {
	Namespace string
	Name      string
}

// V4Request generates a fully random UUID. It carries no parameters.
type V4Request struct{}

func (V1Request) isRequest() {}
func (V3Request) isRequest() {}
func (V4Request) isRequest() {}

// Generator owns the mutable state behind UUID generation: a buffer of
// crypto/rand output for V4's fill (V1's clock sequence and synthetic
// node read crypto/rand directly), an MD5 hash.Hash reused across V3
// calls, the host's discovered node address if there is one, and the
// last-observed timestamp and per-tick sequence counter V1 needs for
// monotonicity. It is the Go analogue of OSSP uuid's uuid_st: where
// that struct is heap-allocated by uuid_create and released by
// uuid_destroy, a Generator is an ordinary value whose lifetime is the
// caller's to manage — NewGenerator replaces uuid_create, and Close
// exists for symmetry and to guard against reuse after disposal.
//
// Every method that touches a Generator's state holds its mutex, so
// concurrent calls on one instance are serialized rather than
// interleaved: they share, and advance in turn, one clock sequence and
// one tick counter. Distinct Generators are fully independent.
type Generator struct {
	mu sync.Mutex

	md5 hash.Hash

	mac   [6]byte
	macOK bool // true iff mac is a real, non-synthetic IEEE 802 address

	lastTime time.Time
	tickSeq  int

	clockSeq uint16

	randBuf []byte
	randPos int

	closed bool
}

// randBufSize is the chunk size refilled from crypto/rand.Reader each
// time V4 generation exhausts the buffer, trading one syscall for many
// UUIDs' worth of entropy instead of one syscall per UUID.
const randBufSize = 4096

// drawRandom returns the next n bytes of the Generator's buffered
// entropy, refilling from crypto/rand when exhausted. Adapted from the
// teacher's NewV4Pool/randBuf, generalized to an instance-owned buffer
// instead of a package-global sync.Pool, since a Generator already
// serializes its own callers under mu.
func (g *Generator) drawRandom(n int) ([]byte, error) {
	if g.randBuf == nil {
		g.randBuf = make([]byte, randBufSize)
		g.randPos = randBufSize // force an initial fill
	}
	if g.randPos+n > len(g.randBuf) {
		if _, err := rand.Read(g.randBuf); err != nil {
			return nil, wrap(SystemError, "failed to read random bytes: %v", err)
		}
		g.randPos = 0
	}
	out := g.randBuf[g.randPos : g.randPos+n]
	g.randPos += n
	return out, nil
}

// NewGenerator creates a Generator, discovering the host's MAC address
// (or noting its absence) and preparing the MD5 sub-state. It always
// succeeds in this port: InternalError is reserved for the case where
// constructing the PRNG/MD5 collaborators fails, which crypto/md5 and
// crypto/rand never do.
func NewGenerator() (*Generator, error) {
	g := &Generator{md5: md5.New()}
	g.mac, g.macOK = hostMAC()
	return g, nil
}

// Close releases the Generator. Nothing here is externally
// heap-allocated, but Close exists so callers mirror OSSP uuid's
// create/destroy discipline and so further use after Close is
// detectable rather than silently continuing on stale state.
func (g *Generator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return wrap(InvalidArgument, "generator already closed")
	}
	g.closed = true
	return nil
}

func (g *Generator) checkOpen() error {
	if g.closed {
		return wrap(InvalidArgument, "generator is closed")
	}
	return nil
}

// ResetClockSequence clears the carried-forward V1 clock sequence, the
// way uuid_nil(uuid) does in OSSP uuid when the caller nils out the
// same object it is about to regenerate into: since the clock sequence
// lives in that object's bytes there, zeroing it makes the next V1
// generation see clck == 0 and re-randomize the sequence instead of
// incrementing it. time_last/time_seq (this port's lastTime/tickSeq)
// are untouched, since uuid_nil never reaches those — they live
// outside the object uuid_nil clears.
func (g *Generator) ResetClockSequence() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkOpen(); err != nil {
		return err
	}
	g.clockSeq = 0
	return nil
}

// Generate dispatches req to its algorithm and returns the resulting
// UUID, branded with the appropriate version and the DCE 1.1 variant.
func (g *Generator) Generate(req Request) (UUID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkOpen(); err != nil {
		return Nil, err
	}

	switch r := req.(type) {
	case V1Request:
		return g.generateV1(r)
	case V3Request:
		return g.generateV3(r)
	case V4Request:
		return g.generateV4(r)
	default:
		return Nil, wrap(InvalidArgument, "unknown request type %T", req)
	}
}

package participant

import (
	"crypto/cipher"
	"encoding/binary"
	"encoding/hex"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/group/edwards25519"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/xerrors"
)

var suite = edwards25519.NewBlakeSHA256Ed25519()

// IdentitySize is the length of a serialized identity in bytes.
const IdentitySize = 32

// Secret is a participant's private identity material.
type Secret struct {
	scalar kyber.Scalar
}

// NewSecret draws fresh identity material from the given randomness source.
func NewSecret(rng cipher.Stream) *Secret {
	return &Secret{scalar: suite.Scalar().Pick(rng)}
}

// Identity returns the public identity derived from this secret.
func (s *Secret) Identity() Identity {
	p := suite.Point().Mul(s.scalar, nil)
	bs, err := p.MarshalBinary()
	if err != nil {
		// edwards25519 points have a fixed-size, infallible encoding
		panic(err)
	}
	var id Identity
	copy(id.bytes[:], bs)
	return id
}

// Identity uniquely identifies a participant. It is comparable and can be
// used as a map key.
type Identity struct {
	bytes [IdentitySize]byte
}

// IdentityFromBytes validates and decodes a serialized identity.
func IdentityFromBytes(bs []byte) (Identity, error) {
	var id Identity
	if len(bs) != IdentitySize {
		return id, xerrors.Errorf("identity must be %d bytes, got %d", IdentitySize, len(bs))
	}
	if err := suite.Point().UnmarshalBinary(bs); err != nil {
		return id, xerrors.Errorf("invalid identity encoding: %w", err)
	}
	copy(id.bytes[:], bs)
	return id, nil
}

// Bytes returns the serialized identity.
func (id Identity) Bytes() []byte {
	bs := id.bytes
	return bs[:]
}

func (id Identity) Equal(other Identity) bool {
	return id.bytes == other.bytes
}

func (id Identity) String() string {
	return hex.EncodeToString(id.bytes[:])
}

// Identifier indexes a participant's share in the sharing polynomial. The
// polynomial is evaluated at x = 1 + identifier, so shares stay addressable
// by identity rather than by roster position.
type Identifier uint32

// Identifier derives the share index for this identity. The derivation is
// deterministic: the first four bytes of the identity's BLAKE2b-256 digest,
// with zero remapped because the zero index is reserved.
func (id Identity) Identifier() Identifier {
	sum := blake2b.Sum256(id.bytes[:])
	v := binary.BigEndian.Uint32(sum[:4])
	if v == 0 {
		v = binary.BigEndian.Uint32(sum[4:8]) | 1
	}
	return Identifier(v)
}

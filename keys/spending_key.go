// Package keys holds the wallet key material consumed by the multisig
// trusted dealer.
package keys

import (
	"crypto/cipher"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/group/edwards25519"
	"golang.org/x/xerrors"
)

var suite = edwards25519.NewBlakeSHA256Ed25519()

// SpendingKeySize is the length of a serialized spending key in bytes.
const SpendingKeySize = 32

// ErrMalformedKey reports key material that cannot be decoded into the
// spend authorizing scalar.
var ErrMalformedKey = xerrors.New("malformed spending key")

// SpendingKey is a wallet spending key. Its spend authorizing scalar is the
// value that gets split between multisig participants.
type SpendingKey struct {
	spendAuthorizingKey [SpendingKeySize]byte
}

// GenerateSpendingKey draws a fresh spending key from the given randomness
// source.
func GenerateSpendingKey(rng cipher.Stream) *SpendingKey {
	s := suite.Scalar().Pick(rng)
	bs, err := s.MarshalBinary()
	if err != nil {
		// scalar encoding is fixed-size and infallible
		panic(err)
	}
	var k SpendingKey
	copy(k.spendAuthorizingKey[:], bs)
	return &k
}

// SpendingKeyFromBytes decodes a serialized spending key. The scalar itself
// is validated lazily by SpendAuthorizingKey.
func SpendingKeyFromBytes(bs []byte) (*SpendingKey, error) {
	if len(bs) != SpendingKeySize {
		return nil, xerrors.Errorf("spending key must be %d bytes, got %d: %w",
			SpendingKeySize, len(bs), ErrMalformedKey)
	}
	var k SpendingKey
	copy(k.spendAuthorizingKey[:], bs)
	return &k, nil
}

// SpendAuthorizingKey derives the scalar form of the key. Non-canonical key
// material is rejected.
func (k *SpendingKey) SpendAuthorizingKey() (kyber.Scalar, error) {
	s := suite.Scalar()
	if err := s.UnmarshalBinary(k.spendAuthorizingKey[:]); err != nil {
		return nil, xerrors.Errorf("decode spend authorizing key: %v: %w", err, ErrMalformedKey)
	}
	return s, nil
}

// Bytes returns the serialized spending key.
func (k *SpendingKey) Bytes() []byte {
	bs := k.spendAuthorizingKey
	return bs[:]
}

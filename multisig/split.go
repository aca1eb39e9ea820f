// Package multisig converts a wallet spending key into a threshold multisig
// arrangement: a trusted dealer splits the spend authorizing key into one
// key share package per participant plus a public key package for the group.
package multisig

import (
	"crypto/cipher"
	"math"

	"go.dedis.ch/kyber/v4/group/edwards25519"
	"go.dedis.ch/kyber/v4/share"
	"golang.org/x/xerrors"

	"github.com/j-s-n/ironfish/keys"
	"github.com/j-s-n/ironfish/logging"
	"github.com/j-s-n/ironfish/participant"
	"github.com/j-s-n/ironfish/vss"
)

var suite = edwards25519.NewBlakeSHA256Ed25519()

var logger = logging.GetLogger("multisig")

// MaxParticipants bounds the roster size to what the split primitive's
// 16-bit participant count can represent.
const MaxParticipants = math.MaxUint16

var (
	// ErrInvalidConfig reports a configuration rejected before any
	// cryptographic work starts.
	ErrInvalidConfig = xerrors.New("invalid secret share config")
	// ErrUnknownIdentifier reports a share keyed by an identifier that was
	// never part of the roster. The primitive and the dealer disagree on the
	// identifier set; the whole operation is discarded.
	ErrUnknownIdentifier = xerrors.New("split returned an identifier that was not passed as an input")
	// ErrMissingShare reports a roster identity that received no share.
	ErrMissingShare = xerrors.New("identity received no share")
)

// SecretShareConfig describes one split operation.
type SecretShareConfig struct {
	MinSigners uint16
	Identities []participant.Identity
	SpenderKey *keys.SpendingKey
}

// SplitSecret splits the config's spending key into one key share package
// per identity, along with the group's public key package. The operation is
// all-or-nothing: any failure discards every partial result. The caller
// supplies the randomness source and owns the returned packages.
func SplitSecret(config *SecretShareConfig, rng cipher.Stream) (
	map[participant.Identity]*KeySharePackage, *PublicKeyPackage, error) {

	n := len(config.Identities)
	if config.MinSigners < 2 {
		return nil, nil, xerrors.Errorf("min signers must be at least 2, got %d: %w",
			config.MinSigners, ErrInvalidConfig)
	}
	if int(config.MinSigners) > n {
		return nil, nil, xerrors.Errorf("min signers %d exceeds %d identities: %w",
			config.MinSigners, n, ErrInvalidConfig)
	}
	if n > MaxParticipants {
		return nil, nil, xerrors.Errorf("%d identities exceed the supported maximum of %d: %w",
			n, MaxParticipants, ErrInvalidConfig)
	}

	idMap, err := participant.NewIdentifierMap(config.Identities)
	if err != nil {
		return nil, nil, xerrors.Errorf("build identifier map: %w", err)
	}

	secret, err := config.SpenderKey.SpendAuthorizingKey()
	if err != nil {
		return nil, nil, xerrors.Errorf("derive signing key: %w", err)
	}

	logger.Debug().
		Int("participants", n).
		Uint16("minSigners", config.MinSigners).
		Msg("splitting spending key")

	shares, pub, err := vss.Split(suite, secret, uint16(n), config.MinSigners,
		idMap.Identifiers(), rng)
	secret.Zero()
	if err != nil {
		return nil, nil, xerrors.Errorf("split spending key: %w", err)
	}

	packages, err := assemblePackages(idMap, shares, pub, config.MinSigners)
	if err != nil {
		return nil, nil, err
	}

	logger.Info().
		Int("participants", n).
		Uint16("minSigners", config.MinSigners).
		Msg("spending key split")

	return packages, newPublicKeyPackage(pub, config.Identities, config.MinSigners), nil
}

// assemblePackages folds the identifier-keyed shares back through the map
// into identity-keyed packages. Every identifier must resolve and every
// identity must end up with exactly one share.
func assemblePackages(idMap *participant.IdentifierMap,
	shares map[participant.Identifier]*share.PriShare, pub *vss.PublicMaterial,
	minSigners uint16) (map[participant.Identity]*KeySharePackage, error) {

	packages := make(map[participant.Identity]*KeySharePackage, idMap.Len())
	for id, s := range shares {
		identity, ok := idMap.Identity(id)
		if !ok {
			return nil, xerrors.Errorf("identifier %d: %w", id, ErrUnknownIdentifier)
		}
		pkg, err := newKeySharePackage(s, pub, minSigners)
		if err != nil {
			return nil, err
		}
		packages[identity] = pkg
	}

	if len(packages) != idMap.Len() {
		for _, id := range idMap.Identifiers() {
			identity, _ := idMap.Identity(id)
			if _, ok := packages[identity]; !ok {
				return nil, xerrors.Errorf("identity %s: %w", identity, ErrMissingShare)
			}
		}
	}

	return packages, nil
}

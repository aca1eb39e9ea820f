// Package vss implements verifiable threshold secret sharing on top of
// kyber's polynomial arithmetic. A secret scalar is split into shares
// evaluated at explicit identifier points, together with Feldman commitments
// that let anyone check a share without learning the secret.
package vss

import (
	"crypto/cipher"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/share"
	"golang.org/x/xerrors"

	"github.com/j-s-n/ironfish/participant"
)

var (
	// ErrInvalidThreshold reports split parameters outside the supported
	// range.
	ErrInvalidThreshold = xerrors.New("invalid threshold")
	// ErrDuplicateIdentifier reports an identifier list with repeated
	// entries.
	ErrDuplicateIdentifier = xerrors.New("duplicate identifier")
)

// Split samples a random polynomial of degree minSigners-1 with the secret
// as constant term and evaluates it at each identifier. The identifier list
// must hold exactly maxSigners distinct entries; shares are keyed by
// identifier, never by position.
func Split(g kyber.Group, secret kyber.Scalar, maxSigners, minSigners uint16,
	identifiers []participant.Identifier, rng cipher.Stream) (
	map[participant.Identifier]*share.PriShare, *PublicMaterial, error) {

	if minSigners < 2 {
		return nil, nil, xerrors.Errorf("min signers must be at least 2, got %d: %w",
			minSigners, ErrInvalidThreshold)
	}
	if minSigners > maxSigners {
		return nil, nil, xerrors.Errorf("min signers %d exceeds max signers %d: %w",
			minSigners, maxSigners, ErrInvalidThreshold)
	}
	if len(identifiers) != int(maxSigners) {
		return nil, nil, xerrors.Errorf("expected %d identifiers, got %d: %w",
			maxSigners, len(identifiers), ErrInvalidThreshold)
	}

	p := share.NewPriPoly(g, int(minSigners), secret, rng)
	_, commits := p.Commit(nil).Info()

	shares := make(map[participant.Identifier]*share.PriShare, len(identifiers))
	for _, id := range identifiers {
		if _, ok := shares[id]; ok {
			return nil, nil, xerrors.Errorf("identifier %d: %w", id, ErrDuplicateIdentifier)
		}
		shares[id] = p.Eval(uint32(id))
	}

	return shares, &PublicMaterial{g: g, commits: commits}, nil
}

// Reconstruct recovers the secret from at least minSigners shares by
// Lagrange interpolation.
func Reconstruct(g kyber.Group, shares []*share.PriShare, minSigners uint16) (kyber.Scalar, error) {
	if len(shares) < int(minSigners) {
		return nil, xerrors.Errorf("need at least %d shares, got %d: %w",
			minSigners, len(shares), ErrInvalidThreshold)
	}
	return share.RecoverSecret(g, shares, int(minSigners), len(shares))
}

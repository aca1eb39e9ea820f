package multisig

import (
	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/share"
	"golang.org/x/xerrors"

	"github.com/j-s-n/ironfish/participant"
	"github.com/j-s-n/ironfish/vss"
)

// ErrInvalidShare reports a share that does not match the polynomial
// commitments. No package is handed out for an unverifiable share.
var ErrInvalidShare = xerrors.New("share does not match commitment")

// KeySharePackage is one participant's share of the spending key plus the
// public material needed to take part in signing later.
type KeySharePackage struct {
	Identifier     participant.Identifier
	SigningShare   kyber.Scalar
	VerifyingShare kyber.Point
	GroupPublicKey kyber.Point
	MinSigners     uint16
}

// newKeySharePackage wraps a raw share, checking it against the commitments
// first. A failed check fails the whole split.
func newKeySharePackage(s *share.PriShare, pub *vss.PublicMaterial,
	minSigners uint16) (*KeySharePackage, error) {

	if !pub.Verify(s) {
		return nil, xerrors.Errorf("identifier %d: %w", s.I, ErrInvalidShare)
	}
	return &KeySharePackage{
		Identifier:     participant.Identifier(s.I),
		SigningShare:   s.V,
		VerifyingShare: pub.VerifyingShare(participant.Identifier(s.I)),
		GroupPublicKey: pub.GroupPublicKey(),
		MinSigners:     minSigners,
	}, nil
}

// PriShare returns the share in the primitive's representation, as consumed
// by reconstruction.
func (p *KeySharePackage) PriShare() *share.PriShare {
	return &share.PriShare{I: uint32(p.Identifier), V: p.SigningShare}
}

// PublicKeyPackage is the group's public verification material together
// with the roster it was built over.
type PublicKeyPackage struct {
	GroupPublicKey  kyber.Point
	Identities      []participant.Identity
	VerifyingShares map[participant.Identity]kyber.Point
	MinSigners      uint16
}

func newPublicKeyPackage(pub *vss.PublicMaterial,
	identities []participant.Identity, minSigners uint16) *PublicKeyPackage {

	roster := make([]participant.Identity, len(identities))
	copy(roster, identities)

	verifying := make(map[participant.Identity]kyber.Point, len(roster))
	for _, identity := range roster {
		verifying[identity] = pub.VerifyingShare(identity.Identifier())
	}

	return &PublicKeyPackage{
		GroupPublicKey:  pub.GroupPublicKey(),
		Identities:      roster,
		VerifyingShares: verifying,
		MinSigners:      minSigners,
	}
}

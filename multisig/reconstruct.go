package multisig

import (
	"go.dedis.ch/kyber/v4/share"
	"golang.org/x/xerrors"

	"github.com/j-s-n/ironfish/keys"
	"github.com/j-s-n/ironfish/vss"
)

// ReconstructSpendingKey recovers the original spending key from a quorum
// of key share packages. All packages must come from the same split.
func ReconstructSpendingKey(packages []*KeySharePackage) (*keys.SpendingKey, error) {
	if len(packages) == 0 {
		return nil, xerrors.New("no key share packages provided")
	}

	minSigners := packages[0].MinSigners
	group := packages[0].GroupPublicKey
	shares := make([]*share.PriShare, len(packages))
	for i, pkg := range packages {
		if pkg.MinSigners != minSigners {
			return nil, xerrors.Errorf("package %d has min signers %d, package 0 has %d",
				i, pkg.MinSigners, minSigners)
		}
		if !pkg.GroupPublicKey.Equal(group) {
			return nil, xerrors.Errorf("package %d belongs to a different group key", i)
		}
		shares[i] = pkg.PriShare()
	}

	scalar, err := vss.Reconstruct(suite, shares, minSigners)
	if err != nil {
		return nil, xerrors.Errorf("recover spend authorizing key: %w", err)
	}

	bs, err := scalar.MarshalBinary()
	scalar.Zero()
	if err != nil {
		return nil, err
	}
	return keys.SpendingKeyFromBytes(bs)
}

package vss

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/kyber/v4/group/edwards25519"
	"go.dedis.ch/kyber/v4/share"
	"go.dedis.ch/kyber/v4/util/random"

	"github.com/j-s-n/ironfish/participant"
)

func testIdentifiers(n int) []participant.Identifier {
	ids := make([]participant.Identifier, n)
	for i := 0; i < n; i++ {
		ids[i] = participant.Identifier(1000*i + 7)
	}
	return ids
}

func TestSplit_SharesVerify(t *testing.T) {
	g := edwards25519.NewBlakeSHA256Ed25519()
	secret := g.Scalar().Pick(random.New())
	ids := testIdentifiers(7)

	shares, pub, err := Split(g, secret, 7, 3, ids, random.New())
	require.NoError(t, err)
	require.Len(t, shares, 7)

	for id, s := range shares {
		require.Equal(t, uint32(id), s.I)
		require.True(t, pub.Verify(s))
		require.True(t, pub.VerifyingShare(id).Equal(g.Point().Mul(s.V, nil)))
	}

	require.True(t, pub.GroupPublicKey().Equal(g.Point().Mul(secret, nil)))
	require.Len(t, pub.Commitments(), 3)
}

func TestSplit_Reconstruct(t *testing.T) {
	g := edwards25519.NewBlakeSHA256Ed25519()
	secret := g.Scalar().Pick(random.New())
	ids := testIdentifiers(7)

	shares, _, err := Split(g, secret, 7, 3, ids, random.New())
	require.NoError(t, err)

	subsets := [][]participant.Identifier{
		{ids[0], ids[1], ids[2]},
		{ids[4], ids[2], ids[6]},
		{ids[6], ids[5], ids[4], ids[3], ids[2], ids[1], ids[0]},
	}
	for _, subset := range subsets {
		quorum := make([]*share.PriShare, len(subset))
		for i, id := range subset {
			quorum[i] = shares[id]
		}

		recovered, err := Reconstruct(g, quorum, 3)
		require.NoError(t, err)
		require.True(t, secret.Equal(recovered))
	}
}

func TestReconstruct_TooFewShares(t *testing.T) {
	g := edwards25519.NewBlakeSHA256Ed25519()
	secret := g.Scalar().Pick(random.New())
	ids := testIdentifiers(7)

	shares, _, err := Split(g, secret, 7, 3, ids, random.New())
	require.NoError(t, err)

	quorum := []*share.PriShare{shares[ids[0]], shares[ids[1]]}
	_, err = Reconstruct(g, quorum, 3)
	require.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestReconstruct_BelowThresholdDoesNotRecover(t *testing.T) {
	g := edwards25519.NewBlakeSHA256Ed25519()
	secret := g.Scalar().Pick(random.New())
	ids := testIdentifiers(7)

	shares, _, err := Split(g, secret, 7, 3, ids, random.New())
	require.NoError(t, err)

	// interpolating two points of a degree-2 polynomial lands elsewhere
	quorum := []*share.PriShare{shares[ids[0]], shares[ids[1]]}
	recovered, err := share.RecoverSecret(g, quorum, 2, 2)
	require.NoError(t, err)
	require.False(t, secret.Equal(recovered))
}

func TestSplit_RejectsInvalidParams(t *testing.T) {
	g := edwards25519.NewBlakeSHA256Ed25519()
	secret := g.Scalar().Pick(random.New())

	_, _, err := Split(g, secret, 7, 1, testIdentifiers(7), random.New())
	require.ErrorIs(t, err, ErrInvalidThreshold)

	_, _, err = Split(g, secret, 7, 8, testIdentifiers(7), random.New())
	require.ErrorIs(t, err, ErrInvalidThreshold)

	_, _, err = Split(g, secret, 7, 3, testIdentifiers(5), random.New())
	require.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestSplit_RejectsDuplicateIdentifiers(t *testing.T) {
	g := edwards25519.NewBlakeSHA256Ed25519()
	secret := g.Scalar().Pick(random.New())

	ids := testIdentifiers(7)
	ids[3] = ids[0]

	_, _, err := Split(g, secret, 7, 3, ids, random.New())
	require.ErrorIs(t, err, ErrDuplicateIdentifier)
}

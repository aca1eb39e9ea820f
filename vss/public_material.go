package vss

import (
	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/share"

	"github.com/j-s-n/ironfish/participant"
)

// PublicMaterial holds the Feldman commitments to the sharing polynomial.
// It carries no secret information and can be published.
type PublicMaterial struct {
	g       kyber.Group
	commits []kyber.Point
}

// NewPublicMaterial rebuilds public material from its commitment points.
func NewPublicMaterial(g kyber.Group, commits []kyber.Point) *PublicMaterial {
	cs := make([]kyber.Point, len(commits))
	copy(cs, commits)
	return &PublicMaterial{g: g, commits: cs}
}

// GroupPublicKey returns the commitment to the secret, the group's shared
// verification key.
func (pm *PublicMaterial) GroupPublicKey() kyber.Point {
	return pm.commits[0].Clone()
}

// Commitments returns the commitment points in ascending coefficient order.
func (pm *PublicMaterial) Commitments() []kyber.Point {
	cs := make([]kyber.Point, len(pm.commits))
	copy(cs, pm.commits)
	return cs
}

// VerifyingShare evaluates the commitment polynomial at the identifier's
// point, yielding the public counterpart of that participant's share.
func (pm *PublicMaterial) VerifyingShare(id participant.Identifier) kyber.Point {
	xi := pm.g.Scalar().SetInt64(1 + int64(id))
	v := pm.g.Point().Null()
	for j := len(pm.commits) - 1; j >= 0; j-- {
		v.Mul(xi, v)
		v.Add(v, pm.commits[j])
	}
	return v
}

// Verify checks a share against the commitments.
func (pm *PublicMaterial) Verify(s *share.PriShare) bool {
	v := pm.VerifyingShare(participant.Identifier(s.I))
	return v.Equal(pm.g.Point().Mul(s.V, nil))
}

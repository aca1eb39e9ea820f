package participant

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/kyber/v4/util/random"
)

func createIdentities(n int) []Identity {
	identities := make([]Identity, n)
	for i := 0; i < n; i++ {
		identities[i] = NewSecret(random.New()).Identity()
	}
	return identities
}

func TestIdentifierMap_Bijection(t *testing.T) {
	identities := createIdentities(10)

	m, err := NewIdentifierMap(identities)
	require.NoError(t, err)
	require.Equal(t, 10, m.Len())

	ids := m.Identifiers()
	require.Len(t, ids, 10)

	for i, id := range ids {
		require.Equal(t, identities[i].Identifier(), id)

		identity, ok := m.Identity(id)
		require.True(t, ok)
		require.True(t, identities[i].Equal(identity))
	}
}

func TestIdentifierMap_RejectsDuplicateIdentity(t *testing.T) {
	identities := createIdentities(3)
	identities = append(identities, identities[1])

	_, err := NewIdentifierMap(identities)
	require.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestIdentifierMap_UnknownIdentifier(t *testing.T) {
	identities := createIdentities(3)

	m, err := NewIdentifierMap(identities)
	require.NoError(t, err)

	known := make(map[Identifier]struct{})
	for _, id := range m.Identifiers() {
		known[id] = struct{}{}
	}
	unknown := Identifier(1)
	for {
		if _, ok := known[unknown]; !ok {
			break
		}
		unknown++
	}

	_, ok := m.Identity(unknown)
	require.False(t, ok)
}

package participant

import (
	"golang.org/x/xerrors"
)

var (
	// ErrDuplicateIdentity reports a roster containing the same identity twice.
	ErrDuplicateIdentity = xerrors.New("duplicate identity")
	// ErrIdentifierCollision reports two distinct identities deriving the same
	// identifier. The roster cannot be used for a split.
	ErrIdentifierCollision = xerrors.New("identifier collision")
)

// IdentifierMap is a bijection between a roster of identities and their
// derived identifiers, valid for a single split operation.
type IdentifierMap struct {
	identifiers []Identifier
	byID        map[Identifier]Identity
}

// NewIdentifierMap derives an identifier for every identity in the roster.
// It fails on a duplicate identity and on an identifier collision between
// distinct identities; it never deduplicates silently.
func NewIdentifierMap(identities []Identity) (*IdentifierMap, error) {
	seen := make(map[Identity]struct{}, len(identities))
	byID := make(map[Identifier]Identity, len(identities))
	identifiers := make([]Identifier, len(identities))

	for i, identity := range identities {
		if _, ok := seen[identity]; ok {
			return nil, xerrors.Errorf("identity %s: %w", identity, ErrDuplicateIdentity)
		}
		seen[identity] = struct{}{}

		id := identity.Identifier()
		if prev, ok := byID[id]; ok {
			return nil, xerrors.Errorf("identities %s and %s both derive %d: %w",
				prev, identity, id, ErrIdentifierCollision)
		}
		byID[id] = identity
		identifiers[i] = id
	}

	return &IdentifierMap{identifiers: identifiers, byID: byID}, nil
}

func (m *IdentifierMap) Len() int {
	return len(m.identifiers)
}

// Identifiers returns the derived identifiers in roster order.
func (m *IdentifierMap) Identifiers() []Identifier {
	ids := make([]Identifier, len(m.identifiers))
	copy(ids, m.identifiers)
	return ids
}

// Identity resolves an identifier back to its identity.
func (m *IdentifierMap) Identity(id Identifier) (Identity, bool) {
	identity, ok := m.byID[id]
	return identity, ok
}

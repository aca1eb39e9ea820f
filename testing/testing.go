package testing

import (
	"crypto/cipher"

	"github.com/j-s-n/ironfish/participant"
)

// CreateMultisigIdentities returns nbIdentities fresh participant identities.
func CreateMultisigIdentities(nbIdentities int, rng cipher.Stream) []participant.Identity {
	identities := make([]participant.Identity, nbIdentities)
	for i := 0; i < nbIdentities; i++ {
		identities[i] = participant.NewSecret(rng).Identity()
	}

	return identities
}

// Package slugid generates short human-shareable session slugs: up to six
// base-36 characters drawn from crypto/rand. Values below 36^5 render
// shorter than six characters, which the unique index tolerates.
package slugid

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const maxSlug = 2176782336 // 36^6

func New() string {
	n, err := rand.Int(rand.Reader, big.NewInt(maxSlug))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken.
		panic(err)
	}
	return strconv.FormatInt(n.Int64(), 36)
}

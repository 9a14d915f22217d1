package sessions

import (
	"crypto/rand"
	"math/big"
)

// Tags are short public handles for a session; the UUID stays private to
// the player's connection. Ambiguous characters (0, O, 1, I, L) are left out.
const tagAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const tagLength = 4

func NewTag() (string, error) {
	max := big.NewInt(int64(len(tagAlphabet)))
	tag := make([]byte, tagLength)
	for i := range tag {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		tag[i] = tagAlphabet[n.Int64()]
	}
	return string(tag), nil
}

package hunspell

import "errors"

// ErrEmptyToken is returned by internal validation when Spell or Suggest
// is asked to classify the empty string. The public methods themselves
// stay infallible (Spell returns false, Suggest returns nil) and do not
// return this error.
var ErrEmptyToken = errors.New("hunspell: empty token")

func validateToken(token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return nil
}

package firebase

import (
	"time"

	"dukasync/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry reads the exp claim of an ID token without verifying it.
// The token was just issued to us by the provider, so only its lifetime matters here.
func tokenExpiry(idToken string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(idToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, errors.Wrap(err, "parse id token")
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, errors.Wrap(err, "read id token expiry")
	}
	if exp == nil {
		return time.Time{}, errors.New("id token has no expiry")
	}

	return exp.Time, nil
}

package tokens

import "github.com/golang-jwt/jwt/v5"

// AccessClaims and RefreshClaims are signed with different secrets, so a
// token of one kind never verifies as the other.
type AccessClaims struct {
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	jwt.RegisteredClaims
}

package token

import "github.com/golang-jwt/jwt/v5"

// Claim is the bearer token payload issued by the identity provider.
// The service only verifies it, it never issues tokens.
type Claim struct {
	Metadata Metadata `json:"metadata"`
	jwt.RegisteredClaims
}

type Metadata struct {
	AdminID  string `json:"admin_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

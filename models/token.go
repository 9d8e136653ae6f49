package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every bearer token: the standard
// registered claims plus the owner's id and e-mail.
type TokenClaims struct {
	jwt.RegisteredClaims

	// UserID duplicates the "sub" claim under the name clients already read.
	UserID string `json:"userID"`

	// Email is the e-mail of the user at the time the token was issued.
	Email string `json:"email"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP bodies and
// headers. UserID and Email are copied out of the claims once the token has
// been created or verified.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the claims.
	UserID string `json:"-"`

	// Email is the owner e-mail taken from the claims.
	Email string `json:"-"`
}

// Identity returns the caller identity carried by the token.
func (t Token) Identity() Identity {
	return Identity{UserID: t.UserID, Email: t.Email}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

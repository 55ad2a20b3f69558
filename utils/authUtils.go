package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/armsplatform/apiv1/models"
)

// token verification failures
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenBadSignature = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")

// TokenClaims is the decoded identity assertion carried by an access token.
type TokenClaims struct {
	Email string
	UID   uint
	Role  models.Role
}

func HashPassword(password string) (string, error) {
	const HASH_ROUNDS = 10
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HASH_ROUNDS)
	return string(bytes), err
}

// VerifyPassword reports whether password matches the stored hash. A
// malformed hash is treated as a mismatch, never an error.
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// CreateJWTToken issues a compact HS256 token with subject = email and
// uid/role claims. iat/exp are anchored to the wall clock at issue time.
func CreateJWTToken(secret []byte, email string, uid uint, role models.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"uid":  uid,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyJWTToken parses and validates a token string. Every failure path
// returns one of ErrTokenMalformed, ErrTokenBadSignature or ErrTokenExpired;
// no identity is ever returned alongside an error.
func VerifyJWTToken(secret []byte, tokenString string) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenBadSignature
		}
		return secret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) {
			switch {
			case vErr.Errors&jwt.ValidationErrorExpired != 0:
				return TokenClaims{}, ErrTokenExpired
			case vErr.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
				return TokenClaims{}, ErrTokenBadSignature
			}
		}
		return TokenClaims{}, ErrTokenMalformed
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return TokenClaims{}, ErrTokenBadSignature
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return TokenClaims{}, ErrTokenMalformed
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return TokenClaims{}, ErrTokenMalformed
	}
	roleString, _ := claims["role"].(string)
	role, ok := models.ParseRole(roleString)
	if !ok {
		return TokenClaims{}, ErrTokenMalformed
	}
	// exp must be a numeric timestamp; jwt.Parse skips the check when the
	// claim is absent or has the wrong type.
	if _, ok := claims["exp"].(float64); !ok {
		return TokenClaims{}, ErrTokenMalformed
	}
	return TokenClaims{Email: sub, UID: uint(uid), Role: role}, nil
}

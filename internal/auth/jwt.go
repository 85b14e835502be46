package auth

import (
	"fmt"
	"os"

	"lumenstudio/darkroom/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the JWT payload issued to dashboard sessions.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// ParseToken validates an HS256 bearer token and returns the embedded claims.
func ParseToken(tokenString string) (*JWTClaims, error) {
	secret := jwtSecret()
	if len(secret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET is not configured")
	}

	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return &JWTClaims{
		UserUUID:  claims.Subject,
		RoleValue: constants.StaffRole(claims.Role),
	}, nil
}

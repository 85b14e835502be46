package auth

import "lumenstudio/darkroom/internal/constants"

// UserClaims is the request identity, regardless of how it was established.
type UserClaims interface {
	UserID() string
	Role() string
	Source() string
}

type JWTClaims struct {
	UserUUID  string
	RoleValue constants.StaffRole
}

func (c *JWTClaims) UserID() string { return c.UserUUID }
func (c *JWTClaims) Role() string   { return string(c.RoleValue) }
func (c *JWTClaims) Source() string { return "JWT" }

type APIKeyClaims struct {
	UserUUID  string
	RoleValue constants.StaffRole
}

func (c *APIKeyClaims) UserID() string { return c.UserUUID }
func (c *APIKeyClaims) Role() string   { return string(c.RoleValue) }
func (c *APIKeyClaims) Source() string { return "API_KEY" }

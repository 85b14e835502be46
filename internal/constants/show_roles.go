package constants

import "strings"

// Show role names match by convention, not foreign key: names are uppercased
// before comparison, and any role whose name starts with "SUPPORT" counts as a
// support photographer. This is a fixed contract shared by the seed data and
// the allocation engine.
const (
	ShowRoleKey           = "KEY"
	ShowRoleSupportPrefix = "SUPPORT"
	ShowRoleSelective     = "SELECTIVE"
	ShowRoleBlend         = "BLEND"
	ShowRoleRetouch       = "RETOUCH"
)

// NormalizeShowRole prepares a stored role name for matching.
func NormalizeShowRole(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// IsSupportRole reports whether a normalized role name is a support role.
func IsSupportRole(normalized string) bool {
	return strings.HasPrefix(normalized, ShowRoleSupportPrefix)
}

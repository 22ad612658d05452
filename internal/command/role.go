package command

import (
	"fmt"
	"strings"
)

// Role decides which commands a session may run.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStudent:
		return RoleStudent, nil
	default:
		return "", fmt.Errorf("%w %q (expected admin or student)", ErrUnknownRole, raw)
	}
}

// Allows reports whether r may run commands of the given type. Students
// cannot change what the catalog holds, only its loan state and order.
func (r Role) Allows(commandType string) bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleStudent:
		return commandType != TypeAddBook && commandType != TypeDeleteBook
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

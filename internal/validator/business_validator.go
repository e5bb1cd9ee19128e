package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/SAP-F-2025/enrollment-service/internal/models"
)

// The role vocabulary lives here so every mutation path shares one
// definition.

// assignableRoles are the targets the role-update operation accepts.
// Demotion back to student is not supported through the API.
var assignableRoles = map[models.UserRole]bool{
	models.RoleAdmin:      true,
	models.RoleInstructor: true,
}

var knownRoles = map[models.UserRole]bool{
	models.RoleStudent:    true,
	models.RoleInstructor: true,
	models.RoleAdmin:      true,
}

// IsAssignableRole reports whether the role-update operation may set role.
func IsAssignableRole(role string) bool {
	return assignableRoles[models.UserRole(role)]
}

// IsKnownRole reports whether role is in the platform vocabulary.
func IsKnownRole(role string) bool {
	return knownRoles[models.UserRole(role)]
}

func (v *Validator) registerRoleRules() {
	v.validate.RegisterValidation("assignable_role", func(fl validator.FieldLevel) bool {
		return IsAssignableRole(fl.Field().String())
	})
}

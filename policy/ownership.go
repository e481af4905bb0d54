// Package policy decides whether a caller may mutate a stored resource.
// Decisions are made only against records freshly read from the store.
package policy

import (
	"car-marketplace-api/apperror"
	"car-marketplace-api/models"
)

// rule grants access when it matches; any matching rule is enough
type rule struct {
	name   string
	allows func(caller *models.User, car *models.Car) bool
}

var carMutationRules = []rule{
	{name: "owner", allows: func(caller *models.User, car *models.Car) bool { return car.OwnerID == caller.ID }},
	{name: "admin", allows: func(caller *models.User, _ *models.Car) bool { return caller.Role == models.RoleAdmin }},
}

// CanModifyCar allows the car's owner or any ADMIN, and returns a
// Forbidden error for everyone else.
func CanModifyCar(caller *models.User, car *models.Car) error {
	if caller == nil || car == nil {
		return apperror.Forbidden("Not allowed to modify this car")
	}
	for _, r := range carMutationRules {
		if r.allows(caller, car) {
			return nil
		}
	}
	return apperror.Forbidden("Only the owner or an admin can modify car %d", car.ID)
}

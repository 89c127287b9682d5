package models

// Roles a stored record can carry. The role decides nothing about endpoint
// access (that is the middleware's job); it only gates who may hand out roles.
const (
	RoleAdmin      = "admin"
	RolePatient    = "patient"
	RoleSpecialist = "specialist"
)

// roleCarrier is any write payload that may try to set a role.
type roleCarrier interface {
	dropRole()
}

// MaskRole strips the role from an incoming payload unless the record being
// mutated already belongs to an admin. The pre-mutation role decides, so a
// payload cannot escalate itself by shipping role=admin.
func MaskRole(currentRole string, in roleCarrier) {
	if currentRole != RoleAdmin {
		in.dropRole()
	}
}

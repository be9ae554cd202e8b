package service

// DeletePolicy describes what happens to child records when their
// parent is deleted.
type DeletePolicy string

const (
	// PolicyRestrict refuses the delete while children exist.
	PolicyRestrict DeletePolicy = "restrict"
	// PolicyCascade deletes the children along with the parent.
	PolicyCascade DeletePolicy = "cascade"
	// PolicyOrphan keeps the children and clears their parent reference.
	PolicyOrphan DeletePolicy = "orphan"
)

// deletePolicies is the single table of referential rules consulted by
// the delete flows. Keys are "parent.children" edge names.
var deletePolicies = map[string]DeletePolicy{
	"customer.vehicles":           PolicyRestrict,
	"vehicle.appointments":        PolicyCascade,
	"vehicle.issues":              PolicyCascade,
	"vehicle.service_records":     PolicyCascade,
	"employee.appointments":       PolicyRestrict,
	"appointment.service_records": PolicyOrphan,
}

// PolicyFor returns the delete policy for a parent/child edge. Unknown
// edges default to restrict, the safest choice.
func PolicyFor(edge string) DeletePolicy {
	if p, ok := deletePolicies[edge]; ok {
		return p
	}
	return PolicyRestrict
}

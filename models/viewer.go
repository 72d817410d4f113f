package models

// Viewer roles recognized by the gateway.
const (
	RoleCustomer     = "customer"
	RoleProfessional = "professional"
)

// Viewer is the authenticated user looking at a page. The gateway does not
// manage accounts; it only decodes the session issued by the backend.
type Viewer struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
}

package service

import "github.com/issuetrack/reporting-system/internal/core/domain"

// Access-control gate: one stateless predicate per protected operation.
// All predicates fail closed on a nil identity. Service operations call the
// matching predicate before touching any store.

// CanCreateReport permits report submission for employees only.
func CanCreateReport(id *domain.Identity) bool {
	return id != nil && id.Role == domain.RoleEmployee
}

// CanListOwnReports permits the "my reports" view for employees only; the
// result set is scoped to SubmittedBy == id.ID by the service.
func CanListOwnReports(id *domain.Identity) bool {
	return id != nil && id.Role == domain.RoleEmployee
}

// CanListAllReports permits the dashboard listing for admins only.
func CanListAllReports(id *domain.Identity) bool {
	return id != nil && id.Role == domain.RoleAdmin
}

// CanReply permits replying to a report for admins only.
func CanReply(id *domain.Identity) bool {
	return id != nil && id.Role == domain.RoleAdmin
}

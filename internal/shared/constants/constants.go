// Package constants defines shared constant values used across the application.
package constants

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Gin context keys
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Table names
const (
	TableUsers            = "users"
	TableInterventions    = "interventions"
	TableAuditLogs        = "audit_logs"
	TablePredefinedValues = "predefined_values"
	TableIntervenants     = "intervenant_profiles"
	TableCompanies        = "companies"
)

package domain

// Employee extends a User with company-membership details. The
// specialization is additive: owners, admins and managers are also
// employees of their company.
type Employee struct {
	User
	Position   *string
	HourlyRate *float64
	IsActive   bool
}

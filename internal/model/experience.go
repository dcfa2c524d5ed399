package model

// Experience is a professional position shown on the portfolio.
type Experience struct {
	ID          int     `json:"id"`
	CompanyName string  `json:"company_name"`
	Role        string  `json:"role"`
	Location    *string `json:"location"`
	StartDate   Date    `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
	IsCurrent   bool    `json:"is_current"`
	Description *string `json:"description"`
	OrderIndex  int     `json:"order_index"`
}

// Validate enforces the date invariants: a current position has no end date,
// and when both dates are present the end must not precede the start.
// Equal start and end dates are accepted.
func (e *Experience) Validate() error {
	if e.IsCurrent && e.EndDate != nil {
		return newValidationError("end_date", "a current position must not have an end date")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return newValidationError("end_date", "end date cannot precede start date")
	}
	return nil
}

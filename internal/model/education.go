package model

// Education is an academic degree or course of study.
type Education struct {
	ID           int     `json:"id"`
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy *string `json:"field_of_study"`
	StartDate    Date    `json:"start_date"`
	EndDate      *Date   `json:"end_date"`
	IsCurrent    bool    `json:"is_current"`
	Description  *string `json:"description"`
	OrderIndex   int     `json:"order_index"`
}

// Validate applies the same date rules as Experience.
func (e *Education) Validate() error {
	if e.IsCurrent && e.EndDate != nil {
		return newValidationError("end_date", "an ongoing education must not have an end date")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return newValidationError("end_date", "end date cannot precede start date")
	}
	return nil
}

package model

// Certification is a professional certification or relevant course.
type Certification struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Institution    string  `json:"institution"`
	IssueDate      Date    `json:"issue_date"`
	ExpirationDate *Date   `json:"expiration_date"`
	CredentialID   *string `json:"credential_id"`
	CredentialURL  *string `json:"credential_url"`
	OrderIndex     int     `json:"order_index"`
}

// Validate rejects an expiration date earlier than the issue date.
func (c *Certification) Validate() error {
	if c.ExpirationDate != nil && c.ExpirationDate.Before(c.IssueDate) {
		return newValidationError("expiration_date", "expiration date cannot precede issue date")
	}
	return nil
}

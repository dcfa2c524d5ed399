package service

// DeliveryError reports that a contact message was stored durably but the
// owner notification could not be delivered. The boundary maps it to a
// distinct response from an internal error: the record is NOT rolled back.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return "notification delivery failed: " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error { return e.Err }

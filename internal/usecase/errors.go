package usecase

import "errors"

// Error codes carried by DomainError / TechnicalError.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeInvalidStatus = "INVALID_STATUS"
	CodeLeadNotFound  = "LEAD_NOT_FOUND"
	CodeDatabase      = "DATABASE_ERROR"
)

// DomainError is a client-caused failure: bad payload, unknown status,
// missing record. Safe to surface verbatim.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is an infrastructure failure. Fatal for the current
// request; never retried here.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// IsNotFound reports whether err is the not-found domain error.
func IsNotFound(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == CodeLeadNotFound
}

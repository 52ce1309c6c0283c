package oclc

import "errors"

// Reasons carried by InvalidNumberError.
const (
	ReasonMissing       = "Argument 'oclc_number' is missing."
	ReasonInvalidType   = "Argument 'oclc_number' is of invalid type."
	ReasonMalformed     = "Argument 'oclc_number' does not look like real OCLC #."
	ReasonInvalidList   = "Argument 'oclcNumbers' must be a list or comma separated string of valid OCLC #."
	ReasonInvalidMember = "One of passed OCLC #s is invalid."
)

// ErrInvalidNumber matches every InvalidNumberError via errors.Is.
var ErrInvalidNumber = errors.New("invalid oclc number")

// InvalidNumberError is returned when an argument cannot be read as an OCLC number.
type InvalidNumberError struct {
	Reason string
}

func (e *InvalidNumberError) Error() string {
	return e.Reason
}

func (e *InvalidNumberError) Is(target error) bool {
	return target == ErrInvalidNumber
}

func invalid(reason string) error {
	return &InvalidNumberError{Reason: reason}
}

// ReasonOf returns the reason of an InvalidNumberError found in err's chain.
func ReasonOf(err error) (string, bool) {
	var e *InvalidNumberError
	if errors.As(err, &e) {
		return e.Reason, true
	}
	return "", false
}

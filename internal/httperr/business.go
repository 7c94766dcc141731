package httperr

import "errors"

// Business rule violation codes surfaced by the booking engine.
const (
	CodeSlotNotFound         = "slot_not_found"
	CodeSlotUnavailable      = "slot_unavailable"
	CodePastSlot             = "past_slot"
	CodeSlotConflict         = "slot_conflict"
	CodeVehicleNotFound      = "vehicle_not_found"
	CodeNotFoundOrForbidden  = "not_found_or_forbidden"
	CodeAlreadyCancelled     = "already_cancelled"
	CodeAlreadyCompleted     = "already_completed"
	CodeInvalidStatus        = "invalid_status"
	CodeInvalidTransition    = "invalid_transition"
	CodeAppointmentNotFound  = "appointment_not_found"
	CodeNotModifiable        = "not_modifiable"
	CodeModificationNotFound = "modification_not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode returns the code of a business error, or "" for any other error.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

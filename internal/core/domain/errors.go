package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	ErrPropertyNotFound         = newNotFound("Property not found")
	ErrInternetProviderNotFound = newNotFound("Internet provider information not found")
	ErrBikeParkingNotFound      = newNotFound("Bike parking not found")
	ErrNotificationNotFound     = newNotFound("Notification not found")

	ErrInternetProviderExists = &entityError{msg: "Internet provider information already exists for this property", kind: ErrConflict}
)

// entityError несет сообщение для клиента и базовую категорию ошибки
type entityError struct {
	msg  string
	kind error
}

func newNotFound(msg string) error {
	return &entityError{msg: msg, kind: ErrNotFound}
}

func (e *entityError) Error() string { return e.msg }

func (e *entityError) Unwrap() error { return e.kind }

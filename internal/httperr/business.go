package httperr

import "errors"

// Kind classifies a BusinessError into one of the API's error classes.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindDuplicate       Kind = "duplicate"
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindUnavailable     Kind = "unavailable"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) error {
	return ErrBusiness(KindValidation, code, message)
}

func Duplicate(code, message string) error {
	return ErrBusiness(KindDuplicate, code, message)
}

func Unauthenticated(code, message string) error {
	return ErrBusiness(KindUnauthenticated, code, message)
}

func Forbidden(code, message string) error {
	return ErrBusiness(KindForbidden, code, message)
}

func NotFoundErr(code, message string) error {
	return ErrBusiness(KindNotFound, code, message)
}

func Unavailable(code, message string) error {
	return ErrBusiness(KindUnavailable, code, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}

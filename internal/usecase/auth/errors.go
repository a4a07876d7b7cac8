package auth

import "github.com/BruksfildServices01/physio-clinic/internal/httperr"

var (
	// Unknown e-mail and wrong password share this error so responses do not
	// reveal which accounts exist.
	errInvalidCredentials = httperr.Validation("invalid_credentials", "Invalid credentials.")
	errEmailTaken         = httperr.Duplicate("email_already_registered", "An account with this e-mail already exists.")
	errPasswordTooLong    = httperr.Validation("password_too_long", "Password must be at most 72 bytes.")
	errBlankName          = httperr.Validation("invalid_name", "First and last name cannot be empty.")
	errBlankPhone         = httperr.Validation("invalid_phone", "Phone cannot be empty.")
)

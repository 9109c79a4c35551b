package validation

import "strings"

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// LoginRequest mirrors the fields needed for login validation.
type LoginRequest struct {
	Code *string
}

// ValidateLoginRequest validates the fields of a login request. A nil code
// selects the cookie path and is always valid; a provided code must be
// non-blank.
func ValidateLoginRequest(req LoginRequest) []FieldError {
	var errs []FieldError

	if req.Code != nil && strings.TrimSpace(*req.Code) == "" {
		errs = append(errs, FieldError{Field: "code", Message: "code must not be blank"})
	}

	return errs
}

package api

// AuthenticationError is returned when the login endpoint rejects the
// credentials. Message carries the server's response body verbatim so the
// UI can display it as-is.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "Login failed"
	}
	return e.Message
}

// RegistrationError is returned when the registration endpoint rejects
// the profile.
type RegistrationError struct {
	Message string
}

func (e *RegistrationError) Error() string {
	if e.Message == "" {
		return "Registration failed"
	}
	return e.Message
}

package handler

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// envelope is the canonical response shape: {success, data} on success,
// {success:false, message, errors?} on failure.
type envelope struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) envelope {
	return envelope{Success: true, Data: data}
}

// Fail builds a failure envelope with a user-facing message.
func Fail(message string, errs ...FieldError) envelope {
	return envelope{Success: false, Message: message, Errors: errs}
}

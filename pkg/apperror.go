package pkg

// AppError is the transport-facing error shape. Usecase errors are mapped
// into one of these in the handlers; Err keeps the underlying cause for
// logging but is never serialized.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    any
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON body returned to clients.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails attaches a serializable payload (e.g. per-field validation
// reasons) to the HTTP body.
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

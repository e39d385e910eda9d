package pkg

import "fmt"

// AppError is the error envelope handlers translate domain failures into.
// HTTPStatus drives the response code; Err keeps the cause for logs and is
// never serialized to the client.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body written for failed requests.

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Err:        err,
		HTTPStatus: httpStatus,
	}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

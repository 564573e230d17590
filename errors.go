package tabbar

import (
	"errors"
	"fmt"
)

// ErrorCode classifies the failures reported by the generator.
type ErrorCode string

// The failure classes surfaced to the user.
const (
	CodeInvalidOptions ErrorCode = "INVALID_OPTIONS"
	CodeIconNotFound   ErrorCode = "ICON_NOT_FOUND"
	CodeHTTP           ErrorCode = "HTTP_ERROR"
	CodeInvalidSVG     ErrorCode = "INVALID_SVG"
	CodeNetwork        ErrorCode = "NETWORK_ERROR"
	CodeTimeout        ErrorCode = "TIMEOUT_ERROR"
	CodeDownload       ErrorCode = "DOWNLOAD_ERROR"
	CodeDirCreate      ErrorCode = "DIR_CREATE_ERROR"
	CodeFileWrite      ErrorCode = "FILE_WRITE_ERROR"
	CodeConversion     ErrorCode = "CONVERSION_ERROR"
	CodeUnknown        ErrorCode = "UNKNOWN_ERROR"
)

// Error is a classified failure. Msg is the human readable text printed
// next to the icon name; Err, if any, is the underlying cause.
type Error struct {
	Code ErrorCode
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// errorf builds a classified error with a formatted message.
func errorf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// CodeOf returns the classification of err. Errors which were not produced
// by this package are reported as CodeUnknown.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

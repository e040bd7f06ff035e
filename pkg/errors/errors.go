package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies an error for the API layer. The handler maps kinds to
// status codes, nothing below it should care about HTTP.
type Kind int

const (
	KindInternal Kind = iota
	KindConnection
	KindValidation
	KindInvalidIdentifier
	KindNotFound
)

var kindNames = map[Kind]string{
	KindInternal:          "internal",
	KindConnection:        "connection",
	KindValidation:        "validation",
	KindInvalidIdentifier: "invalid_identifier",
	KindNotFound:          "not_found",
}

var kindCodes = map[Kind]int{
	KindInternal:          http.StatusInternalServerError,
	KindConnection:        http.StatusServiceUnavailable,
	KindValidation:        http.StatusUnprocessableEntity,
	KindInvalidIdentifier: http.StatusBadRequest,
	KindNotFound:          http.StatusNotFound,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// StatusCode is the default HTTP status of the kind.
func (k Kind) StatusCode() int {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return http.StatusInternalServerError
}

type CustomizedError struct {
	cause   error
	message string
	trace   []string
	wrap    error
	code    int
	kind    Kind
	data    map[string]interface{}
}

func (e *CustomizedError) WithData(data map[string]interface{}) *CustomizedError {
	e.data = data
	return e
}

func (e *CustomizedError) Data() map[string]interface{} {
	return e.data
}

func (e *CustomizedError) Code(c int) *CustomizedError {
	e.code = c
	return e
}

func (e *CustomizedError) GetCode() int {
	return e.code
}

// WithKind sets the kind and resets the code to the kind's default.
func (e *CustomizedError) WithKind(k Kind) *CustomizedError {
	e.kind = k
	e.code = k.StatusCode()
	return e
}

func (e *CustomizedError) Kind() Kind {
	return e.kind
}

func New(trace, message string, err error) *CustomizedError {
	return &CustomizedError{
		cause:   err,
		message: message,
		trace:   []string{trace},
		code:    http.StatusInternalServerError,
		kind:    KindInternal,
	}
}

func (e *CustomizedError) Trace(trace string) *CustomizedError {
	e.trace = append(e.trace, trace)
	return e
}

func Wrap(err error, trace, message string) *CustomizedError {
	ce := &CustomizedError{
		cause:   err,
		message: message,
		trace:   []string{trace},
		wrap:    err,
		code:    http.StatusInternalServerError,
	}
	if income, ok := err.(*CustomizedError); ok {
		ce.code = income.code
		ce.kind = income.kind
		ce.data = income.data
	}
	return ce
}

func Trace(trace string, err error) *CustomizedError {
	if ce, ok := err.(*CustomizedError); ok {
		ce.trace = append(ce.trace, trace)
		return ce
	}
	return Wrap(err, trace, err.Error())
}

// KindOf reports the kind of the first CustomizedError in err's chain,
// KindInternal if there is none.
func KindOf(err error) Kind {
	var ce *CustomizedError
	if stderrors.As(err, &ce) {
		return ce.kind
	}
	return KindInternal
}

func (e *CustomizedError) Message() string {
	if e.message == "" {
		if e.cause == nil {
			return ""
		}
		return e.cause.Error()
	}
	return e.message
}

func (e *CustomizedError) Unwrap() error {
	return e.cause
}

func (e *CustomizedError) Error() string {
	otherDetails := `""`
	if ce, ok := e.wrap.(*CustomizedError); ok {
		otherDetails = ce.Error()
	} else if e.wrap != nil {
		otherDetails = fmt.Sprint("\"", e.wrap.Error(), "\"")
	}
	return fmt.Sprintf(`{"trace":"%s","code":%d,"kind":"%s","msg":"%s","error":"%v","wrapd":%s}`, strings.Join(e.trace, "->"), e.code, e.kind, e.message, e.cause, otherDetails)
}

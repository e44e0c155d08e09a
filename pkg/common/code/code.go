package code

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Code is a stable business error code. The five-digit value encodes the
// HTTP status in its leading three digits, e.g. 40001 -> 400. Services
// return codes directly as errors; the web layer serializes them.
type Code struct {
	code int
	msg  string
}

func newCode(code int, msg string) *Code {
	return &Code{code: code, msg: msg}
}

func (c *Code) Error() string {
	return fmt.Sprintf("code: %d, msg: %s", c.code, c.msg)
}

func (c *Code) String() string {
	return c.msg
}

func (c *Code) Value() int {
	if c == nil {
		return 0
	}
	return c.code
}

// HTTPStatus derives the transport status from the code value.
func (c *Code) HTTPStatus() int {
	if c == nil || c.code == 0 {
		return http.StatusOK
	}
	if s := c.code / 100; s >= http.StatusContinue && s < 600 {
		return s
	}
	return http.StatusInternalServerError
}

// WithErr keeps the numeric code and appends the underlying error detail.
func (c *Code) WithErr(err error) *Code {
	if err == nil {
		return c
	}
	return &Code{code: c.code, msg: fmt.Sprintf("%s: %v", c.msg, err)}
}

func (c *Code) WithMsg(msg string) *Code {
	return &Code{code: c.code, msg: msg}
}

func (c *Code) WithMsgf(format string, args ...any) *Code {
	return &Code{code: c.code, msg: fmt.Sprintf(format, args...)}
}

// Is matches codes by numeric value so derived codes compare equal to
// their base via errors.Is.
func (c *Code) Is(target error) bool {
	t := &Code{}
	if !errors.As(target, &t) {
		return false
	}
	return c.code == t.code
}

func (c *Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}

// From normalizes any error into a code; non-code errors become
// UnDefineErr carrying the original message.
func From(err error) *Code {
	if err == nil {
		return Success
	}
	c := &Code{}
	if errors.As(err, &c) {
		return c
	}
	return UnDefineErr.WithErr(err)
}

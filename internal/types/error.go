package types

import "fmt"

// CustomError is the error shape the global Fiber error handler knows how to
// render. Type carries a dotted domain tag such as "admin.authorization".
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

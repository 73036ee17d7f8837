package protocol

import "fmt"

// Error is a typed protocol failure carrying a numeric code from the
// concrete protocol's error table. It is raised by parsing and
// validation, and converted into an error response by the pipeline.
type Error struct {
	Code    int
	Message string
	Data    interface{}
}

func (err *Error) Error() string {
	return fmt.Sprintf("%d: %s", err.Code, err.Message)
}

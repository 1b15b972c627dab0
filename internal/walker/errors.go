package walker

import (
	"errors"
	"fmt"
)

// TaskError is a fatal failure of one traversal task.
type TaskError struct {
	Op   string
	Path string
	Err  error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TaskError) Unwrap() error { return e.Err }

// TaskErrors flattens err into the TaskErrors it carries, in join order.
func TaskErrors(err error) []*TaskError {
	if err == nil {
		return nil
	}
	if te, ok := err.(*TaskError); ok {
		return []*TaskError{te}
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*TaskError
		for _, e := range joined.Unwrap() {
			out = append(out, TaskErrors(e)...)
		}
		return out
	}
	var te *TaskError
	if errors.As(err, &te) {
		return []*TaskError{te}
	}
	return nil
}

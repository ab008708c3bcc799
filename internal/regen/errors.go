package regen

import "fmt"

// ToolError reports an external generator that failed for one source file.
type ToolError struct {
	Tool   string
	Source string
	Err    error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s could not generate from %s: %v", e.Tool, e.Source, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

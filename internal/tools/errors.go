package tools

import "fmt"

// DuplicateToolError reports a registry constructed with two tools of the
// same name.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("duplicate tool name %q", e.Name)
}

// UnknownToolError reports an invocation of a tool not present in the
// registry. The session feeds it back to the model as text; it is never
// fatal to the conversation.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

// ValidationError reports a missing or mistyped tool argument, caught before
// the handler runs.
type ValidationError struct {
	Tool   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: field %q %s", e.Tool, e.Field, e.Reason)
}

package catalog

import "fmt"

// ErrDuplicateRole indicates two roles share a name.
type ErrDuplicateRole struct {
	Name string
}

func (e *ErrDuplicateRole) Error() string {
	return fmt.Sprintf("duplicate role: %s", e.Name)
}

// ErrDuplicateSkill indicates a role lists the same skill twice.
type ErrDuplicateSkill struct {
	Role  string
	Skill string
}

func (e *ErrDuplicateSkill) Error() string {
	return fmt.Sprintf("role %q lists skill %q more than once", e.Role, e.Skill)
}

// ErrInvalidRole indicates a role failed structural validation.
type ErrInvalidRole struct {
	Index   int
	Name    string
	Message string
}

func (e *ErrInvalidRole) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid role at index %d: %s", e.Index, e.Message)
	}
	return fmt.Sprintf("invalid role %q: %s", e.Name, e.Message)
}

// LoadError wraps a failure to read or decode a catalog file.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load role catalog %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

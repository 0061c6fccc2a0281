package message

import "fmt"

// MissingCategoryError reports a bare identifier target given without a
// category in scope. Narrow the sender or pass a structured Target.
type MissingCategoryError struct {
	ID string
}

func (e *MissingCategoryError) Error() string {
	return fmt.Sprintf("target %q: bare identifier requires a category", e.ID)
}

// EmptyTargetError reports a structured target carrying neither a single
// identifier nor an identifier list.
type EmptyTargetError struct {
	Category Category
}

func (e *EmptyTargetError) Error() string {
	return fmt.Sprintf("%s target has no identifiers", e.Category)
}

// UnsupportedCategoryError reports a target category outside
// private/channel.
type UnsupportedCategoryError struct {
	Category Category
}

func (e *UnsupportedCategoryError) Error() string {
	return fmt.Sprintf("unsupported target category %q", string(e.Category))
}

package message

// Category selects the endpoint family a message is delivered to.
type Category string

const (
	// CategoryPrivate targets a direct-message session.
	CategoryPrivate Category = "private"
	// CategoryChannel targets a guild channel.
	CategoryChannel Category = "channel"
)

// segment returns the REST path segment for the category.
func (c Category) segment() (string, error) {
	switch c {
	case CategoryPrivate:
		return "dms", nil
	case CategoryChannel:
		return "channels", nil
	default:
		return "", &UnsupportedCategoryError{Category: c}
	}
}

// Target is a resolved destination: a category plus one or more platform
// identifiers. Exactly one of ID and IDs is normally set. Older callers
// set both; Resolve appends the singular ID to the list so those calls
// keep working.
type Target struct {
	Category Category `json:"category"`
	ID       string   `json:"id,omitempty"`
	IDs      []string `json:"ids,omitempty"`
}

// TargetInput is a destination in one of its accepted input shapes: the
// bare-identifier shorthand ID or a structured Target.
type TargetInput interface {
	resolve(hint Category) (Target, error)
}

// ID is the bare-identifier target shorthand. It resolves only when a
// category is in scope, i.e. through a narrowed sender.
type ID string

func (id ID) resolve(hint Category) (Target, error) {
	if hint == "" {
		return Target{}, &MissingCategoryError{ID: string(id)}
	}
	return Target{Category: hint, ID: string(id)}, nil
}

func (t Target) resolve(Category) (Target, error) {
	if t.ID == "" && len(t.IDs) == 0 {
		return Target{}, &EmptyTargetError{Category: t.Category}
	}
	if t.ID != "" && len(t.IDs) > 0 {
		merged := make([]string, 0, len(t.IDs)+1)
		merged = append(merged, t.IDs...)
		merged = append(merged, t.ID)
		return Target{Category: t.Category, IDs: merged}, nil
	}
	return t, nil
}

// Resolve converts a target input into its canonical form. hint supplies
// the category for bare identifiers; a structured Target keeps the
// category it was given. Resolution is pure: no I/O, no mutation of the
// input.
func Resolve(in TargetInput, hint Category) (Target, error) {
	return in.resolve(hint)
}

// ResolveAll resolves a list of target inputs, preserving order. Shapes
// may be mixed within one list. The first failing element fails the
// whole resolution.
func ResolveAll(ins []TargetInput, hint Category) ([]Target, error) {
	out := make([]Target, len(ins))
	for i, in := range ins {
		t, err := in.resolve(hint)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

package message

import (
	"errors"
	"testing"
)

func TestResolveBareID(t *testing.T) {
	got, err := Resolve(ID("12345"), CategoryChannel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Category != CategoryChannel {
		t.Errorf("category: got %q, want %q", got.Category, CategoryChannel)
	}
	if got.ID != "12345" {
		t.Errorf("id: got %q, want %q", got.ID, "12345")
	}
	if len(got.IDs) != 0 {
		t.Errorf("ids: got %v, want empty", got.IDs)
	}
}

func TestResolveBareIDWithoutCategory(t *testing.T) {
	_, err := Resolve(ID("12345"), "")
	var missing *MissingCategoryError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingCategoryError, got %v", err)
	}
	if missing.ID != "12345" {
		t.Errorf("error id: got %q, want %q", missing.ID, "12345")
	}
}

func TestResolveStructuredKeepsOwnCategory(t *testing.T) {
	got, err := Resolve(Target{Category: CategoryPrivate, ID: "u1"}, CategoryChannel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Category != CategoryPrivate {
		t.Errorf("hint overrode structured category: got %q", got.Category)
	}
}

func TestResolveMergesSingularIDIntoList(t *testing.T) {
	got, err := Resolve(Target{
		Category: CategoryChannel,
		ID:       "d",
		IDs:      []string{"a", "b", "c"},
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b", "c", "d"}
	if len(got.IDs) != len(want) {
		t.Fatalf("ids: got %v, want %v", got.IDs, want)
	}
	for i := range want {
		if got.IDs[i] != want[i] {
			t.Errorf("ids[%d]: got %q, want %q", i, got.IDs[i], want[i])
		}
	}
	if got.ID != "" {
		t.Errorf("singular id should be cleared after merge, got %q", got.ID)
	}
}

func TestResolveMergeDoesNotMutateInput(t *testing.T) {
	in := Target{Category: CategoryChannel, ID: "d", IDs: []string{"a", "b"}}
	if _, err := Resolve(in, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.IDs) != 2 || in.ID != "d" {
		t.Errorf("input mutated: %+v", in)
	}
}

func TestResolveEmptyTarget(t *testing.T) {
	_, err := Resolve(Target{Category: CategoryChannel}, "")
	var empty *EmptyTargetError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyTargetError, got %v", err)
	}
	if empty.Category != CategoryChannel {
		t.Errorf("error category: got %q", empty.Category)
	}
}

func TestResolveAllMixedShapes(t *testing.T) {
	ins := []TargetInput{
		ID("1"),
		Target{Category: CategoryPrivate, ID: "u1"},
		Target{Category: CategoryChannel, IDs: []string{"x", "y"}},
		ID("2"),
	}

	got, err := ResolveAll(ins, CategoryChannel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(ins) {
		t.Fatalf("length: got %d, want %d", len(got), len(ins))
	}

	if got[0].Category != CategoryChannel || got[0].ID != "1" {
		t.Errorf("got[0]: %+v", got[0])
	}
	if got[1].Category != CategoryPrivate || got[1].ID != "u1" {
		t.Errorf("got[1]: %+v", got[1])
	}
	if len(got[2].IDs) != 2 {
		t.Errorf("got[2]: %+v", got[2])
	}
	if got[3].ID != "2" {
		t.Errorf("got[3]: %+v", got[3])
	}
}

func TestResolveAllFailsOnFirstBadElement(t *testing.T) {
	_, err := ResolveAll([]TargetInput{ID("ok"), Target{}}, CategoryChannel)
	var empty *EmptyTargetError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyTargetError, got %v", err)
	}
}

func TestCategorySegments(t *testing.T) {
	cases := []struct {
		category Category
		want     string
	}{
		{CategoryPrivate, "dms"},
		{CategoryChannel, "channels"},
	}
	for _, tc := range cases {
		got, err := tc.category.segment()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.category, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.category, got, tc.want)
		}
	}

	if _, err := Category("group").segment(); err == nil {
		t.Error("expected error for unknown category")
	} else {
		var unsupported *UnsupportedCategoryError
		if !errors.As(err, &unsupported) {
			t.Errorf("expected UnsupportedCategoryError, got %v", err)
		}
	}
}

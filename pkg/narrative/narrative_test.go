package narrative

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/conclusiv/conclusiv/pkg/errors"
)

func validNarrative() *Narrative {
	return &Narrative{
		Title:    "Q3 Results",
		Template: "zoom_reveal",
		Sections: []Section{
			{ID: "s1", Title: "Revenue", Body: "Up 12% quarter over quarter.", Icon: "trending-up"},
			{ID: "s2", Title: "Costs", Items: []string{"Cloud spend flat", "Headcount +3"}},
			{ID: "s3", Title: "Outlook"},
		},
	}
}

func TestValidate(t *testing.T) {
	if err := validNarrative().Validate(); err != nil {
		t.Fatalf("valid narrative rejected: %v", err)
	}
}

func TestValidateNoSections(t *testing.T) {
	n := &Narrative{Title: "Empty"}
	err := n.Validate()
	if !errors.Is(err, errors.ErrCodeInvalidNarrative) {
		t.Errorf("expected INVALID_NARRATIVE, got %v", err)
	}
}

func TestValidateUntitledSection(t *testing.T) {
	n := validNarrative()
	n.Sections[1].Title = "   "
	if err := n.Validate(); !errors.Is(err, errors.ErrCodeInvalidNarrative) {
		t.Errorf("expected INVALID_NARRATIVE, got %v", err)
	}
}

func TestValidateDuplicateIDs(t *testing.T) {
	n := validNarrative()
	n.Sections[2].ID = "s1"
	if err := n.Validate(); !errors.Is(err, errors.ErrCodeInvalidNarrative) {
		t.Errorf("expected INVALID_NARRATIVE, got %v", err)
	}
}

func TestValidateFillsEmptyIDs(t *testing.T) {
	n := &Narrative{
		Title: "Pasted",
		Sections: []Section{
			{Title: "One"},
			{Title: "Two"},
		},
	}
	if err := n.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if n.Sections[0].ID != "s1" || n.Sections[1].ID != "s2" {
		t.Errorf("positional IDs not assigned: %q, %q", n.Sections[0].ID, n.Sections[1].ID)
	}
}

func TestRoundTrip(t *testing.T) {
	orig := validNarrative()

	data, err := Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if !reflect.DeepEqual(orig, got) {
		t.Errorf("round trip mismatch:\n  orig: %+v\n  got:  %+v", orig, got)
	}
}

func TestUnmarshalInvalidJSON(t *testing.T) {
	_, err := Unmarshal([]byte("{not json"))
	if !errors.Is(err, errors.ErrCodeInvalidNarrative) {
		t.Errorf("expected INVALID_NARRATIVE, got %v", err)
	}
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "narrative.json")

	orig := validNarrative()
	if err := WriteFile(orig, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !reflect.DeepEqual(orig, got) {
		t.Error("file round trip mismatch")
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("expected FILE_NOT_FOUND, got %v", err)
	}
	if _, statErr := os.Stat("nope.json"); statErr == nil {
		t.Error("test should not create files in the working directory")
	}
}

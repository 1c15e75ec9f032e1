// Package narrative defines the narrative data model and its canonical
// serialization format.
//
// A narrative is an ordered list of sections, each a single unit of content
// with a title, optional body and bullet items, and an icon reference. The
// format is human-readable JSON designed for round-trip fidelity: import,
// plan, export, re-import produces identical results. Types carry bson tags
// so the same structs serve document storage.
package narrative

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/conclusiv/conclusiv/pkg/errors"
)

// Section is one slide/unit of content.
type Section struct {
	ID    string   `json:"id" bson:"id"`
	Title string   `json:"title" bson:"title"`
	Body  string   `json:"body,omitempty" bson:"body,omitempty"`
	Items []string `json:"items,omitempty" bson:"items,omitempty"`
	Icon  string   `json:"icon,omitempty" bson:"icon,omitempty"`
}

// Narrative is an ordered collection of sections with a title.
type Narrative struct {
	ID       string    `json:"id,omitempty" bson:"_id,omitempty"`
	Title    string    `json:"title" bson:"title"`
	Template string    `json:"template,omitempty" bson:"template,omitempty"`
	Sections []Section `json:"sections" bson:"sections"`

	// CreatedAt is stamped by the store on first save. Stores list
	// narratives by it, newest first.
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// SectionCount returns the number of sections.
func (n *Narrative) SectionCount() int { return len(n.Sections) }

// Validate checks structural invariants: at least one section, every
// section titled, and no duplicate section IDs. Empty section IDs are
// filled in positionally ("s1", "s2", ...) rather than rejected, since
// pasted-text input has no natural identifiers.
func (n *Narrative) Validate() error {
	if len(n.Sections) == 0 {
		return errors.New(errors.ErrCodeInvalidNarrative, "narrative has no sections")
	}

	seen := make(map[string]int, len(n.Sections))
	for i := range n.Sections {
		s := &n.Sections[i]
		if strings.TrimSpace(s.Title) == "" {
			return errors.New(errors.ErrCodeInvalidNarrative, "section %d has no title", i)
		}
		if s.ID == "" {
			s.ID = fmt.Sprintf("s%d", i+1)
		}
		if prev, dup := seen[s.ID]; dup {
			return errors.New(errors.ErrCodeInvalidNarrative, "duplicate section id %q (sections %d and %d)", s.ID, prev, i)
		}
		seen[s.ID] = i
	}
	return nil
}

// Marshal serializes a narrative to pretty-printed JSON.
func Marshal(n *Narrative) ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}

// Unmarshal deserializes JSON bytes into a validated narrative.
func Unmarshal(data []byte) (*Narrative, error) {
	var n Narrative
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidNarrative, err, "unmarshal narrative")
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return &n, nil
}

// ReadFile loads a narrative from a JSON file.
func ReadFile(path string) (*Narrative, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	return Unmarshal(data)
}

// WriteFile writes a narrative to a JSON file.
func WriteFile(n *Narrative, path string) error {
	data, err := Marshal(n)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

package loader

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-fewshot/pkg/schema"
)

// Store holds the forms loaded from a filesystem, keyed by form id.
type Store struct {
	forms   map[string]*schema.Form
	sources map[string]string
}

func newStore() *Store {
	return &Store{
		forms:   make(map[string]*schema.Form),
		sources: make(map[string]string),
	}
}

func (s *Store) add(form *schema.Form, source string) error {
	id := form.ID()
	if prev, exists := s.sources[id]; exists {
		return fmt.Errorf("loader: duplicate form %q (file %s, first defined in %s)", id, source, prev)
	}
	s.forms[id] = form
	s.sources[id] = source
	return nil
}

// Form returns the form with the supplied id.
func (s *Store) Form(id string) (*schema.Form, bool) {
	if s == nil {
		return nil, false
	}
	form, ok := s.forms[id]
	return form, ok
}

// Source returns the file a form was loaded from.
func (s *Store) Source(id string) string {
	if s == nil {
		return ""
	}
	return s.sources[id]
}

// IDs returns the form ids in ascending order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Forms returns every form ordered by id.
func (s *Store) Forms() []*schema.Form {
	ids := s.IDs()
	out := make([]*schema.Form, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.forms[id])
	}
	return out
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

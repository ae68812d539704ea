package row

// Selection describes which rows in a list are selected: either an explicit
// set of ids, or every row ("select all"), which covers ids the list owner
// has never seen (newly loaded pages of a paginated resource).
type Selection struct {
	all bool
	ids map[string]struct{}
}

// SelectAll returns the sentinel selection covering every id.
func SelectAll() Selection {
	return Selection{all: true}
}

// SelectIDs returns a selection of exactly the given ids.
func SelectIDs(ids ...string) Selection {
	s := Selection{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// IsAll reports whether this is the select-all sentinel.
func (s Selection) IsAll() bool {
	return s.all
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	if s.all {
		return true
	}
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of explicitly selected ids. It is 0 for the
// select-all sentinel, whose cardinality is only known to the list owner.
func (s Selection) Count() int {
	if s.all {
		return 0
	}
	return len(s.ids)
}

// IDs returns the explicitly selected ids (nil for the sentinel).
func (s Selection) IDs() []string {
	if s.all || len(s.ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

// With returns a copy of s with id added. Adding to the sentinel is a no-op.
func (s Selection) With(id string) Selection {
	if s.all {
		return s
	}
	next := SelectIDs(s.IDs()...)
	next.ids[id] = struct{}{}
	return next
}

// Without returns a copy of s with id removed. Removing from the sentinel
// demotes it to an empty explicit set: the caller no longer means "all".
func (s Selection) Without(id string) Selection {
	if s.all {
		return SelectIDs()
	}
	next := SelectIDs(s.IDs()...)
	delete(next.ids, id)
	return next
}

// ListContext is the ambient list state shared with every row. It is owned
// by the containing list and read-only from the row's perspective; the only
// write path back is OnSelectionChange.
type ListContext struct {
	// Selectable controls whether selection UI is offered at all.
	Selectable bool

	// SelectMode indicates the list is in bulk-selection mode, which
	// changes primary-click semantics from activate to toggle.
	SelectMode bool

	// Loading suppresses focusability and action rendering.
	Loading bool

	// Selected answers membership queries for this list.
	Selected Selection

	// OnSelectionChange is invoked with the new selected state and the
	// row id. May be nil, in which case selection toggles are no-ops.
	OnSelectionChange func(selected bool, id string)
}

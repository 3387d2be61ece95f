package view

// Action is a state transition that Reduce can apply.
type Action interface {
	apply(State) State
}

// SetQuery replaces the query.
type SetQuery struct{ Query string }

// ToggleSort sorts by Key, flipping the direction when it is already active.
type ToggleSort struct{ Key string }

// SetPageSize changes the page size.
type SetPageSize struct{ Size PageSize }

// SetPage jumps to a page.
type SetPage struct{ Page int }

// NextPage advances one page within TotalPages.
type NextPage struct{ TotalPages int }

// PrevPage goes back one page.
type PrevPage struct{}

func (a SetQuery) apply(s State) State    { return s.WithQuery(a.Query) }
func (a ToggleSort) apply(s State) State  { return s.WithSort(a.Key) }
func (a SetPageSize) apply(s State) State { return s.WithPageSize(a.Size) }
func (a SetPage) apply(s State) State     { return s.WithPage(a.Page) }
func (a NextPage) apply(s State) State    { return s.NextPage(a.TotalPages) }
func (PrevPage) apply(s State) State      { return s.PrevPage() }

// Reduce applies actions in order and returns the resulting state.
func Reduce(s State, actions ...Action) State {
	for _, a := range actions {
		if a == nil {
			continue
		}
		s = a.apply(s)
	}
	return s
}

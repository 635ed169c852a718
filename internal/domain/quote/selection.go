package quote

// CombinationSelection is the set of combinations the merchant has
// selected to sell, keyed by the deterministic combination key and
// preserving insertion order. Combination keys are value-string based,
// so any edit to an axis must invalidate the whole selection rather
// than leave dangling keys.
type CombinationSelection struct {
	order []string
	items map[string]Combination
}

// NewCombinationSelection creates an empty selection.
func NewCombinationSelection() *CombinationSelection {
	return &CombinationSelection{
		order: make([]string, 0),
		items: make(map[string]Combination),
	}
}

// Select adds a combination to the selection. Selecting an already
// selected key is a no-op.
func (s *CombinationSelection) Select(c Combination) {
	if _, ok := s.items[c.Key]; ok {
		return
	}
	s.order = append(s.order, c.Key)
	s.items[c.Key] = c
}

// Deselect removes a combination by key.
func (s *CombinationSelection) Deselect(key string) {
	if _, ok := s.items[key]; !ok {
		return
	}
	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Toggle flips the selection state of a combination.
func (s *CombinationSelection) Toggle(c Combination) {
	if _, ok := s.items[c.Key]; ok {
		s.Deselect(c.Key)
		return
	}
	s.Select(c)
}

// IsSelected reports whether the key is currently selected.
func (s *CombinationSelection) IsSelected(key string) bool {
	_, ok := s.items[key]
	return ok
}

// SelectAll replaces the selection with the entire cartesian product of
// the given axes. This is a full replace, not a merge: prior partial
// selections are discarded.
func (s *CombinationSelection) SelectAll(axes []VariantType) {
	s.Invalidate()
	for _, c := range GenerateCombinations(axes) {
		s.Select(c)
	}
}

// DeselectAll clears the selection unconditionally.
func (s *CombinationSelection) DeselectAll() {
	s.Invalidate()
}

// Invalidate resets the selection. Called whenever an axis name or
// value list is edited.
func (s *CombinationSelection) Invalidate() {
	s.order = s.order[:0]
	s.items = make(map[string]Combination)
}

// Selected returns the selected combinations in insertion order.
func (s *CombinationSelection) Selected() []Combination {
	result := make([]Combination, 0, len(s.order))
	for _, key := range s.order {
		result = append(result, s.items[key])
	}
	return result
}

// Len returns the number of selected combinations.
func (s *CombinationSelection) Len() int {
	return len(s.items)
}

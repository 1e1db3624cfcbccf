package components

// FocusRing tracks the focusable element IDs inside a focus trap and
// cycles through them. The ring is bookkeeping only: the host reads
// Current and applies real focus. Modals use it to keep Tab and
// Shift+Tab inside the dialog.
type FocusRing struct {
	ids     []string
	current int
}

// NewFocusRing creates a ring over the given element IDs.
func NewFocusRing(ids ...string) *FocusRing {
	r := &FocusRing{current: -1}
	for _, id := range ids {
		r.Register(id)
	}
	return r
}

// Register appends an element ID. The first registered element becomes
// current. Duplicate IDs are ignored.
func (r *FocusRing) Register(id string) {
	if id == "" {
		return
	}
	for _, existing := range r.ids {
		if existing == id {
			return
		}
	}
	r.ids = append(r.ids, id)
	if r.current < 0 {
		r.current = 0
	}
}

// Len returns the number of registered elements.
func (r *FocusRing) Len() int {
	return len(r.ids)
}

// Current returns the focused element ID, or "" for an empty ring.
func (r *FocusRing) Current() string {
	if r.current < 0 || r.current >= len(r.ids) {
		return ""
	}
	return r.ids[r.current]
}

// Next advances focus, wrapping from the last element to the first, and
// returns the new current ID.
func (r *FocusRing) Next() string {
	if len(r.ids) == 0 {
		return ""
	}
	r.current = (r.current + 1) % len(r.ids)
	return r.ids[r.current]
}

// Prev moves focus backwards, wrapping from the first element to the
// last, and returns the new current ID.
func (r *FocusRing) Prev() string {
	if len(r.ids) == 0 {
		return ""
	}
	r.current = (r.current - 1 + len(r.ids)) % len(r.ids)
	return r.ids[r.current]
}

// Focus moves focus to the given ID and reports whether it is registered.
func (r *FocusRing) Focus(id string) bool {
	for i, existing := range r.ids {
		if existing == id {
			r.current = i
			return true
		}
	}
	return false
}

// Reset returns focus to the first registered element.
func (r *FocusRing) Reset() {
	if len(r.ids) == 0 {
		r.current = -1
		return
	}
	r.current = 0
}

package components

import (
	"context"
	"io"
	"strconv"
	"sync"

	"github.com/a-h/templ"
)

// DropdownOption is one selectable entry.
type DropdownOption struct {
	Label    string
	Value    string
	Disabled bool
}

// Dropdown is a single-select menu with full keyboard navigation. The
// host forwards key events to HandleKey and re-renders; the markup
// carries the listbox ARIA contract including aria-activedescendant for
// the highlighted option.
type Dropdown struct {
	mu          sync.Mutex
	id          string
	class       string
	label       string
	options     []DropdownOption
	open        bool
	highlighted int
	selected    int
	onSelect    func(DropdownOption)
}

// NewDropdown creates a closed dropdown with nothing highlighted or
// selected.
func NewDropdown(label string, options ...DropdownOption) *Dropdown {
	return &Dropdown{
		id:          "dropdown",
		label:       label,
		options:     options,
		highlighted: -1,
		selected:    -1,
	}
}

// WithID sets the element ID prefix used for ARIA wiring.
func (d *Dropdown) WithID(id string) *Dropdown {
	if id != "" {
		d.id = id
	}
	return d
}

// WithClass adds caller classes to the trigger button.
func (d *Dropdown) WithClass(class string) *Dropdown {
	d.class = class
	return d
}

// WithSelected preselects the option with the given value, if present.
func (d *Dropdown) WithSelected(value string) *Dropdown {
	for i, opt := range d.options {
		if opt.Value == value && !opt.Disabled {
			d.selected = i
			break
		}
	}
	return d
}

// WithOnSelect registers a callback fired when an option is chosen.
func (d *Dropdown) WithOnSelect(fn func(DropdownOption)) *Dropdown {
	d.onSelect = fn
	return d
}

// IsOpen reports whether the menu is showing.
func (d *Dropdown) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Open shows the menu, highlighting the selected option or the first
// enabled one.
func (d *Dropdown) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.openLocked(d.initialHighlight())
}

// Close hides the menu and clears the highlight.
func (d *Dropdown) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeLocked()
}

// Toggle flips the menu between open and closed.
func (d *Dropdown) Toggle() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.open {
		d.closeLocked()
	} else {
		d.openLocked(d.initialHighlight())
	}
}

// Selected returns the chosen option.
func (d *Dropdown) Selected() (DropdownOption, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.selected < 0 || d.selected >= len(d.options) {
		return DropdownOption{}, false
	}
	return d.options[d.selected], true
}

// Select sets the selection to the enabled option with the given value,
// reporting whether one matched. Programmatic selection does not fire the
// select callback; the caller already knows.
func (d *Dropdown) Select(value string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, opt := range d.options {
		if opt.Value == value && !opt.Disabled {
			d.selected = i
			return true
		}
	}
	return false
}

// Highlighted returns the option the keyboard cursor points at.
func (d *Dropdown) Highlighted() (DropdownOption, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.highlighted < 0 || d.highlighted >= len(d.options) {
		return DropdownOption{}, false
	}
	return d.options[d.highlighted], true
}

// HandleKey processes a keyboard event.
//
// Closed: Enter, Space, ArrowDown and ArrowUp open the menu (the arrows
// highlight the first or last enabled option). Open: arrows move the
// highlight with wraparound, Home and End jump to the edges, Enter and
// Space select the highlighted option, Escape and Tab close without
// selecting. Tab is left unconsumed so the host continues its own focus
// handling.
func (d *Dropdown) HandleKey(ev KeyEvent) bool {
	d.mu.Lock()

	if !d.open {
		switch ev.Key {
		case KeyEnter, KeySpace:
			d.openLocked(d.initialHighlight())
			d.mu.Unlock()
			return true
		case KeyArrowDown:
			d.openLocked(d.firstEnabled())
			d.mu.Unlock()
			return true
		case KeyArrowUp:
			d.openLocked(d.lastEnabled())
			d.mu.Unlock()
			return true
		default:
			d.mu.Unlock()
			return false
		}
	}

	switch ev.Key {
	case KeyArrowDown:
		d.moveHighlightLocked(1)
		d.mu.Unlock()
		return true
	case KeyArrowUp:
		d.moveHighlightLocked(-1)
		d.mu.Unlock()
		return true
	case KeyHome:
		d.highlighted = d.firstEnabled()
		d.mu.Unlock()
		return true
	case KeyEnd:
		d.highlighted = d.lastEnabled()
		d.mu.Unlock()
		return true
	case KeyEnter, KeySpace:
		opt, fn, ok := d.selectHighlightedLocked()
		d.mu.Unlock()
		if ok && fn != nil {
			fn(opt)
		}
		return true
	case KeyEscape:
		d.closeLocked()
		d.mu.Unlock()
		return true
	case KeyTab:
		d.closeLocked()
		d.mu.Unlock()
		return false
	default:
		d.mu.Unlock()
		return false
	}
}

func (d *Dropdown) openLocked(highlight int) {
	d.open = true
	d.highlighted = highlight
}

func (d *Dropdown) closeLocked() {
	d.open = false
	d.highlighted = -1
}

// initialHighlight prefers the current selection, then the first enabled
// option.
func (d *Dropdown) initialHighlight() int {
	if d.selected >= 0 && d.selected < len(d.options) && !d.options[d.selected].Disabled {
		return d.selected
	}
	return d.firstEnabled()
}

func (d *Dropdown) firstEnabled() int {
	for i, opt := range d.options {
		if !opt.Disabled {
			return i
		}
	}
	return -1
}

func (d *Dropdown) lastEnabled() int {
	for i := len(d.options) - 1; i >= 0; i-- {
		if !d.options[i].Disabled {
			return i
		}
	}
	return -1
}

// moveHighlightLocked steps the highlight by delta, wrapping and skipping
// disabled options. With no enabled options the highlight stays cleared.
func (d *Dropdown) moveHighlightLocked(delta int) {
	n := len(d.options)
	if n == 0 {
		return
	}
	start := d.highlighted
	if start < 0 {
		if delta > 0 {
			d.highlighted = d.firstEnabled()
		} else {
			d.highlighted = d.lastEnabled()
		}
		return
	}
	for step := 1; step <= n; step++ {
		idx := (start + delta*step%n + n) % n
		if !d.options[idx].Disabled {
			d.highlighted = idx
			return
		}
	}
}

func (d *Dropdown) selectHighlightedLocked() (DropdownOption, func(DropdownOption), bool) {
	if d.highlighted < 0 || d.highlighted >= len(d.options) || d.options[d.highlighted].Disabled {
		d.closeLocked()
		return DropdownOption{}, nil, false
	}
	d.selected = d.highlighted
	opt := d.options[d.selected]
	d.closeLocked()
	return opt, d.onSelect, true
}

func (d *Dropdown) optionID(i int) string {
	return d.id + "-option-" + strconv.Itoa(i)
}

// Render writes the trigger button and, when open, the listbox menu.
func (d *Dropdown) Render(ctx context.Context, w io.Writer) error {
	d.mu.Lock()
	id := d.id
	class := d.class
	label := d.label
	options := d.options
	open := d.open
	highlighted := d.highlighted
	selected := d.selected
	d.mu.Unlock()

	b := builderFrom(ctx)
	triggerID := id + "-trigger"
	menuID := id + "-menu"

	triggerLabel := label
	if selected >= 0 && selected < len(options) {
		triggerLabel = options[selected].Label
	}

	if err := writeString(w, `<div class="`+templ.EscapeString(b.BuildBaseClasses("dropdown", ""))+`">`); err != nil {
		return err
	}

	if err := writeString(w, "<button"); err != nil {
		return err
	}
	if err := writeAttr(w, "id", triggerID); err != nil {
		return err
	}
	if err := writeAttr(w, "type", "button"); err != nil {
		return err
	}
	if err := writeAttr(w, "class", b.BuildBaseClasses("dropdown-trigger", class)); err != nil {
		return err
	}
	if err := writeAttr(w, "aria-haspopup", "listbox"); err != nil {
		return err
	}
	if err := writeAttr(w, "aria-expanded", strconv.FormatBool(open)); err != nil {
		return err
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}
	if err := writeText(w, triggerLabel); err != nil {
		return err
	}
	if err := writeString(w, "</button>"); err != nil {
		return err
	}

	if open {
		if err := writeString(w, "<ul"); err != nil {
			return err
		}
		if err := writeAttr(w, "id", menuID); err != nil {
			return err
		}
		if err := writeAttr(w, "role", "listbox"); err != nil {
			return err
		}
		if err := writeAttr(w, "aria-labelledby", triggerID); err != nil {
			return err
		}
		if err := writeAttr(w, "tabindex", "-1"); err != nil {
			return err
		}
		if highlighted >= 0 && highlighted < len(options) {
			if err := writeAttr(w, "aria-activedescendant", d.optionID(highlighted)); err != nil {
				return err
			}
		}
		if err := writeAttr(w, "class", b.BuildBaseClasses("dropdown-menu", "")); err != nil {
			return err
		}
		if err := writeString(w, ">"); err != nil {
			return err
		}

		for i, opt := range options {
			bundles := []string{"dropdown-option"}
			if i == highlighted {
				bundles = append(bundles, "dropdown-option-active")
			}
			if i == selected {
				bundles = append(bundles, "dropdown-option-selected")
			}

			if err := writeString(w, "<li"); err != nil {
				return err
			}
			if err := writeAttr(w, "id", d.optionID(i)); err != nil {
				return err
			}
			if err := writeAttr(w, "role", "option"); err != nil {
				return err
			}
			if err := writeAttr(w, "aria-selected", strconv.FormatBool(i == selected)); err != nil {
				return err
			}
			if opt.Disabled {
				if err := writeAttr(w, "aria-disabled", "true"); err != nil {
					return err
				}
			}
			if err := writeAttr(w, "data-value", opt.Value); err != nil {
				return err
			}
			if err := writeAttr(w, "class", b.BuildBundleClasses(bundles, "")); err != nil {
				return err
			}
			if err := writeString(w, ">"); err != nil {
				return err
			}
			if err := writeText(w, opt.Label); err != nil {
				return err
			}
			if err := writeString(w, "</li>"); err != nil {
				return err
			}
		}
		if err := writeString(w, "</ul>"); err != nil {
			return err
		}
	}

	return writeString(w, "</div>")
}

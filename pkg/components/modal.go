package components

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// ModalState is the modal lifecycle state.
type ModalState string

const (
	ModalClosed  ModalState = "closed"
	ModalOpen    ModalState = "open"
	ModalClosing ModalState = "closing"
)

// DefaultModalTransition is the closing animation window before a modal
// reaches the closed state.
const DefaultModalTransition = 200 * time.Millisecond

// Modal is a dialog with an open/closing/closed state machine, escape and
// backdrop dismissal, and focus-trap bookkeeping. Construct with NewModal,
// configure with the With* setters, then drive it through Open, Close and
// HandleKey. Safe for concurrent use; the closing transition completes on
// a timer goroutine.
type Modal struct {
	mu              sync.Mutex
	id              string
	class           string
	title           string
	state           ModalState
	closeOnEscape   bool
	closeOnBackdrop bool
	transition      time.Duration
	focus           *FocusRing
	body            []templ.Component
	footer          templ.Component
	onClose         func()
	timer           *time.Timer
	unmounted       bool
}

// NewModal creates a closed modal. Escape and backdrop dismissal start
// enabled; the closing transition defaults to DefaultModalTransition.
func NewModal(title string, body ...templ.Component) *Modal {
	return &Modal{
		id:              "modal",
		title:           title,
		state:           ModalClosed,
		closeOnEscape:   true,
		closeOnBackdrop: true,
		transition:      DefaultModalTransition,
		focus:           NewFocusRing(),
		body:            body,
	}
}

// WithID sets the element ID prefix used for ARIA wiring.
func (m *Modal) WithID(id string) *Modal {
	if id != "" {
		m.id = id
	}
	return m
}

// WithClass adds caller classes to the dialog panel.
func (m *Modal) WithClass(class string) *Modal {
	m.class = class
	return m
}

// WithCloseOnEscape controls whether Escape closes the modal.
func (m *Modal) WithCloseOnEscape(enabled bool) *Modal {
	m.closeOnEscape = enabled
	return m
}

// WithCloseOnBackdrop controls whether clicking the backdrop closes the
// modal.
func (m *Modal) WithCloseOnBackdrop(enabled bool) *Modal {
	m.closeOnBackdrop = enabled
	return m
}

// WithTransition sets the closing animation window. Zero closes
// immediately with no closing state.
func (m *Modal) WithTransition(d time.Duration) *Modal {
	m.transition = d
	return m
}

// WithFooter sets the footer section.
func (m *Modal) WithFooter(footer templ.Component) *Modal {
	m.footer = footer
	return m
}

// WithOnClose registers a callback fired once the modal reaches closed.
func (m *Modal) WithOnClose(fn func()) *Modal {
	m.onClose = fn
	return m
}

// RegisterFocusable adds an element ID to the focus trap, in tab order.
func (m *Modal) RegisterFocusable(id string) *Modal {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.focus.Register(id)
	return m
}

// State returns the current lifecycle state.
func (m *Modal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// FocusedElement returns the ID the focus trap currently points at.
func (m *Modal) FocusedElement() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focus.Current()
}

// Open shows the modal and resets the focus trap to its first element.
// Opening mid-close cancels the pending transition.
func (m *Modal) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unmounted || m.state == ModalOpen {
		return
	}
	m.stopTimerLocked()
	m.state = ModalOpen
	m.focus.Reset()
}

// Close starts the closing transition. With a zero transition the modal
// closes immediately; otherwise it reaches closed when the timer fires.
func (m *Modal) Close() {
	m.mu.Lock()
	if m.state != ModalOpen {
		m.mu.Unlock()
		return
	}
	if m.transition <= 0 {
		m.state = ModalClosed
		onClose := m.onClose
		m.mu.Unlock()
		if onClose != nil {
			onClose()
		}
		return
	}

	m.state = ModalClosing
	m.timer = time.AfterFunc(m.transition, m.finishClose)
	m.mu.Unlock()
}

func (m *Modal) finishClose() {
	m.mu.Lock()
	if m.state != ModalClosing || m.unmounted {
		m.mu.Unlock()
		return
	}
	m.state = ModalClosed
	m.timer = nil
	onClose := m.onClose
	m.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

// HandleKey processes a keyboard event. Escape closes when enabled; Tab
// and Shift+Tab cycle the focus trap. Events on a non-open modal are not
// consumed.
func (m *Modal) HandleKey(ev KeyEvent) bool {
	m.mu.Lock()
	if m.state != ModalOpen {
		m.mu.Unlock()
		return false
	}

	switch ev.Key {
	case KeyEscape:
		if !m.closeOnEscape {
			m.mu.Unlock()
			return false
		}
		m.mu.Unlock()
		m.Close()
		return true
	case KeyTab:
		if ev.Shift {
			m.focus.Prev()
		} else {
			m.focus.Next()
		}
		m.mu.Unlock()
		return true
	default:
		m.mu.Unlock()
		return false
	}
}

// HandleBackdropClick processes a click on the backdrop, closing when
// backdrop dismissal is enabled.
func (m *Modal) HandleBackdropClick() bool {
	m.mu.Lock()
	if m.state != ModalOpen || !m.closeOnBackdrop {
		m.mu.Unlock()
		return false
	}
	m.mu.Unlock()
	m.Close()
	return true
}

// Unmount cancels any pending transition. No state change or callback
// fires after unmount.
func (m *Modal) Unmount() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unmounted = true
	m.stopTimerLocked()
}

func (m *Modal) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// Render writes the modal markup for its current state. A closed modal
// renders nothing. The dialog is announced with role="dialog",
// aria-modal and a label tied to the title element.
func (m *Modal) Render(ctx context.Context, w io.Writer) error {
	m.mu.Lock()
	state := m.state
	id := m.id
	class := m.class
	title := m.title
	body := m.body
	footer := m.footer
	m.mu.Unlock()

	if state == ModalClosed {
		return nil
	}

	b := builderFrom(ctx)
	titleID := id + "-title"

	backdropClass := m.backdropClasses(b, state)
	panelClass := b.BuildBaseClasses("modal-panel", class)

	if err := writeString(w, "<div"); err != nil {
		return err
	}
	if err := writeAttr(w, "id", id+"-backdrop"); err != nil {
		return err
	}
	if err := writeAttr(w, "class", backdropClass); err != nil {
		return err
	}
	if err := writeAttr(w, "data-state", string(state)); err != nil {
		return err
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}

	if err := writeString(w, "<div"); err != nil {
		return err
	}
	if err := writeAttr(w, "id", id); err != nil {
		return err
	}
	if err := writeAttr(w, "role", "dialog"); err != nil {
		return err
	}
	if err := writeAttr(w, "aria-modal", "true"); err != nil {
		return err
	}
	if err := writeAttr(w, "aria-labelledby", titleID); err != nil {
		return err
	}
	if err := writeAttr(w, "class", panelClass); err != nil {
		return err
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}

	if err := writeString(w, `<div class="`+templ.EscapeString(b.BuildBaseClasses("modal-header", ""))+`">`); err != nil {
		return err
	}
	header := Text(TextProps{
		Content: title,
		Tag:     "h2",
		ID:      titleID,
		Style:   tailwind.TextProps{Size: tailwind.FontSizeLG, Weight: tailwind.WeightSemibold},
	})
	if err := header.Render(ctx, w); err != nil {
		return err
	}
	if err := writeString(w, `<button type="button" aria-label="Close" class="text-gray-400 hover:text-gray-600">`+"×"+`</button>`); err != nil {
		return err
	}
	if err := writeString(w, "</div>"); err != nil {
		return err
	}

	if err := writeString(w, `<div class="`+templ.EscapeString(b.BuildBaseClasses("modal-body", ""))+`">`); err != nil {
		return err
	}
	if err := renderChildren(ctx, w, body); err != nil {
		return err
	}
	if err := writeString(w, "</div>"); err != nil {
		return err
	}

	if footer != nil {
		if err := writeString(w, `<div class="`+templ.EscapeString(b.BuildBaseClasses("modal-footer", ""))+`">`); err != nil {
			return err
		}
		if err := footer.Render(ctx, w); err != nil {
			return err
		}
		if err := writeString(w, "</div>"); err != nil {
			return err
		}
	}

	return writeString(w, "</div></div>")
}

func (m *Modal) backdropClasses(b *tailwind.Builder, state ModalState) string {
	extra := ""
	if state == ModalClosing {
		extra = "opacity-0 pointer-events-none"
	}
	return b.BuildBaseClasses("modal-backdrop", extra)
}

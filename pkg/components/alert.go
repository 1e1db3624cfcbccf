package components

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// Alert is a dismissible notification. Success and info tones announce
// politely with role="status"; error and warning interrupt with
// role="alert". An optional auto-dismiss timer hides the alert after a
// duration; Unmount cancels it.
type Alert struct {
	mu          sync.Mutex
	id          string
	class       string
	variant     tailwind.AlertVariant
	title       string
	message     string
	dismissible bool
	visible     bool
	autoDismiss time.Duration
	timer       *time.Timer
	onDismiss   func()
	unmounted   bool
}

// NewAlert creates a visible alert with the given tone and message.
func NewAlert(variant tailwind.AlertVariant, message string) *Alert {
	return &Alert{
		id:      "alert",
		variant: variant,
		message: message,
		visible: true,
	}
}

// WithID sets the element ID.
func (a *Alert) WithID(id string) *Alert {
	if id != "" {
		a.id = id
	}
	return a
}

// WithClass adds caller classes to the alert element.
func (a *Alert) WithClass(class string) *Alert {
	a.class = class
	return a
}

// WithTitle renders a bold lead-in before the message.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithDismissible renders a dismiss button.
func (a *Alert) WithDismissible(dismissible bool) *Alert {
	a.dismissible = dismissible
	return a
}

// WithAutoDismiss arms a timer that dismisses the alert after d. A zero
// duration disarms it.
func (a *Alert) WithAutoDismiss(d time.Duration) *Alert {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.autoDismiss = d
	a.armTimerLocked()
	return a
}

// WithOnDismiss registers a callback fired when the alert hides, whether
// dismissed by hand or by timer.
func (a *Alert) WithOnDismiss(fn func()) *Alert {
	a.onDismiss = fn
	return a
}

// Visible reports whether the alert is showing.
func (a *Alert) Visible() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.visible
}

// Show makes the alert visible again and re-arms the auto-dismiss timer.
func (a *Alert) Show() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.unmounted {
		return
	}
	a.visible = true
	a.armTimerLocked()
}

// Dismiss hides the alert, cancels any pending timer and fires the
// dismiss callback.
func (a *Alert) Dismiss() {
	a.mu.Lock()
	if !a.visible {
		a.mu.Unlock()
		return
	}
	a.visible = false
	a.stopTimerLocked()
	fn := a.onDismiss
	a.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Unmount cancels the auto-dismiss timer. No callback fires after
// unmount.
func (a *Alert) Unmount() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.unmounted = true
	a.stopTimerLocked()
}

func (a *Alert) armTimerLocked() {
	a.stopTimerLocked()
	if a.autoDismiss <= 0 || !a.visible || a.unmounted {
		return
	}
	a.timer = time.AfterFunc(a.autoDismiss, a.timerDismiss)
}

func (a *Alert) timerDismiss() {
	a.mu.Lock()
	if a.unmounted || !a.visible {
		a.mu.Unlock()
		return
	}
	a.visible = false
	a.timer = nil
	fn := a.onDismiss
	a.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (a *Alert) stopTimerLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// role maps tone to announcement urgency.
func (a *Alert) role() string {
	switch a.variant {
	case tailwind.AlertError, tailwind.AlertWarning:
		return "alert"
	default:
		return "status"
	}
}

// Render writes the alert markup, or nothing when dismissed.
func (a *Alert) Render(ctx context.Context, w io.Writer) error {
	a.mu.Lock()
	visible := a.visible
	id := a.id
	class := a.class
	variant := a.variant
	title := a.title
	message := a.message
	dismissible := a.dismissible
	role := a.role()
	a.mu.Unlock()

	if !visible {
		return nil
	}

	b := builderFrom(ctx)

	if err := writeString(w, "<div"); err != nil {
		return err
	}
	if err := writeAttr(w, "id", id); err != nil {
		return err
	}
	if err := writeAttr(w, "role", role); err != nil {
		return err
	}
	if err := writeAttr(w, "class", b.BuildAlertClasses(variant, class)); err != nil {
		return err
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}

	if title != "" {
		if err := writeString(w, `<strong class="font-semibold">`); err != nil {
			return err
		}
		if err := writeText(w, title); err != nil {
			return err
		}
		if err := writeString(w, "</strong> "); err != nil {
			return err
		}
	}
	if err := writeText(w, message); err != nil {
		return err
	}

	if dismissible {
		if err := writeString(w, `<button type="button" aria-label="Dismiss" class="float-right font-semibold opacity-70 hover:opacity-100">`+"×"+`</button>`); err != nil {
			return err
		}
	}

	return writeString(w, "</div>")
}

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

func TestAlertRendersVisibleByDefault(t *testing.T) {
	t.Parallel()

	a := NewAlert(tailwind.AlertInfo, "Saved")
	require.True(t, a.Visible())

	out := render(t, a)

	assert.Contains(t, out, `id="alert"`)
	assert.Contains(t, out, "bg-blue-50")
	assert.Contains(t, out, ">Saved")
}

func TestAlertRoleByTone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		variant tailwind.AlertVariant
		role    string
	}{
		{name: "success is polite", variant: tailwind.AlertSuccess, role: "status"},
		{name: "info is polite", variant: tailwind.AlertInfo, role: "status"},
		{name: "warning interrupts", variant: tailwind.AlertWarning, role: "alert"},
		{name: "error interrupts", variant: tailwind.AlertError, role: "alert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := render(t, NewAlert(tt.variant, "msg"))
			assert.Contains(t, out, `role="`+tt.role+`"`)
		})
	}
}

func TestAlertTitle(t *testing.T) {
	t.Parallel()

	out := render(t, NewAlert(tailwind.AlertWarning, "Disk almost full").WithTitle("Heads up"))

	assert.Contains(t, out, `<strong class="font-semibold">Heads up</strong>`)
	assert.Contains(t, out, "Disk almost full")
	assert.Contains(t, out, "bg-yellow-50")
}

func TestAlertDismissButton(t *testing.T) {
	t.Parallel()

	plain := render(t, NewAlert(tailwind.AlertInfo, "msg"))
	assert.NotContains(t, plain, `aria-label="Dismiss"`)

	dismissible := render(t, NewAlert(tailwind.AlertInfo, "msg").WithDismissible(true))
	assert.Contains(t, dismissible, `aria-label="Dismiss"`)
}

func TestAlertDismissHidesAndFiresOnce(t *testing.T) {
	t.Parallel()

	fired := 0
	a := NewAlert(tailwind.AlertInfo, "msg").WithOnDismiss(func() { fired++ })

	a.Dismiss()
	a.Dismiss()

	assert.False(t, a.Visible())
	assert.Equal(t, 1, fired)

	var sb strings.Builder
	require.NoError(t, a.Render(testContext(), &sb))
	assert.Empty(t, sb.String())
}

func TestAlertShowAfterDismiss(t *testing.T) {
	t.Parallel()

	a := NewAlert(tailwind.AlertInfo, "msg")
	a.Dismiss()
	require.False(t, a.Visible())

	a.Show()

	assert.True(t, a.Visible())
	assert.Contains(t, render(t, a), ">msg")
}

func TestAlertAutoDismiss(t *testing.T) {
	t.Parallel()

	fired := make(chan struct{}, 1)
	a := NewAlert(tailwind.AlertSuccess, "Saved").
		WithOnDismiss(func() { fired <- struct{}{} }).
		WithAutoDismiss(10 * time.Millisecond)

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("auto-dismiss never fired")
	}
	assert.False(t, a.Visible())
}

func TestAlertShowRearmsAutoDismiss(t *testing.T) {
	t.Parallel()

	fired := make(chan struct{}, 2)
	a := NewAlert(tailwind.AlertSuccess, "Saved").
		WithOnDismiss(func() { fired <- struct{}{} }).
		WithAutoDismiss(10 * time.Millisecond)

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("first auto-dismiss never fired")
	}

	a.Show()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("re-armed auto-dismiss never fired")
	}
	assert.False(t, a.Visible())
}

func TestAlertUnmountStopsTimer(t *testing.T) {
	t.Parallel()

	fired := make(chan struct{}, 1)
	a := NewAlert(tailwind.AlertSuccess, "Saved").
		WithOnDismiss(func() { fired <- struct{}{} }).
		WithAutoDismiss(30 * time.Millisecond)

	a.Unmount()

	select {
	case <-fired:
		t.Fatal("dismiss callback fired after unmount")
	case <-time.After(100 * time.Millisecond):
	}
	assert.True(t, a.Visible())
}

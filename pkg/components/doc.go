// Package components provides a themeable, server-rendered UI component
// library built on Tailwind utility classes.
//
// # Overview
//
// Components implement templ.Component and write plain HTML. Styling never
// appears as hard-coded class literals: every component resolves its
// classes through a tailwind.Builder, so themes restyle the whole library
// without touching markup.
//
// # Component model
//
// Primitive components (Text, Button, Input, Container) are pure
// functions from props to markup:
//
//	components.Button(components.ButtonProps{
//		Label:   "Save",
//		Variant: tailwind.ButtonPrimary,
//		Size:    tailwind.SizeLG,
//	})
//
// Composite components with interaction state (Modal, Dropdown, Form,
// Alert) are constructed once and mutated through their methods. They
// implement templ.Component too, rendering their current state:
//
//	modal := components.NewModal("Confirm", body).WithCloseOnEscape(false)
//	modal.Open()
//	modal.HandleKey(components.KeyEvent{Key: components.KeyEscape})
//
// Interaction is host-driven: the package models keyboard handling,
// focus-trap bookkeeping and open/close state machines, while the host
// (browser glue, a test, the preview server) delivers events and applies
// focus. Stateful components are safe for concurrent use; their dismiss
// and transition timers fire on background goroutines.
//
// # Builder injection
//
// Render contexts carry the class builder:
//
//	ctx := components.WithBuilder(context.Background(), builder)
//	err := modal.Render(ctx, w)
//
// Without one, components fall back to tailwind.Default. Tests construct
// isolated builders so cache and warning state never leak between cases.
//
// # Accessibility
//
// Components emit their ARIA contract themselves: dialogs are announced
// as modal, dropdown menus as listboxes with an active descendant, form
// errors as alerts tied to their inputs with aria-describedby. Markup
// renders identically with or without client-side behavior attached.
package components

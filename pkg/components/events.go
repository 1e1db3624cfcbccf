package components

// Key identifies a keyboard key in host-delivered events. Values follow
// the DOM KeyboardEvent.key names so browser glue can forward events
// without translation.
type Key string

const (
	KeyEscape    Key = "Escape"
	KeyEnter     Key = "Enter"
	KeySpace     Key = " "
	KeyTab       Key = "Tab"
	KeyArrowUp   Key = "ArrowUp"
	KeyArrowDown Key = "ArrowDown"
	KeyHome      Key = "Home"
	KeyEnd       Key = "End"
)

// KeyEvent is a keyboard event delivered by the host. Components return
// true from HandleKey when they consumed the event; unconsumed events
// propagate to the host's own handling.
type KeyEvent struct {
	Key   Key
	Shift bool
}

package surface

import "github.com/gdamore/tcell/v2"

// Key is a single key press. Printable keys are their rune.
type Key rune

const (
	KeyCtrlC Key = 3
	KeyEsc   Key = 27
)

// keyFromEvent reduces a tcell key event to a Key. Only printable keys,
// Esc and Ctrl-C are reported; arrows, function keys and the like are not.
func keyFromEvent(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return Key(ev.Rune()), true
	case tcell.KeyEscape:
		return KeyEsc, true
	case tcell.KeyCtrlC:
		return KeyCtrlC, true
	default:
		return 0, false
	}
}

package surface

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("output is not a terminal")

// Terminal shows Buffers on a tcell screen. Every frame is copied into the
// screen in full and tcell writes only the cells that changed.
type Terminal struct {
	screen tcell.Screen
	back   *Buffer

	keys    chan Key
	resized atomic.Bool
	done    chan struct{}
	once    sync.Once
}

// Open takes over the controlling terminal: raw mode, alternate screen and
// a hidden cursor. Close restores all of it.
func Open() (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	return NewTerminal(screen)
}

// NewTerminal initialises screen and starts reading its events.
func NewTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		back:   NewBuffer(0, 0),
		keys:   make(chan Key, 16),
		done:   make(chan struct{}),
	}
	go t.pollEvents()
	return t, nil
}

// pollEvents runs until the screen is finalised. Keys beyond the queue's
// capacity are dropped.
func (t *Terminal) pollEvents() {
	defer close(t.done)
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.resized.Store(true)
		case *tcell.EventKey:
			if k, ok := keyFromEvent(ev); ok {
				select {
				case t.keys <- k:
				default:
				}
			}
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() error {
	t.once.Do(func() {
		t.screen.Fini()
		<-t.done
	})
	return nil
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Canvas returns the back buffer cleared and sized to the terminal.
func (t *Terminal) Canvas() *Buffer {
	w, h := t.Size()
	t.back.Resize(w, h)
	return t.back
}

// Flush shows the back buffer. The first frame after a resize repaints the
// whole screen.
func (t *Terminal) Flush() error {
	for row := 0; row < t.back.height; row++ {
		for col := 0; col < t.back.width; col++ {
			c := t.back.cells[row*t.back.width+col]
			t.screen.SetContent(col, row, c.Rune, nil, c.Attr.style())
		}
	}
	if t.resized.Swap(false) {
		t.screen.Sync()
	} else {
		t.screen.Show()
	}
	return nil
}

// PollKey returns the next pending key press without blocking.
func (t *Terminal) PollKey() (Key, bool) {
	select {
	case k := <-t.keys:
		return k, true
	default:
		return 0, false
	}
}

package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// QuitKey is what ReadKey reports for Ctrl-C, so an interrupt typed in raw
// mode ends the game like the regular quit binding.
const QuitKey = 'q'

const keyBuffer = 16

// Display is a tcell backed terminal. It satisfies game.Surface and adds a
// non-blocking keyboard read.
type Display struct {
	screen tcell.Screen
	style  tcell.Style
	keys   chan rune
	wg     sync.WaitGroup
	once   sync.Once
}

// Open initialises screen, or the real terminal when screen is nil, and starts
// the event reader.
func Open(screen tcell.Screen) (*Display, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("failed to create screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	style := tcell.StyleDefault
	screen.SetStyle(style)
	screen.HideCursor()
	screen.Clear()

	d := &Display{
		screen: screen,
		style:  style,
		keys:   make(chan rune, keyBuffer),
	}

	d.wg.Add(1)
	go d.readEvents()

	return d, nil
}

// readEvents forwards key presses until the screen is finalised.
func (d *Display) readEvents() {
	defer d.wg.Done()
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			var key rune
			switch ev.Key() {
			case tcell.KeyCtrlC:
				key = QuitKey
			case tcell.KeyRune:
				key = ev.Rune()
			default:
				continue
			}

			// drop keys nobody is reading rather than stall the reader
			select {
			case d.keys <- key:
			default:
			}
		}
	}
}

// ReadKey returns the oldest pending key press, if any, without blocking.
func (d *Display) ReadKey() (rune, bool) {
	select {
	case key := <-d.keys:
		return key, true
	default:
		return 0, false
	}
}

func (d *Display) Clear() {
	d.screen.Clear()
}

// Print writes text starting at (row, col), one rune per cell.
func (d *Display) Print(row, col int, text string) {
	i := 0
	for _, r := range text {
		d.screen.SetContent(col+i, row, r, nil, d.style)
		i++
	}
}

func (d *Display) Show() {
	d.screen.Show()
}

// Close restores the terminal and waits for the event reader to exit.
// It is safe to call more than once.
func (d *Display) Close() {
	d.once.Do(func() {
		d.screen.Fini()
		d.wg.Wait()
	})
}

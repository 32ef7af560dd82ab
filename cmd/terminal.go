package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// Key is a normalized key symbol produced by a Terminal
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyCopy
	KeyQuit
)

// Fallback dimensions when the real terminal size cannot be determined
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Terminal abstracts the screen and keyboard for the interactive viewer.
// There are two variants: a raw tcell screen with single-keypress events, and
// a line-based prompt for environments without a usable TTY. The navigation
// loop is identical over both.
type Terminal interface {
	// Size returns the terminal dimensions in character cells
	Size() (width, height int)
	// Paint clears the screen and replaces its content with the given lines
	Paint(lines []string)
	// ReadKey blocks until one input event is available
	ReadKey() (Key, error)
	// Interrupt wakes up a blocked ReadKey and makes it return KeyQuit
	Interrupt()
	// Close restores the terminal to its original mode; safe on every exit path
	Close()
}

// newTerminal selects the best available variant: the raw screen when stdin
// and stdout are TTYs and the screen initializes, the line-based prompt
// otherwise. Falling back is not an error.
func newTerminal() Terminal {
	if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		t, err := newScreenTerminal()
		if err == nil {
			return t
		}
		fmt.Fprintf(os.Stderr, "note: cannot initialize screen (%v), using line-based navigation\n", err)
	}
	return newLineTerminal(os.Stdin, os.Stdout)
}

// screenTerminal is the rich variant backed by a raw-mode tcell screen
type screenTerminal struct {
	screen tcell.Screen
}

func newScreenTerminal() (*screenTerminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault)
	return &screenTerminal{screen: s}, nil
}

func (t *screenTerminal) Size() (int, int) {
	w, h := t.screen.Size()
	if w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

func (t *screenTerminal) Paint(lines []string) {
	t.screen.Clear()
	for y, line := range lines {
		x := 0
		for _, r := range line {
			t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x += runewidth.RuneWidth(r)
		}
	}
	t.screen.Show()
}

func (t *screenTerminal) ReadKey() (Key, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return mapEventKey(ev), nil
		case *tcell.EventResize:
			t.screen.Sync()
			// treated as a no-op key so the loop reclips and redraws
			return KeyUnknown, nil
		case *tcell.EventInterrupt:
			return KeyQuit, nil
		case nil:
			// screen was finalized under us
			return KeyQuit, nil
		}
	}
}

func (t *screenTerminal) Interrupt() {
	t.screen.PostEventWait(tcell.NewEventInterrupt(nil))
}

func (t *screenTerminal) Close() {
	t.screen.Fini()
}

// mapEventKey translates a tcell key event into a Key symbol. Vi-style
// alternatives follow the arrow keys: j/n down, k/p up, h/b left,
// l/space right.
func mapEventKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j', 'n':
			return KeyDown
		case 'k', 'p':
			return KeyUp
		case 'h', 'b':
			return KeyLeft
		case 'l', ' ':
			return KeyRight
		case 'c':
			return KeyCopy
		case 'q', 'Q':
			return KeyQuit
		}
	}
	return KeyUnknown
}

// linePrompt is shown by the fallback variant before each read
const linePrompt = "Navigation: [n]ext row, [p]revious row, [f]orward page, [b]ack page, " +
	"[r]ight column, [l]eft column, [c]opy, [q]uit: "

// lineTerminal is the fallback variant: a fully functional line-based prompt
// for terminals without single-keypress input (pipes, dumb terminals, CI)
type lineTerminal struct {
	out       io.Writer
	lines     chan string
	interrupt chan struct{}
	once      sync.Once
}

func newLineTerminal(in io.Reader, out io.Writer) *lineTerminal {
	t := &lineTerminal{
		out:       out,
		lines:     make(chan string),
		interrupt: make(chan struct{}),
	}
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			t.lines <- strings.ToLower(strings.TrimSpace(scanner.Text()))
		}
		close(t.lines)
	}()
	return t
}

func (t *lineTerminal) Size() (int, int) {
	return envDimension("COLUMNS", defaultWidth), envDimension("LINES", defaultHeight)
}

func (t *lineTerminal) Paint(lines []string) {
	// home the cursor and clear; harmless when the sequence is unsupported
	fmt.Fprint(t.out, "\033[H\033[J")
	for _, line := range lines {
		fmt.Fprintln(t.out, line)
	}
}

func (t *lineTerminal) ReadKey() (Key, error) {
	fmt.Fprint(t.out, "\n"+linePrompt)
	select {
	case line, ok := <-t.lines:
		if !ok {
			// EOF on input ends the session cleanly
			return KeyQuit, nil
		}
		return mapCommand(line), nil
	case <-t.interrupt:
		return KeyQuit, nil
	}
}

func (t *lineTerminal) Interrupt() {
	t.once.Do(func() { close(t.interrupt) })
}

func (t *lineTerminal) Close() {
	// nothing to restore, the terminal was never switched to raw mode
}

// mapCommand translates one fallback text command into a Key symbol
func mapCommand(line string) Key {
	switch line {
	case "n", "d":
		return KeyDown
	case "p", "u":
		return KeyUp
	case "f":
		return KeyPageDown
	case "b":
		return KeyPageUp
	case "r":
		return KeyRight
	case "l":
		return KeyLeft
	case "c":
		return KeyCopy
	case "q":
		return KeyQuit
	}
	return KeyUnknown
}

// envDimension reads a terminal dimension from the environment, as shells
// export COLUMNS/LINES, with a sane default for everything else
func envDimension(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

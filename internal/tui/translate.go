package tui

import (
	"github.com/gdamore/tcell/v2"

	"go-invaders/internal/app"
	"go-invaders/internal/clock"
	"go-invaders/internal/component"
	"go-invaders/internal/defs"
	"go-invaders/internal/input"
)

// Session is what the terminal host drives.
type Session interface {
	input.Controller
	input.Commands
	State() component.GameState
}

type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRedraw
)

// Translator turns tcell events into session commands. It is not safe for
// concurrent use; the event loop owns it.
type Translator struct {
	session Session
	view    *View
	rules   defs.Rules
	buttons tcell.ButtonMask
	sinks   []clock.Sink
}

// NewTranslator builds a translator whose command results are drawn on view.
func NewTranslator(session Session, view *View, rules defs.Rules) *Translator {
	return &Translator{session: session, view: view, rules: rules, sinks: []clock.Sink{view}}
}

// AddSink registers another consumer for snapshots produced by commands.
func (t *Translator) AddSink(sink clock.Sink) {
	t.sinks = append(t.sinks, sink)
}

// publish forwards the result of a state change so it shows up before the next tick.
func (t *Translator) publish(snap app.Snapshot) {
	for _, sink := range t.sinks {
		sink.Publish(snap)
	}
}

func (t *Translator) start() {
	if t.session.State() == component.StartState {
		t.publish(t.session.Start())
	}
}

func (t *Translator) restart() {
	if t.session.State().Terminal() {
		t.publish(t.session.Restart())
	}
}

// Translate applies ev and reports what the event loop should do next.
func (t *Translator) Translate(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.key(ev)
	case *tcell.EventMouse:
		t.mouse(ev)
	case *tcell.EventResize:
		return ActionRedraw
	}
	return ActionNone
}

func (t *Translator) key(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		t.start()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit
		case 's', 'S':
			t.start()
		case 'r', 'R':
			t.restart()
		case ' ':
			t.session.SpawnBullet()
		}
	}
	return ActionNone
}

func (t *Translator) mouse(ev *tcell.EventMouse) {
	x, _ := ev.Position()
	cols, _ := t.view.Grid()
	pointer := input.NewPointer(t.session, t.rules, 0, float64(cols))

	// the pointer sits in the middle of its cell
	pointer.OnPointerMove(float64(x) + 0.5)

	pressed := ev.Buttons()&tcell.Button1 != 0
	wasPressed := t.buttons&tcell.Button1 != 0
	t.buttons = ev.Buttons()
	if !pressed || wasPressed {
		return
	}

	if t.session.State() == component.PlayingState {
		pointer.OnClick()
		return
	}
	t.publish(input.Confirm(t.session))
}

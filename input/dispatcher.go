package input

import (
	"log/slog"
	"strings"

	"github.com/oliverbestmann/shapeshifter/glimpse"
	"github.com/oliverbestmann/shapeshifter/glm"
)

// Phase describes what the player is currently drawing. The zero value
// is Idle. A polygon and a cut may be in progress at the same time.
type Phase uint8

const (
	DrawingPolygon Phase = 1 << iota
	DrawingCut
)

const Idle Phase = 0

func (p Phase) Has(flag Phase) bool {
	return p&flag != 0
}

func (p Phase) String() string {
	if p == Idle {
		return "Idle"
	}

	var parts []string
	if p.Has(DrawingPolygon) {
		parts = append(parts, "DrawingPolygon")
	}

	if p.Has(DrawingCut) {
		parts = append(parts, "DrawingCut")
	}

	return strings.Join(parts, "|")
}

//go:generate stringer -type=Effect -trimprefix=Effect

type Effect uint8

const (
	EffectNone Effect = iota
	EffectAction
	EffectQuickSave
	EffectQuickLoad

	// the in-progress cut segment must be removed, no action is emitted
	EffectCancelCut

	// a known key combination without a gesture bound to it
	EffectReserved
)

// Result is the outcome of one call to Dispatcher.Dispatch.
type Result struct {
	// name of the rule that matched, empty if none did
	Rule   string
	Effect Effect

	// only set if Effect is EffectAction
	Action Action
}

type mod uint8

const (
	anyState mod = iota
	released
	held
)

func (m mod) matches(value bool) bool {
	switch m {
	case released:
		return !value
	case held:
		return value
	default:
		return true
	}
}

// modifiers is the pattern of (shift, control, space) a rule requires.
type modifiers struct {
	shift, control, space mod
}

var (
	none        = modifiers{released, released, released}
	noneAnySpc  = modifiers{released, released, anyState}
	shiftOnly   = modifiers{held, released, released}
	controlOnly = modifiers{released, held, released}
	shiftCtrl   = modifiers{held, held, released}
)

type frame struct {
	input  *glimpse.InputState
	cursor glm.Vec2f
	phase  Phase

	shift, control, space bool
}

func (f *frame) key(key glimpse.Key) bool {
	return f.input.Keys.JustPressed[key]
}

func (f *frame) click() bool {
	return f.input.Mouse.JustPressed[glimpse.MouseButtonLeft]
}

func (f *frame) rightClick() bool {
	return f.input.Mouse.JustPressed[glimpse.MouseButtonRight]
}

func (f *frame) polygon() bool {
	return f.phase.Has(DrawingPolygon)
}

func (f *frame) cut() bool {
	return f.phase.Has(DrawingCut)
}

type rule struct {
	name   string
	mods   modifiers
	when   func(f *frame) bool
	result func(f *frame) Result
}

func emit(action func(f *frame) Action) func(f *frame) Result {
	return func(f *frame) Result {
		return Result{Effect: EffectAction, Action: action(f)}
	}
}

func signal(effect Effect) func(f *frame) Result {
	return func(f *frame) Result {
		return Result{Effect: effect}
	}
}

func reserved(key glimpse.Key) func(f *frame) bool {
	return func(f *frame) bool { return f.key(key) }
}

// rules are evaluated top to bottom, the first match wins.
var rules = []rule{
	{
		name: "end polygon",
		mods: noneAnySpc,
		when: func(f *frame) bool {
			return (f.key(glimpse.KeyEnter) || f.rightClick() || f.key(glimpse.KeySpace)) && f.polygon()
		},
		result: emit(func(f *frame) Action { return EndMakingPolygon{} }),
	},
	{
		name:   "end segment",
		mods:   none,
		when:   func(f *frame) bool { return f.click() && f.polygon() },
		result: emit(func(f *frame) Action { return EndSegment{Pos: f.cursor} }),
	},
	{
		name:   "end cut",
		mods:   none,
		when:   func(f *frame) bool { return f.click() && f.cut() },
		result: emit(func(f *frame) Action { return EndCutSegment{End: f.cursor} }),
	},
	{
		name:   "quicksave",
		mods:   controlOnly,
		when:   func(f *frame) bool { return f.key(glimpse.KeyS) },
		result: signal(EffectQuickSave),
	},
	{
		name:   "quickload",
		mods:   controlOnly,
		when:   func(f *frame) bool { return f.key(glimpse.KeyL) },
		result: signal(EffectQuickLoad),
	},
	{name: "reserved g", mods: none, when: reserved(glimpse.KeyG), result: signal(EffectReserved)},
	{
		name:   "cancel cut",
		mods:   none,
		when:   func(f *frame) bool { return f.key(glimpse.KeyEscape) && f.cut() },
		result: signal(EffectCancelCut),
	},
	{name: "reserved shift+ctrl+g", mods: shiftCtrl, when: reserved(glimpse.KeyG), result: signal(EffectReserved)},
	{name: "reserved ctrl+h", mods: controlOnly, when: reserved(glimpse.KeyH), result: signal(EffectReserved)},
	{name: "reserved shift+ctrl+h", mods: shiftCtrl, when: reserved(glimpse.KeyH), result: signal(EffectReserved)},
	{name: "reserved ctrl+z", mods: controlOnly, when: reserved(glimpse.KeyZ), result: signal(EffectReserved)},
	{name: "reserved shift+ctrl+z", mods: shiftCtrl, when: reserved(glimpse.KeyZ), result: signal(EffectReserved)},
	{name: "reserved shift+t", mods: shiftOnly, when: reserved(glimpse.KeyT), result: signal(EffectReserved)},
	{
		name:   "delete",
		mods:   none,
		when:   func(f *frame) bool { return f.key(glimpse.KeyDelete) || f.key(glimpse.KeyEscape) },
		result: emit(func(f *frame) Action { return Delete{} }),
	},
	{
		// only one polygon can be drawn at a time
		name:   "start polygon",
		mods:   shiftOnly,
		when:   func(f *frame) bool { return f.click() && !f.polygon() },
		result: emit(func(f *frame) Action { return StartMakingPolygon{Pos: f.cursor} }),
	},
	{
		// only one cut can be drawn at a time
		name:   "start cut",
		mods:   controlOnly,
		when:   func(f *frame) bool { return f.click() && !f.cut() },
		result: emit(func(f *frame) Action { return StartMakingCutSegment{Start: f.cursor} }),
	},
}

// Dispatcher translates the input of a frame into at most one effect.
// It tracks what is being drawn itself, updating its Phase with every
// effect it emits.
type Dispatcher struct {
	phase Phase
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Phase() Phase {
	return d.phase
}

// Sync overwrites the phase, for when drawing state changed without
// going through the dispatcher, e.g. after loading a level.
func (d *Dispatcher) Sync(phase Phase) {
	if phase != d.phase {
		slog.Debug("Sync interaction phase",
			slog.String("from", d.phase.String()),
			slog.String("to", phase.String()),
		)
	}

	d.phase = phase
}

// Dispatch evaluates the rule table against the input state. Edge
// triggered input is not consumed, calling Dispatch twice with the same
// input state may emit the same action twice.
func (d *Dispatcher) Dispatch(cursor *Cursor, input *glimpse.InputState) Result {
	keys := input.Keys.Pressed

	f := &frame{
		input:   input,
		cursor:  cursor.Position,
		phase:   d.phase,
		shift:   keys[glimpse.KeyLeftShift] || keys[glimpse.KeyRightShift],
		control: keys[glimpse.KeyLeftControl] || keys[glimpse.KeyRightControl],
		space:   keys[glimpse.KeySpace],
	}

	for _, rule := range rules {
		if !rule.mods.shift.matches(f.shift) || !rule.mods.control.matches(f.control) || !rule.mods.space.matches(f.space) {
			continue
		}

		if !rule.when(f) {
			continue
		}

		result := rule.result(f)
		result.Rule = rule.name

		d.transition(result)

		slog.Debug("Dispatch input",
			slog.String("rule", result.Rule),
			slog.String("effect", result.Effect.String()),
			slog.Any("action", result.Action),
			slog.String("phase", d.phase.String()),
		)

		return result
	}

	return Result{}
}

func (d *Dispatcher) transition(result Result) {
	switch result.Effect {
	case EffectCancelCut:
		d.phase &^= DrawingCut

	case EffectAction:
		switch result.Action.(type) {
		case StartMakingPolygon:
			d.phase |= DrawingPolygon
		case EndMakingPolygon:
			d.phase &^= DrawingPolygon
		case StartMakingCutSegment:
			d.phase |= DrawingCut
		case EndCutSegment:
			d.phase &^= DrawingCut
		}
	}
}

package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/roomdash/prefabs"
)

// Controls is the surface an autopilot script drives. It is deliberately the
// same contract the pointer input uses, so scripted demos exercise the real
// movement path.
type Controls struct {
	Move     func(x, y float64, direct bool)
	Fire     func(x, y float64)
	Busy     func() bool
	Position func() (float64, float64)
}

// Autopilot runs a tengo script once per frame. The script defines a global
// `update := func(engine, state) { ... }`; state is a plain map persisted
// across frames.
type Autopilot struct {
	path      string
	compiled  *tengo.Compiled
	stateData *tengo.Map
}

const dispatchScript = `
if __phase == "update" {
	update(__engine, __state)
}
`

func Load(path string) (*Autopilot, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}

	s := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	_ = s.Add("__phase", "")
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", path, err)
	}

	return &Autopilot{
		path:      path,
		compiled:  compiled,
		stateData: &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (a *Autopilot) Path() string {
	return a.path
}

// Update runs the script's update hook against the current controls.
func (a *Autopilot) Update(controls Controls) error {
	if a == nil || a.compiled == nil {
		return fmt.Errorf("script: nil autopilot")
	}
	if err := a.compiled.Set("__phase", "update"); err != nil {
		return err
	}
	if err := a.compiled.Set("__engine", buildEngine(controls)); err != nil {
		return err
	}
	if err := a.compiled.Set("__state", a.stateData); err != nil {
		return err
	}
	return a.compiled.Run()
}

func buildEngine(controls Controls) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		x, y, ok := floatPair(args)
		if !ok || controls.Move == nil {
			return tengo.FalseValue, nil
		}
		controls.Move(x, y, false)
		return tengo.TrueValue, nil
	}}

	values["move_direct"] = &tengo.UserFunction{Name: "move_direct", Value: func(args ...tengo.Object) (tengo.Object, error) {
		x, y, ok := floatPair(args)
		if !ok || controls.Move == nil {
			return tengo.FalseValue, nil
		}
		controls.Move(x, y, true)
		return tengo.TrueValue, nil
	}}

	values["fire"] = &tengo.UserFunction{Name: "fire", Value: func(args ...tengo.Object) (tengo.Object, error) {
		x, y, ok := floatPair(args)
		if !ok || controls.Fire == nil {
			return tengo.FalseValue, nil
		}
		controls.Fire(x, y)
		return tengo.TrueValue, nil
	}}

	values["busy"] = &tengo.UserFunction{Name: "busy", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if controls.Busy != nil && controls.Busy() {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if controls.Position == nil {
			return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: 0}, &tengo.Float{Value: 0}}}, nil
		}
		x, y := controls.Position()
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}}}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func floatPair(args []tengo.Object) (float64, float64, bool) {
	if len(args) < 2 {
		return 0, 0, false
	}
	x, ok := objectAsFloat(args[0])
	if !ok {
		return 0, 0, false
	}
	y, ok := objectAsFloat(args[1])
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}

func objectAsFloat(obj tengo.Object) (float64, bool) {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	default:
		return 0, false
	}
}

package lua

import (
	"fmt"
	"sort"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/rainwater/config"
	"github.com/drake/rainwater/parse"
	"github.com/drake/rainwater/water"
)

// setter writes one Lua value into the matching Options field.
type setter func(o *config.Options, v glua.LValue) error

var options = map[string]setter{
	"svg_width":     intOption(func(o *config.Options) *int { return &o.SVGWidth }),
	"svg_height":    intOption(func(o *config.Options) *int { return &o.SVGHeight }),
	"svg_padding":   intOption(func(o *config.Options) *int { return &o.SVGPadding }),
	"random_count":  intOption(func(o *config.Options) *int { return &o.RandomCount }),
	"random_max":    intOption(func(o *config.Options) *int { return &o.RandomMax }),
	"history_limit": intOption(func(o *config.Options) *int { return &o.HistoryLimit }),
	"cache_size":    intOption(func(o *config.Options) *int { return &o.CacheSize }),
	"show_chart":    boolOption(func(o *config.Options) *bool { return &o.ShowChart }),
	"show_table":    boolOption(func(o *config.Options) *bool { return &o.ShowTable }),
	"initial_input": func(o *config.Options, v glua.LValue) error {
		s, ok := v.(glua.LString)
		if !ok {
			return fmt.Errorf("expected string, got %s", v.Type())
		}
		o.InitialInput = string(s)
		return nil
	},
}

func intOption(field func(*config.Options) *int) setter {
	return func(o *config.Options, v glua.LValue) error {
		n, ok := v.(glua.LNumber)
		if !ok {
			return fmt.Errorf("expected number, got %s", v.Type())
		}
		*field(o) = int(n)
		return nil
	}
}

func boolOption(field func(*config.Options) *bool) setter {
	return func(o *config.Options, v glua.LValue) error {
		b, ok := v.(glua.LBool)
		if !ok {
			return fmt.Errorf("expected boolean, got %s", v.Type())
		}
		*field(o) = bool(b)
		return nil
	}
}

// OptionKeys returns the keys rain.set accepts, sorted.
func OptionKeys() []string {
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e *Engine) registerAPIs() {
	e.rainTable = e.L.NewTable()
	e.L.SetGlobal("rain", e.rainTable)

	// rain.set(key, value): override a setting, checked when applied
	e.L.SetField(e.rainTable, "set", e.L.NewFunction(func(L *glua.LState) int {
		key := L.CheckString(1)
		value := L.CheckAny(2)
		if _, ok := options[key]; !ok {
			L.ArgError(1, "unknown setting "+key)
			return 0
		}
		if _, seen := e.settings[key]; !seen {
			e.order = append(e.order, key)
		}
		e.settings[key] = value
		return 0
	}))

	// rain.preset(name, text): register a named input for the picker
	e.L.SetField(e.rainTable, "preset", e.L.NewFunction(func(L *glua.LState) int {
		name := L.CheckString(1)
		text := L.CheckString(2)
		for i := range e.presets {
			if e.presets[i].Name == name {
				e.presets[i].Text = text
				return 0
			}
		}
		e.presets = append(e.presets, Preset{Name: name, Text: text})
		return 0
	}))

	// rain.on_render(fn): fn(profile) may return status bar text
	e.L.SetField(e.rainTable, "on_render", e.L.NewFunction(func(L *glua.LState) int {
		if L.Get(1) == glua.LNil {
			e.onRender = nil
			return 0
		}
		e.onRender = L.CheckFunction(1)
		return 0
	}))

	// rain.compute(text): total, {waterAt...}
	e.L.SetField(e.rainTable, "compute", e.L.NewFunction(func(L *glua.LState) int {
		p := water.Compute(parse.Heights(L.CheckString(1)))
		L.Push(glua.LNumber(p.Total))
		L.Push(intTable(L, p.WaterAt))
		return 2
	}))
}

func intTable(L *glua.LState, xs []int) *glua.LTable {
	t := L.CreateTable(len(xs), 0)
	for _, x := range xs {
		t.Append(glua.LNumber(x))
	}
	return t
}

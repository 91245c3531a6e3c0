package lua

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/rainwater/config"
	"github.com/drake/rainwater/water"
)

// Preset is a named height sequence registered with rain.preset.
type Preset struct {
	Name string
	Text string
}

// Engine wraps gopher-lua and holds what init.lua registered.
// It is only used from a single goroutine.
type Engine struct {
	L *glua.LState

	// Cached table reference
	rainTable *glua.LTable

	settings map[string]glua.LValue
	order    []string
	presets  []Preset
	onRender *glua.LFunction
}

// NewEngine creates an Engine. Call Init before running scripts.
func NewEngine() *Engine {
	return &Engine{}
}

// --- Lifecycle ---

// Init initializes (or re-initializes) the Lua VM with fresh state,
// discarding every setting, preset and hook registered before.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}

	e.L = glua.NewState()
	e.settings = make(map[string]glua.LValue)
	e.order = nil
	e.presets = nil
	e.onRender = nil

	registerProfileType(e.L)
	e.registerAPIs()
	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// --- Execution ---

// DoString executes a raw string of Lua code.
// The name parameter is used for stack traces.
func (e *Engine) DoString(name, code string) error {
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	e.L.Push(fn)
	if err := e.L.PCall(0, 0, nil); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

// LoadFile executes a Lua file. A file that does not exist is not an error,
// so a missing init.lua just leaves the defaults in place.
func (e *Engine) LoadFile(path string) error {
	path = expandTilde(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absPath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	// Temporarily prepend script's directory to package.path
	pkg := e.L.GetGlobal("package").(*glua.LTable)
	oldPath := e.L.GetField(pkg, "path").String()
	e.L.SetField(pkg, "path", glua.LString(filepath.Dir(absPath)+"/?.lua;"+oldPath))
	defer e.L.SetField(pkg, "path", glua.LString(oldPath))

	if err := e.L.DoFile(absPath); err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	return nil
}

// --- Results ---

// Apply copies settings made with rain.set into o, in the order they were made.
func (e *Engine) Apply(o *config.Options) error {
	for _, key := range e.order {
		if err := options[key](o, e.settings[key]); err != nil {
			return fmt.Errorf("rain.set(%q): %w", key, err)
		}
	}
	return nil
}

// Presets returns the presets in registration order.
func (e *Engine) Presets() []Preset {
	out := make([]Preset, len(e.presets))
	copy(out, e.presets)
	return out
}

// HasRenderHook reports whether init.lua registered rain.on_render.
func (e *Engine) HasRenderHook() bool {
	return e.onRender != nil
}

// OnRender runs the rain.on_render hook. It returns the status text the hook
// produced, or "" when there is no hook or it returned nothing.
func (e *Engine) OnRender(heights []int, p water.Profile) (string, error) {
	if e.L == nil || e.onRender == nil {
		return "", nil
	}

	ud := newProfile(e.L, heights, p)
	if err := e.L.CallByParam(glua.P{
		Fn:      e.onRender,
		NRet:    1,
		Protect: true,
	}, ud); err != nil {
		return "", fmt.Errorf("on_render: %w", err)
	}

	ret := e.L.Get(-1)
	e.L.Pop(1)
	if s, ok := ret.(glua.LString); ok {
		return string(s), nil
	}
	return "", nil
}

// --- Private Helpers ---

// expandTilde expands ~ to home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

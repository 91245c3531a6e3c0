package lua

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drake/rainwater/config"
	"github.com/drake/rainwater/parse"
	"github.com/drake/rainwater/water"
)

// testCase represents a single on_render case from JSON
type testCase struct {
	Name           string `json:"name"`
	SetupLua       any    `json:"setup_lua"`
	Input          string `json:"input"`
	ExpectedStatus string `json:"expected_status"`
}

type testDataFile struct {
	Tests []testCase `json:"tests"`
}

// setupTest creates an initialized engine and returns a cleanup function
func setupTest(t *testing.T) (*Engine, func()) {
	t.Helper()

	engine := NewEngine()
	if err := engine.Init(); err != nil {
		t.Fatal("Failed to initialize engine:", err)
	}
	return engine, engine.Close
}

// executeSetupLua handles both string and []string Lua setup code
func executeSetupLua(t *testing.T, engine *Engine, setup any) {
	t.Helper()
	var code string
	switch lua := setup.(type) {
	case string:
		code = lua
	case []any:
		lines := make([]string, len(lua))
		for i, l := range lua {
			lines[i] = l.(string)
		}
		code = strings.Join(lines, "\n")
	}
	if err := engine.DoString("setup", code); err != nil {
		t.Fatalf("Failed to execute setup Lua code: %v", err)
	}
}

func TestOnRenderCases(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "on_render_tests.json"))
	if err != nil {
		t.Fatalf("Failed to read test data: %v", err)
	}
	var testData testDataFile
	if err := json.Unmarshal(data, &testData); err != nil {
		t.Fatalf("Failed to parse test data: %v", err)
	}

	for _, tt := range testData.Tests {
		t.Run(tt.Name, func(t *testing.T) {
			engine, cleanup := setupTest(t)
			defer cleanup()

			executeSetupLua(t, engine, tt.SetupLua)

			heights := parse.Heights(tt.Input)
			status, err := engine.OnRender(heights, water.Compute(heights))
			if err != nil {
				t.Fatalf("OnRender: %v", err)
			}
			if status != tt.ExpectedStatus {
				t.Errorf("expected status %q, got %q", tt.ExpectedStatus, status)
			}
		})
	}
}

func TestOnRenderError(t *testing.T) {
	engine, cleanup := setupTest(t)
	defer cleanup()

	executeSetupLua(t, engine, "rain.on_render(function(p) error('boom') end)")
	if _, err := engine.OnRender([]int{1}, water.Compute([]int{1})); err == nil {
		t.Fatal("expected hook error")
	}

	executeSetupLua(t, engine, "rain.on_render(function(p) return p:water(9) end)")
	if _, err := engine.OnRender([]int{1}, water.Compute([]int{1})); err == nil {
		t.Fatal("expected out of range error")
	}
}

func TestApplySettings(t *testing.T) {
	engine, cleanup := setupTest(t)
	defer cleanup()

	executeSetupLua(t, engine, `
		rain.set("random_count", 25)
		rain.set("random_max", 12)
		rain.set("show_table", false)
		rain.set("initial_input", "1,0,1")
		rain.set("random_count", 30)
	`)

	o := config.Defaults()
	if err := engine.Apply(&o); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if o.RandomCount != 30 || o.RandomMax != 12 {
		t.Errorf("random settings not applied: %+v", o)
	}
	if o.ShowTable || !o.ShowChart {
		t.Errorf("toggles wrong: chart=%v table=%v", o.ShowChart, o.ShowTable)
	}
	if o.InitialInput != "1,0,1" {
		t.Errorf("initial input %q", o.InitialInput)
	}
}

func TestApplyTypeMismatch(t *testing.T) {
	engine, cleanup := setupTest(t)
	defer cleanup()

	executeSetupLua(t, engine, `rain.set("svg_width", "wide")`)
	o := config.Defaults()
	if err := engine.Apply(&o); err == nil {
		t.Fatal("expected type error")
	}
}

func TestSetUnknownKey(t *testing.T) {
	engine, cleanup := setupTest(t)
	defer cleanup()

	if err := engine.DoString("bad", `rain.set("colour", 1)`); err == nil {
		t.Fatal("expected unknown setting error")
	}
}

func TestPresets(t *testing.T) {
	engine, cleanup := setupTest(t)
	defer cleanup()

	executeSetupLua(t, engine, `
		rain.preset("basin", "3,0,2,0,4")
		rain.preset("steps", "1,2,3")
		rain.preset("basin", "4,0,4")
	`)

	got := engine.Presets()
	want := []Preset{{"basin", "4,0,4"}, {"steps", "1,2,3"}}
	if len(got) != len(want) {
		t.Fatalf("expected %d presets, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("preset %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestCompute(t *testing.T) {
	engine, cleanup := setupTest(t)
	defer cleanup()

	executeSetupLua(t, engine, `
		local total, w = rain.compute("3,0,2,0,4")
		rain.preset("result", total .. ":" .. table.concat(w, ","))
	`)
	if p := engine.Presets(); len(p) != 1 || p[0].Text != "7:0,3,1,3,0" {
		t.Errorf("unexpected compute result %v", p)
	}
}

func TestInitResets(t *testing.T) {
	engine, cleanup := setupTest(t)
	defer cleanup()

	executeSetupLua(t, engine, `rain.preset("a", "1") rain.on_render(function() return "x" end)`)
	if err := engine.Init(); err != nil {
		t.Fatal(err)
	}
	if len(engine.Presets()) != 0 || engine.HasRenderHook() {
		t.Error("Init should discard registrations")
	}
}

func TestLoadFile(t *testing.T) {
	engine, cleanup := setupTest(t)
	defer cleanup()

	dir := t.TempDir()
	if err := engine.LoadFile(filepath.Join(dir, "missing.lua")); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}

	os.WriteFile(filepath.Join(dir, "presets.lua"), []byte(`return { basin = "3,0,2,0,4" }`), 0o644)
	initLua := filepath.Join(dir, "init.lua")
	os.WriteFile(initLua, []byte(`
		local p = require("presets")
		rain.preset("basin", p.basin)
	`), 0o644)

	if err := engine.LoadFile(initLua); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if p := engine.Presets(); len(p) != 1 || p[0].Text != "3,0,2,0,4" {
		t.Errorf("unexpected presets %v", p)
	}

	broken := filepath.Join(dir, "broken.lua")
	os.WriteFile(broken, []byte(`rain.set(`), 0o644)
	if err := engine.LoadFile(broken); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestOptionKeysCoverValidation(t *testing.T) {
	for _, key := range OptionKeys() {
		if _, ok := options[key]; !ok {
			t.Errorf("key %s has no setter", key)
		}
	}
	if len(OptionKeys()) != 10 {
		t.Errorf("expected 10 settable options, got %d", len(OptionKeys()))
	}
}

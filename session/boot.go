package session

import (
	"fmt"

	"github.com/drake/rainwater/config"
	"github.com/drake/rainwater/lua"
)

// Boot starts a Lua engine, runs initFile followed by scripts, and returns the
// resulting options. A missing initFile leaves the defaults in place.
func Boot(initFile string, scripts ...string) (*lua.Engine, config.Options, error) {
	opts := config.Defaults()
	engine := lua.NewEngine()
	if err := engine.Init(); err != nil {
		return nil, opts, err
	}

	for _, path := range append([]string{initFile}, scripts...) {
		if path == "" {
			continue
		}
		if err := engine.LoadFile(path); err != nil {
			engine.Close()
			return nil, opts, err
		}
	}

	if err := engine.Apply(&opts); err != nil {
		engine.Close()
		return nil, config.Defaults(), err
	}
	if err := opts.Validate(); err != nil {
		engine.Close()
		return nil, config.Defaults(), fmt.Errorf("init.lua: %w", err)
	}
	return engine, opts, nil
}

package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDirOverride(t *testing.T) {
	t.Setenv(DirEnv, "/tmp/rain-conf")
	if Dir() != "/tmp/rain-conf" {
		t.Errorf("expected override, got %q", Dir())
	}
	if InitFile() != filepath.Join("/tmp/rain-conf", "init.lua") {
		t.Errorf("unexpected init file %q", InitFile())
	}
	if LogFile() != filepath.Join("/tmp/rain-conf", "rainwater.log") {
		t.Errorf("unexpected log file %q", LogFile())
	}
}

func TestDirHonoursXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and BSDs")
	}
	t.Setenv(DirEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if Dir() != filepath.Join("/tmp/xdg", "rainwater") {
		t.Errorf("unexpected dir %q", Dir())
	}
	if filepath.Dir(LogFile()) != Dir() {
		t.Errorf("log file %q not under %q", LogFile(), Dir())
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func noEnv(string) (string, bool) { return "", false }

func TestLoadTOML(t *testing.T) {
	p := write(t, t.TempDir(), "xlc.toml", "color = \"off\"\nmax_diagnostics = 7\ntrace_level = \"debug\"\njobs = 3\ncache_dir = \"/tmp/c\"\n")
	cfg, err := load(p, noEnv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Color != ColorOff || cfg.MaxDiagnostics != 7 || cfg.TraceLevel != "debug" || cfg.Jobs != 3 || cfg.CacheDir != "/tmp/c" || cfg.Path != p {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestEnvBeatsFile(t *testing.T) {
	p := write(t, t.TempDir(), "xlc.toml", "max_diagnostics = 7\n")
	cfg, err := load(p, func(k string) (string, bool) {
		if k == "XLC_MAX_DIAGNOSTICS" {
			return "9", true
		}
		return "", false
	})
	if err != nil || cfg.MaxDiagnostics != 9 {
		t.Fatalf("want env override 9, got %d (%v)", cfg.MaxDiagnostics, err)
	}
}

func TestLoadYAML(t *testing.T) {
	p := write(t, t.TempDir(), "xlc.yaml", "color: on\nmax_diagnostics: 2\n")
	cfg := Default()
	if err := decodeFile(p, &cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Color != ColorOn || cfg.MaxDiagnostics != 2 || cfg.TraceLevel != "off" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestEmptyYAML(t *testing.T) {
	p := write(t, t.TempDir(), "xlc.yml", "")
	cfg := Default()
	if err := decodeFile(p, &cfg); err != nil {
		t.Fatalf("empty file: %v", err)
	}
}

func TestUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"xlc.toml", "xlc.yaml"} {
		var content string
		if strings.HasSuffix(name, ".toml") {
			content = "colour = \"on\"\n"
		} else {
			content = "colour: on\n"
		}
		cfg := Default()
		if err := decodeFile(write(t, dir, name, content), &cfg); err == nil {
			t.Fatalf("%s: unknown key accepted", name)
		}
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := write(t, root, "xlc.toml", "")
	deep := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	got, ok, err := Find(deep)
	if err != nil || !ok {
		t.Fatalf("Find: ok=%v err=%v", ok, err)
	}
	wantAbs, _ := filepath.Abs(want)
	if got != wantAbs {
		t.Fatalf("got %s, want %s", got, wantAbs)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"XLC_COLOR":           "ON",
		"XLC_MAX_DIAGNOSTICS": "5",
		"XLC_TRACE":           "phase",
		"XLC_JOBS":            "4",
	}
	cfg := Default()
	err := ApplyEnv(&cfg, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Color != ColorOn || cfg.MaxDiagnostics != 5 || cfg.TraceLevel != "phase" || cfg.Jobs != 4 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	bad := Default()
	if err := ApplyEnv(&bad, func(k string) (string, bool) {
		if k == "XLC_JOBS" {
			return "many", true
		}
		return "", false
	}); err == nil {
		t.Fatalf("bad XLC_JOBS accepted")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", Default(), true},
		{"empty", Config{}, true},
		{"bad color", Config{Color: "sometimes"}, false},
		{"negative jobs", Config{Jobs: -1}, false},
		{"bad trace", Config{TraceLevel: "loud"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err == nil) != tt.ok {
				t.Fatalf("Validate() = %v, ok want %v", err, tt.ok)
			}
		})
	}
}

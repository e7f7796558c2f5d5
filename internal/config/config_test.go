package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rkollar/cawa/internal/models"
)

// TestDefault verifies the empty configuration shape
func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Identifier != "" {
		t.Errorf("Identifier = %q, want empty", cfg.Identifier)
	}
	if cfg.EnableTiming {
		t.Error("EnableTiming = true, want false")
	}
	if cfg.Aliases == nil {
		t.Error("Aliases map should be initialized")
	}
	if len(cfg.Aliases) != 0 {
		t.Errorf("Aliases = %v, want empty", cfg.Aliases)
	}
}

// TestLoadFileNotExists tests fallback to defaults when no config exists
func TestLoadFileNotExists(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() should not error on missing file, got: %v", err)
	}
	if len(cfg.Aliases) != 0 {
		t.Errorf("Aliases = %v, want empty (default)", cfg.Aliases)
	}
}

// TestLoadValidFile tests loading both alias wire forms
func TestLoadValidFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `{
  "identifier": "c0ffee00-0000-4000-8000-000000000000",
  "enable_timing": true,
  "aliases": {
    "build": "go build ./...",
    "checks": ["go vet ./...", "go test ./..."]
  }
}
`
	if err := os.WriteFile(Path(tmpDir), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Identifier != "c0ffee00-0000-4000-8000-000000000000" {
		t.Errorf("Identifier = %q, want preserved value", cfg.Identifier)
	}
	if !cfg.EnableTiming {
		t.Error("EnableTiming = false, want true")
	}

	build, ok := cfg.Resolve("build")
	if !ok {
		t.Fatal("alias build missing")
	}
	if build.Parallel || len(build.Commands) != 1 || build.Commands[0] != "go build ./..." {
		t.Errorf("build = %+v, want single command", build)
	}

	checks, ok := cfg.Resolve("checks")
	if !ok {
		t.Fatal("alias checks missing")
	}
	if !checks.Parallel || len(checks.Commands) != 2 {
		t.Errorf("checks = %+v, want 2-command parallel set", checks)
	}
}

// TestLoadInvalidJSON tests error handling for malformed config files
func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(Path(tmpDir), []byte(`{"aliases": {nope}`), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(tmpDir)
	if err == nil {
		t.Fatal("Load() should error on malformed JSON")
	}
	if !strings.Contains(err.Error(), FileName) {
		t.Errorf("error should name the config file, got: %v", err)
	}
}

// TestSaveAssignsIdentifier verifies the first save mints a workspace ID
func TestSaveAssignsIdentifier(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Default()
	cfg.SetAlias("hello", models.NewSingle("echo Hello World"))

	if err := cfg.Save(tmpDir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if cfg.Identifier == "" {
		t.Fatal("Save() should assign an identifier")
	}

	// UUID string form is 36 characters with hyphens.
	if len(cfg.Identifier) != 36 || strings.Count(cfg.Identifier, "-") != 4 {
		t.Errorf("Identifier = %q, want UUID form", cfg.Identifier)
	}

	// A second save must not reassign it.
	id := cfg.Identifier
	if err := cfg.Save(tmpDir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if cfg.Identifier != id {
		t.Errorf("Identifier changed across saves: %q -> %q", id, cfg.Identifier)
	}
}

// TestSaveRoundTrip verifies Save then Load preserves everything
func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Default()
	cfg.EnableTiming = true
	cfg.SetAlias("build", models.NewSingle("cargo build --release"))
	cfg.SetAlias("dev", models.NewParallel([]string{"npm run server", "npm run client"}))

	if err := cfg.Save(tmpDir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Identifier != cfg.Identifier {
		t.Errorf("Identifier = %q, want %q", loaded.Identifier, cfg.Identifier)
	}
	if !loaded.EnableTiming {
		t.Error("EnableTiming lost in round trip")
	}
	if len(loaded.Aliases) != 2 {
		t.Fatalf("Aliases = %v, want 2 entries", loaded.Aliases)
	}

	dev, _ := loaded.Resolve("dev")
	if !dev.Parallel || len(dev.Commands) != 2 {
		t.Errorf("dev = %+v, want parallel pair", dev)
	}
}

// TestSaveWireFormat verifies the on-disk JSON keeps the untagged alias forms
func TestSaveWireFormat(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Default()
	cfg.SetAlias("build", models.NewSingle("go build ./..."))
	cfg.SetAlias("dev", models.NewParallel([]string{"a", "b"}))

	if err := cfg.Save(tmpDir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(Path(tmpDir))
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved config is not valid JSON: %v", err)
	}

	var aliases map[string]json.RawMessage
	if err := json.Unmarshal(raw["aliases"], &aliases); err != nil {
		t.Fatalf("aliases section malformed: %v", err)
	}

	if got := string(aliases["build"]); got != `"go build ./..."` {
		t.Errorf("single alias serialized as %s, want bare string", got)
	}
	if got := string(aliases["dev"]); !strings.HasPrefix(got, "[") {
		t.Errorf("parallel alias serialized as %s, want array", got)
	}
}

// TestValidate verifies rejection of unusable alias entries
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name: "valid single and parallel",
			mutate: func(c *Config) {
				c.SetAlias("a", models.NewSingle("ls"))
				c.SetAlias("b", models.NewParallel([]string{"ls", "pwd"}))
			},
			wantErr: false,
		},
		{
			name: "empty alias name",
			mutate: func(c *Config) {
				c.SetAlias("   ", models.NewSingle("ls"))
			},
			wantErr: true,
		},
		{
			name: "no commands",
			mutate: func(c *Config) {
				c.SetAlias("empty", models.AliasDefinition{Parallel: true})
			},
			wantErr: true,
		},
		{
			name: "blank command in parallel set",
			mutate: func(c *Config) {
				c.SetAlias("dev", models.NewParallel([]string{"ls", "  "}))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

// TestRemoveAlias verifies removal reports presence correctly
func TestRemoveAlias(t *testing.T) {
	cfg := Default()
	cfg.SetAlias("build", models.NewSingle("go build"))

	if !cfg.RemoveAlias("build") {
		t.Error("RemoveAlias(existing) = false, want true")
	}
	if cfg.RemoveAlias("build") {
		t.Error("RemoveAlias(missing) = true, want false")
	}
}

// TestAliasNames verifies sorted listing
func TestAliasNames(t *testing.T) {
	cfg := Default()
	cfg.SetAlias("zeta", models.NewSingle("z"))
	cfg.SetAlias("alpha", models.NewSingle("a"))
	cfg.SetAlias("mid", models.NewSingle("m"))

	names := cfg.AliasNames()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("AliasNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("AliasNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

// TestMergeWithFlags verifies flag precedence over the config file
func TestMergeWithFlags(t *testing.T) {
	cfg := Default()
	cfg.EnableTiming = true

	// Unset flag leaves the file value alone.
	cfg.MergeWithFlags(nil)
	if !cfg.EnableTiming {
		t.Error("nil flag should not override config")
	}

	// Set flag wins even when it disables.
	off := false
	cfg.MergeWithFlags(&off)
	if cfg.EnableTiming {
		t.Error("flag should override config")
	}
}

// TestLoadDirWithoutLockLitter verifies saving leaves only the config file behind
func TestLoadDirWithoutLockLitter(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Default()
	cfg.SetAlias("build", models.NewSingle("go build"))
	if err := cfg.Save(tmpDir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != FileName {
			t.Errorf("unexpected file left in workspace: %s", entry.Name())
		}
	}
	if _, err := os.Stat(filepath.Join(tmpDir, FileName)); err != nil {
		t.Errorf("config file missing: %v", err)
	}
}

// Package config loads and persists the per-workspace alias store.
//
// Each workspace keeps its aliases in a .cawa_cfg.json file in the directory
// cs is invoked from. The file is plain JSON so it can be committed alongside
// the project it belongs to.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/rkollar/cawa/internal/filelock"
	"github.com/rkollar/cawa/internal/models"
)

// FileName is the per-workspace configuration file name.
const FileName = ".cawa_cfg.json"

// Config represents one workspace's alias store.
type Config struct {
	// Identifier is a stable workspace ID assigned on first save. Run history
	// is keyed by it, so moving or renaming the directory keeps the
	// workspace's history intact.
	Identifier string `json:"identifier,omitempty"`

	// EnableTiming prints the elapsed-time marker after every alias run.
	// The --time flag overrides it per invocation.
	EnableTiming bool `json:"enable_timing"`

	// Aliases maps alias names to their definitions.
	Aliases map[string]models.AliasDefinition `json:"aliases"`
}

// Default returns an empty configuration.
func Default() *Config {
	return &Config{
		Aliases: make(map[string]models.AliasDefinition),
	}
}

// Path returns the configuration file path for a workspace directory.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the workspace configuration from dir.
// A missing file is not an error: callers get the defaults and the file
// appears on first save. A malformed file is an error.
func Load(dir string) (*Config, error) {
	path := Path(dir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Aliases == nil {
		cfg.Aliases = make(map[string]models.AliasDefinition)
	}

	return cfg, nil
}

// Save writes the configuration to dir under a file lock with an atomic
// replace, so concurrent cs invocations cannot interleave partial writes.
// A workspace identifier is assigned on the first save.
func (c *Config) Save(dir string) error {
	if c.Identifier == "" {
		c.Identifier = uuid.New().String()
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	path := Path(dir)
	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

// Validate checks alias entries for shapes the engine must never see.
func (c *Config) Validate() error {
	for name, def := range c.Aliases {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("alias names cannot be empty")
		}
		if len(def.Commands) == 0 {
			return fmt.Errorf("alias %q has no commands", name)
		}
		for i, command := range def.Commands {
			if strings.TrimSpace(command) == "" {
				return fmt.Errorf("alias %q: command %d is empty", name, i+1)
			}
		}
	}
	return nil
}

// Resolve looks up an alias definition by name.
func (c *Config) Resolve(name string) (models.AliasDefinition, bool) {
	def, ok := c.Aliases[name]
	return def, ok
}

// SetAlias stores a definition under name, replacing any existing one.
func (c *Config) SetAlias(name string, def models.AliasDefinition) {
	if c.Aliases == nil {
		c.Aliases = make(map[string]models.AliasDefinition)
	}
	c.Aliases[name] = def
}

// RemoveAlias deletes an alias. Returns false if the name was not present.
func (c *Config) RemoveAlias(name string) bool {
	if _, ok := c.Aliases[name]; !ok {
		return false
	}
	delete(c.Aliases, name)
	return true
}

// AliasNames returns the stored alias names in sorted order.
func (c *Config) AliasNames() []string {
	names := make([]string, 0, len(c.Aliases))
	for name := range c.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values, so flags take
// precedence over the file only when they were actually set.
func (c *Config) MergeWithFlags(enableTiming *bool) {
	if enableTiming != nil {
		c.EnableTiming = *enableTiming
	}
}

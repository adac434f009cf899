// Package config loads and serves lazycommit settings.
//
// Settings live in a TOML file at ~/.config/lazycommit/config.toml and can
// be overridden through LAZYCOMMIT_* environment variables. A missing file
// is not an error; defaults apply.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appDirName     = "lazycommit"
	configFileName = "config"
	envPrefix      = "LAZYCOMMIT"
)

// ScopeStyle selects the casing applied to a commit scope token.
type ScopeStyle string

const (
	ScopeLowercase ScopeStyle = "lowercase"
	ScopeKebabCase ScopeStyle = "kebab-case"
	ScopeCamelCase ScopeStyle = "camelCase"
)

// CommitConfig controls message formatting.
type CommitConfig struct {
	Conventional bool
	MaxLength    int
	ScopeStyle   ScopeStyle
	IncludeScope bool
}

// RulesConfig enables or disables individual pattern categories and holds
// the heuristic thresholds used by the selector.
type RulesConfig struct {
	EnableTodos    bool
	EnableFixes    bool
	BranchAnalysis bool
	MergeThreshold float64
}

// AIConfig selects and tunes the optional LLM refinement step.
type AIConfig struct {
	Provider    string
	Model       string
	Temperature float64
	MaxTokens   int
	TimeoutSecs int
}

// UIConfig controls the interactive presenter.
type UIConfig struct {
	Interactive     bool
	CopyToClipboard bool
}

// LazyGitConfig holds the shortcut-installation defaults.
type LazyGitConfig struct {
	DefaultKey     string
	DefaultContext string
}

// Config is the loaded configuration for one invocation.
type Config struct {
	v *viper.Viper

	path string
}

// Load reads the configuration file if present and applies defaults and
// environment overrides. It never fails on a missing file.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom behaves like Load but reads from the given directory instead of
// the user config directory. Used by tests.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType("toml")

	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".config", appDirName)
		}
	}
	if dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing or unreadable file falls back to defaults; a present
		// but malformed file is a real error the caller should see.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	return &Config{v: v, path: filepath.Join(dir, configFileName+".toml")}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ai.provider", "none")
	v.SetDefault("ai.model", "gpt-4")
	v.SetDefault("ai.temperature", 0.3)
	v.SetDefault("ai.max_tokens", 150)
	v.SetDefault("ai.timeout", 30)

	v.SetDefault("commit.conventional", true)
	v.SetDefault("commit.max_length", 72)
	v.SetDefault("commit.scope_style", string(ScopeLowercase))
	v.SetDefault("commit.include_scope", true)

	v.SetDefault("rules.enable_todos", true)
	v.SetDefault("rules.enable_fixes", true)
	v.SetDefault("rules.branch_analysis", true)
	v.SetDefault("rules.merge_threshold", 0.8)

	v.SetDefault("ui.interactive", true)
	v.SetDefault("ui.copy_to_clipboard", true)

	v.SetDefault("lazygit.default_key", "C")
	v.SetDefault("lazygit.default_context", "files")
}

// Path returns the location of the config file, whether or not it exists.
func (c *Config) Path() string {
	return c.path
}

// Commit returns the commit formatting section.
func (c *Config) Commit() CommitConfig {
	style := ScopeStyle(c.v.GetString("commit.scope_style"))
	switch style {
	case ScopeLowercase, ScopeKebabCase, ScopeCamelCase:
	default:
		// Unknown values degrade to lowercase rather than failing.
		style = ScopeLowercase
	}
	maxLen := c.v.GetInt("commit.max_length")
	if maxLen < 10 {
		maxLen = 72
	}
	return CommitConfig{
		Conventional: c.v.GetBool("commit.conventional"),
		MaxLength:    maxLen,
		ScopeStyle:   style,
		IncludeScope: c.v.GetBool("commit.include_scope"),
	}
}

// Rules returns the pattern-rule section.
func (c *Config) Rules() RulesConfig {
	threshold := c.v.GetFloat64("rules.merge_threshold")
	if threshold <= 0 || threshold > 1 {
		threshold = 0.8
	}
	return RulesConfig{
		EnableTodos:    c.v.GetBool("rules.enable_todos"),
		EnableFixes:    c.v.GetBool("rules.enable_fixes"),
		BranchAnalysis: c.v.GetBool("rules.branch_analysis"),
		MergeThreshold: threshold,
	}
}

// AI returns the refiner section.
func (c *Config) AI() AIConfig {
	timeout := c.v.GetInt("ai.timeout")
	if timeout < 1 {
		timeout = 30
	}
	return AIConfig{
		Provider:    strings.ToLower(c.v.GetString("ai.provider")),
		Model:       c.v.GetString("ai.model"),
		Temperature: c.v.GetFloat64("ai.temperature"),
		MaxTokens:   c.v.GetInt("ai.max_tokens"),
		TimeoutSecs: timeout,
	}
}

// UI returns the presenter section.
func (c *Config) UI() UIConfig {
	return UIConfig{
		Interactive:     c.v.GetBool("ui.interactive"),
		CopyToClipboard: c.v.GetBool("ui.copy_to_clipboard"),
	}
}

// LazyGit returns the shortcut-installation section.
func (c *Config) LazyGit() LazyGitConfig {
	return LazyGitConfig{
		DefaultKey:     c.v.GetString("lazygit.default_key"),
		DefaultContext: c.v.GetString("lazygit.default_context"),
	}
}

// AIEnabled reports whether a refinement provider is configured.
func (c *Config) AIEnabled() bool {
	return c.AI().Provider != "none" && c.AI().Provider != ""
}

// AllSettings exposes the flattened settings map for `config --show`.
func (c *Config) AllSettings() map[string]interface{} {
	return c.v.AllSettings()
}

// Package shortcuts manages the lazygit custom command that launches
// lazycommit from inside lazygit.
package shortcuts

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// commandLine is how the installed shortcut invokes the tool. It doubles
// as the marker used to recognize our entry on uninstall.
const commandLine = "lazycommit commit"

const description = "Generate commit message with lazycommit"

// Command is one entry of lazygit's customCommands list.
type Command struct {
	Key         string `yaml:"key"`
	Context     string `yaml:"context"`
	Command     string `yaml:"command"`
	Description string `yaml:"description,omitempty"`
	Output      string `yaml:"output,omitempty"`
}

// Manager reads and rewrites the lazygit configuration file.
type Manager struct {
	path   string
	logger *zap.Logger
}

// NewManager returns a manager for the given config path, or the default
// lazygit location when path is empty.
func NewManager(path string, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %v", err)
		}
		path = filepath.Join(home, ".config", "lazygit", "config.yml")
	}
	return &Manager{path: path, logger: logger}, nil
}

// Path returns the config file the manager operates on.
func (m *Manager) Path() string {
	return m.path
}

// Install adds the shortcut under the given key and context. An existing
// lazycommit entry is replaced; a foreign command on the same key is only
// overwritten with force.
func (m *Manager) Install(key, context string, force bool) error {
	doc, commands, err := m.load()
	if err != nil {
		return err
	}

	entry := Command{
		Key:         key,
		Context:     context,
		Command:     commandLine,
		Description: description,
		Output:      "terminal",
	}

	kept := commands[:0]
	for _, c := range commands {
		if isOurs(c) {
			continue
		}
		if c.Key == key && c.Context == context {
			if !force {
				return fmt.Errorf("key %q is already bound to %q in the %s context (use --force to replace)", key, c.Command, context)
			}
			m.logger.Info("replacing existing shortcut", zap.String("key", key), zap.String("command", c.Command))
			continue
		}
		kept = append(kept, c)
	}
	kept = append(kept, entry)

	return m.save(doc, kept)
}

// Uninstall removes the lazycommit shortcut. It reports whether an entry
// was actually removed.
func (m *Manager) Uninstall() (bool, error) {
	doc, commands, err := m.load()
	if err != nil {
		return false, err
	}
	kept := commands[:0]
	removed := false
	for _, c := range commands {
		if isOurs(c) {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return false, nil
	}
	return true, m.save(doc, kept)
}

// Installed returns the current lazycommit entry, or nil when absent.
func (m *Manager) Installed() (*Command, error) {
	_, commands, err := m.load()
	if err != nil {
		return nil, err
	}
	for _, c := range commands {
		if isOurs(c) {
			entry := c
			return &entry, nil
		}
	}
	return nil, nil
}

func isOurs(c Command) bool {
	return c.Command == commandLine
}

// load parses the config file into a generic document plus the typed
// customCommands list. A missing file yields an empty document.
func (m *Manager) load() (map[string]any, []Command, error) {
	doc := map[string]any{}
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read %s: %v", m.path, err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %v", m.path, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	raw, ok := doc["customCommands"]
	if !ok {
		return doc, nil, nil
	}
	// Round-trip through YAML to get the typed list out of the generic
	// document.
	encoded, err := yaml.Marshal(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse customCommands in %s: %v", m.path, err)
	}
	var commands []Command
	if err := yaml.Unmarshal(encoded, &commands); err != nil {
		return nil, nil, fmt.Errorf("failed to parse customCommands in %s: %v", m.path, err)
	}
	return doc, commands, nil
}

func (m *Manager) save(doc map[string]any, commands []Command) error {
	if len(commands) == 0 {
		delete(doc, "customCommands")
	} else {
		doc["customCommands"] = commands
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %v", m.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %v", m.path, err)
	}
	m.logger.Debug("wrote lazygit config", zap.String("path", m.path), zap.Int("custom_commands", len(commands)))
	return nil
}

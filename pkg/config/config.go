package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ray-d-song/golist/pkg/ui"
)

// MaxHistory is the number of commands remembered per script
const MaxHistory = 100

// State represents the saved state of a script
type State struct {
	ColorScheme ui.ColorScheme `json:"color_scheme"`
	Order       string         `json:"order"`
	History     []string       `json:"history,omitempty"`
	LastRun     bool           `json:"lastrun"`
}

// Config represents the configuration of the application
type Config struct {
	States     map[string]State `json:"states"`
	ConfigFile string           `json:"-"`
}

// NewConfig creates a new Config instance backed by the default config file
func NewConfig() (*Config, error) {
	configFile, err := getConfigFile()
	if err != nil {
		return nil, err
	}
	return NewConfigAt(configFile)
}

// NewConfigAt creates a new Config instance backed by configFile, loading it
// if it exists
func NewConfigAt(configFile string) (*Config, error) {
	config := &Config{
		States:     make(map[string]State),
		ConfigFile: configFile,
	}

	// Load the config if it exists
	if _, err := os.Stat(configFile); err == nil {
		err = config.Load()
		if err != nil {
			return nil, err
		}
	}

	return config, nil
}

// Load loads the configuration from the config file
func (c *Config) Load() error {
	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &c.States); err != nil {
		return err
	}
	if c.States == nil {
		c.States = make(map[string]State)
	}
	return nil
}

// Save saves the configuration to the config file
func (c *Config) Save() error {
	// Create the directory if it doesn't exist
	dir := filepath.Dir(c.ConfigFile)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(c.States, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.ConfigFile, data, 0644)
}

// GetState returns the state of a script
func (c *Config) GetState(file string) (State, bool) {
	state, ok := c.States[file]
	return state, ok
}

// SetState sets the state of a script
func (c *Config) SetState(file string, state State) {
	c.States[file] = state
}

// AppendHistory records a command run against a script, keeping at most
// MaxHistory entries
func (c *Config) AppendHistory(file, command string) {
	state := c.States[file]
	state.History = append(state.History, command)
	if len(state.History) > MaxHistory {
		state.History = append([]string(nil), state.History[len(state.History)-MaxHistory:]...)
	}
	c.States[file] = state
}

// SetLastRun marks the last run script
func (c *Config) SetLastRun(file string) {
	// Reset all lastrun flags
	for f, state := range c.States {
		if state.LastRun {
			state.LastRun = false
			c.States[f] = state
		}
	}

	// Set the lastrun flag for the given script
	if state, ok := c.States[file]; ok {
		state.LastRun = true
		c.States[file] = state
	}
}

// GetLastRun returns the last run script
func (c *Config) GetLastRun() (string, bool) {
	for file, state := range c.States {
		if state.LastRun {
			return file, true
		}
	}
	return "", false
}

// getConfigFile returns the path to the config file
func getConfigFile() (string, error) {
	// Try $HOME/.config/golist/config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".config", "golist")
	configFile := filepath.Join(configDir, "config")

	// If the directory exists or can be created, use it
	if _, err := os.Stat(configDir); err == nil || os.IsNotExist(err) {
		return configFile, nil
	}

	// Otherwise, use $HOME/.golist
	return filepath.Join(homeDir, ".golist"), nil
}

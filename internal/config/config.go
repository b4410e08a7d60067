// Package config resolves where task logs live.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const DefaultContext = "default"

// Config locates the task store. It is passed explicitly to the
// manager; nothing here is process-global.
type Config struct {
	// Dir is the root directory holding every context.
	Dir string
	// Context is the organization to start in, unless the context
	// file in Dir says otherwise.
	Context string
}

// Load builds the configuration from the environment. TASKS_PATH
// overrides the directory, TASKS_CONTEXT the starting organization.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("tasks")
	v.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	v.SetDefault("path", filepath.Join(home, ".tasks"))
	v.SetDefault("context", DefaultContext)

	return Config{
		Dir:     v.GetString("path"),
		Context: v.GetString("context"),
	}, nil
}

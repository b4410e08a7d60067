package config

import (
	"os"
	"testing"

	"github.com/matryer/is"
)

func TestLoad_Defaults(t *testing.T) {
	is := is.New(t)

	// shield the test from the developer's own environment
	t.Setenv("TASKS_PATH", "")
	t.Setenv("TASKS_CONTEXT", "")
	os.Unsetenv("TASKS_PATH")
	os.Unsetenv("TASKS_CONTEXT")

	cfg, err := Load()
	is.NoErr(err)
	is.True(cfg.Dir != "")
	is.Equal(cfg.Context, DefaultContext)
}

func TestLoad_EnvOverrides(t *testing.T) {
	is := is.New(t)

	t.Setenv("TASKS_PATH", "/tmp/elsewhere")
	t.Setenv("TASKS_CONTEXT", "work")

	cfg, err := Load()
	is.NoErr(err)
	is.Equal(cfg.Dir, "/tmp/elsewhere")
	is.Equal(cfg.Context, "work")
}

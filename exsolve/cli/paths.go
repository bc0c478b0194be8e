package cli

import (
	"os"
	"path/filepath"
)

// AppPaths is an interface to determine application specific paths for
// configuration, logging/tracing and REPL state.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	StateDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

// historyFile returns the path of the REPL history file. If the state
// directory cannot be created, the history is kept in the temp directory.
func historyFile(paths AppPaths, toolname string) string {
	name := toolname + "-repl-history"
	if paths == nil || paths.StateDir() == "" {
		return filepath.Join(os.TempDir(), name+".tmp")
	}
	if err := os.MkdirAll(paths.StateDir(), 0o755); err != nil {
		tracer().Infof("cannot create state directory: %v", err)
		return filepath.Join(os.TempDir(), name+".tmp")
	}
	return filepath.Join(paths.StateDir(), name)
}

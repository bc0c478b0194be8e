//go:build aix || dragonfly || freebsd || (js && wasm) || nacl || linux || netbsd || openbsd || solaris
// +build aix dragonfly freebsd js,wasm nacl linux netbsd openbsd solaris

package cli

import (
	"os"
	"path/filepath"
	"strings"
)

func appHome(appTag string) (a appPaths, err error) {
	a = appPaths{tag: appTag}
	if a.home, err = os.UserHomeDir(); err != nil {
		a.home = ""
	}
	return
}

// ConfigDir follows XDG_CONFIG_HOME, falling back to ~/.config.
func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, ".config")
	}
	return filepath.Join(c, strings.ToLower(a.tag))
}

func (a appPaths) LogDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, "logs", strings.ToLower(a.tag))
}

// StateDir follows XDG_STATE_HOME, falling back to ~/.local/state.
func (a appPaths) StateDir() string {
	if s := os.Getenv("XDG_STATE_HOME"); s != "" {
		return filepath.Join(s, strings.ToLower(a.tag))
	}
	if a.home == "" {
		return ""
	}
	return filepath.Join(a.home, ".local", "state", strings.ToLower(a.tag))
}

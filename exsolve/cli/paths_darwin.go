package cli

import (
	"os"
	"path/filepath"
)

func appHome(appTag string) (a appPaths, err error) {
	a = appPaths{tag: appTag}
	if a.home, err = os.UserHomeDir(); err != nil {
		a.home = ""
	}
	return
}

func (a appPaths) support() string {
	return filepath.Join(a.home, "Library", "Application Support")
}

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = a.support()
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) LogDir() string {
	return filepath.Join(a.home, "Library", "Logs", a.tag)
}

func (a appPaths) StateDir() string {
	if a.home == "" {
		return ""
	}
	return filepath.Join(a.support(), a.tag)
}

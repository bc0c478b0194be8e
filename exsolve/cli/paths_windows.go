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

// ConfigDir is located in %AppData%.
func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, a.tag)
}

// LogDir and StateDir are located in %LocalAppData%.
func (a appPaths) LogDir() string {
	return filepath.Join(a.local(), "Logs", a.tag)
}

func (a appPaths) StateDir() string {
	return filepath.Join(a.local(), a.tag)
}

func (a appPaths) local() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return c
}

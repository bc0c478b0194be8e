package cli

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/exsolve"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// appTag identifies the application for configuration and platform paths.
const appTag = "EXSOLVE"

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate exsolve configuration with an application-key of 'EXSOLVE' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, appTag, []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		exsolve.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		exsolve.Exit(1)
	}
	exsolve.Configuration = k // push the configuration to app-global scope
}

func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		konf.Set("tracing.destination", destination(logname, ""))
	}
	return nil
}

// destination turns a log file name into a URL. Relative file names are
// located in logdir, if given.
func destination(logname string, logdir string) string {
	if strings.Contains(logname, ":/") {
		return logname
	}
	if logdir != "" && !filepath.IsAbs(logname) {
		logname = filepath.Join(logdir, logname)
	}
	return "file://" + logname
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	tracing.Infof("searching for trace redirection")
	if dest := konf.GetString("tracing.destination"); strings.HasPrefix(dest, "file://") {
		name := strings.TrimPrefix(dest, "file://")
		konf.Set("tracing.destination", destination(name, defaultPaths().LogDir()))
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Infof(rootCmd.Long)
	return nil
}

func defaultPaths() AppPaths {
	paths, err := DefaultAppPaths(appTag)
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}

package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'exsolve.cli'
func tracer() tracing.Trace {
	return tracing.Select("exsolve.cli")
}

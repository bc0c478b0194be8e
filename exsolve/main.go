// Command exsolve is an interactive calculator for arithmetic expressions.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/exsolve"
	"github.com/npillmayer/exsolve/exsolve/cli"
)

func main() {
	var stop context.CancelFunc
	exsolve.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute()
	stop()
	exsolve.Exit(code)
}

// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'exsolve.cli'.
func trace() tracing.Trace {
	return tracing.Select("exsolve.cli")
}

// Formatter writes items to be displayed to a writer. It returns false if it
// does not know how to display an item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter displays strings and tables.
type DefaultFormatter struct{}

// Format is part of interface Formatter.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var err error
	switch t := item.(type) {
	case string:
		_, err = fmt.Fprintln(w, t)
	case table.Writer:
		if t == nil {
			_, err = io.WriteString(w, "(empty table)\n")
		} else {
			_, err = fmt.Fprintln(w, t.Render())
		}
	default:
		trace().Debugf("no format for item of type %T", t)
		return false, nil
	}
	return err == nil, err
}

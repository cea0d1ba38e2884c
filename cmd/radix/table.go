package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/js-arias/radix"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	return t
}

func entriesTable(w io.Writer, entries []radix.Entry[string]) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Key", "Value"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Key, e.Value})
	}
	t.Render()
}

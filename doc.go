/*
Package rowexpand implements the row-expansion subsystem of a tabular widget.

It decides, for each data row, whether the row is expanded and what to render
beneath it: a detail pseudo-row hosting extra content, the row's nested child
rows, or nothing. Rendering primitives stay outside: the host supplies a row
renderer, and the library hands it fully described rows.

# Concept

The expanded state lives in a shared view-state store. A controller is its only
writer for expanded keys; it answers toggle requests and controlled key
replacement, and computes a render plan per row. In controlled mode the caller
owns the truth: toggles only fire callbacks, and the caller pushes the new keys
back with SetExpandedRowKeys.

# Usage

	package main

	import (
		"log"

		"github.com/aretw0/rowexpand"
		"github.com/aretw0/rowexpand/pkg/domain"
	)

	func main() {
		rows := []domain.Row{
			{"id": 1, "name": "parent", "children": []domain.Row{{"id": 11, "name": "child"}}},
		}
		cols := []domain.Column{{Key: "name", Title: "Name"}}

		table, err := rowexpand.New(rows, cols, rowexpand.WithRowKey("id"))
		if err != nil {
			log.Fatal(err)
		}

		if _, err := table.ToggleKey("1", nil); err != nil {
			log.Fatal(err)
		}
		for _, row := range table.View(domain.FixedNone) {
			log.Println(row.Key, row.Visible)
		}
	}

# Adapters

  - pkg/adapters/memory: the in-memory view-state store.
  - pkg/adapters/file: loads tables from YAML or JSON definitions.
  - pkg/adapters/http: REST API and server-sent events over a Table.
  - pkg/adapters/mcp: exposes a Table as MCP tools.
*/
package rowexpand

/*
Package domain contains the core models of the row-expansion subsystem.

It defines rows, row keys, the ordered set of expanded keys, the shared view
state and the render plan produced for every row. This package is kept pure
and free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Row: an opaque record, possibly holding child rows under a configurable field.
  - RowKey: a stable identifier for a row within the flattened view.
  - KeySet: the ordered set of expanded row keys.
  - ViewState: the snapshot held by the view-state store (expanded keys and heights).
  - RenderPlan: what to render beneath a row (detail pseudo-row, child rows, or nothing).
*/
package domain

/*
Package ports defines the driven ports (interfaces) of the row-expansion core.

These interfaces decouple the expansion controller from the widget hosting it,
allowing the same logic to drive a terminal table, an HTTP API or an MCP tool.

# Key Interfaces

  - ViewStateStore: the shared view state with subscribe/notify semantics.
  - ColumnManager: exposes leaf column partitions (left, right, all).
  - RowRenderer: renders one row description.
  - HeightSource and VisibilitySource: presentation values for a row key.
*/
package ports

/*
Package observability provides tools for monitoring the row-expansion core.

It exposes Prometheus metrics fed by the controller's expansion hooks and by
view-state store subscriptions: toggle attempts by outcome, committed changes
and the current number of expanded rows.
*/
package observability

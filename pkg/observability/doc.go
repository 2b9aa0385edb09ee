/*
Package observability exposes Prometheus metrics for the orthology engine.

Metrics are fed through domain.LifecycleHooks, so any engine built with
WithLifecycleHooks(m.Hooks()) reports node classifications, relationship
counts and traversal durations without further wiring.
*/
package observability

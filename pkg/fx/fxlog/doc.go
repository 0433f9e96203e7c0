// Package fxlog provides zap-based tee helpers for effect values: log the
// populated branch with structured fields, leave the value untouched. The
// core packages stay logging-free; pipelines opt in by dropping these into
// Ensure/Tap spots.
package fxlog

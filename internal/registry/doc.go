// Package registry implements the transform registration pipeline.
//
// Build logic declares artifact transforms through one of three entry
// points. Each entry point hands a short-lived recording draft to a
// caller-supplied callback, validates the populated draft, binds the
// transform's parameters, materializes a cache-key fragment from the
// action's implementation identity plus an isolated snapshot of the
// parameter values, and appends the finalized registration to an append-only
// FIFO registry.
//
// Finalization is atomic: a registration that fails validation or
// snapshotting leaves the registry untouched. The registry itself provides
// no attribute matching; the resolution engine iterates the registrations in
// registration order and applies its own tie-breaking.
package registry

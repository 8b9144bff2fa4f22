// Package attrs implements the attribute predicates that describe artifact
// variants on both sides of a transform registration.
//
// A predicate is a mapping from attribute name (a variant dimension such as
// "format" or "minified") to a required cty value. Registration callbacks
// populate a mutable Container; finalization freezes it into an immutable
// Predicate that is safe to share across worker threads.
package attrs

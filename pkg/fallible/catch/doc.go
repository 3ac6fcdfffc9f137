// Package catch adapts panicking computations into Result-returning ones.
//
// Every function applies one guard-or-rethrow policy: a recovered panic
// value that the caller declared expected becomes a failure; everything
// else is a defect and re-raises with its original value.
//
// Three policies are provided, each as an immediate form, a reusable
// wrapped form, and a suspension-aware form resolving a scope.Future:
//
//   - Any / WrapAny / AnyAsync: every panic value is expected.
//   - Guarded / WrapGuarded / GuardedAsync: a caller predicate decides.
//   - OfType / WrapOfType / OfTypeAsync: expected iff the value is an E.
//
// Panic values that are not errors are wrapped in *Thrown before entering
// the failure channel. Propagation escapes from an enclosing scope boundary
// are never captured; they pass through to the boundary that owns them.
//
// Functions returning (T, error) are adapted with fallible.Try instead;
// this package deals strictly with the panic channel.
package catch

// Package hook models the textual setters of a generated helper. Each Rule
// claims one or more keys, renders the C++ branch bodies of the helper's
// hook(key, value) chain and carries a Go model of the same behavior for
// dry runs. A Chain orders the rules of one entity and resolves key
// conflicts in favor of the first claim.
package hook

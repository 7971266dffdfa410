// Package source reads legacy entity sources. Declaration files (.hh)
// yield member declarations; definition files (.cc) yield default
// factories, constructor member initializers and setter-table aliases.
// Both are tokenized with positions so that every finding can point back
// at its origin.
package source

// Package resolve turns parsed legacy sources into model objects: it types
// and numbers fields, binds defaults, derives the correspondence table and
// builds the hook chain and validity rules through the entity registry.
// Problems are collected as diagnostics; resolution always produces an
// object.
package resolve

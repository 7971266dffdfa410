package errors

import "fmt"

// ManifestNotFound creates a manifest not found error.
func ManifestNotFound(path string) *Error {
	return New(ErrCodeManifestNotFound, fmt.Sprintf("manifest file not found: %s", path)).
		WithDetail("path", path)
}

// ManifestInvalid creates an invalid manifest error.
func ManifestInvalid(reason string) *Error {
	return New(ErrCodeManifestInvalid, fmt.Sprintf("invalid manifest: %s", reason))
}

// SourceRead creates an input read failure.
func SourceRead(path string, err error) *Error {
	return Wrap(err, ErrCodeSourceRead, fmt.Sprintf("cannot read source file: %s", path)).
		WithDetail("path", path)
}

// Syntax creates a tokenizer failure at a source position.
func Syntax(pos string, msg string) *Error {
	return New(ErrCodeSyntax, fmt.Sprintf("%s: %s", pos, msg)).
		WithDetail("position", pos)
}

// UnknownEntity creates an unknown entity error.
func UnknownEntity(key string) *Error {
	return New(ErrCodeUnknownEntity, fmt.Sprintf("entity '%s' not found", key)).
		WithDetail("entity", key)
}

// DiagnosticsFailed reports that a run produced error-level diagnostics.
func DiagnosticsFailed(errorCount int) *Error {
	return New(ErrCodeDiagnostics, fmt.Sprintf("generation reported %d error(s)", errorCount)).
		WithDetail("errors", errorCount)
}

// VerifyFailed creates a verification failure for a generated artifact.
func VerifyFailed(file string, reason string) *Error {
	return New(ErrCodeVerifyFailed, fmt.Sprintf("generated %s is invalid: %s", file, reason)).
		WithDetail("file", file)
}

// WriteFailed creates an output write failure.
func WriteFailed(path string, err error) *Error {
	return Wrap(err, ErrCodeWriteFailed, fmt.Sprintf("cannot write %s", path)).
		WithDetail("path", path)
}

// InvalidInput creates an invalid input error.
func InvalidInput(reason string) *Error {
	return New(ErrCodeInvalidInput, reason)
}

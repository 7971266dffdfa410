package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"confgen/internal/errors"
)

// errorHandler provides user-friendly error messages.
type errorHandler struct {
	verbose bool
	out     io.Writer
}

func newErrorHandler(verbose bool) *errorHandler {
	return &errorHandler{verbose: verbose, out: os.Stderr}
}

// Handle prints err for humans and returns it.
func (h *errorHandler) Handle(err error) error {
	var coded *errors.Error
	if !stderrors.As(err, &coded) {
		coded = &errors.Error{Message: err.Error()}
	}

	switch coded.Code {
	case errors.ErrCodeManifestNotFound:
		fmt.Fprintf(h.out, "Manifest not found: %v\n", detail(coded, "path"))
		fmt.Fprintln(h.out, "Run without --config to use the built-in entity list.")
	case errors.ErrCodeManifestInvalid:
		fmt.Fprintf(h.out, "Invalid manifest: %s\n", message(coded))
		fmt.Fprintln(h.out, "Run 'confgen manifest schema' to see the expected format.")
	case errors.ErrCodeSourceRead:
		fmt.Fprintf(h.out, "Cannot read %v\n", detail(coded, "path"))
		fmt.Fprintln(h.out, "Check the entity paths and --source-root.")
	case errors.ErrCodeSyntax:
		fmt.Fprintf(h.out, "Syntax error: %s\n", coded.Message)
	case errors.ErrCodeUnknownEntity:
		fmt.Fprintf(h.out, "Entity '%v' is not in the manifest\n", detail(coded, "entity"))
	case errors.ErrCodeDiagnostics:
		fmt.Fprintf(h.out, "Generation reported %v error(s); outputs were written anyway.\n", detail(coded, "errors"))
		fmt.Fprintln(h.out, "Use --strict=false to accept them.")
	case errors.ErrCodeVerifyFailed:
		fmt.Fprintf(h.out, "Generated code failed verification: %s\n", coded.Message)
		fmt.Fprintln(h.out, "Nothing was written; see the .rejected file in the output directory.")
	case errors.ErrCodeWriteFailed:
		fmt.Fprintf(h.out, "Cannot write outputs: %v\n", err)
	default:
		fmt.Fprintf(h.out, "Error: %v\n", err)
	}

	if h.verbose && coded.Code != "" {
		fmt.Fprintf(h.out, "\nError details:\n%s\n", coded.ToJSON())
	}

	return err
}

func detail(e *errors.Error, key string) any {
	if v, ok := e.Details[key]; ok {
		return v
	}

	return "?"
}

func message(e *errors.Error) string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Package probe dry-runs the behavior of a generated helper on the Go model
// of its schema object: key correspondence, hook rules, the generic scalar
// setter and the validity predicate.
package probe

import (
	"fmt"
	"strconv"
	"strings"

	"confgen/internal/common"
	"confgen/internal/hook"
	"confgen/internal/model"
	"confgen/internal/schema"
	"confgen/internal/validity"
)

// Outcome classifies what a helper does with one key/value pair.
type Outcome int

const (
	// OutcomeHooked means a hook rule accepted the value.
	OutcomeHooked Outcome = iota
	// OutcomeGeneric means the runtime generic setter stored a scalar.
	OutcomeGeneric
	// OutcomeHeader means the value went to the object header.
	OutcomeHeader
	// OutcomeUnrecognized means no field or rule matches the key.
	OutcomeUnrecognized
	// OutcomeRejected means the key is known but the value is invalid.
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHooked:
		return "hooked"
	case OutcomeGeneric:
		return "generic"
	case OutcomeHeader:
		return "header"
	case OutcomeUnrecognized:
		return "unrecognized"
	case OutcomeRejected:
		return "rejected"
	default:
		return common.UnknownStr
	}
}

// Result describes one Set call.
type Result struct {
	Key       string
	Canonical string
	Value     string
	Outcome   Outcome
}

// OK reports whether the value was stored.
func (r Result) OK() bool {
	return r.Outcome == OutcomeHooked || r.Outcome == OutcomeGeneric || r.Outcome == OutcomeHeader
}

// Header is the Go model of the shared object header.
type Header struct {
	Name     string
	Register bool
	Use      []string
}

// Session is a dry-run object under construction.
type Session struct {
	obj    *model.ConfigObject
	header Header
	state  hook.State
}

// New starts a session on obj. Scalar defaults are applied first, as the
// generated initializer does.
func New(obj *model.ConfigObject) *Session {
	s := &Session{
		obj:    obj,
		header: Header{Register: true},
		state:  make(hook.State),
	}

	for _, f := range obj.Defaulted() {
		if f.Default.IsPoint() || !f.SchemaType.IsScalar() {
			continue
		}

		if v, ok := parseScalar(f.SchemaType, f.Default.Expr); ok {
			s.state[f.SchemaName] = v
		}
	}

	return s
}

// Set applies key=value the way the generated helper and the runtime
// loader do.
func (s *Session) Set(key, value string) Result {
	canonical := s.obj.Canonical(key)
	res := Result{Key: key, Canonical: canonical, Value: value}

	if s.setHeader(canonical, value, &res) {
		return res
	}

	if handled, ok := s.obj.Hooks.Apply(s.state, canonical, value); handled {
		res.Outcome = OutcomeHooked
		if !ok {
			res.Outcome = OutcomeRejected
		}

		return res
	}

	field, found := s.obj.Field(canonical)
	if !found {
		res.Outcome = OutcomeUnrecognized
		return res
	}

	v, ok := parseScalar(field.SchemaType, value)
	if !ok {
		res.Outcome = OutcomeRejected
		return res
	}

	s.state[field.SchemaName] = v
	res.Outcome = OutcomeGeneric

	return res
}

func (s *Session) setHeader(key, value string, res *Result) bool {
	switch key {
	case schema.HeaderName:
		s.header.Name = value
	case schema.HeaderRegister:
		b, ok := parseBool(value)
		if !ok {
			res.Outcome = OutcomeRejected
			return true
		}

		s.header.Register = b
	case schema.HeaderUse:
		s.header.Use = nil

		for _, u := range strings.Split(value, ",") {
			if u = strings.TrimSpace(u); u != "" {
				s.header.Use = append(s.header.Use, u)
			}
		}
	default:
		return false
	}

	res.Outcome = OutcomeHeader

	return true
}

// Header returns the object header.
func (s *Session) Header() Header {
	return s.header
}

// State returns the field values set so far, keyed by schema field name.
func (s *Session) State() hook.State {
	return s.state
}

// CheckValidity runs the validity predicate. Templates, objects whose
// register flag is off, are never checked.
func (s *Session) CheckValidity() error {
	if !s.header.Register {
		return nil
	}

	return validity.Check(s.obj.ClassName, s.obj.Validity, s.state)
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}

	return false, false
}

// parseScalar converts value to the Go representation of a scalar schema
// type: string, bool, int64, uint32, uint64 or float64.
func parseScalar(t schema.Type, value string) (any, bool) {
	if !t.IsScalar() {
		return nil, false
	}

	value = strings.TrimSpace(value)

	switch t.Name {
	case "string":
		return value, true
	case "bool":
		return parseBool(value)
	case "int32":
		n, err := strconv.ParseInt(value, 10, 32)
		return int64(n), err == nil
	case "int64":
		n, err := strconv.ParseInt(value, 10, 64)
		return n, err == nil
	case "uint32":
		n, err := strconv.ParseUint(value, 10, 32)
		return uint32(n), err == nil
	case "uint64":
		n, err := strconv.ParseUint(value, 10, 64)
		return n, err == nil
	case "double", "float":
		f, err := strconv.ParseFloat(value, 64)
		return f, err == nil
	}

	return nil, false
}

// Describe renders a result for humans.
func Describe(r Result) string {
	key := r.Key
	if r.Canonical != r.Key {
		key = fmt.Sprintf("%s (%s)", r.Key, r.Canonical)
	}

	return fmt.Sprintf("%s=%s: %s", key, r.Value, r.Outcome)
}

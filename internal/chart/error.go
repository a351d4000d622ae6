package chart

import "fmt"

// ErrorKind classifies a chart failure for machine handling.
type ErrorKind string

const (
	// KindInput marks a rejected BirthInput; the pipeline never started.
	KindInput ErrorKind = "input"

	// KindRange marks a date outside the supported calendar span.
	KindRange ErrorKind = "range"

	// KindDependency marks a fatal stage failure that aborts the chart.
	KindDependency ErrorKind = "dependency"

	// KindSection marks an isolated section failure; the rest of the
	// chart is still valid.
	KindSection ErrorKind = "section"
)

// Error carries a machine-readable kind, a human-readable message and the
// offending inputs for diagnosis.
type Error struct {
	Kind    ErrorKind         `json:"kind"`
	Message string            `json:"message"`
	Context map[string]string `json:"context,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// newError builds an Error from a kind, a wrapped cause and context pairs
// given as alternating key/value strings.
func newError(kind ErrorKind, cause error, kv ...string) *Error {
	e := &Error{Kind: kind, Message: cause.Error()}
	if len(kv) > 0 {
		e.Context = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			e.Context[kv[i]] = kv[i+1]
		}
	}
	return e
}

func (e *Error) clone() *Error {
	if e == nil {
		return nil
	}
	c := &Error{Kind: e.Kind, Message: e.Message}
	if e.Context != nil {
		c.Context = make(map[string]string, len(e.Context))
		for k, v := range e.Context {
			c.Context[k] = v
		}
	}
	return c
}

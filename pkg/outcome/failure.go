package outcome

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reserved keys of the named Failure fields, as returned by Get and Fields.
const (
	KeyID         = "id"
	KeyCapturedAt = "captured_at"
	KeyFunc       = "func"
	KeyArgs       = "args"
	KeyKwargs     = "kwargs"
	KeyFault      = "fault"
	KeyOrigin     = "origin"
	KeyTrace      = "trace"
)

// extraPrefix namespaces extra keys that collide with a named field in the
// merged Fields view. Named fields always win the bare key.
const extraPrefix = "extra."

// Failure is an immutable diagnostic record describing one caught fault: the
// callable's name, the arguments it was given, the fault itself, the value
// being processed when it occurred, and a stack trace snapshot taken while
// the fault was being handled.
//
// Failures are built only inside the catch boundaries of this package, so
// the trace always reflects an active fault; there is no way to construct
// one with a stale or empty trace.
type Failure struct {
	id         uuid.UUID
	capturedAt time.Time
	fn         string
	args       []any
	kwargs     map[string]any
	fault      error
	origin     any
	trace      string
	extra      map[string]any
}

func newFailure(fn string, args []any, kwargs map[string]any, fault error, origin any, trace string, extra map[string]any) *Failure {
	return &Failure{
		id:         uuid.New(),
		capturedAt: time.Now().UTC(),
		fn:         fn,
		args:       cloneSlice(args),
		kwargs:     cloneMap(kwargs),
		fault:      fault,
		origin:     origin,
		trace:      trace,
		extra:      cloneMap(extra),
	}
}

// ID identifies this record.
func (f *Failure) ID() uuid.UUID {
	return f.id
}

// CapturedAt is the record's creation time (UTC).
func (f *Failure) CapturedAt() time.Time {
	return f.capturedAt
}

// Func is the name of the callable that faulted, empty when unknown.
func (f *Failure) Func() string {
	return f.fn
}

// Args returns the positional arguments supplied to the callable.
func (f *Failure) Args() []any {
	return cloneSlice(f.args)
}

// Kwargs returns the named arguments supplied to the callable.
func (f *Failure) Kwargs() map[string]any {
	return cloneMap(f.kwargs)
}

// Fault is the caught error.
func (f *Failure) Fault() error {
	return f.fault
}

// Origin is the value being processed when the fault occurred, nil at a call
// boundary where no prior value exists.
func (f *Failure) Origin() any {
	return f.origin
}

// Trace is the stack snapshot taken while the fault was being handled.
func (f *Failure) Trace() string {
	return f.trace
}

// Extra returns the open-ended diagnostic payload.
func (f *Failure) Extra() map[string]any {
	return cloneMap(f.extra)
}

// Get looks a field up by key: first the named fields under their reserved
// keys, then the extra payload.
func (f *Failure) Get(key string) (any, bool) {
	switch key {
	case KeyID:
		return f.id, true
	case KeyCapturedAt:
		return f.capturedAt, true
	case KeyFunc:
		return f.fn, true
	case KeyArgs:
		return f.Args(), true
	case KeyKwargs:
		return f.Kwargs(), true
	case KeyFault:
		return f.fault, true
	case KeyOrigin:
		return f.origin, true
	case KeyTrace:
		return f.trace, true
	}
	v, ok := f.extra[key]
	return v, ok
}

// Fields folds the extra payload into the named fields for uniform
// inspection. An extra key that collides with a reserved key is kept under
// the "extra." prefix instead of shadowing the named field.
func (f *Failure) Fields() map[string]any {
	out := map[string]any{
		KeyID:         f.id,
		KeyCapturedAt: f.capturedAt,
		KeyFunc:       f.fn,
		KeyArgs:       f.Args(),
		KeyKwargs:     f.Kwargs(),
		KeyFault:      f.fault,
		KeyOrigin:     f.origin,
		KeyTrace:      f.trace,
	}
	for k, v := range f.extra {
		if _, reserved := out[k]; reserved {
			k = extraPrefix + k
		}
		out[k] = v
	}
	return out
}

func (f *Failure) String() string {
	var b strings.Builder
	b.WriteString("Failure(\n")
	fmt.Fprintf(&b, "\tfunc: %s\n", f.fn)
	fmt.Fprintf(&b, "\targs: %v\n", f.args)
	fmt.Fprintf(&b, "\tkwargs: %v\n", f.kwargs)
	fmt.Fprintf(&b, "\tfault: %v\n", f.fault)
	fmt.Fprintf(&b, "\torigin: %v\n", f.origin)
	fmt.Fprintf(&b, "\textra: %v\n", f.extra)
	fmt.Fprintf(&b, "\ttrace:\n%s", indent(f.trace))
	b.WriteString(")")
	return b.String()
}

func indent(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "\t\t" + l
	}
	return strings.Join(lines, "\n") + "\n"
}

func cloneSlice(in []any) []any {
	if len(in) == 0 {
		return nil
	}
	out := make([]any, len(in))
	copy(out, in)
	return out
}

// cloneMap deep-clones nested string-keyed maps so a Failure never aliases
// caller-owned state.
func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}
		out[k] = v
	}
	return out
}

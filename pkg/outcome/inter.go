package outcome

// Report is the non-generic view of a Result, enough for diagnostics sinks
// (loggers, collectors) that inspect heterogeneous Results.
type Report interface {
	// IsOk reports whether the success arm is active
	IsOk() bool
	// IsErr reports whether the failure arm is active
	IsErr() bool
	// Failure returns the attached diagnostic record, nil when none
	Failure() *Failure
	// String renders the Ok(v)/Err(e) form
	String() string
}

// Provider is the full typed surface of a Result, for code written against
// an abstract result rather than the concrete container.
type Provider[T any, E error] interface {
	Report
	// Unwrap returns the success value or panics on the failure arm
	Unwrap() T
	// UnwrapErr returns the fault or panics on the success arm
	UnwrapErr() E
	// Value destructures into (value, fault)
	Value() (T, E)
}

var (
	_ Report               = Result[int, error]{}
	_ Provider[int, error] = Result[int, error]{}
)

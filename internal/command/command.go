// Package command parses operation lines and applies them to the catalog
// and client stores.
//
// Every line moves through parse, validate and execute. The outcome is a
// Result whose State is StateExecuted or StateFailed; a failed Result holds
// an error classified by one of the apperr sentinels.
package command

// Kind is the leading type code of an operation line.
type Kind byte

const (
	KindCheckout Kind = 'C'
	KindReturn   Kind = 'R'
	KindHistory  Kind = 'H'
	KindDisplay  Kind = 'D'
)

func (k Kind) String() string {
	switch k {
	case KindCheckout:
		return "checkout"
	case KindReturn:
		return "return"
	case KindHistory:
		return "history"
	case KindDisplay:
		return "display"
	}
	return string(rune(k))
}

// State is the stage an operation reached.
type State int

const (
	StateParsed State = iota + 1
	StateValidated
	StateExecuted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateParsed:
		return "parsed"
	case StateValidated:
		return "validated"
	case StateExecuted:
		return "executed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// SupportedFormat is the only copy format the library lends: hard copy.
const SupportedFormat = "H"

// Operation is a parsed operation line. Category and Format hold the raw
// tokens; their values are checked during execution.
type Operation struct {
	Kind     Kind   `json:"kind"`
	ClientID int    `json:"client_id,omitempty" validate:"min=1000,max=9999"`
	Category string `json:"category,omitempty" validate:"required"`
	Format   string `json:"format,omitempty" validate:"required"`
	Fields   string `json:"fields,omitempty"`
}

// Result is the outcome of one submitted line.
type Result struct {
	Line  string
	Op    Operation
	State State
	Err   error
}

// OK reports whether the operation executed.
func (r Result) OK() bool {
	return r.State == StateExecuted
}

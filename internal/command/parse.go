package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"shelf/internal/apperr"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// rule describes how one kind is read and checked. fields names the
// Operation fields the kind carries; only those are validated.
type rule struct {
	fields  []string
	execute func(d *Dispatcher, op Operation) error
}

var rules = map[Kind]rule{
	KindCheckout: {fields: []string{"ClientID", "Category", "Format"}, execute: (*Dispatcher).checkout},
	KindReturn:   {fields: []string{"ClientID", "Category", "Format"}, execute: (*Dispatcher).giveBack},
	KindHistory:  {fields: []string{"ClientID"}, execute: (*Dispatcher).history},
	KindDisplay:  {execute: (*Dispatcher).display},
}

// ParseOperation reads one operation line:
//
//	C <clientId> <category> <format> <publication fields>
//	R <clientId> <category> <format> <publication fields>
//	H <clientId>
//	D
func ParseOperation(line string) (Operation, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Operation{}, fmt.Errorf("%w: Empty command data.", apperr.ErrInvalidInput)
	}
	op := Operation{Kind: Kind(line[0])}
	if _, ok := rules[op.Kind]; !ok {
		return op, fmt.Errorf("%w: '%c' is not a valid command type.", apperr.ErrInvalidInput, line[0])
	}
	code, rest := token(line)
	if len(code) != 1 {
		return op, fmt.Errorf("%w: '%s' is not a valid command type.", apperr.ErrInvalidInput, code)
	}
	if op.Kind == KindDisplay {
		return op, nil
	}

	badFormat := fmt.Errorf("%w: Invalid format for %s command", apperr.ErrInvalidInput, op.Kind)

	var id string
	id, rest = token(rest)
	n, err := strconv.Atoi(id)
	if err != nil {
		return op, badFormat
	}
	op.ClientID = n
	if op.Kind == KindHistory {
		return op, nil
	}

	op.Category, rest = token(rest)
	op.Format, rest = token(rest)
	if op.Category == "" || op.Format == "" {
		return op, badFormat
	}
	op.Fields = strings.TrimSpace(rest)
	return op, nil
}

// Validate checks the fields op.Kind carries.
func Validate(op Operation) error {
	s, ok := rules[op.Kind]
	if !ok {
		return fmt.Errorf("%w: '%s' is not a valid command type.", apperr.ErrInvalidInput, op.Kind)
	}
	if len(s.fields) == 0 {
		return nil
	}
	err := validate.StructPartial(op, s.fields...)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	switch verrs[0].Field() {
	case "ClientID":
		return fmt.Errorf("%w: Invalid client ID: must be 4-digit number", apperr.ErrInvalidInput)
	default:
		return fmt.Errorf("%w: Invalid format for %s command", apperr.ErrInvalidInput, op.Kind)
	}
}

func token(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

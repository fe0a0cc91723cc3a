package command

//go:generate mockgen -source dispatcher.go -destination mocks/mock_ports.go -package mocks

import (
	"fmt"
	"iter"

	"shelf/internal/apperr"
	"shelf/internal/client"
	"shelf/internal/publication"
)

// Catalog is the read side of the catalog store the dispatcher needs.
// Records it returns stay owned by the store.
type Catalog interface {
	Find(c publication.Category, key *publication.Record) (*publication.Record, bool)
	Each(c publication.Category) iter.Seq[*publication.Record]
	Categories() []publication.Category
}

// Clients resolves client ids.
type Clients interface {
	Find(id int) (*client.Client, bool)
}

// Presenter renders the output of display and history operations.
type Presenter interface {
	Section(c publication.Category, rows iter.Seq[*publication.Record])
	History(c *client.Client)
}

// Dispatcher applies one operation at a time. It only borrows records and
// clients from the stores and changes nothing but copy counts.
type Dispatcher struct {
	catalog   Catalog
	clients   Clients
	presenter Presenter
}

func NewDispatcher(catalog Catalog, clients Clients, presenter Presenter) *Dispatcher {
	return &Dispatcher{catalog: catalog, clients: clients, presenter: presenter}
}

// Submit parses, validates and executes line.
func (d *Dispatcher) Submit(line string) Result {
	res := Result{Line: line}

	op, err := ParseOperation(line)
	res.Op = op
	if err != nil {
		return res.fail(err)
	}
	res.State = StateParsed

	if err := Validate(op); err != nil {
		return res.fail(err)
	}
	return d.Execute(op).withLine(line)
}

// Execute runs an already validated operation.
func (d *Dispatcher) Execute(op Operation) Result {
	res := Result{Op: op, State: StateValidated}
	s, ok := rules[op.Kind]
	if !ok {
		return res.fail(fmt.Errorf("%w: '%s' is not a valid command type.", apperr.ErrInvalidInput, op.Kind))
	}
	if err := s.execute(d, op); err != nil {
		return res.fail(err)
	}
	res.State = StateExecuted
	return res
}

func (r Result) fail(err error) Result {
	r.State = StateFailed
	r.Err = err
	return r
}

func (r Result) withLine(line string) Result {
	r.Line = line
	return r
}

// target resolves the client and the publication an item operation refers
// to. verb is used in failure reasons.
func (d *Dispatcher) target(op Operation, verb string) (*client.Client, *publication.Record, error) {
	who, ok := d.clients.Find(op.ClientID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: There is no client with ID %d.", apperr.ErrNotFound, op.ClientID)
	}
	if err := validate.Var(op.Format, "eq="+SupportedFormat); err != nil {
		return nil, nil, fmt.Errorf("%w: Invalid format type '%s'. Only 'H' (hard copy) is supported.", apperr.ErrInvalidInput, op.Format)
	}
	cat, ok := publication.ParseCategory(op.Category)
	if !ok {
		return nil, nil, fmt.Errorf("%w: Invalid publication type '%s'.", apperr.ErrInvalidInput, op.Category)
	}
	key, err := publication.LookupKey(cat, op.Fields)
	if err != nil {
		return nil, nil, err
	}
	found, ok := d.catalog.Find(cat, key)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s tried to %s '%s' - not found in catalog.",
			apperr.ErrNotFound, who.FullName(), verb, publication.TitleOf(cat, op.Fields))
	}
	return who, found, nil
}

func (d *Dispatcher) checkout(op Operation) error {
	who, found, err := d.target(op, "check out")
	if err != nil {
		return err
	}
	if !found.TakeCopy() {
		return fmt.Errorf("%w: %s tried to check out '%s' - no copies available.",
			apperr.ErrPreconditionFailed, who.FullName(), found.Title)
	}
	return nil
}

// giveBack puts a copy back without checking that the client borrowed it:
// no per-client holdings are kept.
func (d *Dispatcher) giveBack(op Operation) error {
	_, found, err := d.target(op, "return")
	if err != nil {
		return err
	}
	found.ReturnCopy()
	return nil
}

func (d *Dispatcher) history(op Operation) error {
	who, ok := d.clients.Find(op.ClientID)
	if !ok {
		return fmt.Errorf("%w: There is no client with ID %d.", apperr.ErrNotFound, op.ClientID)
	}
	d.presenter.History(who)
	return nil
}

func (d *Dispatcher) display(Operation) error {
	for _, c := range d.catalog.Categories() {
		d.presenter.Section(c, d.catalog.Each(c))
	}
	return nil
}

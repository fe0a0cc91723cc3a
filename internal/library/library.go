// Package library wires the catalog, the client registry and the command
// dispatcher into one session.
package library

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strings"

	"shelf/internal/apperr"
	"shelf/internal/catalog"
	"shelf/internal/client"
	"shelf/internal/command"
	"shelf/internal/index"
	"shelf/internal/publication"
	"shelf/internal/source"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Presenter is everything the library prints. *report.Text implements it.
type Presenter interface {
	command.Presenter
	Failure(err error)
	Welcome(publications, clients int)
	Rule(title string, width int)
	Clients(clients iter.Seq[*client.Client])
	Statistics(publications, clients, commands int, hash index.Stats)
}

// Totals are the session counters. Commands counts operations that
// executed successfully.
type Totals struct {
	Publications int `json:"publications"`
	Clients      int `json:"clients"`
	Commands     int `json:"commands"`
}

// Summary describes one batch of operation lines.
type Summary struct {
	RunID     string `json:"run_id"`
	Processed int    `json:"processed"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

// Stats is a machine-readable snapshot of the library.
type Stats struct {
	Totals
	Categories map[string]CategoryStats `json:"categories"`
	Hash       index.Stats              `json:"client_hash"`
}

type CategoryStats struct {
	Records int `json:"records"`
	Depth   int `json:"depth"`
}

var errNotReady = fmt.Errorf("%w: library not initialized", apperr.ErrInvalidInput)

type Library struct {
	log        logrus.FieldLogger
	out        Presenter
	catalog    *catalog.Store
	clients    *client.Store
	dispatcher *command.Dispatcher
	ready      bool
	totals     Totals
}

// New creates an empty, uninitialized library. buckets sizes the client
// table; zero selects the default.
func New(out Presenter, log logrus.FieldLogger, buckets int) *Library {
	l := &Library{
		log:     log,
		out:     out,
		catalog: catalog.NewStore(),
		clients: client.NewStore(buckets),
	}
	l.dispatcher = command.NewDispatcher(l.catalog, l.clients, out)
	return l
}

// Initialize replaces the library contents with what src provides. It fails
// when src yields no publications or no clients; the library then stays
// uninitialized.
func (l *Library) Initialize(ctx context.Context, src source.Source) error {
	l.ready = false
	l.totals = Totals{}
	l.catalog.Clear()
	l.clients.Clear()

	pubs, err := src.Publications(ctx)
	if err != nil {
		return fmt.Errorf("load publications: %w", err)
	}
	l.totals.Publications = load(l.log.WithField("kind", "publication"), pubs, l.catalog.Insert)
	if l.totals.Publications == 0 {
		return fmt.Errorf("%w: no publications loaded", apperr.ErrInvalidInput)
	}

	clients, err := src.Clients(ctx)
	if err != nil {
		return fmt.Errorf("load clients: %w", err)
	}
	l.totals.Clients = load(l.log.WithField("kind", "client"), clients, l.clients.Insert)
	if l.totals.Clients == 0 {
		return fmt.Errorf("%w: no clients loaded", apperr.ErrInvalidInput)
	}

	l.ready = true
	l.log.WithFields(logrus.Fields{
		"publications": l.totals.Publications,
		"clients":      l.totals.Clients,
	}).Info("library initialized")
	l.out.Welcome(l.totals.Publications, l.totals.Clients)
	return nil
}

// load inserts every item of b and returns how many were kept.
func load[T any](log logrus.FieldLogger, b source.Batch[T], insert func(T) error) int {
	for _, err := range b.Skipped {
		log.WithField("code", apperr.Code(err)).Warn(err)
	}
	n := 0
	for _, item := range b.Items {
		if err := insert(item); err != nil {
			log.WithField("code", apperr.Code(err)).Warn(apperr.Reason(err))
			continue
		}
		n++
	}
	return n
}

// ProcessCommands executes every non-blank line of r in order. A failed
// operation is reported and the batch continues.
func (l *Library) ProcessCommands(r io.Reader) (Summary, error) {
	sum := Summary{RunID: uuid.NewString()}
	if !l.ready {
		return sum, errNotReady
	}
	log := l.log.WithField("run_id", sum.RunID)

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		res := l.dispatcher.Submit(line)
		sum.Processed++
		if res.OK() {
			sum.Succeeded++
			log.WithFields(logrus.Fields{"line": n, "op": res.Op.Kind.String()}).Debug("operation executed")
			continue
		}
		sum.Failed++
		l.out.Failure(res.Err)
		log.WithFields(logrus.Fields{
			"line":      n,
			"state":     res.State.String(),
			"code":      apperr.Code(res.Err),
			"client_id": res.Op.ClientID,
		}).Debug(apperr.Reason(res.Err))
	}
	l.totals.Commands += sum.Succeeded

	log.WithFields(logrus.Fields{
		"processed": sum.Processed,
		"succeeded": sum.Succeeded,
		"failed":    sum.Failed,
	}).Info("batch finished")

	if err := sc.Err(); err != nil {
		return sum, fmt.Errorf("read commands: %w", err)
	}
	return sum, nil
}

// DisplayCatalog prints every category in fiction, children's, periodical
// order.
func (l *Library) DisplayCatalog() error {
	if !l.ready {
		return errNotReady
	}
	l.out.Rule("SHHH LIBRARY COMPLETE CATALOG", 60)
	for _, c := range l.catalog.Categories() {
		l.out.Section(c, l.catalog.Each(c))
	}
	return nil
}

func (l *Library) DisplayClients() error {
	if !l.ready {
		return errNotReady
	}
	l.out.Rule("SHHH LIBRARY REGISTERED CLIENTS", 40)
	l.out.Clients(l.clients.All())
	return nil
}

func (l *Library) DisplayStatistics() error {
	if !l.ready {
		return errNotReady
	}
	l.out.Statistics(l.totals.Publications, l.totals.Clients, l.totals.Commands, l.clients.Stats())
	return nil
}

// Stats returns the session counters together with index diagnostics.
func (l *Library) Stats() (Stats, error) {
	if !l.ready {
		return Stats{}, errNotReady
	}
	st := Stats{
		Totals:     l.totals,
		Categories: make(map[string]CategoryStats, len(publication.Categories)),
		Hash:       l.clients.Stats(),
	}
	for _, c := range l.catalog.Categories() {
		st.Categories[c.String()] = CategoryStats{Records: l.catalog.Len(c), Depth: l.catalog.Depth(c)}
	}
	return st, nil
}

func (l *Library) Totals() Totals {
	return l.totals
}

func (l *Library) Ready() bool {
	return l.ready
}

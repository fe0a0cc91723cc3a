package source

import (
	"context"
	"fmt"

	"shelf/internal/apperr"
	"shelf/internal/client"
	"shelf/internal/publication"

	"github.com/jackc/pgx/v5"
)

// DB is the part of *pgxpool.Pool the Postgres source uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Postgres reads the library contents from the publications and clients
// tables. Copy counts are not stored; every record starts with the initial
// count of its category.
type Postgres struct {
	db DB
}

func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Publications(ctx context.Context) (Batch[*publication.Record], error) {
	const query = `
		SELECT kind, author, title, month, year
		FROM publications
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return Batch[*publication.Record]{}, fmt.Errorf("query publications: %w", err)
	}
	defer rows.Close()

	var b Batch[*publication.Record]
	for rows.Next() {
		var (
			kind, author, title string
			month, year         int
		)
		if err := rows.Scan(&kind, &author, &title, &month, &year); err != nil {
			return b, fmt.Errorf("scan publication: %w", err)
		}
		r, err := RecordFromRow(kind, author, title, month, year)
		if err != nil {
			b.Skipped = append(b.Skipped, err)
			continue
		}
		b.Items = append(b.Items, r)
	}
	if err := rows.Err(); err != nil {
		return b, fmt.Errorf("read publications: %w", err)
	}
	return b, nil
}

func (p *Postgres) Clients(ctx context.Context) (Batch[*client.Client], error) {
	const query = `
		SELECT id, last_name, first_name
		FROM clients
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return Batch[*client.Client]{}, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	var b Batch[*client.Client]
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.LastName, &c.FirstName); err != nil {
			return b, fmt.Errorf("scan client: %w", err)
		}
		b.Items = append(b.Items, &c)
	}
	if err := rows.Err(); err != nil {
		return b, fmt.Errorf("read clients: %w", err)
	}
	return b, nil
}

// RecordFromRow builds a record from a publications row.
func RecordFromRow(kind, author, title string, month, year int) (*publication.Record, error) {
	c, ok := publication.ParseCategory(kind)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is not a valid publication type", apperr.ErrInvalidInput, kind)
	}
	switch c {
	case publication.Fiction:
		return publication.NewFiction(author, title, year), nil
	case publication.Children:
		return publication.NewChildren(author, title, year), nil
	default:
		return publication.NewPeriodical(title, month, year), nil
	}
}

// Import writes records and clients in one batch. Existing rows with the
// same natural key are left alone.
func (p *Postgres) Import(ctx context.Context, records []*publication.Record, clients []*client.Client) error {
	const pubSQL = `
		INSERT INTO publications (kind, author, title, month, year)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING`
	const clientSQL = `
		INSERT INTO clients (id, last_name, first_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING`

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(pubSQL, r.Kind.String(), r.Author, r.Title, r.Month, r.Year)
	}
	for _, c := range clients {
		batch.Queue(clientSQL, c.ID, c.LastName, c.FirstName)
	}
	if batch.Len() == 0 {
		return nil
	}

	results := p.db.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("import row %d: %w", i+1, err)
		}
	}
	return results.Close()
}

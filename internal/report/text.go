// Package report renders catalog, client and statistics output as
// fixed-width text.
package report

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"shelf/internal/apperr"
	"shelf/internal/client"
	"shelf/internal/index"
	"shelf/internal/publication"
)

const (
	authorWidth = 29
	titleWidth  = 39
)

var headers = map[publication.Category][2]string{
	publication.Fiction: {
		"FICTION PUBLICATIONS",
		"AVAIL AUTHOR                        TITLE                                    YEAR",
	},
	publication.Children: {
		"CHILDREN'S PUBLICATIONS",
		"AVAIL TITLE                                   AUTHOR                         YEAR",
	},
	publication.Periodical: {
		"PERIODICAL PUBLICATIONS",
		"AVAIL TITLE                                         MONTH YEAR",
	},
}

// Text writes human-readable output to w.
type Text struct {
	w io.Writer
}

func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.w, format, args...)
}

// Section prints one category: two header lines, a row per record and a
// blank line.
func (t *Text) Section(c publication.Category, rows iter.Seq[*publication.Record]) {
	h, ok := headers[c]
	if !ok {
		t.printf("ERROR: Invalid publication type for display.\n")
		return
	}
	t.printf("%s\n%s\n", h[0], h[1])
	for r := range rows {
		t.printf("%s\n", Row(r))
	}
	t.printf("\n")
}

// Row formats a single record in the column layout of its category.
func Row(r *publication.Record) string {
	switch r.Kind {
	case publication.Fiction:
		return fmt.Sprintf("%-6d%-30s%-40s%5d", r.Copies(), clip(r.Author, authorWidth), clip(r.Title, titleWidth), r.Year)
	case publication.Children:
		return fmt.Sprintf("%-6d%-40s%-30s%5d", r.Copies(), clip(r.Title, titleWidth), clip(r.Author, authorWidth), r.Year)
	case publication.Periodical:
		return fmt.Sprintf("%-6d%-40s%8d%6d", r.Copies(), clip(r.Title, titleWidth), r.Month, r.Year)
	}
	return r.String()
}

// History prints a client's identity. No transactions are tracked.
func (t *Text) History(c *client.Client) {
	t.printf("Transaction history for client %s\n\n", ClientLine(c))
	t.printf("  (No transactions recorded)\n")
}

// ClientLine formats a client as "  id last, first".
func ClientLine(c *client.Client) string {
	if c.FirstName == "" {
		return fmt.Sprintf("%4d %s", c.ID, c.LastName)
	}
	return fmt.Sprintf("%4d %s, %s", c.ID, c.LastName, c.FirstName)
}

// Clients prints every client in the order given.
func (t *Text) Clients(clients iter.Seq[*client.Client]) {
	t.printf("CLIENT HASH TABLE CONTENTS:\n")
	t.printf("===========================\n")
	empty := true
	for c := range clients {
		t.printf("%s\n", ClientLine(c))
		empty = false
	}
	if empty {
		t.printf("No clients in hash table.\n")
	}
}

// Failure prints the reason of a failed operation.
func (t *Text) Failure(err error) {
	t.printf("ERROR: %s\n", apperr.Reason(err))
}

// Rule prints a title framed by lines of '=' of the given width.
func (t *Text) Rule(title string, width int) {
	line := strings.Repeat("=", width)
	t.printf("\n%s\n%s\n%s\n", line, title, line)
}

// Welcome prints the banner shown once the library has loaded.
func (t *Text) Welcome(publications, clients int) {
	line := strings.Repeat("=", 60)
	t.printf("%s\n", line)
	t.printf("  WELCOME TO SHHH LIBRARY MANAGEMENT SYSTEM\n")
	t.printf("  (Stocking Hardy Harmonious Hard copies)\n")
	t.printf("%s\n", line)
	t.printf("Library successfully initialized!\n")
	t.printf("Publications loaded: %d\n", publications)
	t.printf("Clients registered: %d\n", clients)
	t.printf("System ready for command processing.\n")
	t.printf("%s\n\n", line)
}

// Statistics prints session totals followed by client table statistics.
func (t *Text) Statistics(publications, clients, commands int, hash index.Stats) {
	t.Rule("SHHH LIBRARY SYSTEM STATISTICS", 50)
	t.printf("Total Publications: %d\n", publications)
	t.printf("Total Clients: %d\n", clients)
	t.printf("Commands Processed This Session: %d\n", commands)
	t.printf("\nClient Management Statistics:\n")
	t.printf("Hash Table Statistics:\n")
	t.printf("Total buckets: %d\n", hash.Buckets)
	t.printf("Used buckets: %d\n", hash.UsedBuckets)
	t.printf("Total clients: %d\n", hash.Entries)
	t.printf("Max chain length: %d\n", hash.MaxChain)
	if hash.Entries > 0 {
		t.printf("Load factor: %g\n", hash.LoadFactor)
	}
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

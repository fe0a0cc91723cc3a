package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"shelf/internal/client"
	"shelf/internal/publication"
)

// Files reads the line-oriented data files.
type Files struct {
	PublicationsPath string
	ClientsPath      string
}

func (f Files) Publications(ctx context.Context) (Batch[*publication.Record], error) {
	return readFile(f.PublicationsPath, ReadPublications)
}

func (f Files) Clients(ctx context.Context) (Batch[*client.Client], error) {
	return readFile(f.ClientsPath, ReadClients)
}

func readFile[T any](path string, read func(io.Reader) (Batch[T], error)) (Batch[T], error) {
	file, err := os.Open(path)
	if err != nil {
		return Batch[T]{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return read(file)
}

// ReadPublications parses one publication per non-empty line.
func ReadPublications(r io.Reader) (Batch[*publication.Record], error) {
	return readLines(r, publication.ParseRecord)
}

// ReadClients parses one client per non-empty line.
func ReadClients(r io.Reader) (Batch[*client.Client], error) {
	return readLines(r, client.Parse)
}

func readLines[T any](r io.Reader, parse func(string) (T, error)) (Batch[T], error) {
	var b Batch[T]
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		item, err := parse(line)
		if err != nil {
			b.Skipped = append(b.Skipped, fmt.Errorf("line %d: %w", n, err))
			continue
		}
		b.Items = append(b.Items, item)
	}
	if err := sc.Err(); err != nil {
		return b, fmt.Errorf("read line %d: %w", n+1, err)
	}
	return b, nil
}

package client

import (
	"fmt"
	"strconv"
	"strings"

	"shelf/internal/apperr"
)

// Client ids are four-digit numbers.
const (
	MinID = 1000
	MaxID = 9999
)

// Client is a registered library patron. Clients are identified by ID alone.
type Client struct {
	ID        int    `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name,omitempty"`
}

// ValidID reports whether id has the four-digit client id shape.
func ValidID(id int) bool {
	return id >= MinID && id <= MaxID
}

// FullName returns "First Last", or just the last name when there is no
// first name.
func (c *Client) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}

// Parse reads a client line of the form "id lastName [firstName]".
func Parse(line string) (*Client, error) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return nil, fmt.Errorf("%w: expected \"id lastName [firstName]\" in %q", apperr.ErrInvalidInput, line)
	}
	id, err := strconv.Atoi(f[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad client id %q", apperr.ErrInvalidInput, f[0])
	}
	c := &Client{ID: id, LastName: f[1]}
	if len(f) > 2 {
		c.FirstName = f[2]
	}
	return c, nil
}

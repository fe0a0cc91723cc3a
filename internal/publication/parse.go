package publication

import (
	"fmt"
	"strconv"
	"strings"

	"shelf/internal/apperr"
)

// ParseRecord reads one catalog line:
//
//	F author, title, year
//	C author, title, year
//	P title, month year
func ParseRecord(line string) (*Record, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("%w: empty publication line", apperr.ErrInvalidInput)
	}
	kind := Category(line[0])
	data := strings.TrimSpace(line[1:])

	switch kind {
	case Fiction, Children:
		fields := splitCommas(data, 3)
		if len(fields) < 3 || fields[0] == "" || fields[1] == "" {
			return nil, fmt.Errorf("%w: expected \"author, title, year\" in %q", apperr.ErrInvalidInput, line)
		}
		year, err := leadingInt(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: bad year in %q", apperr.ErrInvalidInput, line)
		}
		if kind == Fiction {
			return NewFiction(fields[0], fields[1], year), nil
		}
		return NewChildren(fields[0], fields[1], year), nil
	case Periodical:
		fields := splitCommas(data, 2)
		if len(fields) < 2 || fields[0] == "" {
			return nil, fmt.Errorf("%w: expected \"title, month year\" in %q", apperr.ErrInvalidInput, line)
		}
		month, year, err := monthYear(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad month/year in %q", apperr.ErrInvalidInput, line)
		}
		return NewPeriodical(fields[0], month, year), nil
	default:
		return nil, fmt.Errorf("%w: '%c' is not a valid publication type", apperr.ErrInvalidInput, line[0])
	}
}

// LookupKey builds a search key for category c from the publication fields
// of a checkout or return line. Those fields are laid out differently from
// catalog lines:
//
//	F author, title,
//	C title, author,
//	P year month title,
//
// Fields that do not take part in the category's ordering are left zero.
func LookupKey(c Category, fields string) (*Record, error) {
	switch c {
	case Fiction:
		f := splitCommas(fields, 3)
		if len(f) < 2 || f[0] == "" || f[1] == "" {
			return nil, fmt.Errorf("%w: expected \"author, title,\" but got %q", apperr.ErrInvalidInput, fields)
		}
		return &Record{Kind: Fiction, Author: f[0], Title: f[1]}, nil
	case Children:
		f := splitCommas(fields, 3)
		if len(f) < 2 || f[0] == "" || f[1] == "" {
			return nil, fmt.Errorf("%w: expected \"title, author,\" but got %q", apperr.ErrInvalidInput, fields)
		}
		return &Record{Kind: Children, Title: f[0], Author: f[1]}, nil
	case Periodical:
		parts := strings.Fields(fields)
		if len(parts) < 3 {
			return nil, fmt.Errorf("%w: expected \"year month title,\" but got %q", apperr.ErrInvalidInput, fields)
		}
		year, yErr := strconv.Atoi(parts[0])
		month, mErr := strconv.Atoi(parts[1])
		if yErr != nil || mErr != nil {
			return nil, fmt.Errorf("%w: bad year/month in %q", apperr.ErrInvalidInput, fields)
		}
		title := periodicalTitle(fields)
		if title == "" {
			return nil, fmt.Errorf("%w: missing title in %q", apperr.ErrInvalidInput, fields)
		}
		return &Record{Kind: Periodical, Title: title, Month: month, Year: year}, nil
	default:
		return nil, fmt.Errorf("%w: '%s' is not a valid publication type", apperr.ErrInvalidInput, c)
	}
}

// TitleOf extracts the title from checkout/return fields for messages. It
// returns "" when the fields are too short to hold one.
func TitleOf(c Category, fields string) string {
	switch c {
	case Fiction:
		if f := splitCommas(fields, 3); len(f) >= 2 {
			return f[1]
		}
	case Children:
		if f := splitCommas(fields, 2); len(f) >= 1 {
			return f[0]
		}
	case Periodical:
		return periodicalTitle(fields)
	}
	return ""
}

// periodicalTitle skips the year and month tokens and reads up to the comma.
func periodicalTitle(fields string) string {
	rest := strings.TrimSpace(fields)
	for range 2 {
		i := strings.IndexFunc(rest, isSpace)
		if i < 0 {
			return ""
		}
		rest = strings.TrimSpace(rest[i:])
	}
	title, _, _ := strings.Cut(rest, ",")
	return strings.TrimSpace(title)
}

func splitCommas(s string, n int) []string {
	parts := strings.SplitN(s, ",", n)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func leadingInt(s string) (int, error) {
	f := strings.Fields(s)
	if len(f) == 0 {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(f[0])
}

func monthYear(s string) (int, int, error) {
	f := strings.Fields(s)
	if len(f) < 2 {
		return 0, 0, strconv.ErrSyntax
	}
	month, err := strconv.Atoi(f[0])
	if err != nil {
		return 0, 0, err
	}
	year, err := strconv.Atoi(f[1])
	if err != nil {
		return 0, 0, err
	}
	return month, year, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

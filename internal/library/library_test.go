package library

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"shelf/internal/apperr"
	"shelf/internal/client"
	"shelf/internal/platform/logging"
	"shelf/internal/publication"
	"shelf/internal/report"
	"shelf/internal/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Publications(ctx context.Context) (source.Batch[*publication.Record], error) {
	args := m.Called(ctx)
	return args.Get(0).(source.Batch[*publication.Record]), args.Error(1)
}

func (m *mockSource) Clients(ctx context.Context) (source.Batch[*client.Client], error) {
	args := m.Called(ctx)
	return args.Get(0).(source.Batch[*client.Client]), args.Error(1)
}

func newSource(pubs []*publication.Record, clients []*client.Client) *mockSource {
	src := new(mockSource)
	src.On("Publications", mock.Anything).Return(source.Batch[*publication.Record]{Items: pubs}, nil)
	src.On("Clients", mock.Anything).Return(source.Batch[*client.Client]{Items: clients}, nil)
	return src
}

func setup(t *testing.T) (*Library, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	lib := New(report.NewText(&out), logging.Discard(), 0)
	src := newSource(
		[]*publication.Record{
			publication.NewFiction("Asimov", "Foundation", 1951),
			publication.NewFiction("Asimov", "Foundation", 1951),
			publication.NewChildren("Dr. Seuss", "Green Eggs and Ham", 1960),
			publication.NewPeriodical("Time", 1, 2020),
		},
		[]*client.Client{
			{ID: 1000, LastName: "Lee", FirstName: "Ann"},
			{ID: 1000, LastName: "Dup"},
			{ID: 2000, LastName: "Prince"},
		},
	)
	require.NoError(t, lib.Initialize(context.Background(), src))
	src.AssertExpectations(t)
	return lib, &out
}

func TestInitialize(t *testing.T) {
	lib, out := setup(t)

	assert.True(t, lib.Ready())
	assert.Equal(t, Totals{Publications: 3, Clients: 2}, lib.Totals(), "duplicates are skipped")
	assert.Contains(t, out.String(), "Library successfully initialized!")
	assert.Contains(t, out.String(), "Publications loaded: 3\n")
}

func TestInitialize_Empty(t *testing.T) {
	lib := New(report.NewText(&bytes.Buffer{}), logging.Discard(), 0)

	err := lib.Initialize(context.Background(), newSource(nil, []*client.Client{{ID: 1000, LastName: "Lee"}}))
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.False(t, lib.Ready())

	err = lib.Initialize(context.Background(), newSource([]*publication.Record{publication.NewPeriodical("Time", 1, 2020)}, nil))
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.False(t, lib.Ready())
}

func TestInitialize_SourceError(t *testing.T) {
	lib := New(report.NewText(&bytes.Buffer{}), logging.Discard(), 0)
	boom := errors.New("connection refused")

	src := new(mockSource)
	src.On("Publications", mock.Anything).Return(source.Batch[*publication.Record]{}, boom)

	err := lib.Initialize(context.Background(), src)
	assert.ErrorIs(t, err, boom)
	src.AssertNotCalled(t, "Clients", mock.Anything)
}

func TestNotReady(t *testing.T) {
	lib := New(report.NewText(&bytes.Buffer{}), logging.Discard(), 0)

	_, err := lib.ProcessCommands(strings.NewReader("D\n"))
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.ErrorIs(t, lib.DisplayCatalog(), apperr.ErrInvalidInput)
	assert.ErrorIs(t, lib.DisplayClients(), apperr.ErrInvalidInput)
	assert.ErrorIs(t, lib.DisplayStatistics(), apperr.ErrInvalidInput)
	_, err = lib.Stats()
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestProcessCommands(t *testing.T) {
	lib, out := setup(t)
	out.Reset()

	sum, err := lib.ProcessCommands(strings.NewReader(strings.Join([]string{
		"C 1000 F H Asimov, Foundation,",
		"",
		"   ",
		"C 2000 P H 2020 1 Time,",
		"C 1000 P H 2020 1 Time,",
		"X 1000",
		"H 2000",
	}, "\n")))
	require.NoError(t, err)

	assert.NotEmpty(t, sum.RunID)
	assert.Equal(t, 5, sum.Processed)
	assert.Equal(t, 3, sum.Succeeded)
	assert.Equal(t, 2, sum.Failed)
	assert.Equal(t, 3, lib.Totals().Commands)

	text := out.String()
	assert.Contains(t, text, "ERROR: Ann Lee tried to check out 'Time' - no copies available.\n")
	assert.Contains(t, text, "ERROR: 'X' is not a valid command type.\n")
	assert.Contains(t, text, "Transaction history for client 2000 Prince\n")

	st, err := lib.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Categories["F"].Records)
	assert.Equal(t, 2, st.Hash.Entries)

	sum2, err := lib.ProcessCommands(strings.NewReader("R 1000 F H Asimov, Foundation,\n"))
	require.NoError(t, err)
	assert.NotEqual(t, sum.RunID, sum2.RunID)
	assert.Equal(t, 4, lib.Totals().Commands, "totals accumulate across batches")
}

func TestDisplay(t *testing.T) {
	lib, out := setup(t)
	out.Reset()

	require.NoError(t, lib.DisplayCatalog())
	text := out.String()
	assert.Contains(t, text, "SHHH LIBRARY COMPLETE CATALOG")
	fiction := strings.Index(text, "FICTION PUBLICATIONS")
	children := strings.Index(text, "CHILDREN'S PUBLICATIONS")
	periodical := strings.Index(text, "PERIODICAL PUBLICATIONS")
	assert.True(t, fiction < children && children < periodical)

	out.Reset()
	require.NoError(t, lib.DisplayClients())
	assert.Contains(t, out.String(), "1000 Lee, Ann\n")
	assert.Contains(t, out.String(), "2000 Prince\n")

	out.Reset()
	require.NoError(t, lib.DisplayStatistics())
	assert.Contains(t, out.String(), "Total Publications: 3\n")
	assert.Contains(t, out.String(), "Total Clients: 2\n")
}

func TestInitialize_Resets(t *testing.T) {
	lib, _ := setup(t)
	_, err := lib.ProcessCommands(strings.NewReader("D\n"))
	require.NoError(t, err)

	src := newSource(
		[]*publication.Record{publication.NewPeriodical("Time", 1, 2020)},
		[]*client.Client{{ID: 3000, LastName: "Ng"}},
	)
	require.NoError(t, lib.Initialize(context.Background(), src))
	assert.Equal(t, Totals{Publications: 1, Clients: 1}, lib.Totals())

	st, err := lib.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, st.Categories["F"].Records)
}

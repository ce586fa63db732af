package gsheets

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school_admin_backend/apperr"
)

// fakeRangeStore keeps each tab as a plain grid, mimicking the remote's
// behavior of overwriting from the range anchor.
type fakeRangeStore struct {
	tabs map[string][][]string
	err  error
}

func newFakeRangeStore() *fakeRangeStore {
	return &fakeRangeStore{tabs: make(map[string][][]string)}
}

func tabOf(rng string) string {
	return strings.SplitN(rng, "!", 2)[0]
}

func (f *fakeRangeStore) GetRange(_ context.Context, rng string) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	src := f.tabs[tabOf(rng)]
	out := make([][]string, len(src))
	for i, row := range src {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *fakeRangeStore) AppendRow(_ context.Context, rng string, row []string) error {
	if f.err != nil {
		return f.err
	}
	tab := tabOf(rng)
	f.tabs[tab] = append(f.tabs[tab], append([]string(nil), row...))
	return nil
}

func (f *fakeRangeStore) UpdateRange(_ context.Context, rng string, rows [][]string) error {
	if f.err != nil {
		return f.err
	}
	tab := tabOf(rng)
	existing := f.tabs[tab]
	for i, row := range rows {
		copied := append([]string(nil), row...)
		if i < len(existing) {
			existing[i] = copied
		} else {
			existing = append(existing, copied)
		}
	}
	f.tabs[tab] = existing
	return nil
}

func (f *fakeRangeStore) ClearRange(_ context.Context, rng string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.tabs, tabOf(rng))
	return nil
}

func TestReadRowsSplitsHeadersAndPadsRows(t *testing.T) {
	fake := newFakeRangeStore()
	fake.tabs["Class1"] = [][]string{
		{"RollNumber", "StudentName", "ParentEmail", "Section", "2024-01-01"},
		{"S0001", "Alice", "a@x.com", "A", "Present"},
		{"S0002", "Bob"}, // short row: absent cells are empty, not errors
	}
	adapter := NewAdapter(fake)

	data, err := adapter.ReadRows(context.Background(), "Class1")
	require.NoError(t, err)
	assert.Equal(t, []string{"RollNumber", "StudentName", "ParentEmail", "Section", "2024-01-01"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"S0002", "Bob", "", "", ""}, data.Rows[1])
}

func TestReadRowsEmptyTab(t *testing.T) {
	adapter := NewAdapter(newFakeRangeStore())

	data, err := adapter.ReadRows(context.Background(), "Class1")
	require.NoError(t, err)
	assert.Empty(t, data.Headers)
	assert.Empty(t, data.Rows)
}

func TestReadRowsWrapsRemoteFailure(t *testing.T) {
	fake := newFakeRangeStore()
	fake.err = errors.New("quota exceeded")
	adapter := NewAdapter(fake)

	_, err := adapter.ReadRows(context.Background(), "Class1")
	assert.True(t, errors.Is(err, apperr.ErrRemote))
	assert.Contains(t, err.Error(), "Class1")
}

func TestReplaceRangeWritesHeadersAndRows(t *testing.T) {
	fake := newFakeRangeStore()
	adapter := NewAdapter(fake)

	err := adapter.ReplaceRange(context.Background(), "Class1", TableData{
		Headers: []string{"RollNumber", "StudentName", "ParentEmail", "Section"},
		Rows:    [][]string{{"S0001", "Alice", "a@x.com", "A"}},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"RollNumber", "StudentName", "ParentEmail", "Section"},
		{"S0001", "Alice", "a@x.com", "A"},
	}, fake.tabs["Class1"])
}

func TestFindRowByKey(t *testing.T) {
	rows := [][]string{
		{"S0001", "Alice"},
		{" S0002 ", "Bob"},
		{"S00010", "Carol"},
	}

	t.Run("exact match", func(t *testing.T) {
		i, err := FindRowByKey(rows, 0, "S0001")
		require.NoError(t, err)
		assert.Equal(t, 0, i)
	})

	t.Run("trims cell whitespace", func(t *testing.T) {
		i, err := FindRowByKey(rows, 0, "S0002")
		require.NoError(t, err)
		assert.Equal(t, 1, i)
	})

	t.Run("trims key whitespace", func(t *testing.T) {
		i, err := FindRowByKey(rows, 0, " S0001 ")
		require.NoError(t, err)
		assert.Equal(t, 0, i)
	})

	t.Run("no prefix matching", func(t *testing.T) {
		_, err := FindRowByKey([][]string{{"S00010", "Carol"}}, 0, "S0001")
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("first match wins", func(t *testing.T) {
		dup := [][]string{{"S0001", "Alice"}, {"S0001", "Shadow"}}
		i, err := FindRowByKey(dup, 0, "S0001")
		require.NoError(t, err)
		assert.Equal(t, 0, i)
	})
}

func TestStudentCellsRoundTrip(t *testing.T) {
	s := DecodeStudent([]string{"S0001", "Alice", "a@x.com", "A", "Present", "Absent"})
	assert.Equal(t, StudentCells{RollNumber: "S0001", StudentName: "Alice", ParentEmail: "a@x.com", Section: "A"}, s)
	assert.Equal(t, []string{"S0001", "Alice", "a@x.com", "A"}, s.Encode())

	short := DecodeStudent([]string{"S0002"})
	assert.Equal(t, "S0002", short.RollNumber)
	assert.Equal(t, "", short.Section)
}

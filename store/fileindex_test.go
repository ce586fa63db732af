package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileIndexHoldsOneRecordPerKey(t *testing.T) {
	ix := NewFileIndex()
	key := FileKey{Category: "general-timetable", ClassID: "Class1"}

	_, ok := ix.Get(key)
	assert.False(t, ok)

	ix.Set(key, FileRecord{FileID: "f1", URL: "u1", DisplayName: "tt.pdf"})
	ix.Set(key, FileRecord{FileID: "f2", URL: "u2", DisplayName: "tt2.pdf"})

	rec, ok := ix.Get(key)
	require.True(t, ok)
	assert.Equal(t, "f2", rec.FileID)
}

func TestFileIndexKeysAreIndependent(t *testing.T) {
	ix := NewFileIndex()
	general := FileKey{Category: "general-timetable", ClassID: "Class1"}
	exam := FileKey{Category: "exam-timetable", ClassID: "Class1"}

	ix.Set(general, FileRecord{FileID: "g"})
	ix.Set(exam, FileRecord{FileID: "e"})

	rec, ok := ix.Get(general)
	require.True(t, ok)
	assert.Equal(t, "g", rec.FileID)

	ix.Clear(general)
	_, ok = ix.Get(general)
	assert.False(t, ok)
	_, ok = ix.Get(exam)
	assert.True(t, ok)
}

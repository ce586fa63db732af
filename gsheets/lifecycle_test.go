package gsheets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school_admin_backend/apperr"
)

type fakeTabAdmin struct {
	tabs    []Tab
	added   []string
	deleted []int64
	addErr  error
}

func (f *fakeTabAdmin) AddTab(_ context.Context, title string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, title)
	return nil
}

func (f *fakeTabAdmin) DeleteTab(_ context.Context, sheetID int64) error {
	f.deleted = append(f.deleted, sheetID)
	return nil
}

func (f *fakeTabAdmin) ListTabs(_ context.Context) ([]Tab, error) {
	return f.tabs, nil
}

func TestCreateTab(t *testing.T) {
	admin := &fakeTabAdmin{}
	m := NewLifecycle(admin)

	require.NoError(t, m.CreateTab(context.Background(), "Class3"))
	assert.Equal(t, []string{"Class3"}, admin.added)
}

func TestCreateTabSurfacesRemoteRejection(t *testing.T) {
	admin := &fakeTabAdmin{addErr: errors.New("a sheet with the name already exists")}
	m := NewLifecycle(admin)

	err := m.CreateTab(context.Background(), "Class3")
	assert.True(t, errors.Is(err, apperr.ErrRemote))
}

func TestDeleteTabResolvesTitleToID(t *testing.T) {
	admin := &fakeTabAdmin{tabs: []Tab{
		{Title: "Class1", SheetID: 101},
		{Title: "Class2", SheetID: 202},
	}}
	m := NewLifecycle(admin)

	require.NoError(t, m.DeleteTab(context.Background(), "Class2"))
	assert.Equal(t, []int64{202}, admin.deleted)
}

func TestDeleteTabUnknownTitle(t *testing.T) {
	admin := &fakeTabAdmin{tabs: []Tab{{Title: "Class1", SheetID: 101}}}
	m := NewLifecycle(admin)

	err := m.DeleteTab(context.Background(), "Class9")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Empty(t, admin.deleted)
}

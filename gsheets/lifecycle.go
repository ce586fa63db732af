package gsheets

import (
	"context"
	"fmt"

	"school_admin_backend/apperr"
)

// TabAdmin is the tab-management capability set. Client implements it.
type TabAdmin interface {
	AddTab(ctx context.Context, title string) error
	DeleteTab(ctx context.Context, sheetID int64) error
	ListTabs(ctx context.Context) ([]Tab, error)
}

// Lifecycle creates and deletes named tabs, resolving titles to the internal
// sheet ids the delete API requires.
type Lifecycle struct {
	admin TabAdmin
}

func NewLifecycle(admin TabAdmin) *Lifecycle {
	return &Lifecycle{admin: admin}
}

// CreateTab adds a tab named title. The remote API rejects duplicate titles;
// that error is surfaced as a remote failure, not handled specially.
func (m *Lifecycle) CreateTab(ctx context.Context, title string) error {
	if err := m.admin.AddTab(ctx, title); err != nil {
		return apperr.Remote(fmt.Sprintf("create tab %s", title), err)
	}
	return nil
}

// DeleteTab resolves title to its internal id via the metadata listing, then
// deletes it. Missing titles are NotFound.
func (m *Lifecycle) DeleteTab(ctx context.Context, title string) error {
	tabs, err := m.admin.ListTabs(ctx)
	if err != nil {
		return apperr.Remote("list tabs", err)
	}
	for _, tab := range tabs {
		if tab.Title == title {
			if err := m.admin.DeleteTab(ctx, tab.SheetID); err != nil {
				return apperr.Remote(fmt.Sprintf("delete tab %s", title), err)
			}
			return nil
		}
	}
	return apperr.NotFound("no tab titled %q", title)
}

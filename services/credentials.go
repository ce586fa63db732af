package services

import (
	"context"

	"school_admin_backend/apperr"
	"school_admin_backend/gsheets"
	"school_admin_backend/models"
	"school_admin_backend/store"
)

// CredentialStore reads and rewrites the credential tab. Rows are plaintext
// [username, password] pairs; comparison is exact-match row matching, taken
// as a given rather than redesigned here.
type CredentialStore struct {
	tables *gsheets.Adapter
	locks  *store.KeyedMutex
	tab    string
}

func NewCredentialStore(tables *gsheets.Adapter, locks *store.KeyedMutex, tab string) *CredentialStore {
	return &CredentialStore{tables: tables, locks: locks, tab: tab}
}

// ListUsers returns every credential row, untransformed.
func (s *CredentialStore) ListUsers(ctx context.Context) ([]models.UserCredential, error) {
	data, err := s.readRows(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]models.UserCredential, 0, len(data.Rows))
	for _, row := range data.Rows {
		users = append(users, models.UserCredential{
			Username: cell(row, 0),
			Password: cell(row, 1),
		})
	}
	return users, nil
}

// Authenticate checks username/password against the credential rows.
func (s *CredentialStore) Authenticate(ctx context.Context, username, password string) error {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return nil
		}
	}
	return apperr.NotFound("no matching credentials for %s", username)
}

// UpdateUser replaces both fields of the first row matching the current
// username/password pair and writes the whole region back. When no row
// matches, the write-back is a byte-identical no-op and the call still
// succeeds; surfacing that as an error is an open product decision.
func (s *CredentialStore) UpdateUser(ctx context.Context, currentUser, currentPass, newUser, newPass string) error {
	unlock := s.locks.Lock(s.tab)
	defer unlock()

	data, err := s.readRows(ctx)
	if err != nil {
		return err
	}
	for _, row := range data.Rows {
		if cell(row, 0) == currentUser && cell(row, 1) == currentPass {
			row[0] = newUser
			row[1] = newPass
			break
		}
	}
	return s.tables.ReplaceRange(ctx, s.tab, data)
}

func (s *CredentialStore) readRows(ctx context.Context) (gsheets.TableData, error) {
	var data gsheets.TableData
	err := withRetry(ctx, func() error {
		var err error
		data, err = s.tables.ReadRows(ctx, s.tab)
		return err
	})
	return data, err
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

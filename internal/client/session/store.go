package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/facultyip/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/facultyip/internal/dbx"
)

// Storage keys. They are written and cleared together.
const (
	KeyToken    = "token"
	KeyUserInfo = "userInfo"
)

// Store persists the credential and the serialized identity in the
// metadata table.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

// Load returns the raw stored entries. A missing entry is nil.
func (s *Store) Load(ctx context.Context) (token, userInfo []byte, err error) {
	repo := s.repo(s.db)

	token, err = repo.Get(ctx, KeyToken)
	if err != nil {
		return nil, nil, err
	}
	userInfo, err = repo.Get(ctx, KeyUserInfo)
	if err != nil {
		return nil, nil, err
	}
	return token, userInfo, nil
}

// Token returns the stored credential, "" when there is none.
func (s *Store) Token(ctx context.Context) (string, error) {
	b, err := s.repo(s.db).Get(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Save writes both entries in one transaction.
func (s *Store) Save(ctx context.Context, token string, userInfo []byte) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUserInfo, userInfo)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes both entries. Other metadata is left alone.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Delete(ctx, KeyToken, KeyUserInfo)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

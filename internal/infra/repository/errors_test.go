package repository

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"testing"

	repo "elegance/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, repo.ErrNotFound},
		{"wrapped record not found", fmt.Errorf("find: %w", gorm.ErrRecordNotFound), repo.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, repo.ErrConflict},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, repo.ErrConflict},
		{"connection exception", &pgconn.PgError{Code: "08000"}, repo.ErrConnectionLost},
		{"connection failure", &pgconn.PgError{Code: "08006"}, repo.ErrConnectionLost},
		{"eof", io.EOF, repo.ErrConnectionLost},
		{"unexpected eof", io.ErrUnexpectedEOF, repo.ErrConnectionLost},
		{"net error", &net.OpError{Op: "read", Err: os.ErrDeadlineExceeded}, repo.ErrConnectionLost},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mapError(tc.in))
		})
	}
}

// 分類できないエラーはそのまま返す
func TestMapError_UnknownErrorPassesThrough(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, err, mapError(err))

	pgErr := &pgconn.PgError{Code: "42P01"}
	assert.Equal(t, error(pgErr), mapError(pgErr))
}

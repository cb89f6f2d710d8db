package repository

import (
	"errors"
	"io"
	"net"

	repo "elegance/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// gorm/pgxのエラーをrepository層のsentinelに寄せる。
// usecaseはpgのエラーコードを知らなくて済む。
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation:
			return repo.ErrConflict
		}
		// Class 08 = Connection Exception
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
			return repo.ErrConnectionLost
		}
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return repo.ErrConnectionLost
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return repo.ErrConnectionLost
	}

	return err
}

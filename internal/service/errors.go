// File: internal/service/errors.go
package service

import (
	"errors"
	"strings"

	"project-manager/internal/message"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// 錯誤種類，handler 依此決定 HTTP 狀態碼
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error 帶有錯誤種類與訊息表的 key
type Error struct {
	Kind error
	Key  message.Key
}

func (e *Error) Error() string { return e.Kind.Error() + ": " + string(e.Key) }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, key message.Key) error {
	return &Error{Kind: kind, Key: key}
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"

	eventDateRangeConstraint = "events_date_range"
)

// translate 把 store 回傳的 driver 錯誤轉為領域錯誤，其他錯誤原樣回傳
func translate(err error, notFound, conflict message.Key) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return newError(ErrNotFound, notFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return newError(ErrConflict, conflict)
		case pgForeignKeyViolation:
			if strings.Contains(pgErr.ConstraintName, "user_id") || strings.Contains(pgErr.ConstraintName, "created_by") {
				return newError(ErrNotFound, message.UserNotFound)
			}
			return newError(ErrNotFound, notFound)
		case pgCheckViolation:
			if pgErr.ConstraintName == eventDateRangeConstraint {
				return newError(ErrBadRequest, message.InvalidDateRange)
			}
			return newError(ErrBadRequest, message.InvalidBody)
		}
	}
	return err
}

package service

import (
	"errors"
	"testing"

	"project-manager/internal/message"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	require.NoError(t, translate(nil, message.NotFound, message.EmailTaken))

	err := translate(pgx.ErrNoRows, message.EventNotFound, message.AlreadyAttending)
	requireKind(t, err, ErrNotFound, message.EventNotFound)
	require.Equal(t, "not found: event_not_found", err.Error())

	err = translate(&pgconn.PgError{Code: "23505"}, message.EventNotFound, message.AlreadyAttending)
	requireKind(t, err, ErrConflict, message.AlreadyAttending)

	err = translate(&pgconn.PgError{Code: "23503", ConstraintName: "event_attendees_user_id_fkey"}, message.EventNotFound, message.AlreadyAttending)
	requireKind(t, err, ErrNotFound, message.UserNotFound)

	err = translate(&pgconn.PgError{Code: "23503", ConstraintName: "event_attendees_event_id_fkey"}, message.EventNotFound, message.AlreadyAttending)
	requireKind(t, err, ErrNotFound, message.EventNotFound)

	err = translate(&pgconn.PgError{Code: "23514", ConstraintName: "events_date_range"}, message.EventNotFound, message.Internal)
	requireKind(t, err, ErrBadRequest, message.InvalidDateRange)

	err = translate(&pgconn.PgError{Code: "23514", ConstraintName: "users_role_check"}, message.UserNotFound, message.EmailTaken)
	requireKind(t, err, ErrBadRequest, message.InvalidBody)

	other := errors.New("boom")
	require.Same(t, other, translate(other, message.NotFound, message.EmailTaken))

	pgOther := &pgconn.PgError{Code: "40001"}
	require.Same(t, pgOther, translate(pgOther, message.NotFound, message.EmailTaken))
}

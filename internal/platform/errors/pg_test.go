package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestFromPostgresMapping(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23503", ErrorCodeInvalidArgument},
		{"23502", ErrorCodeValidation},
		{"57P03", ErrorCodeUnavailable},
		{"42P01", ErrorCodeDB},
	}
	for _, c := range cases {
		err := FromPostgres(fmt.Errorf("exec: %w", &pgconn.PgError{Code: c.code}), "insert failed")
		if CodeOf(err) != c.want {
			t.Fatalf("sqlstate %s -> %v, want %v", c.code, CodeOf(err), c.want)
		}
	}
}

func TestFromPostgresAttachesColumn(t *testing.T) {
	err := FromPostgres(&pgconn.PgError{Code: "23502", ColumnName: "repository"}, "insert failed")
	e, ok := As(err)
	if !ok || e.Field() != "repository" {
		t.Fatalf("expected field repository, got %+v", e)
	}
}

func TestFromPostgresNonPg(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("nil must stay nil")
	}
	if got := CodeOf(FromPostgres(stderrs.New("eof"), "x")); got != ErrorCodeDB {
		t.Fatalf("plain error -> %v", got)
	}
	if got := CodeOf(FromPostgres(context.DeadlineExceeded, "x")); got != ErrorCodeUnavailable {
		t.Fatalf("deadline -> %v", got)
	}
}

func TestPredicates(t *testing.T) {
	if !IsDuplicateKey(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("IsDuplicateKey false")
	}
	if !IsForeignKeyViolation(fmt.Errorf("w: %w", &pgconn.PgError{Code: "23503"})) {
		t.Fatalf("IsForeignKeyViolation false through wrap")
	}
	if !IsRetryable(&pgconn.PgError{Code: "40001"}) {
		t.Fatalf("serialization failure should retry")
	}
	if IsRetryable(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("unique violation should not retry")
	}
	if !IsRetryable(stderrs.New("ERROR: deadlock detected")) {
		t.Fatalf("text fallback should retry")
	}
	if IsRetryable(context.Canceled) {
		t.Fatalf("cancel should not retry")
	}
}

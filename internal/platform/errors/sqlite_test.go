package errors

import (
	stderrs "errors"
	"testing"

	"github.com/mattn/go-sqlite3"
)

func TestSQLiteErrorCode(t *testing.T) {
	cases := []struct {
		name string
		err  sqlite3.Error
		want ErrorCode
	}{
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, ErrorCodeDuplicateKey},
		{"not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, ErrorCodeValidation},
		{"fk", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, ErrorCodeInvalidArgument},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ErrorCodeDB},
		{"readonly", sqlite3.Error{Code: sqlite3.ErrReadonly}, ErrorCodeUnavailable},
		{"other", sqlite3.Error{Code: sqlite3.ErrError}, ErrorCodeDB},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := SQLiteErrorCode(tc.err)
			if !ok || got != tc.want {
				t.Fatalf("SQLiteErrorCode = %v/%v, want %v", got, ok, tc.want)
			}
		})
	}
	if _, ok := SQLiteErrorCode(stderrs.New("x")); ok {
		t.Fatal("non-sqlite error should be !ok")
	}
}

func TestFromSQLite(t *testing.T) {
	if FromSQLite(nil, "x") != nil {
		t.Fatal("nil passthrough")
	}
	err := FromSQLite(sqlite3.Error{Code: sqlite3.ErrBusy}, "insert")
	if !Retryable(err) || !IsSQLiteBusy(err) {
		t.Fatal("busy should be retryable")
	}
	if CodeOf(FromDB(sqlite3.Error{Code: sqlite3.ErrReadonly}, "insert")) != ErrorCodeUnavailable {
		t.Fatal("FromDB should route sqlite errors")
	}
}

func TestSQLiteColumn(t *testing.T) {
	cases := map[string]string{
		"NOT NULL constraint failed: personne_convertie.nom":                     "nom",
		"UNIQUE constraint failed: personne_convertie.nom, personne_convertie.x": "nom",
		"database is locked": "",
	}
	for in, want := range cases {
		if got := sqliteColumn(stderrs.New(in)); got != want {
			t.Fatalf("sqliteColumn(%q) = %q, want %q", in, got, want)
		}
	}
}

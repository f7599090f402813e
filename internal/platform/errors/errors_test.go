package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeInvalidArgument, http.StatusBadRequest},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorBasics(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q", nilErr.Error())
	}

	src := stderrs.New("disk I/O error")
	e := Wrapf(src, ErrorCodeDB, "lecture %s", "convertis")
	if e.Error() != "lecture convertis: disk I/O error" {
		t.Fatalf("Error() = %q", e.Error())
	}
	if stderrs.Unwrap(e) != src || CodeOf(e) != ErrorCodeDB {
		t.Fatal("Wrapf should keep cause and code")
	}
	if got, ok := As(fmt.Errorf("ctx: %w", e)); !ok || got.Message() != "lecture convertis" {
		t.Fatal("As should see through fmt wrapping")
	}
	if _, ok := As(src); ok {
		t.Fatal("As true for foreign error")
	}
	if Root(fmt.Errorf("a: %w", fmt.Errorf("b: %w", src))) != src {
		t.Fatal("Root should return deepest cause")
	}
}

func TestCopyOnWriteMutators(t *testing.T) {
	base := New(ErrorCodeValidation, "Le champ nom est requis")
	withField := WithField(base, "nom")
	withOp := WithOp(withField, "convertis.create")

	if e, _ := As(withOp); e.Field() != "nom" || e.Op() != "convertis.create" {
		t.Fatalf("mutators lost data: %+v", e)
	}
	if e, _ := As(base); e.Field() != "" || e.Op() != "" {
		t.Fatal("copy-on-write mutated original")
	}
	foreign := stderrs.New("x")
	if WithField(foreign, "nom") != foreign || WithOp(foreign, "op") != foreign {
		t.Fatal("foreign errors should pass through")
	}
}

func TestToWire_HidesInternalMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Wire
	}{
		{"validation keeps field", Validationf("prenom", "Le champ %s est requis", "prenom"),
			Wire{Message: "Le champ prenom est requis", Code: ErrorCodeValidation, Field: "prenom"}},
		{"not found", NotFoundf("Personne introuvable"),
			Wire{Message: "Personne introuvable", Code: ErrorCodeNotFound}},
		{"db hidden", Wrap(stderrs.New("no such table"), ErrorCodeDB, "select failed"),
			Wire{Message: MsgInternal, Code: ErrorCodeDB}},
		{"unavailable hidden", Unavailablef("pool closed"),
			Wire{Message: MsgUnavailable, Code: ErrorCodeUnavailable}},
		{"panic hidden", PanicErrf("boom"),
			Wire{Message: MsgInternal, Code: ErrorCodePanic}},
		{"foreign hidden", stderrs.New("secret"),
			Wire{Message: MsgInternal, Code: ErrorCodeUnknown}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WireFrom(tc.err); got != tc.want {
				t.Fatalf("WireFrom = %+v, want %+v", got, tc.want)
			}
		})
	}
	if WireFrom(nil) != (Wire{}) {
		t.Fatal("WireFrom(nil) should be zero")
	}
}

func TestSugarCodes(t *testing.T) {
	if !IsNotFound(ErrNotFound) ||
		!IsCode(InvalidArgf("x"), ErrorCodeInvalidArgument) ||
		!IsCode(JSONErrf("x"), ErrorCodeJSON) ||
		!IsCode(Internalf("x"), ErrorCodeUnknown) ||
		!IsCode(Unavailablef("x"), ErrorCodeUnavailable) {
		t.Fatal("sugar helpers code mismatch")
	}
	if HTTPStatus(ErrNotFound) != http.StatusNotFound {
		t.Fatal("HTTPStatus(ErrNotFound) should be 404")
	}
}

func TestFromDB(t *testing.T) {
	if FromDB(nil, "x") != nil {
		t.Fatal("FromDB(nil) should be nil")
	}
	already := NotFoundf("Personne introuvable")
	if FromDB(already, "x") != already {
		t.Fatal("FromDB should keep classified errors")
	}
	if CodeOf(FromDB(pg("23505", "", ""), "insert")) != ErrorCodeDuplicateKey {
		t.Fatal("FromDB should route pg errors")
	}
	if CodeOf(FromDB(stderrs.New("boom"), "insert")) != ErrorCodeDB {
		t.Fatal("FromDB default should be DB")
	}
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"convertis/internal/services/api/convertis/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func seeded(t *testing.T) string {
	t.Helper()
	t.Setenv("SERVICE_DB_DRIVER", "sqlite")
	db := filepath.Join(t.TempDir(), "cli.db")

	opts := &RootOptions{DB: db}
	s, err := opts.open(context.Background())
	require.NoError(t, err)
	defer s.Close()
	for _, in := range []domain.CreateInput{
		{Nom: "A", Prenom: "B", Commune: "Antsirabe", Fokontany: "F1", NomInviteur: "Rabe"},
		{Nom: "C", Prenom: "D", Commune: "Toliara", Fokontany: "F2"},
	} {
		_, err := s.svc.Create(context.Background(), in)
		require.NoError(t, err)
	}
	return db
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"schema", "list", "get", "delete", "unique-values"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("db"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("driver"))
}

func TestSchema_FreshFile(t *testing.T) {
	t.Setenv("SERVICE_DB_DRIVER", "")
	db := filepath.Join(t.TempDir(), "fresh.db")
	out, _, code := run(t, "--db", db, "schema")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"message":"schema ok","driver":"sqlite"}`, out)
}

func TestList(t *testing.T) {
	db := seeded(t)

	out, _, code := run(t, "--db", db, "list")
	require.Equal(t, 0, code)
	var all []domain.Convert
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Nom)

	out, _, code = run(t, "--db", db, "list", "--commune", "Toliara")
	require.Equal(t, 0, code)
	var sub []domain.Convert
	require.NoError(t, json.Unmarshal([]byte(out), &sub))
	require.Len(t, sub, 1)
	assert.Equal(t, "C", sub[0].Nom)

	_, stderr, code := run(t, "--db", db, "list", "--commune", "x", "--inviteur", "y")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "mutually exclusive")
}

func TestGetDeleteUniqueValues(t *testing.T) {
	db := seeded(t)

	out, _, code := run(t, "--db", db, "get", "1")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"nom_inviteur": "Rabe"`)

	out, _, code = run(t, "--db", db, "unique-values")
	require.Equal(t, 0, code)
	var uv domain.UniqueValues
	require.NoError(t, json.Unmarshal([]byte(out), &uv))
	assert.Equal(t, []string{"Antsirabe", "Toliara"}, uv.Communes)
	assert.Equal(t, []string{"Rabe"}, uv.Inviteurs)

	out, _, code = run(t, "--db", db, "delete", "1")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Personne supprimée")

	_, stderr, code := run(t, "--db", db, "get", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Personne introuvable")

	_, stderr, code = run(t, "--db", db, "get", "abc")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `invalid id "abc"`)
}

func TestInvalidDriver(t *testing.T) {
	_, stderr, code := run(t, "--driver", "mysql", "schema")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid driver")
}

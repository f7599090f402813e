package repo_test

import (
	"context"
	"testing"
	"time"

	perr "convertis/internal/platform/errors"
	"convertis/internal/platform/store"
	"convertis/internal/services/api/convertis/convertistest"
	"convertis/internal/services/api/convertis/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(nom, commune, inviteur, quartier string) repo.RowInsert {
	return repo.RowInsert{
		Nom:         nom,
		Prenom:      "Jean",
		Commune:     commune,
		Fokontany:   "Analakely",
		Quartier:    quartier,
		NomInviteur: inviteur,
		DateAjout:   time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	st := convertistest.SQLite(t)
	r := repo.NewSQL().Bind(st.SQL)

	id, err := r.Create(ctx, row("Rakoto", "Antananarivo", "", ""))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Rakoto", got.Nom)
	assert.Equal(t, "", got.Telephone)
	require.NotNil(t, got.DateAjout)
	assert.True(t, got.DateAjout.Equal(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)))

	require.NoError(t, r.Delete(ctx, id))
	_, err = r.GetByID(ctx, id)
	assert.True(t, perr.IsNotFound(err))
	assert.True(t, perr.IsNotFound(r.Delete(ctx, id)))
}

func TestRepo_NullOptionalColumnsReadAsEmpty(t *testing.T) {
	ctx := context.Background()
	st := convertistest.SQLite(t)
	_, err := st.SQL.Exec(ctx, `insert into personne_convertie (nom, prenom, commune, fokontany) values ($1, $2, $3, $4)`,
		"Rabe", "Paul", "Toamasina", "Ampasimazava")
	require.NoError(t, err)

	r := repo.NewSQL().Bind(st.SQL)
	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "", all[0].Quartier)
	assert.Equal(t, "", all[0].NomInviteur)
	assert.NotNil(t, all[0].DateAjout, "default current_timestamp should fill date_ajout")

	d, err := r.Distinct(ctx)
	require.NoError(t, err)
	assert.Empty(t, d.Quartiers)
	assert.Empty(t, d.Inviteurs)
}

func TestRepo_FiltersAndOrder(t *testing.T) {
	ctx := context.Background()
	st := convertistest.SQLite(t)
	r := repo.NewSQL().Bind(st.SQL)

	for _, in := range []repo.RowInsert{
		row("A", "Antsirabe", "Rabe", "Q1"),
		row("B", "Toliara", "", ""),
		row("C", "Antsirabe", "Rasoa", "Q1"),
		row("D", "antsirabe", "Rabe", "Q2"),
	} {
		_, err := r.Create(ctx, in)
		require.NoError(t, err)
	}

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	byCommune, err := r.ByCommune(ctx, "Antsirabe")
	require.NoError(t, err)
	require.Len(t, byCommune, 2)
	assert.Equal(t, "A", byCommune[0].Nom)
	assert.Equal(t, "C", byCommune[1].Nom)

	byInviteur, err := r.ByInviteur(ctx, "Rabe")
	require.NoError(t, err)
	assert.Len(t, byInviteur, 2)

	none, err := r.ByCommune(ctx, "Mahajanga")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	d, err := r.Distinct(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Antsirabe", "Toliara", "antsirabe"}, d.Communes)
	assert.Equal(t, []string{"Analakely"}, d.Fokontanys)
	assert.Equal(t, []string{"Q1", "Q2"}, d.Quartiers)
	assert.Equal(t, []string{"Rabe", "Rasoa"}, d.Inviteurs)
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	st := convertistest.SQLite(t)
	require.NoError(t, repo.EnsureSchema(ctx, st.SQL, st.Dialect))
	require.NoError(t, repo.EnsureSchema(ctx, st.SQL, st.Dialect))
}

func TestDDL(t *testing.T) {
	for _, d := range []store.Dialect{store.DialectSQLite, store.DialectPG} {
		stmts, err := repo.DDL(d)
		require.NoError(t, err)
		require.Len(t, stmts, 3, d)
		assert.Contains(t, stmts[0], "create table if not exists personne_convertie")
	}
}

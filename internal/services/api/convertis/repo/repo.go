// Package repo provides sql access for convertis over the store seam
package repo

import (
	"context"
	"time"

	"convertis/internal/modkit/repokit"
	"convertis/internal/platform/store"
)

// Repo defines the repository contract for convertis
type Repo interface {
	Create(ctx context.Context, in RowInsert) (int64, error)
	List(ctx context.Context) ([]RowConvert, error)
	GetByID(ctx context.Context, id int64) (RowConvert, error)
	Delete(ctx context.Context, id int64) error
	ByCommune(ctx context.Context, commune string) ([]RowConvert, error)
	ByInviteur(ctx context.Context, nom string) ([]RowConvert, error)
	Distinct(ctx context.Context) (RowDistinct, error)
}

// RowInsert is the column set written on create
type RowInsert struct {
	Nom         string
	Prenom      string
	Telephone   string
	Commune     string
	Fokontany   string
	Quartier    string
	NomInviteur string
	DateAjout   time.Time
}

// RowConvert is one personne_convertie row; NULL strings read back as ""
type RowConvert struct {
	ID          int64
	Nom         string
	Prenom      string
	Telephone   string
	Commune     string
	Fokontany   string
	Quartier    string
	NomInviteur string
	DateAjout   *time.Time
}

// RowDistinct holds the distinct value lists, each sorted ascending
type RowDistinct struct {
	Communes   []string
	Fokontanys []string
	Quartiers  []string
	Inviteurs  []string
}

type (
	// SQL implements the Repo interface over any store dialect
	SQL struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewSQL creates a new repository binder
func NewSQL() repokit.Binder[Repo] { return SQL{} }

// Bind binds a queryer to the Repo implementation
func (SQL) Bind(q repokit.Queryer) Repo { return &queries{q: repokit.RequireQueryer(q)} }

// date_ajout is selected bare so sqlite keeps the datetime decltype for scanning
const selectConvert = `
select id, nom, prenom, coalesce(telephone, ''), commune, fokontany,
coalesce(quartier, ''), coalesce(nom_inviteur, ''), date_ajout
from personne_convertie
`

func scanConvert(r store.Row) (RowConvert, error) {
	var c RowConvert
	err := r.Scan(
		&c.ID,
		&c.Nom,
		&c.Prenom,
		&c.Telephone,
		&c.Commune,
		&c.Fokontany,
		&c.Quartier,
		&c.NomInviteur,
		&c.DateAjout,
	)
	return c, err
}

func (r *queries) Create(ctx context.Context, in RowInsert) (int64, error) {
	const sql = `
insert into personne_convertie (nom, prenom, telephone, commune, fokontany, quartier, nom_inviteur, date_ajout)
values ($1, $2, $3, $4, $5, $6, $7, $8)
returning id
`
	return store.Scalar[int64](ctx, r.q, sql,
		in.Nom, in.Prenom, in.Telephone, in.Commune, in.Fokontany, in.Quartier, in.NomInviteur, in.DateAjout.UTC(),
	)
}

func (r *queries) List(ctx context.Context) ([]RowConvert, error) {
	return store.Many(ctx, r.q, scanConvert, selectConvert+"order by id")
}

func (r *queries) GetByID(ctx context.Context, id int64) (RowConvert, error) {
	return store.One(ctx, r.q, scanConvert, selectConvert+"where id = $1", id)
}

func (r *queries) Delete(ctx context.Context, id int64) error {
	return store.ExecOne(ctx, r.q, "delete from personne_convertie where id = $1", id)
}

func (r *queries) ByCommune(ctx context.Context, commune string) ([]RowConvert, error) {
	return store.Many(ctx, r.q, scanConvert, selectConvert+"where commune = $1 order by id", commune)
}

func (r *queries) ByInviteur(ctx context.Context, nom string) ([]RowConvert, error) {
	return store.Many(ctx, r.q, scanConvert, selectConvert+"where nom_inviteur = $1 order by id", nom)
}

func (r *queries) Distinct(ctx context.Context) (RowDistinct, error) {
	var (
		out RowDistinct
		err error
	)
	if out.Communes, err = store.Strings(ctx, r.q,
		"select distinct commune from personne_convertie order by commune"); err != nil {
		return RowDistinct{}, err
	}
	if out.Fokontanys, err = store.Strings(ctx, r.q,
		"select distinct fokontany from personne_convertie order by fokontany"); err != nil {
		return RowDistinct{}, err
	}
	if out.Quartiers, err = store.Strings(ctx, r.q,
		"select distinct quartier from personne_convertie where quartier <> '' order by quartier"); err != nil {
		return RowDistinct{}, err
	}
	if out.Inviteurs, err = store.Strings(ctx, r.q,
		"select distinct nom_inviteur from personne_convertie where nom_inviteur <> '' order by nom_inviteur"); err != nil {
		return RowDistinct{}, err
	}
	return out, nil
}

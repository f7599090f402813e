// Package service contains convertis workflows
package service

import (
	"context"
	"strings"
	"time"

	"convertis/internal/modkit/repokit"
	perr "convertis/internal/platform/errors"
	"convertis/internal/platform/logger"
	"convertis/internal/services/api/convertis/domain"
	"convertis/internal/services/api/convertis/repo"
)

const (
	msgCreated  = "Personne enregistrée avec succès"
	msgDeleted  = "Personne supprimée"
	msgNotFound = "Personne introuvable"

	createAttempts = 3
)

// Service defines the service contract for convertis
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo
	log  logger.Logger
	now  func() time.Time
}

// New creates a new convertis service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], log logger.Logger) *Svc {
	if db == nil {
		panic("convertis.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("convertis.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo: repokit.MustBind(binder, db),
		log:  log.With().Str("component", "convertis").Logger(),
		now:  time.Now,
	}
}

// Create stores a new record; an absent date_ajout means now
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.CreateResult, error) {
	at, err := s.dateAjout(in.DateAjout)
	if err != nil {
		return domain.CreateResult{}, err
	}
	row := repo.RowInsert{
		Nom:         in.Nom,
		Prenom:      in.Prenom,
		Telephone:   in.Telephone,
		Commune:     in.Commune,
		Fokontany:   in.Fokontany,
		Quartier:    in.Quartier,
		NomInviteur: in.NomInviteur,
		DateAjout:   at,
	}

	var id int64
	for attempt := 1; ; attempt++ {
		id, err = s.Repo.Create(ctx, row)
		if err == nil || attempt == createAttempts || !perr.Retryable(err) {
			break
		}
		s.log.Warn().Err(err).Int("attempt", attempt).Msg("create busy, retrying")
	}
	if err != nil {
		return domain.CreateResult{}, perr.FromDB(err, "enregistrement impossible")
	}

	logger.C(ctx).Info().Int64("id", id).Str("commune", in.Commune).Msg("personne enregistrée")
	return domain.CreateResult{Message: msgCreated, ID: id}, nil
}

// List returns all records in id order, narrowed by f when set
func (s *Svc) List(ctx context.Context, f domain.Filter) ([]domain.Convert, error) {
	var (
		rows []repo.RowConvert
		err  error
	)
	switch {
	case f.Commune != "":
		rows, err = s.Repo.ByCommune(ctx, f.Commune)
	case f.Inviteur != "":
		rows, err = s.Repo.ByInviteur(ctx, f.Inviteur)
	default:
		rows, err = s.Repo.List(ctx)
	}
	if err != nil {
		return nil, perr.FromDB(err, "lecture impossible")
	}
	out := make([]domain.Convert, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDTO(r))
	}
	return out, nil
}

// Get returns one record by id
func (s *Svc) Get(ctx context.Context, id int64) (domain.Convert, error) {
	r, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return domain.Convert{}, notFound(err, "lecture impossible")
	}
	return toDTO(r), nil
}

// Delete removes one record by id
func (s *Svc) Delete(ctx context.Context, id int64) (domain.MessageResult, error) {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return domain.MessageResult{}, notFound(err, "suppression impossible")
	}
	logger.C(ctx).Info().Int64("id", id).Msg("personne supprimée")
	return domain.MessageResult{Message: msgDeleted}, nil
}

// UniqueValues returns the distinct value lists used for autocomplete
func (s *Svc) UniqueValues(ctx context.Context) (domain.UniqueValues, error) {
	d, err := s.Repo.Distinct(ctx)
	if err != nil {
		return domain.UniqueValues{}, perr.FromDB(err, "lecture impossible")
	}
	return domain.UniqueValues{
		Communes:   d.Communes,
		Fokontanys: d.Fokontanys,
		Quartiers:  d.Quartiers,
		Inviteurs:  d.Inviteurs,
	}, nil
}

func (s *Svc) dateAjout(v *string) (time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return s.now().UTC(), nil
	}
	t, ok := domain.ParseTimestamp(*v)
	if !ok {
		return time.Time{}, perr.Validationf("date_ajout", "Le champ date_ajout est invalide")
	}
	return t, nil
}

func notFound(err error, msg string) error {
	if perr.IsNotFound(err) {
		return perr.NotFoundf(msgNotFound)
	}
	return perr.FromDB(err, msg)
}

func toDTO(r repo.RowConvert) domain.Convert {
	return domain.Convert{
		ID:          r.ID,
		Nom:         r.Nom,
		Prenom:      r.Prenom,
		Telephone:   r.Telephone,
		Commune:     r.Commune,
		Fokontany:   r.Fokontany,
		Quartier:    r.Quartier,
		NomInviteur: r.NomInviteur,
		DataAjout:   domain.FormatTimestamp(r.DateAjout),
	}
}

// Package http provides http transport for convertis
package http

import (
	stdhttp "net/http"

	"convertis/internal/modkit/httpkit"
	"convertis/internal/services/api/convertis/domain"
	svc "convertis/internal/services/api/convertis/service"
)

// Register mounts convertis endpoints on the given router
// static segments are registered before /{id} for readability; chi prefers them regardless
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/unique-values", h.uniqueValues)
	httpkit.Get(r, "/commune/{commune}", h.byCommune)
	httpkit.Get(r, "/inviteur/{nom}", h.byInviteur)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.Delete(r, "/{id}", h.delete)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /convertis Convertis convertisCreate
// @Summary Record a converted person
// @Tags Convertis
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Person"
// @Success 201 {object} domain.CreateResult
// @Failure 400 {object} errors.Wire
// @Router /convertis [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	res, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(res), nil
}

// swagger:route GET /convertis Convertis convertisList
// @Summary List every converted person in insertion order
// @Tags Convertis
// @Produce json
// @Success 200 {array} domain.Convert
// @Router /convertis [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), domain.Filter{})
}

// swagger:route GET /convertis/commune/{commune} Convertis convertisByCommune
// @Summary Records whose commune equals the path value exactly
// @Tags Convertis
// @Produce json
// @Param commune path string true "Commune"
// @Success 200 {array} domain.Convert
// @Router /convertis/commune/{commune} [get]
func (h *handlers) byCommune(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), domain.Filter{Commune: httpkit.Param(r, "commune")})
}

// swagger:route GET /convertis/inviteur/{nom} Convertis convertisByInviteur
// @Summary Records whose nom_inviteur equals the path value exactly
// @Tags Convertis
// @Produce json
// @Param nom path string true "Referrer name"
// @Success 200 {array} domain.Convert
// @Router /convertis/inviteur/{nom} [get]
func (h *handlers) byInviteur(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), domain.Filter{Inviteur: httpkit.Param(r, "nom")})
}

// swagger:route GET /convertis/{id} Convertis convertisGet
// @Summary Get one record
// @Tags Convertis
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} domain.Convert
// @Failure 404 {object} errors.Wire
// @Router /convertis/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// swagger:route DELETE /convertis/{id} Convertis convertisDelete
// @Summary Delete one record
// @Tags Convertis
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} domain.MessageResult
// @Failure 404 {object} errors.Wire
// @Router /convertis/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Delete(r.Context(), id)
}

// swagger:route GET /convertis/unique-values Convertis convertisUniqueValues
// @Summary Distinct communes, fokontanys, quartiers and referrers for autocomplete
// @Tags Convertis
// @Produce json
// @Success 200 {object} domain.UniqueValues
// @Router /convertis/unique-values [get]
func (h *handlers) uniqueValues(r *stdhttp.Request) (any, error) {
	return h.svc.UniqueValues(r.Context())
}

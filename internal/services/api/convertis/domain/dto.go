// Package domain holds DTOs for convertis http and service contracts
package domain

// CreateInput is the body of POST /convertis
// optional strings default to "" and an absent date_ajout means now
type CreateInput struct {
	Nom         string  `json:"nom" validate:"required,max=100" example:"Rakoto"`
	Prenom      string  `json:"prenom" validate:"required,max=100" example:"Jean"`
	Telephone   string  `json:"telephone,omitempty" validate:"max=20" example:"0341234567"`
	Commune     string  `json:"commune" validate:"required,max=100" example:"Antananarivo"`
	Fokontany   string  `json:"fokontany" validate:"required,max=100" example:"Analakely"`
	Quartier    string  `json:"quartier,omitempty" validate:"max=100" example:"Lot II"`
	NomInviteur string  `json:"nom_inviteur,omitempty" validate:"max=100" example:"Rabe"`
	DateAjout   *string `json:"date_ajout,omitempty" example:"2025-01-15 10:30:00"`
}

// Convert is the record shape returned by the API
// data_ajout is the historical wire name of the date_ajout column
type Convert struct {
	ID          int64   `json:"id" example:"1"`
	Nom         string  `json:"nom" example:"Rakoto"`
	Prenom      string  `json:"prenom" example:"Jean"`
	Telephone   string  `json:"telephone" example:"0341234567"`
	Commune     string  `json:"commune" example:"Antananarivo"`
	Fokontany   string  `json:"fokontany" example:"Analakely"`
	Quartier    string  `json:"quartier" example:"Lot II"`
	NomInviteur string  `json:"nom_inviteur" example:"Rabe"`
	DataAjout   *string `json:"data_ajout" example:"2025-01-15 10:30:00"`
}

// UniqueValues feeds the autocomplete lists of the UI
type UniqueValues struct {
	Communes   []string `json:"communes"`
	Fokontanys []string `json:"fokontanys"`
	Quartiers  []string `json:"quartiers"`
	Inviteurs  []string `json:"inviteurs"`
}

// CreateResult is returned by a successful create
type CreateResult struct {
	Message string `json:"message" example:"Personne enregistrée avec succès"`
	ID      int64  `json:"id" example:"1"`
}

// MessageResult carries a confirmation message
type MessageResult struct {
	Message string `json:"message" example:"Personne supprimée"`
}

// Filter narrows a listing; empty fields do not filter
type Filter struct {
	Commune  string
	Inviteur string
}

package model

import "minit-mesyuarat/internal/minit"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// TemplateInfo is what the form client needs to prefill itself.
type TemplateInfo struct {
	ID             string           `json:"id"`
	DocumentTitle  string           `json:"document_title"`
	Roster         []minit.Attendee `json:"roster"`
	DefaultAgenda  []string         `json:"default_agenda"`
	RequiredFields []string         `json:"required_fields"`
	DefaultClosing string           `json:"default_closing"`
}

type GenerateResult struct {
	Filename string   `json:"filename"`
	Warnings []string `json:"warnings,omitempty"`
	PDF      []byte   `json:"-"`
}

type ExportResponse struct {
	DownloadURL   string `json:"download_url"`
	DownloadTitle string `json:"download_title"`
}

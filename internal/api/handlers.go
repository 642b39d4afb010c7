package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ae-wizard/worldimmigration/internal/models"
)

// healthHandler reports service liveness.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, models.Success(map[string]string{"status": "healthy"}))
}

// createLeadHandler accepts the lead-capture form submission. Any success
// status tells the client to show its confirmation view; any failure tells it
// to re-enable the form for retry, so persistence happens before the status
// is written.
func (s *Server) createLeadHandler(w http.ResponseWriter, r *http.Request) {
	var lead models.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		slog.Debug("Server.createLeadHandler: invalid JSON body", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("invalid JSON body"))
		return
	}

	if err := lead.Validate(); err != nil {
		slog.Debug("Server.createLeadHandler: validation failed", "error", err, "email", lead.Email)
		writeJSONResponse(w, http.StatusBadRequest, models.Error(err.Error()))
		return
	}

	if err := s.store.AddLead(lead); err != nil {
		slog.Error("Server.createLeadHandler: failed to store lead", "error", err, "email", lead.Email)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("failed to store lead"))
		return
	}

	slog.Info("Server.createLeadHandler: lead captured", "email", lead.Email, "goal", lead.Goal)
	writeJSONResponse(w, http.StatusCreated, models.Success(nil))
}

// listLeadsHandler returns all captured leads.
func (s *Server) listLeadsHandler(w http.ResponseWriter, r *http.Request) {
	leads, err := s.store.GetLeads()
	if err != nil {
		slog.Error("Server.listLeadsHandler: failed to load leads", "error", err)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("failed to load leads"))
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	writeJSONResponse(w, http.StatusOK, models.Success(leads))
}

// listConversationsHandler returns the logged question/answer exchanges.
func (s *Server) listConversationsHandler(w http.ResponseWriter, r *http.Request) {
	logs, err := s.store.GetConversationLogs()
	if err != nil {
		slog.Error("Server.listConversationsHandler: failed to load logs", "error", err)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("failed to load conversation logs"))
		return
	}
	if logs == nil {
		logs = []models.ConversationLog{}
	}
	writeJSONResponse(w, http.StatusOK, models.Success(logs))
}

package web

import (
	"encoding/json"
	"net/http"

	"github.com/robinvdvleuten/zeicheck/model"
	"github.com/robinvdvleuten/zeicheck/rules"
)

// writeJSONResponse writes a JSON response to the http.ResponseWriter.
// If encoding fails, it writes an error response.
func writeJSONResponse(w http.ResponseWriter, data any) {
	writeJSONStatus(w, http.StatusOK, data)
}

func writeJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

type VersionResponse struct {
	Version   string `json:"version"`
	CommitSHA string `json:"commitSHA"`
}

func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, &VersionResponse{Version: s.Version, CommitSHA: s.CommitSHA})
}

// RuleInfo describes a rule together with its configured severity.
type RuleInfo struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Severity        rules.Severity     `json:"severity"`
	DefaultSeverity rules.Severity     `json:"defaultSeverity"`
	AppliesTo       []model.ReturnType `json:"appliesTo"`
}

// RulesResponse is the JSON response structure for the rules endpoint.
type RulesResponse struct {
	Rules []RuleInfo `json:"rules"`
}

func (s *Server) ruleInfo(rule rules.Rule) RuleInfo {
	applies := rule.AppliesTo
	if applies == nil {
		applies = []model.ReturnType{}
	}
	return RuleInfo{
		ID:              rule.ID,
		Name:            rule.Name,
		Description:     rule.Description,
		Severity:        s.config.EffectiveSeverity(rule),
		DefaultSeverity: rule.Severity,
		AppliesTo:       applies,
	}
}

// handleGetRules lists the registry in registration order.
func (s *Server) handleGetRules(w http.ResponseWriter, r *http.Request) {
	all := s.registry.All()
	infos := make([]RuleInfo, 0, len(all))
	for _, rule := range all {
		infos = append(infos, s.ruleInfo(rule))
	}
	writeJSONResponse(w, &RulesResponse{Rules: infos})
}

// handleGetRule serves GET /api/rules/{id...}. Rule IDs contain a slash.
func (s *Server) handleGetRule(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rule, ok := s.registry.Get(id)
	if !ok {
		http.Error(w, "rule not found: "+id, http.StatusNotFound)
		return
	}
	writeJSONResponse(w, s.ruleInfo(rule))
}

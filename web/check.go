package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/robinvdvleuten/zeicheck/model"
	"github.com/robinvdvleuten/zeicheck/report"
)

// maxCheckBody bounds POST /api/check request bodies.
const maxCheckBody = 10 << 20

// DiagnosticsResponse is the result of checking one filing. Error is set
// when the filing could not be decoded or normalized.
type DiagnosticsResponse struct {
	report.Report
	Error     *report.ErrorJSON `json:"error,omitempty"`
	CheckedAt time.Time         `json:"checkedAt"`
}

// CheckRequest is the body of POST /api/check. CSV is the raw ledger
// export, base64 encoded in JSON.
type CheckRequest struct {
	Filename string `json:"filename"`
	XTX      string `json:"xtx"`
	CSV      []byte `json:"csv,omitempty"`
}

// handleGetDiagnostics returns the result of the last check of the served
// filing.
func (s *Server) handleGetDiagnostics(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current == nil {
		http.Error(w, "no filing checked yet", http.StatusServiceUnavailable)
		return
	}
	writeJSONResponse(w, current)
}

// handlePostCheck validates a filing sent in the request body. The prior
// year is not consulted.
func (s *Server) handlePostCheck(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCheckBody)

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.XTX == "" {
		http.Error(w, "xtx is required", http.StatusBadRequest)
		return
	}
	if req.Filename == "" {
		req.Filename = "upload.xtx"
	}

	result, err := s.loader.LoadBytes(r.Context(), req.Filename, []byte(req.XTX), req.CSV)
	if err != nil {
		errJSON := report.NewErrorJSON(err)
		writeJSONStatus(w, http.StatusUnprocessableEntity, &DiagnosticsResponse{
			Report:    report.NewReport(req.Filename, nil),
			Error:     &errJSON,
			CheckedAt: time.Now(),
		})
		return
	}

	diags := s.run(r.Context(), result.Return, nil)
	writeJSONResponse(w, &DiagnosticsResponse{
		Report:    report.NewReport(req.Filename, diags),
		CheckedAt: time.Now(),
	})
}

// FormInfo names a form carried by the filing.
type FormInfo struct {
	Type        model.FormType `json:"type"`
	Description string         `json:"description"`
}

// ReturnResponse is the normalized filing behind the current diagnostics.
type ReturnResponse struct {
	ReturnType model.ReturnType `json:"returnType"`
	Label      string           `json:"label"`
	FiscalYear model.FiscalYear `json:"fiscalYear"`
	Forms      []FormInfo       `json:"forms"`
	Return     model.TaxReturn  `json:"return"`
}

// handleGetReturn serves the normalized aggregate of the served filing, so
// clients can show the statements next to the diagnostics.
func (s *Server) handleGetReturn(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	taxRet := s.taxRet
	s.mu.RUnlock()

	if taxRet == nil {
		http.Error(w, "no valid filing loaded", http.StatusNotFound)
		return
	}

	meta := taxRet.Meta()
	forms := make([]FormInfo, 0, len(meta.FormTypes))
	for _, f := range meta.FormTypes {
		forms = append(forms, FormInfo{Type: f, Description: f.Description()})
	}

	writeJSONResponse(w, &ReturnResponse{
		ReturnType: taxRet.ReturnType(),
		Label:      taxRet.ReturnType().Label(),
		FiscalYear: taxRet.Fiscal(),
		Forms:      forms,
		Return:     taxRet,
	})
}

package web

// handlers_validate.go implements the bulk-import flow: upload a
// spreadsheet, review per-row verdicts, correct rows in place, then either
// commit the batch or download an error report. Each upload gets a
// server-side validation session holding the verdicts and the duplicate
// state its validation pass built up.

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mfgdata/masterdata/internal/core"
	"github.com/mfgdata/masterdata/internal/logging"
	"github.com/mfgdata/masterdata/internal/parse"
	"github.com/mfgdata/masterdata/internal/schema"
)

var errUnknownKind = errors.New("unknown import kind, expected items or boms")

// resolveKind maps the {kind} URL segment to an import kind and its layout.
func resolveKind(r *http.Request) (core.Kind, schema.Layout, error) {
	switch chi.URLParam(r, "kind") {
	case "items":
		return core.KindItems, schema.ItemLayout, nil
	case "boms":
		return core.KindBoms, schema.BomLayout, nil
	default:
		return "", schema.Layout{}, errUnknownKind
	}
}

// sessionResponse is the JSON shape of a validation session.
type sessionResponse struct {
	SessionID    string           `json:"session_id"`
	Kind         core.Kind        `json:"kind"`
	FileName     string           `json:"file_name"`
	TotalRows    int              `json:"total_rows"`
	InvalidRows  int              `json:"invalid_rows"`
	AllValid     bool             `json:"all_valid"`
	Results      []core.RowResult `json:"results"`
	CreatedAtUTC string           `json:"created_at"`
}

func toSessionResponse(sess *core.Session) sessionResponse {
	return sessionResponse{
		SessionID:    sess.ID,
		Kind:         sess.Kind,
		FileName:     sess.FileName,
		TotalRows:    len(sess.Results),
		InvalidRows:  len(core.InvalidRows(sess.Results)),
		AllValid:     core.AllValid(sess.Results),
		Results:      sess.Results,
		CreatedAtUTC: sess.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// handleValidateFile accepts a multipart upload, parses it, and validates
// every row against a fresh catalog snapshot.
//
//	POST /api/validate/{kind}  (multipart field "file")
func (s *Server) handleValidateFile(w http.ResponseWriter, r *http.Request) {
	kind, _, err := resolveKind(r)
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxFileSize)
	if err := r.ParseMultipartForm(s.maxFileSize); err != nil {
		respondError(w, r, fmt.Errorf("parse upload: %w", err), http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, errors.New("missing file field in upload"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parse.Rows(header.Filename, file)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, parse.ErrUnsupportedFormat) {
			status = http.StatusUnprocessableEntity
		}
		respondError(w, r, err, status)
		return
	}
	if len(rows) == 0 {
		respondError(w, r, errors.New("uploaded file has no rows"), http.StatusBadRequest)
		return
	}

	snap, err := s.catalog.Snapshot(r.Context())
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	ix := core.NewIndex(snap.Items, snap.BoMs)

	skipHeader := r.URL.Query().Get("header") != "false"
	sess := s.sessions.Create(kind, header.Filename, rows, skipHeader, ix)

	logging.FromContext(r.Context()).Info("file validated",
		"kind", kind,
		"file", header.Filename,
		"rows", len(sess.Results),
		"invalid", len(core.InvalidRows(sess.Results)),
		"session_id", sess.ID,
	)
	respondJSON(w, http.StatusOK, toSessionResponse(sess))
}

// handleGetSession returns the current verdicts of a validation session.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	if _, _, err := resolveKind(r); err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	sess, err := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(sess))
}

// handleRevalidateRow replaces one row of a session with an edited version
// and re-runs the row validator against the session's duplicate state.
//
//	POST /api/validate/{kind}/{sessionID}/rows/{index}  body: {"row": [...]}
func (s *Server) handleRevalidateRow(w http.ResponseWriter, r *http.Request) {
	if _, _, err := resolveKind(r); err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, r, errors.New("row index must be an integer"), http.StatusBadRequest)
		return
	}

	var body struct {
		Row core.RawRow `json:"row"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}

	result, err := s.sessions.Revalidate(chi.URLParam(r, "sessionID"), index, body.Row)
	if err != nil {
		if errors.Is(err, core.ErrSessionNotFound) {
			respondError(w, r, err, http.StatusNotFound)
		} else {
			respondError(w, r, err, http.StatusBadRequest)
		}
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleCommit persists all rows of a fully valid session in one
// transaction and deletes the session. A session that still has invalid
// rows is rejected with 409 and the remaining verdicts.
func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	kind, _, err := resolveKind(r)
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	sess, err := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if sess.Kind != kind {
		respondError(w, r, errUnknownKind, http.StatusBadRequest)
		return
	}

	if !core.AllValid(sess.Results) {
		invalid := core.InvalidRows(sess.Results)
		respondJSON(w, http.StatusConflict, map[string]any{
			"error":        "session still has invalid rows",
			"invalid_rows": len(invalid),
			"results":      invalid,
		})
		return
	}

	switch kind {
	case core.KindBoms:
		boms := make([]core.BoMEntry, 0, len(sess.Results))
		for _, res := range sess.Results {
			b, ok := core.BoMFromRow(res.Row)
			if !ok {
				respondError(w, r, fmt.Errorf("row %d cannot be converted", res.RowNumber), http.StatusInternalServerError)
				return
			}
			boms = append(boms, b)
		}
		if err := s.catalog.CreateBoMs(r.Context(), boms); err != nil {
			respondError(w, r, err, http.StatusInternalServerError)
			return
		}
	default:
		items := make([]core.Item, 0, len(sess.Results))
		for _, res := range sess.Results {
			it, ok := core.ItemFromRow(res.Row)
			if !ok {
				respondError(w, r, fmt.Errorf("row %d cannot be converted", res.RowNumber), http.StatusInternalServerError)
				return
			}
			items = append(items, it)
		}
		if err := s.catalog.CreateItems(r.Context(), items); err != nil {
			respondError(w, r, err, http.StatusInternalServerError)
			return
		}
	}

	s.sessions.Delete(sess.ID)
	logging.FromContext(r.Context()).Info("import committed",
		"kind", kind,
		"file", sess.FileName,
		"rows", len(sess.Results),
		"session_id", sess.ID,
	)
	respondJSON(w, http.StatusOK, map[string]any{
		"committed": len(sess.Results),
		"kind":      kind,
	})
}

// handleErrorReport streams the session's invalid rows as an XLSX workbook.
func (s *Server) handleErrorReport(w http.ResponseWriter, r *http.Request) {
	kind, layout, err := resolveKind(r)
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	sess, err := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	invalid := core.InvalidRows(sess.Results)
	fields := layout.FieldNames()
	header := core.ErrorReportHeader(fields)
	rows := core.BuildErrorReport(invalid, fields)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "Error_Report_"+string(kind)+".xlsx"))
	if err := parse.WriteXLSX(w, "Error Report", header, rows); err != nil {
		logging.FromContext(r.Context()).Error("write error report", "error", err, "session_id", sess.ID)
	}
}

// handleTemplate streams an empty import template for the given kind.
func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	kind, layout, err := resolveKind(r)
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(kind)+"_import_template.xlsx"))
	if err := parse.WriteXLSX(w, "Template", layout.FieldNames(), nil); err != nil {
		logging.FromContext(r.Context()).Error("write template", "error", err, "kind", kind)
	}
}

// handlePendingSetup scans the live catalog for setup gaps.
func (s *Server) handlePendingSetup(w http.ResponseWriter, r *http.Request) {
	snap, err := s.catalog.Snapshot(r.Context())
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	findings := core.AnalyzePendingSetup(snap.Items, snap.BoMs)
	if findings == nil {
		findings = []core.Finding{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"count":    len(findings),
		"findings": findings,
	})
}

// formatQuantity renders a quantity the way a spreadsheet cell would hold
// it.
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

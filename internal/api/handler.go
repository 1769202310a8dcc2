package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tooloolooz/bumazhka/pkg/grn"
)

// maxBodySize caps request bodies; a validation request is tiny.
const maxBodySize = 4 << 10

// Handler wires validation endpoints to the grn package.
type Handler struct {
	logger *slog.Logger
}

// New constructs a validation handler.
func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Register mounts the endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.HandleHealth)
	r.Post("/v1/validate", h.HandleValidate)
}

// HandleHealth handles GET /healthz requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleValidate handles POST /v1/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	typ, err := req.ResolveType()
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown registration number type: "+req.Type)
		return
	}

	// The number is validated verbatim; trimming or normalizing it here
	// would accept strings the registers would reject.
	valid, err := grn.IsValidType(req.Number, typ)
	if err != nil {
		// Unreachable after ResolveType, but never turn a contract
		// violation into a verdict.
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "validated registration number",
		"type", typ.String(),
		"valid", valid,
	)

	writeJSON(w, http.StatusOK, ValidateResponse{
		Number: req.Number,
		Type:   typ.String(),
		Valid:  valid,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/huangsam/shsat/core"
	"github.com/huangsam/shsat/internal/contract"
	"github.com/huangsam/shsat/schema"
)

// maxBodyBytes bounds the size of a POST /api/estimate body.
const maxBodyBytes = 1 << 16

// handler ties HTTP routes to the estimator.
type handler struct {
	cfg *contract.Config
	mgr contract.HistoryManager
}

// rawScore is a raw score field that accepts a JSON number or string.
// Anything that does not start with an integer becomes 0.
type rawScore int

// UnmarshalJSON coerces numbers, strings and null into a raw score.
func (r *rawScore) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}
	*r = rawScore(contract.ParseRawScore(text))
	return nil
}

// estimateRequest is the body of POST /api/estimate.
type estimateRequest struct {
	Math  rawScore `json:"math"`
	ELA   rawScore `json:"ela"`
	Curve string   `json:"curve"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getEstimate serves GET /api/estimate?math=&ela=&curve=.
func (h *handler) getEstimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.estimate(w, r, estimateRequest{
		Math:  rawScore(contract.ParseRawScore(q.Get("math"))),
		ELA:   rawScore(contract.ParseRawScore(q.Get("ela"))),
		Curve: q.Get("curve"),
	})
}

// postEstimate serves POST /api/estimate with a JSON body.
func (h *handler) postEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	h.estimate(w, r, req)
}

func (h *handler) estimate(w http.ResponseWriter, r *http.Request, req estimateRequest) {
	cfg, ok := h.configFor(w, req.Curve)
	if !ok {
		return
	}

	est, err := core.GetEstimateResult(r.Context(), cfg, h.mgr, int(req.Math), int(req.ELA))
	if err != nil {
		var invalid *core.InvalidInputError
		if errors.As(err, &invalid) {
			respondError(w, http.StatusBadRequest, "Please enter valid numbers! "+err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, est)
}

func (h *handler) listSchools(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.cfg.Schools.Schools())
}

// getSchool serves GET /api/schools/{name}.
func (h *handler) getSchool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	cutoff, ok := h.cfg.Schools.Lookup(name)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown school: "+name)
		return
	}
	respondJSON(w, http.StatusOK, schema.SchoolCutoff{Name: name, Cutoff: cutoff})
}

// getCurve serves GET /api/curve?curve=.
func (h *handler) getCurve(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.configFor(w, r.URL.Query().Get("curve"))
	if !ok {
		return
	}
	curve, err := core.CurveFor(cfg.Curve)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, core.ScaleTable(curve))
}

// configFor clones the base config with an optional curve override.
// It writes a 400 response and returns false for an unknown curve.
func (h *handler) configFor(w http.ResponseWriter, curve string) (*contract.Config, bool) {
	cfg := h.cfg.Clone()
	if curve == "" {
		return cfg, true
	}
	name := schema.CurveName(strings.ToLower(curve))
	if _, ok := schema.ValidCurves[name]; !ok {
		respondError(w, http.StatusBadRequest, "unknown curve: "+curve)
		return nil, false
	}
	cfg.Curve = name
	return cfg, true
}

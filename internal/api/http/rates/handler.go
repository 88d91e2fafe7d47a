package rates

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"service-ratebank/internal"
	"service-ratebank/internal/models"
	"service-ratebank/internal/service/rates"
)

type Handler struct {
	rates *rates.Service
	log   *slog.Logger
}

func New(r *rates.Service, l *slog.Logger) *Handler {
	return &Handler{rates: r, log: l}
}

// Register mounts the read route on mux and the mutating routes behind admin.
func (h *Handler) Register(mux *http.ServeMux, admin func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/v1/rate", h.getRate)
	mux.Handle("DELETE /api/v1/rate", admin(http.HandlerFunc(h.flushRate)))
	mux.Handle("DELETE /api/v1/rates", admin(http.HandlerFunc(h.flushRates)))
	mux.Handle("POST /api/v1/rates/expire", admin(http.HandlerFunc(h.expireRates)))
}

func (h *Handler) getRate(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	out, err := h.rates.GetPairRate(r.Context(), from, to)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) flushRate(w http.ResponseWriter, r *http.Request) {
	out, err := h.rates.FlushPairRate(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) flushRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rates.FlushAll())
}

func (h *Handler) expireRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rates.Expire())
}

func (h *Handler) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "rate request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, body)
}

func classify(err error) (int, models.BusinessError) {
	var biz *models.BusinessError
	switch {
	case errors.As(err, &biz):
		if biz.Code == "rate_not_found" {
			return http.StatusNotFound, *biz
		}
		return http.StatusBadRequest, *biz
	case errors.Is(err, internal.ErrMissingCredential):
		return http.StatusInternalServerError, models.BusinessError{Code: "missing_credential", Message: "upstream api key is not configured"}
	case internal.IsRemoteRequestError(err):
		return http.StatusBadGateway, models.BusinessError{Code: "remote_request_failed", Message: err.Error()}
	default:
		return http.StatusInternalServerError, models.BusinessError{Code: "internal_error", Message: "internal error"}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

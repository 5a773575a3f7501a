package in

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"chemlab/internal/modules/backing/dto"
	backingin "chemlab/internal/modules/backing/port/in"
	apperrors "chemlab/internal/platform/errors"
	"chemlab/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase backingin.Usecase
	logger  *zap.Logger
}

func NewHTTPHandler(usecase backingin.Usecase, logger *zap.Logger) HTTPHandler {
	return HTTPHandler{usecase: usecase, logger: logger}
}

func (h HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/backings/{address}", h.list)
	mux.HandleFunc("POST /api/backings/{address}", h.record)
	mux.HandleFunc("GET /api/backings/{address}/claimable", h.claimable)
}

func (h HTTPHandler) list(w http.ResponseWriter, r *http.Request) {
	address := strings.ToLower(r.PathValue("address"))
	out, err := h.usecase.List(r.Context(), address)
	if err != nil {
		h.logger.Error("fetch backings", zap.String("address", address), zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch backings")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// record stores backings whose stake transfer already happened.
func (h HTTPHandler) record(w http.ResponseWriter, r *http.Request) {
	in := dto.SubmitInput{}
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid backing payload")
		return
	}
	in.Address = strings.ToLower(r.PathValue("address"))
	out, err := h.usecase.Record(r.Context(), in)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, out)
	case errors.Is(err, apperrors.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrEmptySelection),
		errors.Is(err, apperrors.ErrBelowMinimum):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("add backing", zap.String("address", in.Address), zap.String("couple_id", in.CoupleID), zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to add backing")
	}
}

func (h HTTPHandler) claimable(w http.ResponseWriter, r *http.Request) {
	address := strings.ToLower(r.PathValue("address"))
	out, err := h.usecase.Claimable(r.Context(), address)
	if err != nil {
		h.logger.Error("fetch claimable rewards", zap.String("address", address), zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch claimable rewards")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"rewards": out, "total": len(out)})
}

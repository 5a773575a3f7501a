package in

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"chemlab/internal/modules/couples/dto"
	couplesin "chemlab/internal/modules/couples/port/in"
	apperrors "chemlab/internal/platform/errors"
	"chemlab/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase couplesin.Usecase
	logger  *zap.Logger
}

func NewHTTPHandler(usecase couplesin.Usecase, logger *zap.Logger) HTTPHandler {
	return HTTPHandler{usecase: usecase, logger: logger}
}

func (h HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/couples", h.list)
	mux.HandleFunc("POST /api/couples", h.get)
}

func (h HTTPHandler) list(w http.ResponseWriter, r *http.Request) {
	out, err := h.usecase.ListCouples(r.Context())
	if err != nil {
		h.logger.Error("fetch couples", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch couples")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h HTTPHandler) get(w http.ResponseWriter, r *http.Request) {
	in := dto.GetInput{}
	if err := httpx.DecodeJSON(r, &in); err != nil || strings.TrimSpace(in.CoupleID) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "coupleId is required")
		return
	}
	couple, err := h.usecase.GetCouple(r.Context(), in.CoupleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Couple not found")
			return
		}
		h.logger.Error("fetch couple", zap.String("couple_id", in.CoupleID), zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch couple")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dto.GetOutput{Couple: couple})
}

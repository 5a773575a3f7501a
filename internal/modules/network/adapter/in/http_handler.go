package in

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"chemlab/internal/modules/network/dto"
	networkin "chemlab/internal/modules/network/port/in"
	apperrors "chemlab/internal/platform/errors"
	"chemlab/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase networkin.Usecase
	logger  *zap.Logger
}

func NewHTTPHandler(usecase networkin.Usecase, logger *zap.Logger) HTTPHandler {
	return HTTPHandler{usecase: usecase, logger: logger}
}

func (h HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/network", h.status)
}

func (h HTTPHandler) status(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out, err := h.usecase.Status(r.Context(), dto.StatusInput{
		ChainID:  q.Get("chainId"),
		Address:  q.Get("address"),
		Basename: q.Get("basename"),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid chainId")
			return
		}
		h.logger.Error("network status", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to check network")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

package in

import (
	"net/http"

	"go.uber.org/zap"

	leaderboardin "chemlab/internal/modules/leaderboard/port/in"
	"chemlab/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase leaderboardin.Usecase
	logger  *zap.Logger
}

func NewHTTPHandler(usecase leaderboardin.Usecase, logger *zap.Logger) HTTPHandler {
	return HTTPHandler{usecase: usecase, logger: logger}
}

func (h HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/leaderboard", h.board)
}

func (h HTTPHandler) board(w http.ResponseWriter, r *http.Request) {
	out, err := h.usecase.Board(r.Context())
	if err != nil {
		h.logger.Error("fetch leaderboard", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

package in

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"chemlab/internal/modules/frames/dto"
	framesin "chemlab/internal/modules/frames/port/in"
	"chemlab/internal/platform/httpx"
)

//go:embed frame.html.tmpl
var frameTemplate string

var frameHTML = template.Must(template.New("frame").Parse(frameTemplate))

//go:embed card.svg.tmpl
var cardTemplate string

var cardSVG = template.Must(template.New("card").Parse(cardTemplate))

type HTTPHandler struct {
	usecase framesin.Usecase
	logger  *zap.Logger
}

func NewHTTPHandler(usecase framesin.Usecase, logger *zap.Logger) HTTPHandler {
	return HTTPHandler{usecase: usecase, logger: logger}
}

func (h HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/frames", h.frame)
	mux.HandleFunc("GET /api/og", h.card)
}

func (h HTTPHandler) frame(w http.ResponseWriter, r *http.Request) {
	out, err := h.usecase.Frame(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		h.logger.Error("build frame", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to build frame")
		return
	}
	buf := bytes.Buffer{}
	if err := frameHTML.Execute(&buf, out); err != nil {
		h.logger.Error("render frame", zap.String("type", out.Kind), zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to build frame")
		return
	}
	w.Header().Set("content-type", "text/html; charset=utf-8")
	w.Header().Set("cache-control", "max-age=300")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h HTTPHandler) card(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out, err := h.usecase.Card(r.Context(), dto.CardInput{
		Kind:        q.Get("type"),
		Title:       q.Get("title"),
		Description: q.Get("description"),
	})
	if err != nil {
		h.logger.Error("build card", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to build image")
		return
	}
	buf := bytes.Buffer{}
	if err := cardSVG.Execute(&buf, out); err != nil {
		h.logger.Error("render card", zap.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to build image")
		return
	}
	w.Header().Set("content-type", "image/svg+xml")
	w.Header().Set("cache-control", "public, max-age=31536000")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

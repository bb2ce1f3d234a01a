package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yuzeguitarist/qrpanel/internal/app"
	"github.com/yuzeguitarist/qrpanel/internal/display"
	"github.com/yuzeguitarist/qrpanel/internal/qrdraw"
	"github.com/yuzeguitarist/qrpanel/internal/service"
)

// maxContent keeps requests within what a version 40 symbol can hold.
const maxContent = 2953

// maxWidth caps the canvas a single request may allocate.
const maxWidth = 4096

type Server struct {
	Service *service.Service
}

func NewServer(svc *service.Service) *Server {
	return &Server{Service: svc}
}

func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.healthz).Methods("GET")
	r.HandleFunc("/geometry", s.geometry).Methods("GET")
	r.HandleFunc("/qr.{format:png|bmp|svg}", s.image).Methods("GET")
	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// image serves /qr.{format}?text=...&width=N&panel=1. Without panel the
// image is the bare square canvas.
func (s *Server) image(w http.ResponseWriter, r *http.Request) {
	f, err := display.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	req, err := parseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := s.Service.Render(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	b, err := s.Service.Encode(res, f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("content-type", display.ContentType(f))
	w.Header().Set("x-qr-point-size", strconv.Itoa(res.Geometry.PointSize))
	w.Header().Set("x-qr-margin", strconv.Itoa(res.Geometry.Margin))
	_, _ = w.Write(b)
}

func (s *Server) geometry(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	g, err := s.Service.Geometry(req.Content, req.Width)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func parseRequest(r *http.Request) (service.Request, error) {
	q := r.URL.Query()
	req := service.Request{Source: "web", Content: q.Get("text"), Fit: q.Get("panel") == ""}
	if len(req.Content) > maxContent {
		return req, fmt.Errorf("text longer than %d bytes", maxContent)
	}
	if v := q.Get("width"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return req, fmt.Errorf("invalid width %q", v)
		}
		if n > maxWidth {
			return req, fmt.Errorf("width %d exceeds %d", n, maxWidth)
		}
		req.Width = n
	}
	return req, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrNoContent):
		return http.StatusBadRequest
	case errors.Is(err, qrdraw.ErrDimensionTooLarge), errors.Is(err, service.ErrPanelTooSmall):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// ---- helpers ----

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]any{"error": err.Error()})
}

package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/couchcryptid/water-quality-api/internal/domain"
)

const (
	welcomeHTML = "<h1>Bienvenido al informe de mediciones de calidad del agua</h1>"

	detailEmptyDataset   = "No hay datos de mediciones de calidad de agua disponibles, valide con el laboratorio"
	detailNotFound       = "medición no encontrada"
	detailLexiconDown    = "diccionario léxico no disponible"
	detailLexiconFailure = "error consultando el diccionario léxico"
	detailMissingParam   = "parámetro requerido: "
)

// statusClientClosedRequest is the nginx convention for a request the client
// abandoned before a response was ready.
const statusClientClosedRequest = 499

// detail is the error/sentinel payload shape.
type detail struct {
	Detalle string `json:"detalle"`
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(welcomeHTML))
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	all, err := s.svc.All()
	if errors.Is(err, domain.ErrEmptyDataset) {
		writeJSON(w, http.StatusInternalServerError, detail{Detalle: detailEmptyDataset})
		return
	}
	if err != nil {
		s.logger.Error("list measurements failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, detail{Detalle: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleByID(w http.ResponseWriter, r *http.Request) {
	m, ok := s.svc.ByID(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusOK, detail{Detalle: detailNotFound})
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleByLabel(w http.ResponseWriter, r *http.Request) {
	label, ok := requiredQuery(w, r, "is_safe")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.svc.ByLabel(label))
}

func (s *Server) handleChatbot(w http.ResponseWriter, r *http.Request) {
	query, ok := requiredQuery(w, r, "query")
	if !ok {
		return
	}

	resp, err := s.svc.Chat(r.Context(), query)
	if errors.Is(err, context.Canceled) {
		s.logger.Debug("chatbot query abandoned by client", "query", query)
		w.WriteHeader(statusClientClosedRequest)
		return
	}
	if err != nil {
		s.logger.Error("chatbot lookup failed", "error", err, "query", query)
		if errors.Is(err, domain.ErrLexiconUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, detail{Detalle: detailLexiconDown})
			return
		}
		writeJSON(w, http.StatusBadGateway, detail{Detalle: detailLexiconFailure})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// requiredQuery reads a query parameter that must be present. An empty value
// counts as present.
func requiredQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, detail{Detalle: detailMissingParam + name})
		return "", false
	}
	return values[0], true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // headers already sent
}

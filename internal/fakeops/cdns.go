package fakeops

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/to-api-contract/internal/logger"
	"github.com/MKhiriev/to-api-contract/models"
)

func (s *Server) getCDNs(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get(models.CDNNameKey)

	out := make([]models.CDN, 0)
	for _, c := range s.CDNs() {
		if name == "" || c.Name == name {
			out = append(out, c)
		}
	}

	writeEnvelope(w, r, http.StatusOK, out, "", "")
}

func (s *Server) createCDN(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var cdn models.CDN
	if err := json.NewDecoder(r.Body).Decode(&cdn); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "parsing cdn: "+err.Error())
		return
	}

	if msg := validateCDN(cdn); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	s.mu.Lock()
	for _, existing := range s.cdns {
		if existing.Name == cdn.Name {
			s.mu.Unlock()
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("cdn with name '%s' already exists.", cdn.Name))
			return
		}
	}
	created := s.insertLocked(cdn)
	s.mu.Unlock()

	log.Debug().Int("id", created.ID).Str("name", created.Name).Msg("cdn created")
	writeEnvelope(w, r, http.StatusOK, created, levelSuccess, "cdn was created.")
}

func (s *Server) deleteCDN(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "id must be an integer")
		return
	}

	s.mu.Lock()
	_, ok := s.cdns[id]
	delete(s.cdns, id)
	s.mu.Unlock()

	if !ok {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("no cdn exists by id: %d", id))
		return
	}

	writeEnvelope(w, r, http.StatusOK, nil, levelSuccess, "cdn was deleted.")
}

// validateCDN returns an alert text for an invalid CDN, or "".
func validateCDN(c models.CDN) string {
	var problems []string
	if strings.TrimSpace(c.Name) == "" {
		problems = append(problems, "'name' cannot be blank")
	}
	if strings.TrimSpace(c.DomainName) == "" {
		problems = append(problems, "'domainName' cannot be blank")
	}
	return strings.Join(problems, "; ")
}

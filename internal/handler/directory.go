package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/hub/internal/domain"
	"github.com/dangerclosesec/hub/internal/query"
	"github.com/dangerclosesec/hub/internal/serializer"
	"github.com/dangerclosesec/hub/internal/service"
	"github.com/go-chi/chi/v5"
)

type DirectoryHandler struct {
	service *service.DirectoryService
}

func NewDirectoryHandler(service *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
	}
}

type HomeResponse struct {
	Counts            HomeCounts `json:"counts"`
	RecentPeople      any        `json:"recent_people"`
	RecentCommunities any        `json:"recent_communities"`
}

type HomeCounts struct {
	People      int64 `json:"people"`
	Communities int64 `json:"communities"`
	Schools     int64 `json:"schools"`
}

// Home returns the directory totals and the newest entries.
func (h *DirectoryHandler) Home(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Home(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	people, err := serializer.View(out.RecentPeople)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	communities, err := serializer.View(out.RecentCommunities)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, HomeResponse{
		Counts: HomeCounts{
			People:      out.PeopleCount,
			Communities: out.CommunityCount,
			Schools:     out.SchoolCount,
		},
		RecentPeople:      people,
		RecentCommunities: communities,
	})
}

// ListPeople returns one page of people matching the query filters.
func (h *DirectoryHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := query.PersonParams{
		Search:       q.Get("search"),
		Role:         q.Get("role"),
		Interest:     q.Get("interest"),
		Availability: q.Get("availability"),
	}

	out, err := h.service.ListPeople(r.Context(), params, q.Get("page"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items, err := serializer.View(out.Items)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"people":  items,
		"page":    out.Page,
		"roles":   nonNilStrings(out.Facets),
		"filters": params,
	})
}

func (h *DirectoryHandler) PersonDetail(w http.ResponseWriter, r *http.Request) {
	person, err := h.service.GetPerson(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respondWithView(w, http.StatusOK, person)
}

// ListCommunities returns one page of communities matching the query filters.
func (h *DirectoryHandler) ListCommunities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := query.CommunityParams{
		Search:   q.Get("search"),
		Location: q.Get("location"),
		Focus:    q.Get("focus"),
	}

	out, err := h.service.ListCommunities(r.Context(), params, q.Get("page"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items, err := serializer.View(out.Items)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"communities": items,
		"page":        out.Page,
		"locations":   nonNilStrings(out.Facets),
		"filters":     params,
	})
}

func (h *DirectoryHandler) CommunityDetail(w http.ResponseWriter, r *http.Request) {
	community, err := h.service.GetCommunity(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respondWithView(w, http.StatusOK, community)
}

// ListSchools returns one page of schools matching the query filters.
func (h *DirectoryHandler) ListSchools(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := query.SchoolParams{
		Search: q.Get("search"),
		City:   q.Get("city"),
	}

	out, err := h.service.ListSchools(r.Context(), params, q.Get("page"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items, err := serializer.View(out.Items)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"schools": items,
		"page":    out.Page,
		"cities":  nonNilStrings(out.Facets),
		"filters": params,
	})
}

func (h *DirectoryHandler) SchoolDetail(w http.ResponseWriter, r *http.Request) {
	school, err := h.service.GetSchool(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respondWithView(w, http.StatusOK, school)
}

// SearchAPI returns quick suggestions across all kinds.
func (h *DirectoryHandler) SearchAPI(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, out)
}

// handleError handles common error cases
func (h *DirectoryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	default:
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

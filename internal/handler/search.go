package handler

import (
	"net/http"

	"github.com/campusgate/campusgate-go/internal/dataset"
	"github.com/campusgate/campusgate-go/internal/service"
)

// SearchHandler handles HTTP requests for dataset search.
type SearchHandler struct {
	service *service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// HandleSearchByName handles GET /api/users/search/name?name= requests.
func (h *SearchHandler) HandleSearchByName(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, dataset.FieldName, "name")
}

// HandleSearchByNIM handles GET /api/search/nim?nim= requests.
func (h *SearchHandler) HandleSearchByNIM(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, dataset.FieldNIM, "nim")
}

// HandleSearchByYMD handles GET /api/search/ymd?ymd= requests.
func (h *SearchHandler) HandleSearchByYMD(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, dataset.FieldYMD, "ymd")
}

func (h *SearchHandler) search(w http.ResponseWriter, r *http.Request, field dataset.Field, param string) {
	query := r.URL.Query().Get(param)
	if query == "" {
		respond(w, http.StatusUnprocessableEntity, map[string]string{
			param: param + " is required",
		}, "Validation failed")
		return
	}

	records, err := h.service.Search(r.Context(), field, query)
	if err != nil {
		respond(w, http.StatusInternalServerError, nil, "Failed to retrieve data")
		return
	}
	if len(records) == 0 {
		respond(w, http.StatusNotFound, nil, "User not found")
		return
	}

	respond(w, http.StatusOK, records, "User found")
}

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OgArise/cool-app/internal/search"
)

// SearchHandler exposes the search service over HTTP.
type SearchHandler struct {
	service  *search.Service
	registry *search.Registry
}

func NewSearchHandler(service *search.Service, registry *search.Registry) *SearchHandler {
	return &SearchHandler{service: service, registry: registry}
}

// Execute handles POST /api/v1/search.
func (h *SearchHandler) Execute(c *gin.Context) {
	var body searchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(body.Query, "invalid JSON body: "+err.Error()))
		return
	}

	maxResults := search.DefaultMaxResults
	if body.MaxResults != nil {
		maxResults = *body.MaxResults
	}
	req := search.SearchRequest{
		Query:      body.Query,
		Language:   body.Language,
		MaxResults: maxResults,
		Sources:    body.Sources,
	}

	resp, err := h.service.Execute(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, search.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, errorResponse(body.Query, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse(body.Query, err.Error()))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Sources handles GET /api/v1/sources.
func (h *SearchHandler) Sources(c *gin.Context) {
	c.JSON(http.StatusOK, SourcesResponse{Sources: h.registry.Descriptors()})
}

func errorResponse(query, message string) ErrorResponse {
	return ErrorResponse{
		Status:       search.StatusError,
		Query:        query,
		ResultsCount: 0,
		Results:      []search.SearchResult{},
		Message:      message,
	}
}

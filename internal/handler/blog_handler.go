package handler

import (
	"errors"
	"net/http"

	"github.com/legaldeck/backend/internal/model"
	"github.com/legaldeck/backend/internal/repository"
	"github.com/legaldeck/backend/internal/service"
)

// BlogHandler serves the read-only blog catalog.
type BlogHandler struct {
	blogService service.BlogService
}

func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// List handles GET /api/blog.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.blogService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "blog list", err)
		return
	}
	if articles == nil {
		articles = []*model.BlogArticle{}
	}
	writeJSON(w, http.StatusOK, articles)
}

// Get handles GET /api/blog/{id}.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	article, err := h.blogService.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "article_not_found")
		return
	}
	if err != nil {
		writeServiceError(w, r, "blog get", err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

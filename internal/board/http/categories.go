package http

import (
	"net/http"

	"github.com/guildnet/board/internal/board/service"
	"github.com/guildnet/board/pkg/boardsdk"
	"github.com/guildnet/board/pkg/httpx"
)

type CategoriesHandler struct {
	CategoryService *service.CategoryService
}

// ServeHTTP lists the active categories.
//
//	@Summary		List categories
//	@Description	Returns all active categories ordered by name.
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{array}		boardsdk.CategoryResponse
//	@Failure		500	{object}	boardsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/categories [get].
func (h *CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryService.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]boardsdk.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, boardsdk.CategoryResponse{
			CategoryID: c.ID,
			Name:       c.Name,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

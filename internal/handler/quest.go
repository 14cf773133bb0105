// internal/handler/quest.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/questdeckhq/questdeck/internal/repository"
	"github.com/questdeckhq/questdeck/internal/service"
)

type QuestHandler struct {
	engine *service.VisibilityEngine
}

func NewQuestHandler(engine *service.VisibilityEngine) *QuestHandler {
	return &QuestHandler{engine: engine}
}

type QuestListResponse struct {
	BaseResponse
	Items  interface{} `json:"items"`
	Total  int64       `json:"total"`
	Offset int         `json:"offset"`
	Limit  int         `json:"limit"`
}

// ListQuests returns the catalog page visible to the caller. Anonymous
// callers are served the fixed global-only view.
func (h *QuestHandler) ListQuests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	input := service.ListVisibleInput{
		Filters: repository.QuestFilters{
			Category:  query.Get("category"),
			QuestType: query.Get("type"),
			Search:    query.Get("q"),
		},
	}

	var err error
	if input.Offset, err = parseIntParam(query.Get("offset"), 0); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid offset")
		return
	}
	if input.Limit, err = parseIntParam(query.Get("limit"), 0); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	page, err := h.engine.ListVisible(r.Context(), callerIdentity(r), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, QuestListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        page.Items,
		Total:        page.Total,
		Offset:       page.Offset,
		Limit:        page.Limit,
	})
}

func parseIntParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

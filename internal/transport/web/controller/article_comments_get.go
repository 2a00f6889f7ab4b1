package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/devfeed/internal/command"
	"github.com/jbeshir/devfeed/internal/domain"
)

type ArticleCommentsResponse struct {
	Data     []domain.Comment        `json:"data"`
	Metadata ArticleCommentsMetadata `json:"metadata"`
}

type ArticleCommentsMetadata struct {
	Total int `json:"total"`
}

type ArticleCommentsGet struct {
	CommentsCmd command.Command[command.GetArticleCommentsRequest, []domain.Comment]
}

func (c ArticleCommentsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	articleID, err := articleIDFromVars(r)
	if err != nil {
		logger.ErrorContext(ctx, "invalid article ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	comments, err := c.CommentsCmd.Execute(ctx, command.GetArticleCommentsRequest{ArticleID: articleID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch comments", "error", err, "article_id", articleID)
		w.WriteHeader(statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ArticleCommentsResponse{
		Data:     comments,
		Metadata: ArticleCommentsMetadata{Total: domain.CountComments(comments)},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write comments to response", "error", err)
	}
}

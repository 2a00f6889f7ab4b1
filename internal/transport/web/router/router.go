package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/devfeed/internal/command"
	"github.com/jbeshir/devfeed/internal/domain"
	"github.com/jbeshir/devfeed/internal/session"
	"github.com/jbeshir/devfeed/internal/transport/web/controller"
)

func MakeRouter(
	feed *session.Feed,
	bookmarks *session.BookmarkList,
	exportBookmarksCmd command.Command[command.ExportBookmarksRequest, command.ExportedFeed],
	getCommentsCmd command.Command[command.GetArticleCommentsRequest, []domain.Comment],
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(requestLoggerMiddleware)
	r.Use(corsMiddleware)

	r.Handle("/v1/feed", controller.FeedGet{
		Feed: feed,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/feed/next", controller.FeedLoad{
		Feed:   feed,
		Action: controller.FeedActionNextPage,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/feed/refresh", controller.FeedLoad{
		Feed:   feed,
		Action: controller.FeedActionRefresh,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/feed/articles/{article_id:[0-9]+}/bookmark", controller.FeedBookmarkToggle{
		Feed: feed,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/bookmarks", controller.BookmarksList{
		Bookmarks: bookmarks,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/bookmarks/feed", controller.BookmarksFeed{
		ExportCmd: exportBookmarksCmd,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/bookmarks/{article_id:[0-9]+}", controller.BookmarkRemove{
		Bookmarks: bookmarks,
	}).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/v1/articles/{article_id:[0-9]+}/comments", controller.ArticleCommentsGet{
		CommentsCmd: getCommentsCmd,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}

package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/devfeed/internal/domain"
)

// statusForError maps domain errors to HTTP status codes. Upstream failures are 502, except
// an upstream 404 which passes through; storage and other failures are 500.
func statusForError(err error) int {
	var transportErr *domain.TransportError
	if errors.As(err, &transportErr) {
		if transportErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

func articleIDFromVars(r *http.Request) (int64, error) {
	s := mux.Vars(r)["article_id"]
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse article ID [%s]: %w", s, err)
	}
	return id, nil
}

// Package router wires the HTTP routes of the application: the root
// metadata endpoint and the users subrouter.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yemaster/vtix-ng/internal/httpgzip"
	"github.com/yemaster/vtix-ng/internal/logger"
	"github.com/yemaster/vtix-ng/internal/models"
)

// Router holds the handler dependencies. The skeleton has none beyond
// the metadata literal; a backing store would be added here.
type Router struct {
	meta models.Meta
}

// New returns the fully assembled chi router.
func New() *chi.Mux {
	theRouter := Router{
		meta: models.NewMeta(),
	}

	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		logger.WithRequestID,
		logger.WithAccessLogging,
		httpgzip.Response,
	)

	router.Get(`/`, theRouter.GetRoot)
	router.Mount(`/users`, theRouter.usersRouter())

	return router
}

// GetRoot serves the static application metadata.
func (rt *Router) GetRoot(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, rt.meta)
}

func writeJSON(res http.ResponseWriter, statusCode int, body interface{}) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	if err := json.NewEncoder(res).Encode(body); err != nil {
		logger.Log.Errorw("write response", "error", err)
	}
}

package router

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yemaster/vtix-ng/internal/models"
)

// usersRouter groups the /users routes. The subrouter carries the
// declared "not found" contract as its NotFound handler; no current
// operation performs an existence check, so only unknown paths reach it.
func (rt *Router) usersRouter() chi.Router {
	router := chi.NewRouter()
	router.NotFound(func(res http.ResponseWriter, req *http.Request) {
		writeJSON(res, http.StatusNotFound, models.APIError{
			Code: http.StatusNotFound,
			Msg:  "Not found",
		})
	})

	router.Get(`/{userID}`, rt.GetUser)

	return router
}

// GetUser echoes the numeric path parameter back as {"user_id": n}.
// A segment that does not parse as an integer yields 422.
func (rt *Router) GetUser(res http.ResponseWriter, req *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(req, "userID"), 10, 64)
	if err != nil {
		writeJSON(res, http.StatusUnprocessableEntity, models.APIError{
			Code: http.StatusUnprocessableEntity,
			Msg:  "user_id must be an integer",
		})
		return
	}

	writeJSON(res, http.StatusOK, models.UserResponse{UserID: userID})
}

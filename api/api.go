// Package api exposes the level object store over HTTP. Handlers are thin:
// parameter extraction, a store call, and JSON response mapping. Each handler
// uses the request context, so a disconnected client cancels the in-flight
// database call.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/levelobjects"
	"github.com/a-h/levelobjects/db"
	"github.com/julienschmidt/httprouter"
)

type countResponse struct {
	Count   int64 `json:"count"`
	Success bool  `json:"success"`
}

type objectsResponse struct {
	Objects []db.Object `json:"objects"`
}

type firstIDResponse struct {
	ID int64 `json:"id"`
}

type setObjectRequest struct {
	Version    string `json:"version"`
	ObjectType string `json:"object_type"`
	Position   string `json:"position"`
	Rotation   string `json:"rotation"`
	Scale      string `json:"scale"`
	Collider   string `json:"collider"`
}

func NewRouter(log *slog.Logger, store levelobjects.Store) *httprouter.Router {
	router := &httprouter.Router{
		// No URL fixups: a client hitting the wrong path should get a 404,
		// not a redirect.
		RedirectTrailingSlash: false,
		RedirectFixedPath:     false,

		HandleMethodNotAllowed: true,
		PanicHandler: func(w http.ResponseWriter, r *http.Request, err any) {
			log.Error("panic in handler", slog.Any("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		},
	}

	// create the versioned table if needed and clear it
	router.GET("/prepare", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		count, clean, err := store.Prepare(r.Context(), r.URL.Query().Get("version"))
		if err != nil {
			failErr(log, w, err)
			return
		}
		if !clean {
			log.Warn("prepare left residual rows", slog.Int64("count", count))
		}
		respondJSON(log, w, countResponse{Count: count, Success: clean})
	})

	// list every object stored for a version
	router.GET("/get-objects", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		objects, err := store.List(r.Context(), r.URL.Query().Get("version"))
		if err != nil {
			failErr(log, w, err)
			return
		}
		if objects == nil {
			objects = []db.Object{}
		}
		respondJSON(log, w, objectsResponse{Objects: objects})
	})

	// fetch a single object by id
	router.GET("/get-object", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		q := r.URL.Query()
		id, err := strconv.ParseInt(q.Get("id"), 10, 64)
		if err != nil {
			failCode(w, http.StatusBadRequest, fmt.Sprintf("invalid id %q", q.Get("id")))
			return
		}
		o, ok, err := store.Get(r.Context(), q.Get("version"), id)
		if err != nil {
			failErr(log, w, err)
			return
		}
		if !ok {
			failErr(log, w, fmt.Errorf("object %d: %w", id, db.ErrNotFound))
			return
		}
		respondJSON(log, w, o)
	})

	// fetch the smallest id stored for a version
	router.GET("/get-first", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		id, ok, err := store.FirstID(r.Context(), r.URL.Query().Get("version"))
		if err != nil {
			failErr(log, w, err)
			return
		}
		if !ok {
			failErr(log, w, fmt.Errorf("no objects: %w", db.ErrNotFound))
			return
		}
		respondJSON(log, w, firstIDResponse{ID: id})
	})

	// insert an object and return the updated row count
	router.POST("/set-object", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req setObjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			failCode(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
			return
		}
		count, err := store.Set(r.Context(), req.Version, db.Fields{
			ObjectType: req.ObjectType,
			Position:   req.Position,
			Rotation:   req.Rotation,
			Scale:      req.Scale,
			Collider:   req.Collider,
		})
		if err != nil {
			failErr(log, w, err)
			return
		}
		respondJSON(log, w, countResponse{Count: count, Success: true})
	})

	return router
}

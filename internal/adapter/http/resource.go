package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// The helpers below bind one use case method to an http.HandlerFunc. The
// entity name only shapes the not-found and delete messages.

func list[T any](h *Handler, entity string, fn func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fn(r.Context())
		if err != nil {
			h.fail(w, r, entity, err)
			return
		}
		h.respond(w, r, http.StatusOK, items)
	}
}

// scoped lists the children of the owner named by the param URL parameter.
func scoped[T any](h *Handler, owner, param string, fn func(context.Context, string) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fn(r.Context(), chi.URLParam(r, param))
		if err != nil {
			h.fail(w, r, owner, err)
			return
		}
		h.respond(w, r, http.StatusOK, items)
	}
}

func get[T any](h *Handler, entity string, fn func(context.Context, string) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := fn(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			h.fail(w, r, entity, err)
			return
		}
		h.respond(w, r, http.StatusOK, item)
	}
}

func create[T, In any](h *Handler, entity string, fn func(context.Context, In) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if !h.decode(w, r, &in) {
			return
		}
		item, err := fn(r.Context(), in)
		if err != nil {
			h.fail(w, r, entity, err)
			return
		}
		h.respond(w, r, http.StatusCreated, item)
	}
}

func update[T, In any](h *Handler, entity string, fn func(context.Context, string, In) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if !h.decode(w, r, &in) {
			return
		}
		item, err := fn(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			h.fail(w, r, entity, err)
			return
		}
		h.respond(w, r, http.StatusOK, item)
	}
}

func remove(h *Handler, entity string, fn func(context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r.Context(), chi.URLParam(r, "id")); err != nil {
			h.fail(w, r, entity, err)
			return
		}
		h.respond(w, r, http.StatusOK, deleted{Success: true, Message: entity + " deleted successfully"})
	}
}

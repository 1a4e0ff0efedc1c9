package httpadapter

import "github.com/go-chi/chi/v5"

func (h *Handler) campaignRoutes(r chi.Router) {
	uc := h.svc.Campaigns
	r.Get("/", list(h, "Campaign", uc.List))
	r.Post("/", create(h, "Campaign", uc.Create))
	r.Get("/{id}", get(h, "Campaign", uc.Get))
	r.Put("/{id}", update(h, "Campaign", uc.Update))
	r.Delete("/{id}", remove(h, "Campaign", uc.Delete))
}

func (h *Handler) profileRoutes(r chi.Router) {
	uc := h.svc.Profiles
	r.Get("/", list(h, "Profile", uc.List))
	r.Post("/", create(h, "Profile", uc.Create))
	r.Get("/{id}", get(h, "Profile", uc.Get))
	r.Put("/{id}", update(h, "Profile", uc.Update))
	r.Delete("/{id}", remove(h, "Profile", uc.Delete))
}

func (h *Handler) experimentRoutes(r chi.Router) {
	uc := h.svc.Experiments
	r.Get("/", list(h, "Experiment", uc.List))
	r.Post("/", create(h, "Experiment", uc.Create))
	r.Get("/campaign/{campaignId}", scoped(h, "Campaign", "campaignId", uc.ByCampaign))
	r.Get("/{id}", get(h, "Experiment", uc.Get))
	r.Put("/{id}", update(h, "Experiment", uc.Update))
	r.Delete("/{id}", remove(h, "Experiment", uc.Delete))
}

func (h *Handler) brandRoutes(r chi.Router) {
	uc := h.svc.Brands
	r.Get("/", list(h, "Brand", uc.List))
	r.Post("/", create(h, "Brand", uc.Create))
	r.Get("/{id}", get(h, "Brand", uc.Get))
	r.Get("/{id}/offers", scoped(h, "Brand", "id", uc.Offers))
	r.Put("/{id}", update(h, "Brand", uc.Update))
	r.Delete("/{id}", remove(h, "Brand", uc.Delete))
}

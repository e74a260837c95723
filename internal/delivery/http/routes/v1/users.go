package v1

import "github.com/gofiber/fiber/v3"

func RegisterUsers(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Resume != nil {
		h.Resume.RegisterRoutes(r)
	}
	if h.UserSkill != nil {
		h.UserSkill.RegisterRoutes(r)
	}
	if h.Match != nil {
		h.Match.RegisterRoutes(r)
	}
	if h.Gap != nil {
		h.Gap.RegisterRoutes(r)
	}
	if h.Recommendation != nil {
		h.Recommendation.RegisterRoutes(r)
	}
}

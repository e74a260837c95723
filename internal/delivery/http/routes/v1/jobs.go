package v1

import "github.com/gofiber/fiber/v3"

func RegisterJobs(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(r)
	}
}

package v1

import (
	"skill-gap/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Resume         *handler.ResumeHandler
	UserSkill      *handler.UserSkillHandler
	Match          *handler.MatchHandler
	Gap            *handler.GapHandler
	Recommendation *handler.JobRecommendationHandler
	Skill          *handler.SkillHandler
	Jobs           *handler.JobsHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	RegisterUsers(r.Group("/users"), h)
	RegisterJobs(r.Group("/jobs"), h)

	if h.Skill != nil {
		h.Skill.RegisterRoutes(r)
	}
}

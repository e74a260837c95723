package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"skill-gap/internal/config"
	"skill-gap/internal/delivery/http/handler"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/delivery/http/routes"
	v1 "skill-gap/internal/delivery/http/routes/v1"
	"skill-gap/internal/repository"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		BodyLimit: int(c.Config.Engine.MaxUploadBytes) + 1<<20,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := newLogger(cfg)

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	documents := repository.NewPostgresDocumentRepository(c.DB)
	userSkills := repository.NewPostgresUserSkillRepository(c.DB)
	jobs := repository.NewPostgresJobRepository(c.DB)
	jobSkills := repository.NewPostgresJobSkillRepository(c.DB)
	matches := repository.NewPostgresJobMatchRepository(c.DB)

	resumeUC := usecase.NewResumeUsecase(documents, userSkills, c.Pipeline, c.Extractor, c.Cache, c.Logger)
	userSkillUC := usecase.NewUserSkillUsecase(userSkills, c.Taxonomy, c.Cache, c.Logger)
	matchingUC := usecase.NewMatchingUsecase(jobs, jobSkills, userSkills, matches, c.Taxonomy, c.Cache, c.Logger)
	gapUC := usecase.NewGapUsecase(jobs, jobSkills, userSkills, c.Taxonomy, c.Recommender, c.Cache, c.Logger)
	recommendationUC := usecase.NewJobRecommendationUsecase(jobs, jobSkills, userSkills, c.Taxonomy, c.Config.Engine.RankingLimit, c.Cache, c.Logger)
	skillUC := usecase.NewSkillUsecase(c.Taxonomy)
	jobListUC := usecase.NewJobListUsecase(jobs, jobSkills)

	handlers := v1.Handlers{
		Resume:         handler.NewResumeHandler(resumeUC),
		UserSkill:      handler.NewUserSkillHandler(userSkillUC),
		Match:          handler.NewMatchHandler(matchingUC),
		Gap:            handler.NewGapHandler(gapUC),
		Recommendation: handler.NewJobRecommendationHandler(recommendationUC),
		Skill:          handler.NewSkillHandler(skillUC),
		Jobs:           handler.NewJobsHandler(jobListUC),
	}

	routes.NewRegistry(handler.NewHealthHandler(c.DB, c.Cache), handlers).Register(app)
}

func newLogger(cfg config.Config) *log.Logger {
	prefix := strings.TrimSpace(cfg.App.AppName)
	if prefix != "" {
		prefix += " "
	}
	return log.New(os.Stdout, prefix, log.LstdFlags|log.Lmsgprefix)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

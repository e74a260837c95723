package usecase

import (
	"context"
	"errors"
	"log"

	"skill-gap/internal/domain/taxonomy"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrSkillNotFound      = errors.New("skill not found")
	ErrInvalidProficiency = errors.New("invalid proficiency")
	ErrInvalidInput       = errors.New("invalid input")
)

type AddUserSkillInput struct {
	SkillID         uuid.UUID
	Proficiency     float64
	YearsExperience *float64
	Verified        bool
}

type UserSkillItem struct {
	SkillID         uuid.UUID `json:"skill_id"`
	SkillName       string    `json:"skill_name"`
	Category        string    `json:"category"`
	Proficiency     float64   `json:"proficiency"`
	Confidence      float64   `json:"confidence"`
	Source          string    `json:"source"`
	Verified        bool      `json:"verified"`
	YearsExperience *float64  `json:"years_experience,omitempty"`
}

type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error)
	AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (UserSkillItem, error)
	RemoveUserSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error
}

type UserSkill struct {
	repo   repository.UserSkillRepository
	tax    *taxonomy.Taxonomy
	cache  ResultCache
	logger *log.Logger
}

func NewUserSkillUsecase(repo repository.UserSkillRepository, tax *taxonomy.Taxonomy, cache ResultCache, logger *log.Logger) *UserSkill {
	return &UserSkill{repo: repo, tax: tax, cache: cache, logger: logger}
}

func (u *UserSkill) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error) {
	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, u.toItem(it))
	}
	return out, nil
}

// AddUserSkill records a manually entered skill. Manual entries carry
// full confidence, verified ones additionally pin the row against
// extraction overwrites.
func (u *UserSkill) AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (UserSkillItem, error) {
	if in.SkillID == uuid.Nil {
		return UserSkillItem{}, ErrInvalidInput
	}
	if in.Proficiency < 0 || in.Proficiency > 100 {
		return UserSkillItem{}, ErrInvalidProficiency
	}
	if in.YearsExperience != nil && *in.YearsExperience < 0 {
		return UserSkillItem{}, ErrInvalidInput
	}
	if u.tax != nil {
		if _, ok := u.tax.ByID(in.SkillID); !ok {
			return UserSkillItem{}, ErrSkillNotFound
		}
	}

	source := repository.SourceManual
	if in.Verified {
		source = repository.SourceVerified
	}

	saved, err := u.repo.Upsert(ctx, repository.UserSkill{
		ID:              uuid.New(),
		UserID:          userID,
		SkillID:         in.SkillID,
		Proficiency:     in.Proficiency,
		Confidence:      1.0,
		Source:          source,
		Verified:        in.Verified,
		YearsExperience: in.YearsExperience,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return UserSkillItem{}, ErrSkillNotFound
		}
		return UserSkillItem{}, ErrInternal
	}

	u.invalidate(ctx, userID)
	return u.toItem(saved), nil
}

func (u *UserSkill) RemoveUserSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error {
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, userID, skillID); err != nil {
		if errors.Is(err, repository.ErrUserSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	u.invalidate(ctx, userID)
	return nil
}

func (u *UserSkill) invalidate(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateUserResults(ctx, userID.String()); err != nil && u.logger != nil {
		u.logger.Printf("[UserSkill] cache invalidation failed user=%s err=%v", userID, err)
	}
}

func (u *UserSkill) toItem(it repository.UserSkill) UserSkillItem {
	item := UserSkillItem{
		SkillID:         it.SkillID,
		Proficiency:     it.Proficiency,
		Confidence:      it.Confidence,
		Source:          string(it.Source),
		Verified:        it.Verified,
		YearsExperience: it.YearsExperience,
	}
	if u.tax != nil {
		if s, ok := u.tax.ByID(it.SkillID); ok {
			item.SkillName = s.Name
			item.Category = s.Category
		}
	}
	return item
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type ResultCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	InvalidateUserResults(ctx context.Context, userID string) error
}

func MatchCacheKey(userID, jobID uuid.UUID) string {
	return "match:" + userID.String() + ":" + jobID.String()
}

func GapsCacheKey(userID, jobID uuid.UUID) string {
	return "gaps:" + userID.String() + ":" + jobID.String()
}

func RecommendationsCacheKey(userID uuid.UUID, limit int) string {
	return "recommendations:" + userID.String() + ":" + strconv.Itoa(limit)
}

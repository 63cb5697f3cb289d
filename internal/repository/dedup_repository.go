package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/translate-bot/internal/domain"
)

// TranslationDedupRepository records which languages a translatable unit has
// already been translated into. The check and the mark are separate calls;
// two concurrent pipelines racing on the same unit can both pass the check.
// The interface is kept narrow so the two-call form can later be swapped for
// an atomic add-if-absent without touching pipeline code.
type TranslationDedupRepository interface {
	IsMarked(ctx context.Context, key domain.DedupKey, lang domain.LanguageCode) (bool, error)
	Mark(ctx context.Context, key domain.DedupKey, lang domain.LanguageCode) error
}

type translationDedupRepository struct {
	client    *redis.Client
	retention time.Duration
}

// NewTranslationDedupRepository builds a Redis-backed repository. Each unit
// is a set of language codes under the key "<channel>:<messageTs>"; the
// retention window is refreshed on every mark.
func NewTranslationDedupRepository(client *redis.Client, retention time.Duration) TranslationDedupRepository {
	return &translationDedupRepository{client: client, retention: retention}
}

func (r *translationDedupRepository) IsMarked(ctx context.Context, key domain.DedupKey, lang domain.LanguageCode) (bool, error) {
	return r.client.SIsMember(ctx, key.String(), string(lang)).Result()
}

func (r *translationDedupRepository) Mark(ctx context.Context, key domain.DedupKey, lang domain.LanguageCode) error {
	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, key.String(), string(lang))
	pipe.Expire(ctx, key.String(), r.retention)
	_, err := pipe.Exec(ctx)
	return err
}

package service

import (
	"context"
	"time"

	"fwsr-hub/internal/cache"
	"fwsr-hub/internal/catalog"
	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// explainerTTL is how long a generated pillar explainer stays cached. The
// catalog is static, so a long TTL is fine.
const explainerTTL = 7 * 24 * time.Hour

// ExplainerService serves the public per-pillar explainer texts.
type ExplainerService interface {
	Explain(ctx context.Context, pillarID string) (string, error)
}

type explainerServiceImpl struct {
	cache   domain.Cache
	textGen domain.TextGenerator
	group   singleflight.Group
}

// NewExplainerService creates an ExplainerService with a read-through cache.
func NewExplainerService(cacheClient domain.Cache, textGen domain.TextGenerator) ExplainerService {
	return &explainerServiceImpl{cache: cacheClient, textGen: textGen}
}

func explainerKey(pillarID string) string {
	return cache.GenerateCacheKey("content", "explainer", pillarID)
}

// Explain returns the cached explainer for a pillar, generating it on a
// miss. Concurrent misses for the same pillar are collapsed into one
// generation call. Generation failure falls back to the pillar summary.
func (s *explainerServiceImpl) Explain(ctx context.Context, pillarID string) (string, error) {
	pillar, ok := catalog.PillarByID(pillarID)
	if !ok {
		return "", domain.NewPillarNotFoundError(pillarID)
	}

	if cached, err := s.cache.Get(ctx, explainerKey(pillarID)); err == nil {
		return cached, nil
	} else if err != domain.ErrCacheMiss {
		logger.Get().Warn("Explainer cache read failed",
			zap.String("pillarID", pillarID), zap.Error(err))
	}

	text, err, _ := s.group.Do(pillarID, func() (interface{}, error) {
		generated, genErr := s.textGen.Generate(ctx, domain.TaskPillarExplainer, domain.GenerationPayload{
			PillarID:    pillar.ID,
			PillarTitle: pillar.Title,
		})
		if genErr != nil {
			return nil, genErr
		}
		if setErr := s.cache.Set(ctx, explainerKey(pillarID), generated, explainerTTL); setErr != nil {
			logger.Get().Warn("Explainer cache write failed",
				zap.String("pillarID", pillarID), zap.Error(setErr))
		}
		return generated, nil
	})
	if err != nil {
		logger.Get().Warn("Explainer generation failed, using pillar summary",
			zap.String("pillarID", pillarID), zap.Error(err))
		return pillar.Summary, nil
	}

	return text.(string), nil
}

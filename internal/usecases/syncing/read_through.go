package syncing

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-sync-api/infrastructure/cache"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
	"github.com/vfg2006/funnel-sync-api/pkg/apiErrors"
	"github.com/vfg2006/funnel-sync-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PersistResult é o resultado da gravação de uma entidade buscada na plataforma
type PersistResult[T any] struct {
	Entity    T
	RecordID  int64
	Persisted bool
	Err       error
}

// readPlan descreve uma leitura: chave e TTL no cache, busca remota e gravação por entidade
type readPlan[T any] struct {
	platform domain.Platform
	resource string
	key      string
	ttl      time.Duration
	// prepare roda depois do cache e antes do token; false encerra a leitura com lista vazia
	prepare func(ctx context.Context) (bool, error)
	fetch   func(ctx context.Context, accessToken string) ([]T, error)
	persist func(ctx context.Context, entity T) (int64, error)
	// id identifica a entidade nos logs de falha de gravação
	id func(entity T) string
}

func readThrough[T any](ctx context.Context, s *Service, userID int64, plan readPlan[T]) ([]T, error) {
	logger := log.ForContext(ctx).WithFields(logrus.Fields{
		"user_id":  userID,
		"platform": plan.platform,
		"resource": plan.resource,
	})

	if cached, ok := readCache[T](ctx, s.cache, plan.key, logger); ok {
		s.recorder.CacheHit(plan.resource)
		return cached, nil
	}
	s.recorder.CacheMiss(plan.resource)

	if plan.prepare != nil {
		proceed, err := plan.prepare(ctx)
		if err != nil || !proceed {
			if err != nil {
				logger.WithError(err).Warn("syncing: parent lookup failed, returning empty result")
			}
			return []T{}, nil
		}
	}

	accessToken, err := s.tokens.GetAccessToken(ctx, userID, plan.platform)
	if err != nil {
		return nil, err
	}

	entities, err := plan.fetch(ctx, accessToken)
	if err != nil {
		s.recorder.RemoteFailure(string(plan.platform), plan.resource)
		logger.WithError(err).Error("syncing: remote fetch failed")
		return nil, NewSyncError(ErrRemoteFetchFailed, apiErrors.ErrRemoteFetchFailed, plan.platform, plan.resource, err.Error())
	}
	if entities == nil {
		entities = []T{}
	}

	writeCache(ctx, s.cache, plan.key, entities, plan.ttl, logger)

	results := persistAll(ctx, entities, plan.persist)
	failed := 0
	for _, result := range results {
		if result.Persisted {
			continue
		}

		failed++
		s.recorder.PersistFailure(plan.resource)
		entry := logger.WithError(result.Err)
		if plan.id != nil {
			entry = entry.WithField("entity_id", plan.id(result.Entity))
		}
		entry.Warn("syncing: entity not persisted")
	}

	logger.WithFields(logrus.Fields{
		"fetched": len(entities),
		"failed":  failed,
	}).Debug("syncing: remote read completed")

	return entities, nil
}

// persistAll grava cada entidade de forma independente; uma falha não interrompe as demais
func persistAll[T any](ctx context.Context, entities []T, persist func(context.Context, T) (int64, error)) []PersistResult[T] {
	if persist == nil {
		return nil
	}

	results := make([]PersistResult[T], 0, len(entities))
	for _, entity := range entities {
		recordID, err := persist(ctx, entity)
		results = append(results, PersistResult[T]{
			Entity:    entity,
			RecordID:  recordID,
			Persisted: err == nil,
			Err:       err,
		})
	}

	return results
}

func readCache[T any](ctx context.Context, store cache.Store, key string, logger *logrus.Entry) ([]T, bool) {
	value, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.WithError(err).Warn("syncing: cache read failed, treating as miss")
		}
		return nil, false
	}

	var entities []T
	if err := json.UnmarshalFromString(value, &entities); err != nil {
		logger.WithError(err).Warn("syncing: cached value is not decodable, treating as miss")
		return nil, false
	}

	if entities == nil {
		entities = []T{}
	}

	return entities, true
}

func writeCache[T any](ctx context.Context, store cache.Store, key string, entities []T, ttl time.Duration, logger *logrus.Entry) {
	value, err := json.MarshalToString(entities)
	if err != nil {
		logger.WithError(err).Warn("syncing: failed to encode result for cache")
		return
	}

	if err := store.Set(ctx, key, value, ttl); err != nil {
		logger.WithError(err).Warn("syncing: cache write failed")
	}
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/core/ports"
)

// AnalysisCache abstracts the response cache (Redis) in front of the
// chat-completion provider. Provider calls are slow and billed per token, so
// identical requests within the cache TTL are served from the cache.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (*ports.AnalysisResult, bool, error)
	Set(ctx context.Context, key string, result *ports.AnalysisResult) error
}

type analysisService struct {
	provider ports.AnalysisProvider
	cache    AnalysisCache
	logger   zerolog.Logger
}

// NewAnalysisService returns an AnalysisService implementation.
func NewAnalysisService(provider ports.AnalysisProvider, cache AnalysisCache, logger zerolog.Logger) ports.AnalysisService {
	return &analysisService{provider: provider, cache: cache, logger: logger}
}

func (s *analysisService) AnalyzeDescription(ctx context.Context, description, context string) (*ports.AnalysisResult, error) {
	return s.analyze(ctx, "desc:"+description+"|"+context, func() (*ports.AnalysisResult, error) {
		return s.provider.AnalyzeDescription(ctx, description, context)
	})
}

func (s *analysisService) AnalyzePhoto(ctx context.Context, base64Image, context string) (*ports.AnalysisResult, error) {
	return s.analyze(ctx, "photo:"+base64Image+"|"+context, func() (*ports.AnalysisResult, error) {
		return s.provider.AnalyzePhoto(ctx, base64Image, context)
	})
}

// analyze serves from cache when possible and falls through to the provider.
// Cache failures never fail the request.
func (s *analysisService) analyze(ctx context.Context, key string, call func() (*ports.AnalysisResult, error)) (*ports.AnalysisResult, error) {
	cached, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("analysis cache lookup failed")
	} else if hit {
		s.logger.Debug().Msg("analysis served from cache")
		return cached, nil
	}

	result, err := call()
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, result); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache analysis result")
	}
	return result, nil
}

package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Les-Cavistes/transit-gateway/internal/domain/repository"
	"github.com/Les-Cavistes/transit-gateway/internal/schema"
)

// JourneyUseCase serves route lookups against the journey backend.
type JourneyUseCase struct {
	journeys repository.JourneyRepository
	logger   *zap.Logger
}

func NewJourneyUseCase(journeys repository.JourneyRepository, logger *zap.Logger) *JourneyUseCase {
	return &JourneyUseCase{
		journeys: journeys,
		logger:   logger,
	}
}

// Raw proxies a journey lookup, returning the backend body verbatim.
func (uc *JourneyUseCase) Raw(ctx context.Context, from, to string) ([]byte, error) {
	body, err := uc.journeys.Raw(ctx, from, to)
	if err != nil {
		uc.logger.Error("Journey lookup failed",
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err))
		return nil, err
	}

	return body, nil
}

// Planned computes a validated journey between two coordinate pairs.
func (uc *JourneyUseCase) Planned(ctx context.Context, fromLon, fromLat, toLon, toLat float64) (*schema.JourneysResult, error) {
	result, err := uc.journeys.Planned(ctx, fromLon, fromLat, toLon, toLat)
	if err != nil {
		uc.logger.Error("Journey planning failed", zap.Error(err))
		return nil, err
	}

	return result, nil
}

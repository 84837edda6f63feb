package location

import (
	"context"
	"errors"
	"sync"
	"time"

	"haru-weather/internal/domain/apperr"
	"haru-weather/internal/domain/gateway/api"
	"haru-weather/internal/domain/gateway/geo"
	"haru-weather/internal/domain/model"
	"haru-weather/pkg/log"
)

const (
	positionTimeout = 10 * time.Second
	positionMaxAge  = 5 * time.Minute
)

type locationUseCase struct {
	provider  geo.Provider
	ipGateway api.IPLocationGateway

	mutex     sync.Mutex
	lastFix   model.Coord
	lastFixAt time.Time
}

func NewLocationUseCase(provider geo.Provider, ipGateway api.IPLocationGateway) UseCase {
	return &locationUseCase{
		provider:  provider,
		ipGateway: ipGateway,
	}
}

// CurrentPosition returns a device fix no older than five minutes, asking the
// provider for a fresh one when the cached fix has expired. A fresh request is
// bounded by a ten second timeout.
func (uc *locationUseCase) CurrentPosition() (model.Coord, error) {
	if cached, ok := uc.cachedFix(); ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), positionTimeout)
	defer cancel()

	coord, err := uc.provider.CurrentPosition(ctx)
	if err != nil {
		return model.Coord{}, classifyPositionError(err)
	}

	uc.storeFix(coord)
	return coord, nil
}

// LocationByIP resolves an approximate location from the public IP
func (uc *locationUseCase) LocationByIP() (*model.ResolvedLocation, error) {
	return uc.ipGateway.Lookup()
}

// CheckPermission reports the geolocation permission state without blocking
func (uc *locationUseCase) CheckPermission() model.PermissionState {
	return uc.provider.Permission()
}

// Resolve tries the precise position first and falls back to the IP lookup.
// The fallback failure is consolidated into one error telling the user to
// search by city name instead.
func (uc *locationUseCase) Resolve() (*model.ResolvedLocation, error) {
	coord, gpsErr := uc.CurrentPosition()
	if gpsErr == nil {
		return &model.ResolvedLocation{
			Coord:  coord,
			Source: model.SourceGPS,
		}, nil
	}

	log.Warnf("precise position failed, falling back to IP lookup: %v", gpsErr)

	resolved, ipErr := uc.LocationByIP()
	if ipErr != nil {
		log.Errorf("IP position fallback failed: %v", ipErr)
		return nil, apperr.New(apperr.KindPositionUnavailable, "location.error.both-failed", errors.Join(gpsErr, ipErr))
	}
	return resolved, nil
}

func (uc *locationUseCase) cachedFix() (model.Coord, bool) {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	if uc.lastFixAt.IsZero() || time.Since(uc.lastFixAt) > positionMaxAge {
		return model.Coord{}, false
	}
	return uc.lastFix, true
}

func (uc *locationUseCase) storeFix(coord model.Coord) {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	uc.lastFix = coord
	uc.lastFixAt = time.Now()
}

// classifyPositionError maps provider failures to the user-facing categories.
func classifyPositionError(err error) error {
	switch {
	case errors.Is(err, geo.ErrUnsupported):
		return apperr.New(apperr.KindUnsupported, "location.error.unsupported", err)
	case errors.Is(err, geo.ErrPermissionDenied):
		return apperr.New(apperr.KindPermissionDenied, "location.error.permission-denied", err)
	case errors.Is(err, geo.ErrPositionUnavailable):
		return apperr.New(apperr.KindPositionUnavailable, "location.error.unavailable", err)
	case errors.Is(err, context.DeadlineExceeded):
		return apperr.New(apperr.KindLocationTimeout, "location.error.timeout", err)
	default:
		return apperr.New(apperr.KindPositionUnavailable, "location.error.unavailable", err)
	}
}

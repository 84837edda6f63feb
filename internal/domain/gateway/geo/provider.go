package geo

import (
	"context"
	"errors"

	"haru-weather/internal/domain/model"
)

// Sentinel errors a Provider reports for position failures. The location
// layer maps them onto user-facing classifications.
var (
	ErrPermissionDenied    = errors.New("geolocation permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrUnsupported         = errors.New("geolocation not supported")
)

// Provider yields a precise device position, when the deployment has one.
// Hosts without a positioning source use the unsupported provider and the
// resolver falls through to IP lookup.
type Provider interface {
	// CurrentPosition returns a fresh fix. It honors ctx cancellation.
	CurrentPosition(ctx context.Context) (model.Coord, error)

	// Permission reports the current permission state without blocking.
	Permission() model.PermissionState
}

type staticProvider struct {
	coord model.Coord
}

// NewStaticProvider returns a Provider pinned to a fixed coordinate,
// used for deployments that know where they run.
func NewStaticProvider(coord model.Coord) Provider {
	return &staticProvider{coord: coord}
}

func (p *staticProvider) CurrentPosition(ctx context.Context) (model.Coord, error) {
	select {
	case <-ctx.Done():
		return model.Coord{}, ctx.Err()
	default:
		return p.coord, nil
	}
}

func (p *staticProvider) Permission() model.PermissionState {
	return model.PermissionGranted
}

type unsupportedProvider struct{}

// NewUnsupportedProvider returns a Provider that always reports geolocation
// as unavailable.
func NewUnsupportedProvider() Provider {
	return unsupportedProvider{}
}

func (unsupportedProvider) CurrentPosition(ctx context.Context) (model.Coord, error) {
	return model.Coord{}, ErrUnsupported
}

func (unsupportedProvider) Permission() model.PermissionState {
	return model.PermissionUnsupported
}

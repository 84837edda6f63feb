package location

import (
	"context"
	"errors"
	"testing"

	"haru-weather/internal/domain/apperr"
	"haru-weather/internal/domain/gateway/geo"
	"haru-weather/internal/domain/model"
)

// fakeProvider returns a scripted fix and counts requests.
type fakeProvider struct {
	coord model.Coord
	err   error
	calls int
}

func (p *fakeProvider) CurrentPosition(ctx context.Context) (model.Coord, error) {
	p.calls++
	if p.err != nil {
		return model.Coord{}, p.err
	}
	return p.coord, nil
}

func (p *fakeProvider) Permission() model.PermissionState {
	return model.PermissionGranted
}

// fakeIPGateway returns a scripted IP lookup result.
type fakeIPGateway struct {
	resolved *model.ResolvedLocation
	err      error
	calls    int
}

func (g *fakeIPGateway) Lookup() (*model.ResolvedLocation, error) {
	g.calls++
	return g.resolved, g.err
}

func TestCurrentPositionReturnsProviderFix(t *testing.T) {
	provider := &fakeProvider{coord: model.Coord{Lat: 37.5683, Lon: 126.9778}}
	useCase := NewLocationUseCase(provider, &fakeIPGateway{})

	coord, err := useCase.CurrentPosition()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if coord != provider.coord {
		t.Errorf("unexpected coord %+v", coord)
	}
}

func TestCurrentPositionReusesRecentFix(t *testing.T) {
	provider := &fakeProvider{coord: model.Coord{Lat: 37.5683, Lon: 126.9778}}
	useCase := NewLocationUseCase(provider, &fakeIPGateway{})

	if _, err := useCase.CurrentPosition(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	provider.err = geo.ErrPositionUnavailable
	coord, err := useCase.CurrentPosition()
	if err != nil {
		t.Fatalf("expected the cached fix, got %v", err)
	}
	if coord != provider.coord {
		t.Errorf("unexpected coord %+v", coord)
	}
	if provider.calls != 1 {
		t.Errorf("expected one provider request, got %d", provider.calls)
	}
}

func TestCurrentPositionClassifiesProviderErrors(t *testing.T) {
	tests := []struct {
		name        string
		providerErr error
		wantKind    apperr.Kind
		wantMessage string
	}{
		{
			name:        "unsupported",
			providerErr: geo.ErrUnsupported,
			wantKind:    apperr.KindUnsupported,
			wantMessage: "이 환경은 위치 서비스를 지원하지 않습니다.",
		},
		{
			name:        "permission denied",
			providerErr: geo.ErrPermissionDenied,
			wantKind:    apperr.KindPermissionDenied,
			wantMessage: "위치 권한이 거부되었습니다. 위치 권한을 허용해주세요.",
		},
		{
			name:        "position unavailable",
			providerErr: geo.ErrPositionUnavailable,
			wantKind:    apperr.KindPositionUnavailable,
			wantMessage: "위치 정보를 사용할 수 없습니다.",
		},
		{
			name:        "timeout",
			providerErr: context.DeadlineExceeded,
			wantKind:    apperr.KindLocationTimeout,
			wantMessage: "위치 정보 요청이 시간 초과되었습니다.",
		},
		{
			name:        "unknown failure",
			providerErr: errors.New("sensor offline"),
			wantKind:    apperr.KindPositionUnavailable,
			wantMessage: "위치 정보를 사용할 수 없습니다.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewLocationUseCase(&fakeProvider{err: tt.providerErr}, &fakeIPGateway{})

			_, err := useCase.CurrentPosition()
			if err == nil {
				t.Fatal("expected an error")
			}
			if kind := apperr.KindOf(err); kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", kind, tt.wantKind)
			}
			if got := apperr.UserMessage(err); got != tt.wantMessage {
				t.Errorf("message = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestResolvePrefersPrecisePosition(t *testing.T) {
	provider := &fakeProvider{coord: model.Coord{Lat: 37.5683, Lon: 126.9778}}
	ipGateway := &fakeIPGateway{}
	useCase := NewLocationUseCase(provider, ipGateway)

	resolved, err := useCase.Resolve()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if resolved.Source != model.SourceGPS {
		t.Errorf("source = %q, want %q", resolved.Source, model.SourceGPS)
	}
	if resolved.Coord != provider.coord {
		t.Errorf("unexpected coord %+v", resolved.Coord)
	}
	if ipGateway.calls != 0 {
		t.Error("expected no IP lookup when the precise position succeeds")
	}
}

func TestResolveFallsBackToIPLookup(t *testing.T) {
	ipGateway := &fakeIPGateway{
		resolved: &model.ResolvedLocation{
			Coord:   model.Coord{Lat: 37.5665, Lon: 126.978},
			City:    "Seoul",
			Country: "South Korea",
			Source:  model.SourceIP,
		},
	}
	useCase := NewLocationUseCase(&fakeProvider{err: geo.ErrPermissionDenied}, ipGateway)

	resolved, err := useCase.Resolve()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if resolved.Source != model.SourceIP {
		t.Errorf("source = %q, want %q", resolved.Source, model.SourceIP)
	}
	if resolved.City != "Seoul" {
		t.Errorf("unexpected city %q", resolved.City)
	}
}

func TestResolveConsolidatesBothFailures(t *testing.T) {
	ipGateway := &fakeIPGateway{err: apperr.New(apperr.KindNetworkUnavailable, "location.error.ip-failed", nil)}
	useCase := NewLocationUseCase(&fakeProvider{err: geo.ErrUnsupported}, ipGateway)

	_, err := useCase.Resolve()
	if err == nil {
		t.Fatal("expected an error when both sources fail")
	}
	if kind := apperr.KindOf(err); kind != apperr.KindPositionUnavailable {
		t.Errorf("kind = %v, want %v", kind, apperr.KindPositionUnavailable)
	}
	if got := apperr.UserMessage(err); got != "위치 정보를 가져올 수 없습니다. 직접 도시를 검색해주세요." {
		t.Errorf("unexpected message %q", got)
	}
}

func TestCheckPermissionDelegatesToProvider(t *testing.T) {
	useCase := NewLocationUseCase(geo.NewUnsupportedProvider(), &fakeIPGateway{})

	if state := useCase.CheckPermission(); state != model.PermissionUnsupported {
		t.Errorf("state = %q, want %q", state, model.PermissionUnsupported)
	}
}

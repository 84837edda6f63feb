package api

import (
	"errors"

	"haru-weather/internal/domain/apperr"
	"haru-weather/internal/domain/model"
	"haru-weather/internal/domain/model/external"
	"haru-weather/pkg/http"
)

// IPLocationGateway resolves an approximate location from the caller's
// public IP address.
type IPLocationGateway interface {
	Lookup() (*model.ResolvedLocation, error)
}

type ipapiGateway struct {
	httpClient *http.Client
}

// NewIPLocationGateway creates an IPLocationGateway backed by ipapi.co.
func NewIPLocationGateway(baseURL string) IPLocationGateway {
	return &ipapiGateway{
		httpClient: http.NewHttpClient(baseURL, http.ClientOptions{
			Logger: http.ZapHTTPLogger{},
		}),
	}
}

func (g *ipapiGateway) Lookup() (*model.ResolvedLocation, error) {
	successResp, _, _, err := g.httpClient.Request().
		WithPath("/json/").
		WithSuccessResp(&external.IPLocationResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, apperr.New(apperr.KindNetworkUnavailable, "location.error.ip-failed", err)
	}

	body := successResp.(*external.IPLocationResponse)
	if body.Error {
		return nil, apperr.New(apperr.KindNetworkUnavailable, "location.error.ip-failed", errors.New(body.Reason))
	}

	return &model.ResolvedLocation{
		Coord:   model.Coord{Lat: body.Latitude, Lon: body.Longitude},
		City:    body.City,
		Country: body.CountryName,
		Source:  model.SourceIP,
	}, nil
}

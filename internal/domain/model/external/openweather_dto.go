package external

// GeoDirectResponse is one entry of the geocoding direct-search endpoint.
type GeoDirectResponse struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state"`
}

// DisplayName prefers the localized city name for lang, falling back to the
// canonical name when no translation exists.
func (r GeoDirectResponse) DisplayName(lang string) string {
	if localized, ok := r.LocalNames[lang]; ok && localized != "" {
		return localized
	}
	return r.Name
}

// APIErrorResponse is the upstream weather API error body. Cod arrives as a
// string or a number depending on the endpoint.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

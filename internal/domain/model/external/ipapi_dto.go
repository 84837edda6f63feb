package external

// IPLocationResponse is the ipapi.co lookup body. Error and Reason are set
// when the service declines the request despite a 200 status.
type IPLocationResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	City        string  `json:"city"`
	CountryName string  `json:"country_name"`
	Error       bool    `json:"error"`
	Reason      string  `json:"reason"`
}

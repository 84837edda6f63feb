package model

// KeyUsage reports the stored size of one logical key.
type KeyUsage struct {
	Key           string `json:"key"`
	Size          int64  `json:"size"`
	SizeFormatted string `json:"sizeFormatted"`
}

// UsageReport summarizes the persistent store footprint per key.
type UsageReport struct {
	Total          int64               `json:"total"`
	TotalFormatted string              `json:"totalFormatted"`
	Items          map[string]KeyUsage `json:"items"`
}

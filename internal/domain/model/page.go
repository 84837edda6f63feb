package model

// PageMeta describes one named page of the routing surface.
type PageMeta struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Title string `json:"title"`
}

package docs

import (
	"encoding/json"
	"testing"
)

func TestSwaggerDocumentCoversRoutes(t *testing.T) {
	var doc struct {
		BasePath    string                     `json:"basePath"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger document is not valid JSON: %v", err)
	}

	if doc.BasePath != "/haru" {
		t.Errorf("basePath = %q, want /haru", doc.BasePath)
	}
	if len(doc.Paths) == 0 {
		t.Fatal("swagger document has no paths")
	}
	for _, path := range []string{
		"/session",
		"/session/weather",
		"/session/search",
		"/favorites",
		"/favorites/{id}",
		"/theme/toggle",
		"/pages",
		"/location/resolve",
		"/storage/usage",
		"/feedback",
	} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("path %s missing from swagger document", path)
		}
	}
	for _, def := range []string{
		"model.SessionSnapshot",
		"model.Favorite",
		"model.CitySuggestion",
		"entity.Feedback",
	} {
		if _, ok := doc.Definitions[def]; !ok {
			t.Errorf("definition %s missing from swagger document", def)
		}
	}
}

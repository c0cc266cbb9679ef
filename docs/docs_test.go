package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}

	if doc.Info.Title != "Task Dashboard API" {
		t.Errorf("title = %q", doc.Info.Title)
	}
	for _, p := range []string{
		"/api/v1/dashboard",
		"/api/v1/dashboard/tasks",
		"/api/v1/dashboard/tasks/{id}",
		"/api/v1/dashboard/edit",
		"/api/v1/dashboard/notifications/{kind}",
		"/health",
	} {
		if _, ok := doc.Paths[p]; !ok {
			t.Errorf("missing path %s", p)
		}
	}
}

package dotpath

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"simple key", "port", []string{"port"}},
		{"dotted", "server.port", []string{"server", "port"}},
		{"bracket index", "users[1].name", []string{"users", "1", "name"}},
		{"dotted index", "users.1.name", []string{"users", "1", "name"}},
		{"trailing bracket", "tags[0]", []string{"tags", "0"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.path)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestSetCreatesIntermediateContainers(t *testing.T) {
	root := map[string]any{}

	if err := Set(root, "server.port", 8080); err != nil {
		t.Fatalf("Set server.port: %v", err)
	}
	if err := Set(root, "server.host", "localhost"); err != nil {
		t.Fatalf("Set server.host: %v", err)
	}
	if err := Set(root, "users[1]", "bob"); err != nil {
		t.Fatalf("Set users[1]: %v", err)
	}

	server, ok := root["server"].(map[string]any)
	if !ok {
		t.Fatalf("expected server to be a map, got %T", root["server"])
	}
	if server["port"] != 8080 || server["host"] != "localhost" {
		t.Errorf("unexpected server contents: %v", server)
	}

	users, ok := root["users"].([]any)
	if !ok {
		t.Fatalf("expected users to be a slice, got %T", root["users"])
	}
	if len(users) != 2 || users[0] != nil || users[1] != "bob" {
		t.Errorf("unexpected users contents: %v", users)
	}
}

func TestSetDeepNesting(t *testing.T) {
	root := map[string]any{}
	if err := Set(root, "a.b[2].c", true); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := Get(root, "a.b.2.c")
	if !ok || got != true {
		t.Errorf("Get(a.b.2.c) = %v, %v; want true, true", got, ok)
	}
}

func TestSetOverwritesScalar(t *testing.T) {
	root := map[string]any{"mode": "fast"}
	if err := Set(root, "mode", "slow"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if root["mode"] != "slow" {
		t.Errorf("expected overwrite, got %v", root["mode"])
	}
}

func TestSetErrors(t *testing.T) {
	tests := []struct {
		name string
		root map[string]any
		path string
	}{
		{"empty path", map[string]any{}, ""},
		{"numeric root", map[string]any{}, "0.name"},
		{"key into slice", map[string]any{"tags": []any{"a"}}, "tags.name"},
		{"index into map", map[string]any{"server": map[string]any{}}, "server[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Set(tt.root, tt.path, 1); err == nil {
				t.Errorf("Set(%q) expected error, got nil", tt.path)
			}
		})
	}
}

func TestGet(t *testing.T) {
	root := map[string]any{
		"server": map[string]any{"port": 8080},
		"tags":   []any{"a", "b"},
	}

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{"nested key", "server.port", 8080, true},
		{"slice element", "tags[1]", "b", true},
		{"missing key", "server.host", nil, false},
		{"index out of range", "tags[5]", nil, false},
		{"key into scalar", "server.port.x", nil, false},
		{"empty path", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Get(root, tt.path)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Get(%q) = %v, %v; want %v, %v", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSliceGrowthIsVisibleFromRoot(t *testing.T) {
	root := map[string]any{}
	for i := 0; i < 5; i++ {
		if err := Set(root, "items[4].n", i); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	got, ok := Get(root, "items[4].n")
	if !ok || got != 4 {
		t.Errorf("Get(items[4].n) = %v, %v; want 4, true", got, ok)
	}
}

package deepclone

import "testing"

func TestCloneMapIsIndependent(t *testing.T) {
	src := map[string]any{
		"mode": "fast",
		"limits": map[string]any{
			"max": 10,
		},
		"tags": []any{"a", "b"},
	}

	got, ok := Clone(src).(map[string]any)
	if !ok {
		t.Fatalf("Clone returned %T, want map[string]any", Clone(src))
	}

	got["mode"] = "slow"
	got["limits"].(map[string]any)["max"] = 99
	got["tags"].([]any)[0] = "z"

	if src["mode"] != "fast" {
		t.Errorf("source mode mutated: %v", src["mode"])
	}
	if src["limits"].(map[string]any)["max"] != 10 {
		t.Errorf("source nested map mutated: %v", src["limits"])
	}
	if src["tags"].([]any)[0] != "a" {
		t.Errorf("source slice mutated: %v", src["tags"])
	}
}

func TestCloneScalarsPassThrough(t *testing.T) {
	for _, v := range []any{nil, 42, 3.14, "x", true} {
		if got := Clone(v); got != v {
			t.Errorf("Clone(%v) = %v", v, got)
		}
	}
}

func TestStrings(t *testing.T) {
	if Strings(nil) != nil {
		t.Error("Strings(nil) should be nil")
	}

	src := []string{"-f", "--force"}
	got := Strings(src)
	got[0] = "-x"
	if src[0] != "-f" {
		t.Errorf("source mutated: %v", src)
	}
}

package determinism

import "testing"

func TestGenerateIsStable(t *testing.T) {
	g := NewIDGenerator("line")

	a := g.Generate("poster", "A2")
	b := g.Generate("poster", "A2")
	if a != b {
		t.Errorf("same parts gave %s and %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("expected 16 hex chars, got %q", a)
	}

	tests := []struct {
		name string
		id   StableID
	}{
		{"different parts", g.Generate("poster", "A1")},
		{"parts are separated", g.Generate("posterA2")},
		{"namespaced", NewIDGenerator("other").Generate("poster", "A2")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.id == a {
				t.Errorf("expected a different ID than %s", a)
			}
		})
	}
}

func TestGenerateFor(t *testing.T) {
	type cfg struct {
		Size     string `json:"size"`
		Quantity int    `json:"quantity"`
	}
	g := NewIDGenerator("line")

	a, err := g.GenerateFor("poster", cfg{Size: "A2", Quantity: 50})
	if err != nil {
		t.Fatal(err)
	}
	b, _ := g.GenerateFor("poster", cfg{Size: "A2", Quantity: 50})
	c, _ := g.GenerateFor("poster", cfg{Size: "A2", Quantity: 51})
	if a != b {
		t.Errorf("equal values hashed differently: %s %s", a, b)
	}
	if a == c {
		t.Error("different values hashed equally")
	}

	if _, err := g.GenerateFor("bad", make(chan int)); err == nil {
		t.Error("expected error for unmarshalable value")
	}
}

func TestContentHash(t *testing.T) {
	h := ComputeHash([]byte("version = \"2024.1\""))
	if h != ComputeHash([]byte("version = \"2024.1\"")) {
		t.Error("hash is not deterministic")
	}
	if len(h.Hex()) != 64 || len(h.Short()) != 12 {
		t.Errorf("unexpected hex lengths %d %d", len(h.Hex()), len(h.Short()))
	}
}

package main

import (
	"testing"

	"paintbox/config"
	"paintbox/scene"
)

func TestNewSceneMatchesID(t *testing.T) {
	cfg := config.Default()
	for _, id := range scene.IDs {
		if got := newScene(id, cfg).Name(); got != id.String() {
			t.Fatalf("newScene(%s).Name() = %q", id, got)
		}
	}
}

func TestParseSide(t *testing.T) {
	if s, err := parseSide("left"); err != nil || s != scene.FacingLeft {
		t.Fatalf("left: %v %v", s, err)
	}
	if _, err := parseSide("up"); err == nil {
		t.Fatal("expected error for up")
	}
}

func TestOrDefault(t *testing.T) {
	if orDefault(0, 300) != 300 || orDefault(64, 300) != 64 {
		t.Fatal("orDefault")
	}
}

package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSceneFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}
	return path
}

func TestLoadScene(t *testing.T) {
	path := writeSceneFile(t, `{
		"name": "two_walls",
		"walls": [
			{"x1": 100, "y1": 100, "x2": 100, "y2": 300},
			{"x1": 600, "y1": 150, "x2": 600, "y2": 450}
		]
	}`)

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load scene: %v", err)
	}

	if len(sc.Walls()) != 2 {
		t.Fatalf("Expected 2 walls, got %d", len(sc.Walls()))
	}

	first := sc.Walls()[0]
	if first.A.X != 100 || first.A.Y != 100 || first.B.X != 100 || first.B.Y != 300 {
		t.Errorf("First wall loaded wrong: %+v", first)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatalf("Expected an error for a missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeSceneFile(t, `{"walls": [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Expected an error for malformed JSON")
	}
}

func TestLoadRejectsEmptyScene(t *testing.T) {
	path := writeSceneFile(t, `{"name": "empty", "walls": []}`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Expected validation to reject a scene with no walls")
	}
}

func TestLoadRejectsZeroLengthWall(t *testing.T) {
	path := writeSceneFile(t, `{
		"walls": [{"x1": 50, "y1": 50, "x2": 50, "y2": 50}]
	}`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Expected validation to reject a zero-length wall")
	}
}

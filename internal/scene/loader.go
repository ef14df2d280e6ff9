package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/lightbox/internal/geom"
)

// WallData is one wall record in a scene file
type WallData struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// SceneData represents the loaded scene configuration
type SceneData struct {
	Name  string     `json:"name"`
	Walls []WallData `json:"walls"`
}

// Load loads a scene from a JSON file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	var sceneData SceneData
	if err := json.Unmarshal(data, &sceneData); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	if err := validateSceneData(&sceneData); err != nil {
		return nil, fmt.Errorf("invalid scene data in %s: %w", path, err)
	}

	walls := make([]geom.Segment, len(sceneData.Walls))
	for i, w := range sceneData.Walls {
		walls[i] = geom.Segment{
			A: geom.Point{X: w.X1, Y: w.Y1},
			B: geom.Point{X: w.X2, Y: w.Y2},
		}
	}

	return New(walls), nil
}

// validateSceneData checks if the scene data is valid
func validateSceneData(data *SceneData) error {
	if len(data.Walls) == 0 {
		return fmt.Errorf("scene has no walls")
	}

	for i, w := range data.Walls {
		for _, v := range []float64{w.X1, w.Y1, w.X2, w.Y2} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("wall %d has a non-finite coordinate", i)
			}
		}
		if w.X1 == w.X2 && w.Y1 == w.Y2 {
			return fmt.Errorf("wall %d has zero length: (%g, %g)", i, w.X1, w.Y1)
		}
	}

	return nil
}

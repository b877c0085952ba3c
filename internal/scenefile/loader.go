// Package scenefile loads canvas scenes described in YAML.
//
// A scene is a list of objects. Groups list their members under objects
// and are laid out as they are built, innermost first, exactly as if the
// tree had been assembled with canvas.NewGroup.
package scenefile

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and builds the scene at path.
func Load(path string) (*Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpError{
			Op:   "scenefile.load",
			Kind: KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return Parse(path, b)
}

// Parse builds a scene from YAML data. path is only used in errors.
func Parse(path string, data []byte) (*Scene, error) {
	var dto YAMLScene
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, &OpError{
			Op:   "scenefile.parse",
			Kind: KindInvalidScene,
			Path: path,
			Err:  err,
		}
	}
	return Build(path, dto)
}

package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// FogShader darkens the view, heavier toward the edges
	FogShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if FogShader != nil {
		return nil
	}

	fogSrc, err := shaderFS.ReadFile("shaders/fog.kage")
	if err != nil {
		return err
	}
	FogShader, err = ebiten.NewShader(fogSrc)
	if err != nil {
		return err
	}

	return nil
}

package resources

import (
	"embed"
	"fmt"
	"os"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	iconDir      = "icons/"
	characterDir = "character/"

	// PausedIcon is the tray icon shown while the cycle is paused.
	PausedIcon = "paused"
	// DefaultCharacter is the bundled overlay image.
	DefaultCharacter = "tatsu_icon_flying_dragon.png"
)

//go:embed icons/*.png
var iconFS embed.FS

//go:embed character/*.png
var characterFS embed.FS

var iconCache sync.Map
var characterCache sync.Map

// Icon returns the tray icon for a phase symbol name or PausedIcon.
func Icon(symbolName string) (fyne.Resource, error) {
	return loadResource(iconFS, iconDir+symbolName+".png", &iconCache)
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(symbolName string) fyne.Resource {
	resource, err := Icon(symbolName)
	if err != nil {
		panic(err)
	}
	return resource
}

// Character returns the overlay image. An empty path selects the bundled
// dragon; any other path is read from disk.
func Character(path string) (fyne.Resource, error) {
	if path == "" {
		return loadResource(characterFS, characterDir+DefaultCharacter, &characterCache)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load character image %s: %w", path, err)
	}
	return fyne.NewStaticResource(path, data), nil
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}

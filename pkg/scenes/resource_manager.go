package scenes

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/game"
)

// ResourceManager is responsible for centralized management of game resources.
// It loads the sprite sheet from disk once, slices it into a SpriteLibrary,
// and converts individual sprites into Ebitengine images on demand.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(logger)
//	lib, err := rm.LoadSpriteLibrary("assets/finalproject_gameSprites.png", cfg)
//	if err != nil {
//	    return err
//	}
type ResourceManager struct {
	sourceCache map[string]image.Image         // Cache for decoded files: path -> image
	imageCache  map[image.Image]*ebiten.Image  // Cache for GPU images: source sprite -> Image
	libraries   map[string]*game.SpriteLibrary // Cache for sliced sheets: path -> library
	fontFace    text.Face                      // Fixed-width bitmap face used for HUD and banners
	logger      zerolog.Logger
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager(logger zerolog.Logger) *ResourceManager {
	return &ResourceManager{
		sourceCache: make(map[string]image.Image),
		imageCache:  make(map[image.Image]*ebiten.Image),
		libraries:   make(map[string]*game.SpriteLibrary),
		logger:      logger,
	}
}

// LoadSourceImage loads and decodes an image file, caching the decoded result.
//
// Parameters:
//   - path: The file path to the image resource (e.g., "assets/finalproject_gameSprites.png").
//
// Returns:
//   - The decoded image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadSourceImage(path string) (image.Image, error) {
	if cached, exists := rm.sourceCache[path]; exists {
		return cached, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	rm.sourceCache[path] = img
	rm.logger.Debug().Str("path", path).Stringer("bounds", img.Bounds()).Msg("image loaded")
	return img, nil
}

// LoadSpriteLibrary loads the sprite sheet at path and slices it with cfg's coordinate table.
// Returns an error if the sheet cannot be read or does not contain every rectangle in the table.
func (rm *ResourceManager) LoadSpriteLibrary(path string, cfg *config.GameConfig) (*game.SpriteLibrary, error) {
	if lib, exists := rm.libraries[path]; exists {
		return lib, nil
	}

	sheet, err := rm.LoadSourceImage(path)
	if err != nil {
		return nil, err
	}
	lib, err := game.NewSpriteLibrary(sheet, cfg)
	if err != nil {
		return nil, fmt.Errorf("sprite sheet %s: %w", path, err)
	}

	rm.libraries[path] = lib
	return lib, nil
}

// Image converts a sliced sprite into an Ebitengine image, caching the conversion.
// Returns nil for a nil source.
func (rm *ResourceManager) Image(src image.Image) *ebiten.Image {
	if src == nil {
		return nil
	}
	if cached, exists := rm.imageCache[src]; exists {
		return cached
	}
	img := ebiten.NewImageFromImage(src)
	rm.imageCache[src] = img
	return img
}

// Font returns the fixed-width bitmap face used for all on-screen text.
func (rm *ResourceManager) Font() text.Face {
	if rm.fontFace == nil {
		rm.fontFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return rm.fontFace
}

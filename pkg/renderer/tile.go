package renderer

import "image"

// Tile is a rectangular region of the image rendered as one unit of work.
// Tiles never overlap, so workers can write pixel stats without locking.
type Tile struct {
	Index  int // Position in scan order, also the tile's RNG seed offset
	Bounds image.Rectangle
}

// NewTileGrid divides the image into tiles of at most tileSize pixels per side
func NewTileGrid(width, height, tileSize int) []Tile {
	tiles := make([]Tile, 0, ((width+tileSize-1)/tileSize)*((height+tileSize-1)/tileSize))

	index := 0
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, Tile{
				Index:  index,
				Bounds: image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)),
			})
			index++
		}
	}

	return tiles
}

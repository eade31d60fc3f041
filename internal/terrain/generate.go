package terrain

import (
	"hash/fnv"
	"math"
)

// Thresholds on the layered elevation/moisture noise. Elevation below sea
// level is water, above the ridge line is mountain; dry midlands are desert.
const (
	seaLevel   = 0.38
	ridgeLevel = 0.78
	aridLevel  = 0.34
)

// Generate builds a Width x Height grid from the seed string. The same seed
// always yields the same grid.
func Generate(seed string, width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Seed:   seed,
		Tiles:  make([]Tile, width*height),
	}

	base := hashSeed(seed)
	elevSeed := base
	moistSeed := base ^ 0x9E3779B97F4A7C15

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx, fy := float64(x), float64(y)
			elev := fractalNoise(fx*0.06, fy*0.12, elevSeed, 3)
			moist := fractalNoise(fx*0.04, fy*0.08, moistSeed, 2)

			var t Tile
			switch {
			case elev < seaLevel:
				t = Water
			case elev > ridgeLevel:
				t = Mountain
			case moist < aridLevel:
				t = Desert
			default:
				t = Plains
			}
			g.Tiles[y*width+x] = t
		}
	}
	return g
}

// ClearSite forces the tile at (x, y) and its 4-neighbours to passable land,
// so a configured city is never born on a mountain or surrounded by water.
func (g *Grid) ClearSite(x, y int) {
	g.Set(x, y, Plains)
	g.Set(x-1, y, Plains)
	g.Set(x+1, y, Plains)
	g.Set(x, y-1, Plains)
	g.Set(x, y+1, Plains)
}

func hashSeed(seed string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return h.Sum64()
}

// fractalNoise sums octaves of value noise, normalized to [0, 1].
func fractalNoise(x, y float64, seed uint64, octaves int) float64 {
	var sum, amp, norm float64
	amp = 1
	freq := 1.0
	for i := 0; i < octaves; i++ {
		sum += amp * valueNoise2D(x*freq, y*freq, seed+uint64(i)*0x1000193)
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return sum / norm
}

// valueNoise2D interpolates hashed lattice values with a smoothstep curve.
func valueNoise2D(x, y float64, seed uint64) float64 {
	x0 := int64(math.Floor(x))
	y0 := int64(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	sx := tx * tx * (3 - 2*tx)
	sy := ty * ty * (3 - 2*ty)

	v00 := latticeValue(x0, y0, seed)
	v10 := latticeValue(x0+1, y0, seed)
	v01 := latticeValue(x0, y0+1, seed)
	v11 := latticeValue(x0+1, y0+1, seed)

	top := v00 + (v10-v00)*sx
	bottom := v01 + (v11-v01)*sx
	return top + (bottom-top)*sy
}

// latticeValue hashes an integer lattice point into [0, 1).
func latticeValue(x, y int64, seed uint64) float64 {
	h := seed
	h ^= uint64(x) * 0x9E3779B97F4A7C15
	h = (h << 13) | (h >> 51)
	h ^= uint64(y) * 0xC2B2AE3D27D4EB4F
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	return float64(h%1_000_000) / 1_000_000
}

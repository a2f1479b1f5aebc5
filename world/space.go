// Package world is the collision backend the player sensors query.
//
// Level geometry is a set of axis-aligned cubes. Their top-down footprints live in a
// resolv grid, which narrows a ray down to the cubes whose cells it crosses; a slab
// test against each candidate then yields the entry and exit points of the ray.
package world

import (
	"math"
	"sort"

	"github.com/automoto/skyrunner/shared/gamemath"
	"github.com/automoto/skyrunner/shared/leveldata"
	"github.com/solarlune/resolv"
)

const (
	// gridScale is the number of grid units per world unit.
	gridScale = 16
	// cellSize is the resolv cell size in grid units, one world unit per cell.
	cellSize = 16
	// boundsPadding keeps cubes on the level edge away from the grid border.
	boundsPadding = 1.0
	// DefaultMaxRange is the longest ray the space will trace.
	DefaultMaxRange = 2000.0
	// pushOutPasses bounds how often a body is re-pushed when cubes meet at a corner.
	pushOutPasses = 3

	tagBody  = "Body"
	tagSolid = "solid"
)

// Hit is one intersection between a ray and a cube surface.
type Hit struct {
	Surface  string
	Point    gamemath.Vec3
	Distance float64
}

// Caster is anything that can cast a ray through world geometry.
type Caster interface {
	CastRay(origin, dir gamemath.Vec3) []Hit
}

// Cube is an axis-aligned box with a surface name.
type Cube struct {
	Name string
	Min  gamemath.Vec3
	Max  gamemath.Vec3
}

// Space holds the level cubes and answers ray queries against them.
type Space struct {
	grid     *resolv.Space
	originX  float64
	originY  float64
	gridW    int
	gridH    int
	cubes    []*Cube
	body     *resolv.Object
	MaxRange float64
}

// NewSpace creates an empty space covering the planar bounds, padded by one unit.
func NewSpace(minX, minY, maxX, maxY float64) *Space {
	minX -= boundsPadding
	minY -= boundsPadding
	maxX += boundsPadding
	maxY += boundsPadding

	w := int(math.Ceil((maxX-minX)*gridScale/cellSize)) * cellSize
	h := int(math.Ceil((maxY-minY)*gridScale/cellSize)) * cellSize
	if w < cellSize {
		w = cellSize
	}
	if h < cellSize {
		h = cellSize
	}

	return &Space{
		grid:     resolv.NewSpace(w, h, cellSize, cellSize),
		originX:  minX,
		originY:  minY,
		gridW:    w,
		gridH:    h,
		MaxRange: DefaultMaxRange,
	}
}

// FromLevel builds a space holding every box of a parsed level.
func FromLevel(data *leveldata.LevelData) *Space {
	space := NewSpace(data.MinX, data.MinY, data.MaxX, data.MaxY)
	for _, b := range data.Boxes {
		space.AddCube(b.Name,
			gamemath.Vec3{X: b.MinX, Y: b.MinY, Z: b.MinZ},
			gamemath.Vec3{X: b.MaxX, Y: b.MaxY, Z: b.MaxZ},
		)
	}
	return space
}

// AddCube adds a box spanning min..max. Corners may be given in any order.
func (s *Space) AddCube(name string, min, max gamemath.Vec3) *Cube {
	cube := &Cube{
		Name: name,
		Min:  gamemath.Vec3{X: math.Min(min.X, max.X), Y: math.Min(min.Y, max.Y), Z: math.Min(min.Z, max.Z)},
		Max:  gamemath.Vec3{X: math.Max(min.X, max.X), Y: math.Max(min.Y, max.Y), Z: math.Max(min.Z, max.Z)},
	}

	gx, gy := s.toGrid(cube.Min.X, cube.Min.Y)
	gw := (cube.Max.X - cube.Min.X) * gridScale
	gh := (cube.Max.Y - cube.Min.Y) * gridScale
	obj := resolv.NewObject(gx, gy, gw, gh, tagSolid, name)
	obj.SetShape(resolv.NewRectangle(0, 0, gw, gh))
	obj.Data = cube
	s.grid.Add(obj)

	s.cubes = append(s.cubes, cube)
	return cube
}

// Cubes returns every cube in insertion order.
func (s *Space) Cubes() []*Cube {
	return s.cubes
}

// CastRay returns every surface the ray crosses, nearest first. dir need not be normalized.
// A cube the ray starts inside contributes only its exit point.
func (s *Space) CastRay(origin, dir gamemath.Vec3) []Hit {
	dir = dir.Normalize()
	if dir == (gamemath.Vec3{}) {
		return nil
	}

	var hits []Hit
	for _, cube := range s.candidates(origin, dir) {
		enter, exit, ok := intersectBox(origin, dir, cube.Min, cube.Max)
		if !ok {
			continue
		}
		if enter >= 0 && enter <= s.MaxRange {
			hits = append(hits, Hit{Surface: cube.Name, Point: origin.Add(dir.Scale(enter)), Distance: enter})
		}
		if exit >= 0 && exit > enter && exit <= s.MaxRange {
			hits = append(hits, Hit{Surface: cube.Name, Point: origin.Add(dir.Scale(exit)), Distance: exit})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// PushOut moves a sphere of radius centered at center out of every cube it overlaps.
// Only the planar position changes; heights belong to the jump state machine, so a cube
// reaching no higher than the bottom of the sphere is stepped over instead.
func (s *Space) PushOut(center gamemath.Vec3, radius float64) gamemath.Vec3 {
	if radius <= 0 {
		return center
	}

	nearby := s.Overlapping(center, 2*radius)
	for pass := 0; pass < pushOutPasses; pass++ {
		moved := false
		for _, cube := range nearby {
			if cube.Max.Z <= center.Z-radius || cube.Min.Z >= center.Z+radius {
				continue
			}
			dx, dy, ok := planarPush(center, radius, cube)
			if !ok {
				continue
			}
			center.X += dx
			center.Y += dy
			moved = true
		}
		if !moved {
			break
		}
	}
	return center
}

// Overlapping returns the cubes registered in the grid cells under the square of the
// given half-size around center. It is a broadphase: callers test the cubes themselves.
func (s *Space) Overlapping(center gamemath.Vec3, halfSize float64) []*Cube {
	if s.body == nil {
		s.body = resolv.NewObject(0, 0, 1, 1, tagBody)
		s.grid.Add(s.body)
	}

	s.body.X, s.body.Y = s.toGrid(center.X-halfSize, center.Y-halfSize)
	s.body.W = 2 * halfSize * gridScale
	s.body.H = 2 * halfSize * gridScale
	s.body.Update()

	check := s.body.Check(0, 0, tagSolid)
	if check == nil {
		return nil
	}

	var out []*Cube
	for _, obj := range check.Objects {
		if cube, ok := obj.Data.(*Cube); ok {
			out = append(out, cube)
		}
	}
	return out
}

// planarPush returns the shift that puts the circle of radius around c just outside the
// footprint of cube, or false when they do not overlap.
func planarPush(c gamemath.Vec3, radius float64, cube *Cube) (dx, dy float64, ok bool) {
	px := gamemath.Clamp(c.X, cube.Min.X, cube.Max.X)
	py := gamemath.Clamp(c.Y, cube.Min.Y, cube.Max.Y)
	ox, oy := c.X-px, c.Y-py

	d := math.Hypot(ox, oy)
	if d >= radius {
		return 0, 0, false
	}
	if d > 0 {
		k := (radius - d) / d
		return ox * k, oy * k, true
	}

	// Center inside the footprint: leave through the nearest side.
	toMinX := c.X - cube.Min.X
	toMaxX := cube.Max.X - c.X
	toMinY := c.Y - cube.Min.Y
	toMaxY := cube.Max.Y - c.Y

	switch math.Min(math.Min(toMinX, toMaxX), math.Min(toMinY, toMaxY)) {
	case toMinX:
		return -(toMinX + radius), 0, true
	case toMaxX:
		return toMaxX + radius, 0, true
	case toMinY:
		return 0, -(toMinY + radius), true
	default:
		return 0, toMaxY + radius, true
	}
}

// candidates gathers the cubes registered in the grid cells under the ray's planar span.
func (s *Space) candidates(origin, dir gamemath.Vec3) []*Cube {
	end := origin.Add(dir.Scale(s.MaxRange))

	sx, sy := s.toGrid(origin.X, origin.Y)
	ex, ey := s.toGrid(end.X, end.Y)

	minX := clampInt(int(math.Floor(math.Min(sx, ex)/cellSize))-1, 0, s.gridW/cellSize-1)
	maxX := clampInt(int(math.Floor(math.Max(sx, ex)/cellSize))+1, 0, s.gridW/cellSize-1)
	minY := clampInt(int(math.Floor(math.Min(sy, ey)/cellSize))-1, 0, s.gridH/cellSize-1)
	maxY := clampInt(int(math.Floor(math.Max(sy, ey)/cellSize))+1, 0, s.gridH/cellSize-1)

	// The ray never reaches the grid.
	if math.Max(sx, ex) < 0 || math.Min(sx, ex) > float64(s.gridW) ||
		math.Max(sy, ey) < 0 || math.Min(sy, ey) > float64(s.gridH) {
		return nil
	}

	seen := make(map[*Cube]struct{})
	var out []*Cube
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			cell := s.grid.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				cube, ok := obj.Data.(*Cube)
				if !ok {
					continue
				}
				if _, dup := seen[cube]; dup {
					continue
				}
				seen[cube] = struct{}{}
				out = append(out, cube)
			}
		}
	}
	return out
}

func (s *Space) toGrid(x, y float64) (float64, float64) {
	return (x - s.originX) * gridScale, (y - s.originY) * gridScale
}

// intersectBox is the slab test. It returns the ray parameters where the ray enters and
// leaves the box; enter is negative when the origin is inside.
func intersectBox(origin, dir, min, max gamemath.Vec3) (enter, exit float64, ok bool) {
	enter = math.Inf(-1)
	exit = math.Inf(1)

	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	lo := [3]float64{min.X, min.Y, min.Z}
	hi := [3]float64{max.X, max.Y, max.Z}

	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, 0, false
			}
			continue
		}
		inv := 1 / d[i]
		t1 := (lo[i] - o[i]) * inv
		t2 := (hi[i] - o[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		enter = math.Max(enter, t1)
		exit = math.Min(exit, t2)
	}

	if exit < enter || exit < 0 {
		return 0, 0, false
	}
	return enter, exit, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

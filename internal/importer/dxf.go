package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/toolbox/internal/model"
)

// DefaultDXFUnitsPerMeter assumes drawings in millimeters.
const DefaultDXFUnitsPerMeter = 1000.0

// chainTolerance is the endpoint distance, in drawing units, below which
// two LINE ends are considered connected.
const chainTolerance = 0.01

type point struct{ x, y float64 }

// bounds is an axis-aligned bounding box in drawing units.
type bounds struct {
	minX, minY, maxX, maxY float64
	empty                  bool
}

func newBounds() bounds {
	return bounds{empty: true}
}

func (b *bounds) add(p point) {
	if b.empty {
		*b = bounds{minX: p.x, minY: p.y, maxX: p.x, maxY: p.y}
		return
	}
	b.minX = math.Min(b.minX, p.x)
	b.minY = math.Min(b.minY, p.y)
	b.maxX = math.Max(b.maxX, p.x)
	b.maxY = math.Max(b.maxY, p.y)
}

func (b bounds) size() (float64, float64) {
	return b.maxX - b.minX, b.maxY - b.minY
}

type segment struct {
	start, end point
}

// ImportDXF imports cuts from a DXF file. Each closed shape (LWPOLYLINE,
// CIRCLE, or chain of connected LINEs) becomes one cut request sized by its
// bounding box: the shorter side is the width, the longer side the length.
// unitsPerMeter converts drawing units; zero or less means millimeters.
func ImportDXF(path string, unitsPerMeter float64) ImportResult {
	result := ImportResult{}
	if !model.IsPositive(unitsPerMeter) {
		unitsPerMeter = DefaultDXFUnitsPerMeter
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var shapes []bounds
	var segments []segment
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if len(e.Vertices) < 3 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
				continue
			}
			shapes = append(shapes, lwPolylineBounds(e))
		case *entity.Circle:
			b := newBounds()
			b.add(point{e.Center[0] - e.Radius, e.Center[1] - e.Radius})
			b.add(point{e.Center[0] + e.Radius, e.Center[1] + e.Radius})
			shapes = append(shapes, b)
		case *entity.Line:
			segments = append(segments, segment{
				start: point{e.Start[0], e.Start[1]},
				end:   point{e.End[0], e.End[1]},
			})
		}
	}
	shapes = append(shapes, chainSegments(segments, chainTolerance)...)

	if len(shapes) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	for i, b := range shapes {
		w, h := b.size()
		widthM, lengthM := math.Min(w, h)/unitsPerMeter, math.Max(w, h)/unitsPerMeter
		if widthM < 0.001 || lengthM < 0.001 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f units)", w, h))
			continue
		}
		result.Cuts = append(result.Cuts, model.NewCutRequest(fmt.Sprintf("DXF %d", i+1), widthM, lengthM))
	}

	return result
}

// lwPolylineBounds measures a polyline, sampling bulged segments as arcs.
func lwPolylineBounds(lw *entity.LwPolyline) bounds {
	b := newBounds()
	n := len(lw.Vertices)
	for i := 0; i < n; i++ {
		cur := point{lw.Vertices[i][0], lw.Vertices[i][1]}
		b.add(cur)
		if i < len(lw.Bulges) && math.Abs(lw.Bulges[i]) > 1e-9 {
			next := point{lw.Vertices[(i+1)%n][0], lw.Vertices[(i+1)%n][1]}
			for _, p := range bulgeArcPoints(cur, next, lw.Bulges[i], 32) {
				b.add(p)
			}
		}
	}
	return b
}

// bulgeArcPoints samples the arc between two vertices. The bulge is the
// tangent of a quarter of the included angle; positive bulges run
// counter-clockwise.
func bulgeArcPoints(p1, p2 point, bulge float64, steps int) []point {
	dx, dy := p2.x-p1.x, p2.y-p1.y
	chord := math.Hypot(dx, dy)
	if chord < 1e-9 {
		return []point{p1, p2}
	}

	theta := 4 * math.Atan(bulge)
	radius := chord / (2 * math.Sin(math.Abs(theta)/2))
	// Distance from chord midpoint to center, signed by sweep direction.
	d := radius * math.Cos(theta/2)
	if bulge < 0 {
		d = -d
	}
	mx, my := (p1.x+p2.x)/2, (p1.y+p2.y)/2
	cx, cy := mx-d*dy/chord, my+d*dx/chord

	start := math.Atan2(p1.y-cy, p1.x-cx)
	pts := make([]point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := start + theta*float64(i)/float64(steps)
		pts = append(pts, point{cx + radius*math.Cos(a), cy + radius*math.Sin(a)})
	}
	return pts
}

// chainSegments connects loose segments into closed shapes and returns
// their bounds, largest first. Open chains are dropped.
func chainSegments(segs []segment, tolerance float64) []bounds {
	used := make([]bool, len(segs))
	var shapes []bounds

	for startIdx := range segs {
		if used[startIdx] {
			continue
		}
		used[startIdx] = true
		chain := []point{segs[startIdx].start, segs[startIdx].end}

		for extended := true; extended; {
			extended = false
			tail := chain[len(chain)-1]
			for i, seg := range segs {
				if used[i] {
					continue
				}
				var next point
				switch {
				case pointsClose(tail, seg.start, tolerance):
					next = seg.end
				case pointsClose(tail, seg.end, tolerance):
					next = seg.start
				default:
					continue
				}
				chain = append(chain, next)
				used[i] = true
				extended = true
				break
			}
		}

		if len(chain) < 4 || !pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			continue
		}
		b := newBounds()
		for _, p := range chain {
			b.add(p)
		}
		shapes = append(shapes, b)
	}

	sort.SliceStable(shapes, func(i, j int) bool {
		wi, hi := shapes[i].size()
		wj, hj := shapes[j].size()
		return wi*hi > wj*hj
	})
	return shapes
}

func pointsClose(a, b point, tolerance float64) bool {
	return math.Hypot(a.x-b.x, a.y-b.y) <= tolerance
}

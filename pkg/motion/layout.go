package motion

import "math"

// goldenAngle is ~137.5 degrees in radians, the angle that minimizes
// positional overlap when placing points along a spiral.
const goldenAngle = 137.5 * math.Pi / 180

// NodePosition is the computed placement of one section node. Positions are
// derived, never stored: index i in the output corresponds to section i.
type NodePosition struct {
	X        float64 `json:"x" bson:"x"`
	Y        float64 `json:"y" bson:"y"`
	Scale    float64 `json:"scale" bson:"scale"`
	Rotation float64 `json:"rotation" bson:"rotation"`
	Z        float64 `json:"z" bson:"z"`
}

// NodePositions computes one position per section node according to the
// config's layout algorithm. The canvas is a square viewport; all layouts
// are centered on (canvas/2, canvas/2).
//
// The function is total for all count >= 0 and deterministic: fixed inputs
// produce identical output across calls. count <= 0 yields an empty slice.
// An unrecognized layout type is a config-authoring defect and panics.
func NodePositions(count int, cfg Config, canvas float64) []NodePosition {
	if count <= 0 {
		return []NodePosition{}
	}

	center := canvas / 2

	switch cfg.Layout {
	case LayoutSpiral:
		return spiralPositions(count, cfg, center)
	case LayoutHorizontal:
		return horizontalPositions(count, cfg, center)
	case LayoutVertical:
		return verticalPositions(count, cfg, center)
	case LayoutGrid:
		return gridPositions(count, cfg, center)
	case LayoutRadial:
		return radialPositions(count, cfg, center)
	default:
		panic("motion: unknown layout type " + string(cfg.Layout))
	}
}

// spiralPositions places nodes along a golden-angle spiral. The radius grows
// linearly per step so later nodes sit farther out.
func spiralPositions(count int, cfg Config, center float64) []NodePosition {
	positions := make([]NodePosition, count)
	for i := range count {
		angle := float64(i) * goldenAngle
		radius := cfg.NodeSpacing + float64(i)*cfg.NodeSpacing*0.5

		p := NodePosition{
			X:     center + radius*math.Cos(angle),
			Y:     center + radius*math.Sin(angle),
			Scale: 1,
		}
		if cfg.UseRotation {
			p.Rotation = math.Sin(float64(i)*0.5) * 5
		}
		if cfg.Use3D {
			depths := [3]float64{-100, 0, 100}
			p.Z = depths[i%3]
		}
		positions[i] = p
	}
	return positions
}

// horizontalPositions places nodes on a single row straddling the canvas
// midline, evenly spaced by NodeSpacing.
func horizontalPositions(count int, cfg Config, center float64) []NodePosition {
	positions := make([]NodePosition, count)
	offset := float64(count-1) / 2
	for i := range count {
		positions[i] = NodePosition{
			X:     center + (float64(i)-offset)*cfg.NodeSpacing,
			Y:     center,
			Scale: 1,
		}
	}
	return positions
}

// verticalPositions is the column analogue of horizontalPositions.
func verticalPositions(count int, cfg Config, center float64) []NodePosition {
	positions := make([]NodePosition, count)
	offset := float64(count-1) / 2
	for i := range count {
		p := NodePosition{
			X:     center,
			Y:     center + (float64(i)-offset)*cfg.NodeSpacing,
			Scale: 1,
		}
		if cfg.Use3D {
			p.Z = math.Sin(float64(i)*0.8) * 50
		}
		positions[i] = p
	}
	return positions
}

// gridPositions tiles nodes into a near-square grid centered on the canvas.
// With Use3D, depth alternates in a checkerboard pattern.
func gridPositions(count int, cfg Config, center float64) []NodePosition {
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	rows := (count + cols - 1) / cols

	positions := make([]NodePosition, count)
	colOffset := float64(cols-1) / 2
	rowOffset := float64(rows-1) / 2
	for i := range count {
		col := i % cols
		row := i / cols

		p := NodePosition{
			X:     center + (float64(col)-colOffset)*cfg.NodeSpacing,
			Y:     center + (float64(row)-rowOffset)*cfg.NodeSpacing,
			Scale: 1,
		}
		if cfg.Use3D {
			p.Z = float64((col+row)%2) * 80
		}
		positions[i] = p
	}
	return positions
}

// radialPositions places the first node at the canvas center as a visual hub
// (1.1x scale) and distributes the rest into concentric rings. Ring r holds
// up to 6*r nodes so density stays roughly uniform as radius grows. A ring
// is always filled to its capacity before the next ring starts.
func radialPositions(count int, cfg Config, center float64) []NodePosition {
	positions := make([]NodePosition, count)
	positions[0] = NodePosition{X: center, Y: center, Scale: 1.1}

	nodeIndex := 1
	for ring := 1; nodeIndex < count; ring++ {
		capacity := 6 * ring
		inRing := min(capacity, count-nodeIndex)
		radius := float64(ring) * cfg.NodeSpacing

		for k := 0; k < inRing; k++ {
			angle := 2 * math.Pi * float64(k) / float64(inRing)
			p := NodePosition{
				X:     center + radius*math.Cos(angle),
				Y:     center + radius*math.Sin(angle),
				Scale: 1,
			}
			if cfg.Use3D {
				p.Z = float64(ring) * 60
			}
			positions[nodeIndex] = p
			nodeIndex++
		}
	}
	return positions
}

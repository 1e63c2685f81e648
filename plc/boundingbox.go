package plc

import "github.com/zalo/CDT/types"

// boundingBoxMargin matches the reference's cover-margin convention
// (cdt/supertriangle.go's BoundingCover default): expand by a fraction of
// the input's largest extent so the new corners are strictly outside, never
// touching, the input bounding box.
const boundingBoxMargin = 0.5

// AddBoundingBox appends the eight axis-aligned corners of a box strictly
// containing the input vertices (spec section 4.B). It is idempotent: once
// BoundingBoxAppended is set, further calls return without appending. The
// cdt pipeline calls it before any Steiner vertex is inserted.
//
// Appended corners receive the highest handles, directly after
// NumOriginalVertices — see DESIGN.md's resolution of the spec's open
// question on bounding-box vertex numbering.
func (p *PLC) AddBoundingBox() {
	if p.BoundingBoxAppended {
		return
	}

	box := p.BoundingBox()
	dx := box.Max.X - box.Min.X
	dy := box.Max.Y - box.Min.Y
	dz := box.Max.Z - box.Min.Z
	span := dx
	if dy > span {
		span = dy
	}
	if dz > span {
		span = dz
	}
	if span == 0 {
		span = 1
	}
	expand := span * boundingBoxMargin

	minX, minY, minZ := box.Min.X-expand, box.Min.Y-expand, box.Min.Z-expand
	maxX, maxY, maxZ := box.Max.X+expand, box.Max.Y+expand, box.Max.Z+expand

	corners := [8]types.Vec3{
		{X: minX, Y: minY, Z: minZ},
		{X: maxX, Y: minY, Z: minZ},
		{X: maxX, Y: maxY, Z: minZ},
		{X: minX, Y: maxY, Z: minZ},
		{X: minX, Y: minY, Z: maxZ},
		{X: maxX, Y: minY, Z: maxZ},
		{X: maxX, Y: maxY, Z: maxZ},
		{X: minX, Y: maxY, Z: maxZ},
	}

	p.Vertices = append(p.Vertices, corners[:]...)
	p.BoundingBoxAppended = true
}

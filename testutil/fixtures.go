// Package testutil builds the fixed input fixtures spec section 8's
// end-to-end scenario table names, so every package exercising a full
// pipeline run (cdt, region, recovery) shares one definition of "the unit
// cube" instead of each rederiving its own vertex/triangle arrays.
package testutil

// Input is a packed PLC input pair, ready to hand to plc.New or
// cdt.ComputeCDT.
type Input struct {
	Vertices  []float64
	Triangles []uint32
}

func flatten(points [][3]float64) []float64 {
	out := make([]float64, 0, len(points)*3)
	for _, p := range points {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// UnitCube returns scenario 1: an axis-aligned unit cube, 8 vertices and 12
// triangles (two per face), wound consistently so that each triangle's
// right-hand normal points into the cube.
func UnitCube() Input {
	return Input{
		Vertices: flatten([][3]float64{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		}),
		Triangles: []uint32{
			0, 1, 2, 0, 2, 3,
			4, 6, 5, 4, 7, 6,
			0, 4, 5, 0, 5, 1,
			1, 5, 6, 1, 6, 2,
			2, 6, 7, 2, 7, 3,
			3, 7, 4, 3, 4, 0,
		},
	}
}

// RegularTetrahedron returns scenario 2: 4 vertices, 4 triangles.
func RegularTetrahedron() Input {
	return Input{
		Vertices: flatten([][3]float64{
			{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
		}),
		Triangles: []uint32{
			0, 1, 2,
			0, 3, 1,
			0, 2, 3,
			1, 3, 2,
		},
	}
}

// RegularOctahedron returns scenario 3: 6 vertices, 8 triangles.
func RegularOctahedron() Input {
	return Input{
		Vertices: flatten([][3]float64{
			{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
		}),
		Triangles: []uint32{
			0, 2, 4, 2, 1, 4, 1, 3, 4, 3, 0, 4,
			2, 0, 5, 1, 2, 5, 3, 1, 5, 0, 3, 5,
		},
	}
}

// MalformedVertexLength returns scenario 4: a vertex array whose length is
// not divisible by 3.
func MalformedVertexLength() Input {
	return Input{
		Vertices:  []float64{0, 0, 0, 1, 1},
		Triangles: []uint32{0, 1, 0},
	}
}

// OutOfRangeTriangleIndex returns scenario 5: a triangle referencing a
// vertex index beyond the vertex count, built on top of the regular
// tetrahedron's vertex array.
func OutOfRangeTriangleIndex() Input {
	tet := RegularTetrahedron()
	return Input{
		Vertices:  tet.Vertices,
		Triangles: []uint32{0, 1, 99},
	}
}

// CoplanarQuad returns scenario 6: four coplanar vertices with two
// triangles, which must fail Delaunay seed selection (all candidate
// quadruples coplanar).
func CoplanarQuad() Input {
	return Input{
		Vertices: flatten([][3]float64{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		}),
		Triangles: []uint32{0, 1, 2, 0, 2, 3},
	}
}

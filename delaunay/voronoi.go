package delaunay

// rotatedFace is one face incident to a point, rotated so the owning point is
// the last vertex, together with the face's index in the dual vertex list.
type rotatedFace struct {
	tri    Triangle
	vertex int
}

// ExportVoronoiRegions returns the planar dual of the current triangulation:
// one Voronoi vertex per live face (its circumcenter — bounding faces
// included, they supply the periphery), and for each inserted point the
// counterclockwise cycle of vertex indices bounding that point's cell.
//
// Every face is keyed under three rotations, one per vertex, with that vertex
// last. The cell walk around a point then repeatedly finds the incident face
// whose leading index equals the current exit vertex, emits its dual vertex,
// and exits through the face's second index; after one step per incident face
// the cycle is complete. A missing link means the mesh lost an invariant,
// which is reported rather than walked forever.
func (m *Mesh) ExportVoronoiRegions() (vertices []Point, regions [][]int, err error) {
	defer func() { recoverMeshError(recover(), &err) }()

	incident := make([][]rotatedFace, len(m.points))
	for h := range m.arena {
		rec := &m.arena[h]
		if !rec.alive {
			continue
		}
		vi := len(vertices)
		vertices = append(vertices, rec.center)
		for _, rot := range rec.tri.rotations() {
			incident[rot.C] = append(incident[rot.C], rotatedFace{rot, vi})
		}
	}

	regions = make([][]int, 0, len(m.points)-sentinelCount)
	for v := sentinelCount; v < len(m.points); v++ {
		faces := incident[v]
		if len(faces) == 0 {
			throw(ErrConsistency, "point %d belongs to no face", v)
		}
		exit := faces[0].tri.A
		region := make([]int, 0, len(faces))
		for range faces {
			f, ok := findLeading(faces, exit)
			if !ok {
				throw(ErrConsistency,
					"no face around point %d leads with vertex %d", v, exit)
			}
			region = append(region, f.vertex)
			exit = f.tri.B
		}
		regions = append(regions, region)
	}
	return vertices, regions, nil
}

func findLeading(faces []rotatedFace, v int) (rotatedFace, bool) {
	for _, f := range faces {
		if f.tri.A == v {
			return f, true
		}
	}
	return rotatedFace{}, false
}

package mesh

import "math"

// Normalize applies the cleanup passes to a flattened mesh and returns the
// cleaned copy. Every pass is idempotent, so running Normalize on its own
// output changes nothing. The non-finite filter runs first so the remaining
// passes never have to compare NaN coordinates.
func Normalize(m *Mesh) *Mesh {
	cleaned := dropNonFinite(m)
	cleaned = mergeDuplicateVertices(cleaned)
	cleaned = dropDegenerateFaces(cleaned)
	cleaned = dropDuplicateFaces(cleaned)
	return cleaned
}

// dropNonFinite removes vertices with NaN or infinite coordinates, along with
// any face referencing them.
func dropNonFinite(m *Mesh) *Mesh {
	remap := make([]int, len(m.Vertices))
	out := &Mesh{Vertices: make([][3]float32, 0, len(m.Vertices))}
	for i, v := range m.Vertices {
		if !finite(v) {
			remap[i] = -1
			continue
		}
		remap[i] = len(out.Vertices)
		out.Vertices = append(out.Vertices, v)
	}

	for _, f := range m.Faces {
		a, b, c := remap[f[0]], remap[f[1]], remap[f[2]]
		if a < 0 || b < 0 || c < 0 {
			continue
		}
		out.Faces = append(out.Faces, [3]int{a, b, c})
	}
	return out
}

func finite(v [3]float32) bool {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// mergeDuplicateVertices collapses vertices with identical coordinates into a
// single entry and rewrites face indices accordingly.
func mergeDuplicateVertices(m *Mesh) *Mesh {
	seen := make(map[[3]float32]int, len(m.Vertices))
	remap := make([]int, len(m.Vertices))
	out := &Mesh{Vertices: make([][3]float32, 0, len(m.Vertices))}
	for i, v := range m.Vertices {
		if idx, ok := seen[v]; ok {
			remap[i] = idx
			continue
		}
		idx := len(out.Vertices)
		seen[v] = idx
		remap[i] = idx
		out.Vertices = append(out.Vertices, v)
	}

	for _, f := range m.Faces {
		out.Faces = append(out.Faces, [3]int{remap[f[0]], remap[f[1]], remap[f[2]]})
	}
	return out
}

// dropDegenerateFaces removes faces with repeated vertex indices or zero area.
func dropDegenerateFaces(m *Mesh) *Mesh {
	out := &Mesh{Vertices: m.Vertices}
	for _, f := range m.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			continue
		}
		if faceArea(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]) == 0 {
			continue
		}
		out.Faces = append(out.Faces, f)
	}
	return out
}

func faceArea(a, b, c [3]float32) float64 {
	var ab, ac [3]float64
	for i := 0; i < 3; i++ {
		ab[i] = float64(b[i] - a[i])
		ac[i] = float64(c[i] - a[i])
	}
	cx := ab[1]*ac[2] - ab[2]*ac[1]
	cy := ab[2]*ac[0] - ab[0]*ac[2]
	cz := ab[0]*ac[1] - ab[1]*ac[0]
	return 0.5 * math.Sqrt(cx*cx+cy*cy+cz*cz)
}

// dropDuplicateFaces removes faces that reference the same vertex set as an
// earlier face, regardless of winding.
func dropDuplicateFaces(m *Mesh) *Mesh {
	seen := make(map[[3]int]struct{}, len(m.Faces))
	out := &Mesh{Vertices: m.Vertices}
	for _, f := range m.Faces {
		key := sortedFaceKey(f)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out.Faces = append(out.Faces, f)
	}
	return out
}

func sortedFaceKey(f [3]int) [3]int {
	a, b, c := f[0], f[1], f[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}

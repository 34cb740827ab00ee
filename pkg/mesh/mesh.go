package mesh

import "errors"

var (
	ErrEmptyScene    = errors.New("scene contains no geometry")
	ErrEmptyMesh     = errors.New("mesh contains no vertices")
	ErrInvalidFormat = errors.New("invalid output format")
	ErrEmptyExport   = errors.New("export produced no data")
)

// Mesh is a flat triangle mesh. Faces index into Vertices.
type Mesh struct {
	Vertices [][3]float32
	Faces    [][3]int
}

// Scene maps sub-mesh names to their geometry, as found in a decoded GLB
// document before flattening.
type Scene map[string]*Mesh

// Concatenate merges the vertex and face lists of all supplied meshes into a
// single mesh, offsetting face indices as it goes. Vertices shared between
// sub-meshes are not deduplicated; that is Normalize's job.
func Concatenate(meshes []*Mesh) *Mesh {
	merged := &Mesh{}
	for _, m := range meshes {
		offset := len(merged.Vertices)
		merged.Vertices = append(merged.Vertices, m.Vertices...)
		for _, f := range m.Faces {
			merged.Faces = append(merged.Faces, [3]int{f[0] + offset, f[1] + offset, f[2] + offset})
		}
	}
	return merged
}

// Flatten collapses a scene into a single mesh. Returns ErrEmptyScene if the
// scene holds no geometry at all, ErrEmptyMesh if the flattened result has no
// vertices.
func (s Scene) Flatten() (*Mesh, error) {
	if len(s) == 0 {
		return nil, ErrEmptyScene
	}

	meshes := make([]*Mesh, 0, len(s))
	for _, m := range s {
		meshes = append(meshes, m)
	}

	flat := Concatenate(meshes)
	if len(flat.Vertices) == 0 {
		return nil, ErrEmptyMesh
	}
	return flat, nil
}

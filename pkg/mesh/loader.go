package mesh

import (
	"bytes"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLB decodes a binary glTF document and flattens all of its triangle
// geometry into a single mesh. Node transforms are intentionally not applied:
// sub-geometries are concatenated as authored, matching the behavior clients
// of the previous revisions of this service rely on.
func LoadGLB(data []byte) (*Mesh, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding glb: %w", err)
	}

	scene, err := sceneFromDocument(doc)
	if err != nil {
		return nil, err
	}

	return scene.Flatten()
}

func sceneFromDocument(doc *gltf.Document) (Scene, error) {
	scene := make(Scene, len(doc.Meshes))
	for i, gm := range doc.Meshes {
		m, err := meshFromPrimitives(doc, gm)
		if err != nil {
			return nil, fmt.Errorf("reading mesh %d: %w", i, err)
		}

		name := gm.Name
		if name == "" {
			name = fmt.Sprintf("mesh_%d", i)
		}
		// glTF does not require mesh names to be unique; uniquify so a
		// repeated name never drops geometry from the scene.
		for base, n := name, 1; ; n++ {
			if _, taken := scene[name]; !taken {
				break
			}
			name = fmt.Sprintf("%s_%d", base, n)
		}
		scene[name] = m
	}
	return scene, nil
}

func meshFromPrimitives(doc *gltf.Document, gm *gltf.Mesh) (*Mesh, error) {
	m := &Mesh{}
	for _, prim := range gm.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("reading positions: %w", err)
		}

		offset := len(m.Vertices)
		m.Vertices = append(m.Vertices, positions...)

		if prim.Indices != nil {
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("reading indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				m.Faces = append(m.Faces, [3]int{
					offset + int(indices[i]),
					offset + int(indices[i+1]),
					offset + int(indices[i+2]),
				})
			}
		} else {
			// Non-indexed primitive: every three positions form a triangle.
			for i := 0; i+2 < len(positions); i += 3 {
				m.Faces = append(m.Faces, [3]int{offset + i, offset + i + 1, offset + i + 2})
			}
		}
	}
	return m, nil
}

package mesh

import (
	"bytes"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

type testGeometry struct {
	name     string
	vertices [][3]float32
	indices  []uint16
}

func singleTriangle(name string) testGeometry {
	return testGeometry{
		name:     name,
		vertices: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		indices:  []uint16{0, 1, 2},
	}
}

func pyramid(name string) testGeometry {
	return testGeometry{
		name: name,
		vertices: [][3]float32{
			{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}, {1, 1, 2},
		},
		indices: []uint16{
			0, 1, 4,
			1, 2, 4,
			2, 3, 4,
			3, 0, 4,
		},
	}
}

// buildTestGLB encodes the supplied geometries into a binary glTF document,
// one mesh and node per geometry.
func buildTestGLB(t *testing.T, geometries ...testGeometry) []byte {
	t.Helper()

	doc := gltf.NewDocument()
	for _, g := range geometries {
		positionAccessor := modeler.WritePosition(doc, g.vertices)
		indicesAccessor := modeler.WriteIndices(doc, g.indices)
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: g.name,
			Primitives: []*gltf.Primitive{{
				Indices:    gltf.Index(indicesAccessor),
				Attributes: map[string]uint32{gltf.POSITION: positionAccessor},
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: g.name, Mesh: gltf.Index(uint32(len(doc.Meshes) - 1))})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}

	return encodeTestDocument(t, doc)
}

func encodeTestDocument(t *testing.T, doc *gltf.Document) []byte {
	t.Helper()

	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		t.Fatalf("Error encoding test glb: %s", err)
	}
	return buf.Bytes()
}

func uniqueVertexCount(m *Mesh) int {
	seen := make(map[[3]float32]struct{}, len(m.Vertices))
	for _, v := range m.Vertices {
		seen[v] = struct{}{}
	}
	return len(seen)
}

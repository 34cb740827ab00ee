package mesh

import (
	"math"
	"testing"
)

func dirtyMesh() *Mesh {
	nan := float32(math.NaN())
	return &Mesh{
		Vertices: [][3]float32{
			{0, 0, 0},   // 0
			{1, 0, 0},   // 1
			{0, 1, 0},   // 2
			{1, 0, 0},   // 3, duplicate of 1
			{nan, 0, 0}, // 4, non-finite
			{2, 0, 0},   // 5
			{0, 0, 1},   // 6
		},
		Faces: [][3]int{
			{0, 1, 2}, // fine
			{0, 3, 2}, // duplicate of the first after vertex merge
			{2, 1, 0}, // duplicate, opposite winding
			{0, 1, 4}, // references non-finite vertex
			{0, 1, 5}, // collinear, zero area
			{0, 1, 6}, // fine
		},
	}
}

func TestNormalizeCleansDirtyMesh(t *testing.T) {
	m := Normalize(dirtyMesh())

	// 0, 1, 2, 6 survive plus the untouched collinear vertex 5.
	if len(m.Vertices) != 5 {
		t.Errorf("Expected 5 vertices after cleanup, got %d", len(m.Vertices))
	}
	if len(m.Faces) != 2 {
		t.Errorf("Expected 2 faces after cleanup, got %d", len(m.Faces))
	}

	for _, v := range m.Vertices {
		if !finite(v) {
			t.Errorf("Non-finite vertex %v survived cleanup", v)
		}
	}
	if uniqueVertexCount(m) != len(m.Vertices) {
		t.Error("Duplicate vertices survived cleanup")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize(dirtyMesh())
	twice := Normalize(once)

	if len(once.Vertices) != len(twice.Vertices) {
		t.Errorf("Vertex count changed on second pass: %d vs %d", len(once.Vertices), len(twice.Vertices))
	}
	if len(once.Faces) != len(twice.Faces) {
		t.Errorf("Face count changed on second pass: %d vs %d", len(once.Faces), len(twice.Faces))
	}
	for i := range once.Vertices {
		if once.Vertices[i] != twice.Vertices[i] {
			t.Fatalf("Vertex %d changed on second pass", i)
		}
	}
	for i := range once.Faces {
		if once.Faces[i] != twice.Faces[i] {
			t.Fatalf("Face %d changed on second pass", i)
		}
	}
}

func TestNormalizeKeepsCleanMeshIntact(t *testing.T) {
	clean := &Mesh{
		Vertices: [][3]float32{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}, {1, 1, 2}},
		Faces:    [][3]int{{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}},
	}

	m := Normalize(clean)
	if len(m.Vertices) != len(clean.Vertices) {
		t.Errorf("Cleanup dropped vertices from a clean mesh: %d vs %d", len(m.Vertices), len(clean.Vertices))
	}
	if len(m.Faces) != len(clean.Faces) {
		t.Errorf("Cleanup dropped faces from a clean mesh: %d vs %d", len(m.Faces), len(clean.Faces))
	}
}

func TestNormalizeInfiniteCoordinates(t *testing.T) {
	inf := float32(math.Inf(1))
	m := Normalize(&Mesh{
		Vertices: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, inf, 0}},
		Faces:    [][3]int{{0, 1, 2}},
	})

	if len(m.Vertices) != 2 {
		t.Errorf("Expected 2 vertices, got %d", len(m.Vertices))
	}
	if len(m.Faces) != 0 {
		t.Errorf("Expected no faces, got %d", len(m.Faces))
	}
}

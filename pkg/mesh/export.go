package mesh

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hschendel/stl"
)

// Format is a supported export format.
type Format string

const (
	FormatSTL Format = "stl"
	FormatOBJ Format = "obj"
)

// ParseFormat validates a caller-supplied format string, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatSTL:
		return FormatSTL, nil
	case FormatOBJ:
		return FormatOBJ, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Artifact is the serialized result of an export.
type Artifact struct {
	Data        []byte
	ContentType string
	Extension   string
}

// Export serializes a flat mesh into the requested format. STL output is
// binary and labelled model/stl; OBJ output is text but labelled
// application/octet-stream, which existing clients expect and which therefore
// stays as is.
func Export(m *Mesh, format Format) (*Artifact, error) {
	var (
		data []byte
		err  error
	)
	contentType := "application/octet-stream"

	switch format {
	case FormatSTL:
		data, err = exportSTL(m)
		contentType = "model/stl"
	case FormatOBJ:
		data, err = exportOBJ(m)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyExport
	}

	return &Artifact{Data: data, ContentType: contentType, Extension: format.Extension()}, nil
}

func exportSTL(m *Mesh) ([]byte, error) {
	solid := stl.Solid{IsAscii: false}
	solid.Triangles = make([]stl.Triangle, 0, len(m.Faces))
	for _, f := range m.Faces {
		solid.Triangles = append(solid.Triangles, stl.Triangle{
			Vertices: [3]stl.Vec3{
				stl.Vec3(m.Vertices[f[0]]),
				stl.Vec3(m.Vertices[f[1]]),
				stl.Vec3(m.Vertices[f[2]]),
			},
		})
	}
	solid.RecalculateNormals()

	var buf bytes.Buffer
	if err := solid.WriteAll(&buf); err != nil {
		return nil, fmt.Errorf("writing stl: %w", err)
	}
	return buf.Bytes(), nil
}

func exportOBJ(m *Mesh) ([]byte, error) {
	var buf bytes.Buffer
	for _, v := range m.Vertices {
		fmt.Fprintf(&buf, "v %g %g %g\n", v[0], v[1], v[2])
	}
	// OBJ face indices are 1-based.
	for _, f := range m.Faces {
		fmt.Fprintf(&buf, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}
	return buf.Bytes(), nil
}

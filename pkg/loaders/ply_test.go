package loaders

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
)

// createTestPLY builds a binary PLY square made of two triangles
func createTestPLY(t *testing.T, order binary.ByteOrder, includeUVs bool) []byte {
	t.Helper()
	var buf bytes.Buffer

	format := "binary_little_endian"
	if order == binary.BigEndian {
		format = "binary_big_endian"
	}
	buf.WriteString("ply\n")
	buf.WriteString("format " + format + " 1.0\n")
	buf.WriteString("comment test square\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\n")
	buf.WriteString("property float y\n")
	buf.WriteString("property float z\n")
	buf.WriteString("property uchar red\n")
	if includeUVs {
		buf.WriteString("property float u\n")
		buf.WriteString("property float v\n")
	}
	buf.WriteString("element face 2\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("property uchar flags\n")
	buf.WriteString("end_header\n")

	vertices := [][5]float32{
		{0, 0, 0, 0, 0},
		{1, 0, 0, 1, 0},
		{1, 1, 0, 1, 1},
		{0, 1, 0, 0, 1},
	}
	for _, v := range vertices {
		binary.Write(&buf, order, v[0])
		binary.Write(&buf, order, v[1])
		binary.Write(&buf, order, v[2])
		binary.Write(&buf, order, uint8(255))
		if includeUVs {
			binary.Write(&buf, order, v[3])
			binary.Write(&buf, order, v[4])
		}
	}

	for _, f := range [][3]int32{{0, 1, 2}, {0, 2, 3}} {
		binary.Write(&buf, order, uint8(3))
		binary.Write(&buf, order, f)
		binary.Write(&buf, order, uint8(0))
	}
	return buf.Bytes()
}

func TestReadPLY_Binary(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		data, err := ReadPLY(bytes.NewReader(createTestPLY(t, order, true)))
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", order, err)
		}
		if len(data.Vertices) != 4 {
			t.Errorf("%v: expected 4 vertices, got %d", order, len(data.Vertices))
		}
		expectedFaces := []int{0, 1, 2, 0, 2, 3}
		if len(data.Faces) != len(expectedFaces) {
			t.Fatalf("%v: expected %d indices, got %d", order, len(expectedFaces), len(data.Faces))
		}
		for i := range expectedFaces {
			if data.Faces[i] != expectedFaces[i] {
				t.Errorf("%v: face index %d: expected %d, got %d", order, i, expectedFaces[i], data.Faces[i])
			}
		}
		if data.Vertices[2] != core.NewVec3(1, 1, 0) {
			t.Errorf("%v: expected vertex 2 at (1,1,0), got %v", order, data.Vertices[2])
		}
		if len(data.TexCoords) != 4 || data.TexCoords[1] != core.NewVec2(1, 0) {
			t.Errorf("%v: unexpected texture coordinates %v", order, data.TexCoords)
		}
	}
}

func TestReadPLY_NoTexCoords(t *testing.T) {
	data, err := ReadPLY(bytes.NewReader(createTestPLY(t, binary.LittleEndian, false)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(data.TexCoords) != 0 {
		t.Errorf("Expected no texture coordinates, got %d", len(data.TexCoords))
	}
}

func TestReadPLY_ASCIIQuadIsFanned(t *testing.T) {
	src := `ply
format ascii 1.0
element vertex 5
property float x
property float y
property float z
element face 1
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
1 1 0
0 1 0
-1 0.5 0
5 0 1 2 3 4
`
	data, err := ReadPLY(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(data.Faces) != 9 {
		t.Fatalf("Expected a pentagon to fan into 3 triangles, got %d indices", len(data.Faces))
	}
	if data.Faces[6] != 0 || data.Faces[7] != 3 || data.Faces[8] != 4 {
		t.Errorf("Unexpected last triangle %v", data.Faces[6:])
	}
	if data.Vertices[4] != core.NewVec3(-1, 0.5, 0) {
		t.Errorf("Unexpected vertex %v", data.Vertices[4])
	}
}

func TestReadPLY_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad magic", "plx\nformat ascii 1.0\nend_header\n"},
		{"unknown format", "ply\nformat binary_middle_endian 1.0\nend_header\n"},
		{"no format", "ply\nend_header\n"},
		{"truncated header", "ply\nformat ascii 1.0\nelement vertex 1\n"},
		{"bad count", "ply\nformat ascii 1.0\nelement vertex many\nend_header\n"},
		{"unsupported type", "ply\nformat ascii 1.0\nelement vertex 1\nproperty quad x\nend_header\n1\n"},
		{"truncated body", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nend_header\n1\n"},
		{"index out of range", "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nproperty float y\nproperty float z\n" +
			"element face 1\nproperty list uchar int vertex_indices\nend_header\n0 0 0\n1 0 0\n0 1 0\n3 0 1 7\n"},
		{"negative list length", "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nproperty float y\nproperty float z\n" +
			"element face 1\nproperty list int int vertex_indices\nend_header\n0 0 0\n1 0 0\n0 1 0\n-1 0 1 2\n"},
		{"huge list length", "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nproperty float y\nproperty float z\n" +
			"element face 1\nproperty list uint int vertex_indices\nend_header\n0 0 0\n1 0 0\n0 1 0\n4000000000 0 1 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPLY(strings.NewReader(tt.src)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadPLYMesh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.ply")
	if err := os.WriteFile(path, createTestPLY(t, binary.LittleEndian, true), 0o644); err != nil {
		t.Fatal(err)
	}

	mat := core.Lambertian(core.NewVec3(0.5, 0.5, 0.5))
	triangles, err := LoadPLYMesh(path, mat, &geometry.MeshOptions{Scale: 2, Translation: core.NewVec3(0, 0, -3)}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(triangles) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(triangles))
	}
	if triangles[0].C != core.NewVec3(2, 2, -3) {
		t.Errorf("Expected transformed vertex (2,2,-3), got %v", triangles[0].C)
	}
	if triangles[0].UVB != core.NewVec2(1, 0) {
		t.Errorf("Expected file UVs to be carried, got %v", triangles[0].UVB)
	}

	bvh := geometry.BuildBVH(triangles, nil)
	hit := bvh.Intersect(core.NewRay(core.NewVec3(1.5, 0.5, 0), core.NewVec3(0, 0, -1)))
	if !hit.Success || math.Abs(hit.Distance-3) > 1e-9 {
		t.Errorf("Expected hit at distance 3, got %+v", hit)
	}

	if _, err := LoadPLYMesh(filepath.Join(t.TempDir(), "missing.ply"), mat, nil, nil); err == nil {
		t.Error("Expected error for a missing file")
	}
}

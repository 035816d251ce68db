package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
)

// MaxPLYListLength bounds the entry count of a list property (one polygon)
const MaxPLYListLength = 1024

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format   string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version  string
	Elements []PLYElement
}

// PLYElement is one element block (vertex, face, ...) in declaration order
type PLYElement struct {
	Name       string
	Count      int
	Properties []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
}

// PLYData contains the vertex and face data read from a PLY file
type PLYData struct {
	Vertices  []core.Vec3
	Faces     []int       // Triangle indices (3 per triangle), polygons are fanned
	TexCoords []core.Vec2 // Per-vertex texture coordinates, empty if not present
}

// LoadPLY loads a PLY file and returns its vertices and triangulated faces
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	data, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// LoadPLYMesh loads a PLY file into a triangle list ready for BVH construction
func LoadPLYMesh(filename string, material core.Material, options *geometry.MeshOptions, logger core.Logger) ([]geometry.Triangle, error) {
	startTime := time.Now()

	data, err := LoadPLY(filename)
	if err != nil {
		return nil, err
	}

	opts := geometry.MeshOptions{}
	if options != nil {
		opts = *options
	}
	if len(data.TexCoords) == len(data.Vertices) && opts.UVs == nil {
		opts.UVs = data.TexCoords
	}

	triangles, err := geometry.NewTriangleMesh(data.Vertices, data.Faces, material, &opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	if logger != nil {
		logger.Printf("Loaded PLY %s: %d vertices, %d triangles in %v\n",
			filename, len(data.Vertices), len(triangles), time.Since(startTime))
	}
	return triangles, nil
}

// ReadPLY parses a PLY stream in any of the three standard encodings
func ReadPLY(r io.Reader) (*PLYData, error) {
	reader := bufio.NewReaderSize(r, 1024*1024)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyValueReader
	switch header.Format {
	case "binary_little_endian":
		values = &binaryValueReader{reader: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryValueReader{reader: reader, order: binary.BigEndian}
	case "ascii":
		values = &asciiValueReader{reader: reader}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %q", header.Format)
	}

	data := &PLYData{}
	for _, element := range header.Elements {
		if err := readElement(values, element, data); err != nil {
			return nil, fmt.Errorf("failed to read %s data: %w", element.Name, err)
		}
	}

	for i, index := range data.Faces {
		if index < 0 || index >= len(data.Vertices) {
			return nil, fmt.Errorf("face index %d at position %d out of range (%d vertices)", index, i, len(data.Vertices))
		}
	}

	return data, nil
}

// parsePLYHeader reads header lines up to end_header, leaving the reader at the body
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}

	magic, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(magic) != "ply" {
		return nil, fmt.Errorf("missing ply magic number")
	}

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("unexpected end of header: %w", err)
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "end_header":
			if header.Format == "" {
				return nil, fmt.Errorf("header has no format line")
			}
			return header, nil
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %q", strings.TrimSpace(line))
			}
			header.Format = parts[1]
			header.Version = parts[2]
		case "comment", "obj_info":
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", strings.TrimSpace(line))
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property before any element")
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			last := &header.Elements[len(header.Elements)-1]
			last.Properties = append(last.Properties, prop)
		default:
			return nil, fmt.Errorf("unknown header keyword %q", parts[0])
		}
	}
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}
	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		return PLYProperty{IsList: true, ListType: parts[1], Type: parts[2], Name: parts[3]}, nil
	}
	return PLYProperty{Type: parts[0], Name: parts[1]}, nil
}

func readElement(values plyValueReader, element PLYElement, data *PLYData) error {
	isVertex := element.Name == "vertex"
	isFace := element.Name == "face"
	hasUV := false
	if isVertex {
		for _, prop := range element.Properties {
			switch prop.Name {
			case "u", "s", "texture_u":
				hasUV = true
			}
		}
	}

	for i := 0; i < element.Count; i++ {
		var position core.Vec3
		var uv core.Vec2

		for _, prop := range element.Properties {
			if prop.IsList {
				count, err := values.read(prop.ListType)
				if err != nil {
					return fmt.Errorf("%s %d: list count: %w", element.Name, i, err)
				}
				if count < 0 || count > MaxPLYListLength || count != math.Trunc(count) {
					return fmt.Errorf("%s %d: invalid list length %v", element.Name, i, count)
				}
				list := make([]int, int(count))
				for j := range list {
					v, err := values.read(prop.Type)
					if err != nil {
						return fmt.Errorf("%s %d: list entry: %w", element.Name, i, err)
					}
					list[j] = int(v)
				}
				if isFace && (prop.Name == "vertex_indices" || prop.Name == "vertex_index") {
					// Fan triangulation for quads and larger polygons
					for j := 1; j+1 < len(list); j++ {
						data.Faces = append(data.Faces, list[0], list[j], list[j+1])
					}
				}
				continue
			}

			v, err := values.read(prop.Type)
			if err != nil {
				return fmt.Errorf("%s %d: property %s: %w", element.Name, i, prop.Name, err)
			}
			if !isVertex {
				continue
			}
			switch prop.Name {
			case "x":
				position.X = v
			case "y":
				position.Y = v
			case "z":
				position.Z = v
			case "u", "s", "texture_u":
				uv.X = v
			case "v", "t", "texture_v":
				uv.Y = v
			}
		}

		if isVertex {
			data.Vertices = append(data.Vertices, position)
			if hasUV {
				data.TexCoords = append(data.TexCoords, uv)
			}
		}
	}
	return nil
}

// plyValueReader reads one scalar of a PLY data type as float64
type plyValueReader interface {
	read(dataType string) (float64, error)
}

type binaryValueReader struct {
	reader *bufio.Reader
	order  binary.ByteOrder
	buf    [8]byte
}

func (b *binaryValueReader) read(dataType string) (float64, error) {
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	buf := b.buf[:size]
	if _, err := io.ReadFull(b.reader, buf); err != nil {
		return 0, err
	}

	switch dataType {
	case "char", "int8":
		return float64(int8(buf[0])), nil
	case "uchar", "uint8":
		return float64(buf[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(buf))), nil
	default: // double, float64
		return math.Float64frombits(b.order.Uint64(buf)), nil
	}
}

type asciiValueReader struct {
	reader *bufio.Reader
	token  []byte
}

func (a *asciiValueReader) read(dataType string) (float64, error) {
	if getTypeSize(dataType) == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}

	a.token = a.token[:0]
	for {
		c, err := a.reader.ReadByte()
		if err != nil {
			if err == io.EOF && len(a.token) > 0 {
				break
			}
			return 0, err
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			if len(a.token) > 0 {
				break
			}
			continue
		}
		a.token = append(a.token, c)
	}

	v, err := strconv.ParseFloat(string(a.token), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", dataType, a.token)
	}
	return v, nil
}

// getTypeSize returns the size in bytes of a PLY data type, or 0 if unknown
func getTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 0
	}
}

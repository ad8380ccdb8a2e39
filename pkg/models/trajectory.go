// Package models exports simulated trajectories as glTF geometry so they can
// be inspected in any 3D viewer.
package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/projectile/pkg/math3d"
)

// ErrNoTrajectory is returned when a document holds no line or point
// primitive with positions.
var ErrNoTrajectory = errors.New("no trajectory primitive found")

// NewTrajectoryDocument builds a glTF document holding points as a single
// LINE_STRIP primitive. W components are dropped.
func NewTrajectoryDocument(name string, points []math3d.Tuple) (*gltf.Document, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("trajectory %q: %w", name, ErrNoTrajectory)
	}

	data := make([]byte, 0, len(points)*12)
	lo := []float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range points {
		for i, v := range [3]float64{p.X, p.Y, p.Z} {
			f := float32(v)
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
			lo[i] = math.Min(lo[i], float64(f))
			hi[i] = math.Max(hi[i], float64(f))
		}
	}

	bufferView := 0
	mesh := 0
	scene := 0
	doc := &gltf.Document{
		Asset: gltf.Asset{Version: "2.0", Generator: "projectile"},
		Buffers: []*gltf.Buffer{{
			ByteLength: len(data),
			Data:       data,
		}},
		BufferViews: []*gltf.BufferView{{
			Buffer:     0,
			ByteLength: len(data),
			Target:     gltf.TargetArrayBuffer,
		}},
		Accessors: []*gltf.Accessor{{
			BufferView:    &bufferView,
			ComponentType: gltf.ComponentFloat,
			Count:         len(points),
			Type:          gltf.AccessorVec3,
			Min:           lo,
			Max:           hi,
		}},
		Meshes: []*gltf.Mesh{{
			Name: name,
			Primitives: []*gltf.Primitive{{
				Mode:       gltf.PrimitiveLineStrip,
				Attributes: map[string]int{gltf.POSITION: 0},
			}},
		}},
		Nodes: []*gltf.Node{{
			Name:     name,
			Mesh:     &mesh,
			Matrix:   [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
			Rotation: [4]float64{0, 0, 0, 1},
			Scale:    [3]float64{1, 1, 1},
		}},
		Scenes: []*gltf.Scene{{Name: name, Nodes: []int{0}}},
		Scene:  &scene,
	}
	return doc, nil
}

// WriteTrajectoryGLB encodes points as a binary glTF (.glb) to w.
func WriteTrajectoryGLB(w io.Writer, name string, points []math3d.Tuple) error {
	doc, err := NewTrajectoryDocument(name, points)
	if err != nil {
		return err
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode glb: %w", err)
	}
	return nil
}

// SaveTrajectoryGLB writes points to path as binary glTF.
func SaveTrajectoryGLB(path, name string, points []math3d.Tuple) error {
	doc, err := NewTrajectoryDocument(name, points)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}

// LoadTrajectory reads the first line or point primitive of a glTF/GLB file
// and returns its positions as points.
func LoadTrajectory(path string) ([]math3d.Tuple, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return TrajectoryFromDocument(doc)
}

// TrajectoryFromDocument extracts the first line or point primitive.
func TrajectoryFromDocument(doc *gltf.Document) ([]math3d.Tuple, error) {
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			switch prim.Mode {
			case gltf.PrimitivePoints, gltf.PrimitiveLines, gltf.PrimitiveLineLoop, gltf.PrimitiveLineStrip:
			default:
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			return readPositions(doc, posIdx)
		}
	}
	return nil, ErrNoTrajectory
}

// readPositions reads a float VEC3 accessor from an embedded buffer.
func readPositions(doc *gltf.Document, accessorIdx int) ([]math3d.Tuple, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("unsupported position accessor: %v / %v", accessor.Type, accessor.ComponentType)
	}
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	if bv := *accessor.BufferView; bv < 0 || bv >= len(doc.BufferViews) {
		return nil, fmt.Errorf("buffer view %d out of range", bv)
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer < 0 || bufferView.Buffer >= len(doc.Buffers) {
		return nil, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12
	}
	if stride < 12 || start < 0 || accessor.Count < 0 {
		return nil, fmt.Errorf("invalid layout: offset %d, stride %d, count %d", start, stride, accessor.Count)
	}
	if end := start + (accessor.Count-1)*stride + 12; accessor.Count > 0 && end > len(buffer.Data) {
		return nil, fmt.Errorf("accessor overruns buffer: need %d bytes, have %d", end, len(buffer.Data))
	}

	points := make([]math3d.Tuple, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		points[i] = math3d.Point(
			float64(readFloat32LE(buffer.Data[offset:])),
			float64(readFloat32LE(buffer.Data[offset+4:])),
			float64(readFloat32LE(buffer.Data[offset+8:])),
		)
	}
	return points, nil
}

// readFloat32LE reads a little-endian float32 from a byte slice.
func readFloat32LE(data []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data))
}

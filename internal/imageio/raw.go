package imageio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/bilateral/internal/tensor"
)

// ErrTrailingData indicates a raw volume longer than its declared shape.
var ErrTrailingData = errors.New("imageio: trailing data")

// ReadRaw reads a row-major little-endian float32 volume of the given shape.
// The reader must hold exactly that many values.
func ReadRaw(r io.Reader, shape tensor.Shape) (*tensor.RawTensor, error) {
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	if err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, raw.AsFloat32()); err != nil {
		return nil, fmt.Errorf("imageio: read %v volume: %w", shape, err)
	}
	if n, _ := io.ReadFull(r, make([]byte, 1)); n > 0 {
		return nil, fmt.Errorf("imageio: %v volume is followed by unread data: %w", shape, ErrTrailingData)
	}
	return raw, nil
}

// WriteRaw writes a contiguous float32 tensor as row-major little-endian values.
func WriteRaw(w io.Writer, raw *tensor.RawTensor) error {
	if raw.DType() != tensor.Float32 {
		return fmt.Errorf("imageio: raw volumes are float32, got %s: %w", raw.DType(), tensor.ErrDataType)
	}
	if !raw.IsContiguous() {
		return fmt.Errorf("imageio: raw volume must be contiguous, got strides %v: %w", raw.Strides(), tensor.ErrShapeMismatch)
	}
	data := raw.AsFloat32()[:raw.NumElements()]
	if err := binary.Write(w, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("imageio: write volume: %w", err)
	}
	return nil
}

// ParseShape parses a comma-separated shape such as "1,1,64,64,32".
func ParseShape(s string) (tensor.Shape, error) {
	fields := strings.Split(s, ",")
	shape := make(tensor.Shape, 0, len(fields))
	for _, field := range fields {
		d, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("imageio: shape %q: %w", s, tensor.ErrShapeMismatch)
		}
		shape = append(shape, d)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("imageio: shape %q: %w", s, err)
	}
	return shape, nil
}

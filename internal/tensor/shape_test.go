package tensor

import (
	"errors"
	"testing"
)

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("strides[%d] = %d, want %d", i, strides[i], want[i])
		}
	}
}

func TestShapeExtent(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		strides []int
		want    int
	}{
		{"contiguous", Shape{2, 3, 4}, []int{12, 4, 1}, 24},
		{"channels-last", Shape{1, 3, 2, 2}, []int{12, 1, 6, 3}, 12},
		{"padded rows", Shape{2, 3}, []int{5, 1}, 8},
		{"single element", Shape{1, 1, 1, 1}, []int{7, 7, 7, 7}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.shape.Extent(tt.strides)
			if err != nil {
				t.Fatalf("Extent: %v", err)
			}
			if got != tt.want {
				t.Errorf("Extent = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShapeExtentErrors(t *testing.T) {
	if _, err := (Shape{2, 2}).Extent([]int{2}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("rank mismatch: got %v, want ErrShapeMismatch", err)
	}
	if _, err := (Shape{2, 2}).Extent([]int{0, 1}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("zero stride: got %v, want ErrShapeMismatch", err)
	}
	if _, err := (Shape{2, -1}).Extent([]int{1, 1}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("negative size: got %v, want ErrShapeMismatch", err)
	}
	huge := int(^uint(0) >> 2)
	if _, err := (Shape{8, 8}).Extent([]int{huge, 1}); !errors.Is(err, ErrAllocation) {
		t.Errorf("overflowing stride: got %v, want ErrAllocation", err)
	}
}

func TestShapeEqualAndClone(t *testing.T) {
	s := Shape{1, 2, 3}
	c := s.Clone()
	if !s.Equal(c) {
		t.Errorf("Clone %v not equal to %v", c, s)
	}
	c[0] = 9
	if s[0] != 1 {
		t.Error("Clone should not share memory")
	}
	if s.Equal(Shape{1, 2}) {
		t.Error("shapes of different rank should not be equal")
	}
}

package pixfmt

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.quantizer != nil {
		t.Error("default quantizer should be nil (DefaultQuantizer is used)")
	}
	if o.pool != nil {
		t.Error("default pool should be nil")
	}
	if o.memoryLimit != 0 {
		t.Errorf("default memoryLimit = %d, want 0", o.memoryLimit)
	}
}

func TestOptionsApply(t *testing.T) {
	q := failingQuantizer{}
	p := NewPool(1)

	o := defaultOptions()
	for _, opt := range []Option{WithQuantizer(q), WithPool(p), WithMemoryLimit(1 << 20), WithWorkers(3)} {
		opt(&o)
	}
	if o.quantizer != q {
		t.Error("WithQuantizer did not set the quantizer")
	}
	if o.pool != p {
		t.Error("WithPool did not set the pool")
	}
	if o.workers != 3 {
		t.Errorf("workers = %d, want 3", o.workers)
	}
	if o.memoryLimit != 1<<20 {
		t.Errorf("memoryLimit = %d, want %d", o.memoryLimit, 1<<20)
	}
}

func TestWithQuantizerNilUsesDefault(t *testing.T) {
	src := mustBitmap(t, FormatRGBA8, Size3D{Width: 2, Height: 1, Depth: 1}, []byte{1, 2, 3, 255, 4, 5, 6, 255})
	dst, err := Reformat(src, FormatIndex8RGBA, WithQuantizer(nil))
	if err != nil {
		t.Fatalf("Reformat() error = %v", err)
	}
	if n := dst.Palette().Len(); n != 2 {
		t.Errorf("palette Len() = %d, want 2", n)
	}
}

func TestWithMemoryLimitNonPositive(t *testing.T) {
	src := mustBitmap(t, FormatRGBA8, Size3D{Width: 1, Height: 1, Depth: 1}, make([]byte, 4))
	for _, limit := range []int{0, -1} {
		if _, err := Reformat(src, FormatRGBA16, WithMemoryLimit(limit)); err != nil {
			t.Errorf("WithMemoryLimit(%d): error = %v", limit, err)
		}
	}
}

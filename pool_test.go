package pixfmt

import (
	"sync"
	"testing"
)

func TestPoolGetPut(t *testing.T) {
	p := NewPool(0)

	buf := p.Get(64)
	if len(buf) != 64 {
		t.Fatalf("len(Get(64)) = %d", len(buf))
	}
	buf[0] = 0xFF
	p.Put(buf)
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}

	again := p.Get(64)
	if &again[0] != &buf[0] {
		t.Error("Get() did not reuse the pooled buffer")
	}
	if again[0] != 0 {
		t.Error("reused buffer is not zeroed")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}

	if other := p.Get(32); len(other) != 32 {
		t.Errorf("len(Get(32)) = %d", len(other))
	}
}

func TestPoolSizeClasses(t *testing.T) {
	p := NewPool(0)

	buf := p.Get(100)
	if len(buf) != 100 || cap(buf) != 128 {
		t.Fatalf("Get(100) len %d cap %d, want 100 128", len(buf), cap(buf))
	}
	p.Put(buf)

	tests := []struct {
		n     int
		reuse bool
	}{
		{120, true},  // same class as 100
		{128, true},  // class upper bound
		{129, false}, // next class
		{64, false},  // lower class
	}
	for _, tt := range tests {
		got := p.Get(tt.n)
		if len(got) != tt.n {
			t.Errorf("len(Get(%d)) = %d", tt.n, len(got))
		}
		if reused := &got[0] == &buf[0]; reused != tt.reuse {
			t.Errorf("Get(%d) reused = %v, want %v", tt.n, reused, tt.reuse)
		}
		if tt.reuse {
			p.Put(got)
		}
	}

	// Odd capacities land in the class they fully cover.
	p.Put(make([]byte, 10, 100))
	if got := p.Get(64); cap(got) != 100 {
		t.Errorf("cap(Get(64)) = %d, want the pooled 100-byte buffer", cap(got))
	}
	if got := p.Get(0); got != nil {
		t.Errorf("Get(0) = %v, want nil", got)
	}
}

func TestPoolBucketLimit(t *testing.T) {
	p := NewPool(2)
	for i := 0; i < 5; i++ {
		p.Put(make([]byte, 8))
	}
	p.Put(nil)
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPoolConcurrent(t *testing.T) {
	p := NewPool(4)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p.Put(p.Get(128))
			}
		}()
	}
	wg.Wait()
	if p.Len() > 4 {
		t.Errorf("Len() = %d, want <= 4", p.Len())
	}
}

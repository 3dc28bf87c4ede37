package lde

import "testing"

func TestByteCursor(t *testing.T) {
	c := newByteCursor([]byte{1, 2, 3}, MaxLength)
	if !c.has(0) || !c.has(2) || c.has(3) {
		t.Fatalf("has() bounds are wrong")
	}
	if b, ok := c.peek(1); !ok || b != 2 {
		t.Fatalf("peek(1) = %v, %v", b, ok)
	}
	if c.offset() != 0 {
		t.Fatalf("peek advanced the cursor")
	}
	for i := byte(1); i <= 3; i++ {
		b, ok := c.next()
		if !ok || b != i {
			t.Fatalf("next() = %v, %v, want %v", b, ok, i)
		}
	}
	if !c.empty() {
		t.Fatalf("cursor not empty after reading everything")
	}
	if _, ok := c.next(); ok {
		t.Fatalf("next() succeeded past the end")
	}
	if c.offset() != 3 {
		t.Fatalf("offset = %v, want 3", c.offset())
	}
}

func TestByteCursorBound(t *testing.T) {
	// The bound wins over the buffer length.
	c := newByteCursor([]byte{1, 2, 3, 4}, 2)
	if c.has(2) {
		t.Fatalf("has(2) beyond the bound")
	}
	if !c.consume(2) {
		t.Fatalf("consume(2) within the bound failed")
	}
	if !c.empty() {
		t.Fatalf("cursor not empty at the bound")
	}

	c = newByteCursor([]byte{1, 2}, 4)
	if !c.consume(2) || c.consume(1) {
		t.Fatalf("bound did not clamp to the buffer length")
	}

	c = newByteCursor([]byte{1}, 0)
	if !c.empty() {
		t.Fatalf("zero bound must start empty")
	}
}

func TestByteCursorConsumeClamped(t *testing.T) {
	c := newByteCursor([]byte{1, 2, 3}, 3)
	c.next()
	if c.consume(5) {
		t.Fatalf("consume(5) reported success with 2 bytes left")
	}
	if c.offset() != 3 {
		t.Fatalf("offset = %v after clamped consume, want 3", c.offset())
	}
}

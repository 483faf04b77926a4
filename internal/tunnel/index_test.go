package tunnel

import "testing"

func TestSatAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b uint8
		want uint8
	}{
		{"plain", 3, 4, 7},
		{"zero", 0, 0, 0},
		{"at max", 255, 0, 255},
		{"overflow clamps", 250, 10, 255},
		{"far past max", 200, 200, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := satAdd(tt.a, tt.b); got != tt.want {
				t.Errorf("satAdd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSatSub(t *testing.T) {
	tests := []struct {
		name string
		a, b uint8
		want uint8
	}{
		{"plain", 7, 4, 3},
		{"to zero", 4, 4, 0},
		{"underflow clamps", 3, 4, 0},
		{"from zero", 0, 255, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := satSub(tt.a, tt.b); got != tt.want {
				t.Errorf("satSub(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFromCount(t *testing.T) {
	t.Run("representable", func(t *testing.T) {
		if got := fromCount[uint8](200); got != 200 {
			t.Errorf("fromCount[uint8](200) = %d, want 200", got)
		}
	})
	t.Run("too large collapses to zero", func(t *testing.T) {
		if got := fromCount[uint8](256); got != 0 {
			t.Errorf("fromCount[uint8](256) = %d, want 0", got)
		}
	})
	t.Run("negative collapses to zero", func(t *testing.T) {
		if got := fromCount[uint16](-1); got != 0 {
			t.Errorf("fromCount[uint16](-1) = %d, want 0", got)
		}
	})
	t.Run("wide type keeps large counts", func(t *testing.T) {
		if got := fromCount[uint64](1 << 40); got != 1<<40 {
			t.Errorf("fromCount[uint64](1<<40) = %d, want %d", got, uint64(1)<<40)
		}
	})
}

package carve

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/edd255/simp/internal/pixmap"
)

// energyGrid builds an Energy directly from scan-order rows of values.
func energyGrid(t *testing.T, rows ...[]uint32) *Energy {
	t.Helper()
	span := len(rows[0])
	cells := make([]uint32, 0, len(rows)*span)
	for _, row := range rows {
		if len(row) != span {
			t.Fatalf("ragged energy fixture")
		}
		cells = append(cells, row...)
	}
	return &Energy{steps: len(rows), span: span, cells: cells}
}

func TestMinEnergyEndpoint_StableArgmin(t *testing.T) {
	tests := []struct {
		name   string
		last   []uint32
		border int
		want   int
	}{
		{"unique minimum", []uint32{5, 3, 9, 4}, 4, 1},
		{"tie keeps leftmost", []uint32{5, 3, 3, 7}, 4, 1},
		{"all equal", []uint32{2, 2, 2, 2}, 4, 0},
		{"minimum beyond border ignored", []uint32{5, 4, 0, 0}, 2, 1},
		{"single position", []uint32{8, 0, 0}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := energyGrid(t, []uint32{0, 0, 0, 0}[:len(tt.last)], tt.last)
			got, err := MinEnergyEndpoint(e, tt.border)
			if err != nil {
				t.Fatalf("MinEnergyEndpoint failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("endpoint = %d, want %d", got, tt.want)
			}

			// Idempotence: the energy grid is unchanged, so the answer is too.
			again, err := MinEnergyEndpoint(e, tt.border)
			if err != nil || again != got {
				t.Errorf("re-run returned %d (%v), want %d", again, err, got)
			}
		})
	}
}

func TestMinEnergyEndpoint_InvalidBorder(t *testing.T) {
	e := energyGrid(t, []uint32{1, 2, 3})
	for _, border := range []int{0, -1, 4} {
		if _, err := MinEnergyEndpoint(e, border); !errors.Is(err, ErrInvalidBorder) {
			t.Errorf("border %d: got %v, want ErrInvalidBorder", border, err)
		}
	}
}

// TestTraceSeam_TieBreakTable pins the interior precedence decisions: the
// straight predecessor beats left, left beats right, with the exact
// comparison order of the contract.
func TestTraceSeam_TieBreakTable(t *testing.T) {
	tests := []struct {
		name    string
		l, a, r uint32
		want    int // position chosen on the previous line, starting at 1
	}{
		{"all equal takes straight", 4, 4, 4, 1},
		{"straight equals left, beats right", 4, 4, 9, 1},
		{"straight equals left, right smaller", 4, 4, 2, 2},
		{"straight strictly cheapest", 9, 1, 9, 1},
		{"straight ties right", 9, 3, 3, 1},
		{"left strictly cheapest", 1, 5, 9, 0},
		{"left ties right, both beat straight", 2, 5, 2, 0},
		{"right strictly cheapest", 9, 5, 3, 2},
		{"right beats left and straight", 4, 5, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := energyGrid(t,
				[]uint32{tt.l, tt.a, tt.r},
				[]uint32{0, 0, 0},
			)
			seam, err := TraceSeam(e, 3, 1)
			if err != nil {
				t.Fatalf("TraceSeam failed: %v", err)
			}
			if seam[0] != tt.want {
				t.Errorf("L=%d A=%d R=%d: chose %d, want %d", tt.l, tt.a, tt.r, seam[0], tt.want)
			}
		})
	}
}

func TestTraceSeam_Edges(t *testing.T) {
	tests := []struct {
		name  string
		prev  []uint32
		start int
		want  int
	}{
		{"left edge stays on tie", []uint32{5, 5, 9}, 0, 0},
		{"left edge moves right", []uint32{7, 5, 9}, 0, 1},
		{"right edge stays on tie", []uint32{5, 9, 9}, 2, 2},
		{"right edge moves left", []uint32{5, 3, 7}, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := energyGrid(t, tt.prev, []uint32{0, 0, 0})
			seam, err := TraceSeam(e, 3, tt.start)
			if err != nil {
				t.Fatalf("TraceSeam failed: %v", err)
			}
			if seam[0] != tt.want {
				t.Errorf("start %d over %v: chose %d, want %d", tt.start, tt.prev, seam[0], tt.want)
			}
		})
	}
}

func TestTraceSeam_SingleLine(t *testing.T) {
	e := energyGrid(t, []uint32{3, 1, 2})
	seam, err := TraceSeam(e, 3, 1)
	if err != nil {
		t.Fatalf("TraceSeam on single line failed: %v", err)
	}
	if len(seam) != 1 || seam[0] != 1 {
		t.Errorf("seam = %v, want [1]", seam)
	}
}

func TestTraceSeam_Validation(t *testing.T) {
	e := energyGrid(t, []uint32{0, 0, 0}, []uint32{0, 0, 0})

	for _, border := range []int{0, 4} {
		if _, err := TraceSeam(e, border, 0); !errors.Is(err, ErrInvalidBorder) {
			t.Errorf("border %d: got %v, want ErrInvalidBorder", border, err)
		}
	}
	for _, start := range []int{-1, 3} {
		if _, err := TraceSeam(e, 3, start); !errors.Is(err, ErrInvalidBorder) {
			t.Errorf("start %d: got %v, want ErrInvalidBorder", start, err)
		}
	}

	empty := &Energy{steps: 0, span: 3, cells: nil}
	if _, err := TraceSeam(empty, 3, 0); !errors.Is(err, ErrEmptySeam) {
		t.Errorf("empty energy: got %v, want ErrEmptySeam", err)
	}
}

func TestTraceSeam_UniformStaysStraight(t *testing.T) {
	g := uniformGrid(t, 5, 4, pixmap.Pixel{R: 9, G: 9, B: 9})
	e, err := ComputeEnergy(g, 4, Vertical)
	if err != nil {
		t.Fatalf("ComputeEnergy failed: %v", err)
	}
	start, err := MinEnergyEndpoint(e, 4)
	if err != nil {
		t.Fatalf("MinEnergyEndpoint failed: %v", err)
	}
	seam, err := TraceSeam(e, 4, start)
	if err != nil {
		t.Fatalf("TraceSeam failed: %v", err)
	}
	for step, pos := range seam {
		if pos != 0 {
			t.Errorf("seam[%d] = %d, want 0 (ties keep the first column)", step, pos)
		}
	}
}

func TestTraceSeam_BandGridIsStraight(t *testing.T) {
	e, err := ComputeEnergy(bandGrid(t), 3, Vertical)
	if err != nil {
		t.Fatalf("ComputeEnergy failed: %v", err)
	}
	start, err := MinEnergyEndpoint(e, 3)
	if err != nil {
		t.Fatalf("MinEnergyEndpoint failed: %v", err)
	}
	seam, err := TraceSeam(e, 3, start)
	if err != nil {
		t.Fatalf("TraceSeam failed: %v", err)
	}
	want := Seam{0, 0, 0}
	for i := range want {
		if seam[i] != want[i] {
			t.Fatalf("seam = %v, want %v", seam, want)
		}
	}
}

func TestTraceSeam_ConnectivityProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, _ := pixmap.New(12, 9)
	for row := 0; row < 12; row++ {
		for col := 0; col < 9; col++ {
			g.Set(row, col, pixmap.Pixel{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
			})
		}
	}

	for border := 2; border <= 9; border++ {
		e, err := ComputeEnergy(g, border, Vertical)
		if err != nil {
			t.Fatalf("border %d: ComputeEnergy failed: %v", border, err)
		}
		start, err := MinEnergyEndpoint(e, border)
		if err != nil {
			t.Fatalf("border %d: MinEnergyEndpoint failed: %v", border, err)
		}
		seam, err := TraceSeam(e, border, start)
		if err != nil {
			t.Fatalf("border %d: TraceSeam failed: %v", border, err)
		}

		if len(seam) != e.Steps() {
			t.Fatalf("border %d: seam length %d, want %d", border, len(seam), e.Steps())
		}
		for step, pos := range seam {
			if pos < 0 || pos >= border {
				t.Fatalf("border %d: seam[%d] = %d outside [0,%d)", border, step, pos, border)
			}
			if step > 0 {
				delta := pos - seam[step-1]
				if delta < -1 || delta > 1 {
					t.Fatalf("border %d: seam step %d jumps by %d", border, step, delta)
				}
			}
		}
	}
}

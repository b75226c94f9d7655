package svg2pts

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConvertSquareScenario(t *testing.T) {
	// The closed 10x10 square at spacing 5 with page height 10: the
	// flipped start corner first, then the perimeter at multiples of 5.
	var buf bytes.Buffer
	err := Convert(&buf, [][]PathSegment{squarePath()}, Config{
		Distance:   5,
		PageHeight: 10,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want := "0 10\n5 10\n10 10\n10 5\n10 0\n5 0\n0 0\n0 5\n"
	if got := buf.String(); got != want {
		t.Errorf("output:\n%q\nwant:\n%q", got, want)
	}
}

func TestConvertPassthroughScenario(t *testing.T) {
	segs := []PathSegment{
		MoveTo{Point: Pt(0, 0)},
		LineTo{Point: Pt(3, 4)},
	}
	var buf bytes.Buffer
	err := Convert(&buf, [][]PathSegment{segs}, Config{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got, want := buf.String(), "0 0\n3 -4\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestConvertPointCountTargeting(t *testing.T) {
	// A requested point count lands within a broad band of the target,
	// since the spacing derives from an approximate arc length.
	circle := NewPathBuilder().Circle(0, 0, 50).Segments()

	for _, target := range []int{50, 200, 1000} {
		var buf bytes.Buffer
		err := Convert(&buf, [][]PathSegment{circle}, Config{Points: target})
		if err != nil {
			t.Fatalf("Convert(points=%d): %v", target, err)
		}
		got := strings.Count(buf.String(), "\n")
		lo := target - target/4
		hi := target + target/4
		if got < lo || got > hi {
			t.Errorf("points=%d emitted %d points, want within [%d, %d]", target, got, lo, hi)
		}
	}
}

func TestConvertPointsOverridesDistance(t *testing.T) {
	circle := NewPathBuilder().Circle(0, 0, 50).Segments()

	var withDistance, withBoth bytes.Buffer
	if err := Convert(&withDistance, [][]PathSegment{circle}, Config{Distance: 50}); err != nil {
		t.Fatal(err)
	}
	if err := Convert(&withBoth, [][]PathSegment{circle}, Config{Distance: 50, Points: 200}); err != nil {
		t.Fatal(err)
	}

	few := strings.Count(withDistance.String(), "\n")
	many := strings.Count(withBoth.String(), "\n")
	if many <= few {
		t.Errorf("points should override distance: got %d points with both, %d with distance only", many, few)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero config", Config{}, false},
		{"valid", Config{Distance: 1.5, Accuracy: 0.01, Points: 100}, false},
		{"negative distance", Config{Distance: -1}, true},
		{"negative accuracy", Config{Accuracy: -0.1}, true},
		{"negative points", Config{Points: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigResolveAccuracy(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want float64
	}{
		{"passthrough default", Config{}, 0.05},
		{"scales with distance", Config{Distance: 5}, 0.2},
		{"explicit wins", Config{Distance: 5, Accuracy: 0.7}, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, accuracy, _ := tt.cfg.resolve(nil)
			if accuracy != tt.want {
				t.Errorf("resolved accuracy = %v, want %v", accuracy, tt.want)
			}
		})
	}
}

func TestConvertValidatesBeforeWriting(t *testing.T) {
	var buf bytes.Buffer
	err := Convert(&buf, [][]PathSegment{squarePath()}, Config{Distance: -1})
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if buf.Len() != 0 {
		t.Errorf("no output should be produced on configuration error, got %q", buf.String())
	}
}

func TestConvertWriteFailure(t *testing.T) {
	wantErr := errors.New("write refused")
	err := Convert(&failWriter{n: 0, err: wantErr}, [][]PathSegment{squarePath()}, Config{})
	if !errors.Is(err, wantErr) {
		t.Errorf("Convert = %v, want %v", err, wantErr)
	}
}

func BenchmarkConvertExact(b *testing.B) {
	circle := NewPathBuilder().Circle(0, 0, 100).Segments()
	paths := [][]PathSegment{circle}
	cfg := Config{Distance: 0.5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Convert(discardWriter{}, paths, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

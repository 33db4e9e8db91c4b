package color

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const eps = 1e-9

func assertColor(t *testing.T, got colorful.Color, r, g, b float64) {
	t.Helper()
	if math.Abs(got.R-r) > eps || math.Abs(got.G-g) > eps || math.Abs(got.B-b) > eps {
		t.Fatalf("got (%g, %g, %g), want (%g, %g, %g)", got.R, got.G, got.B, r, g, b)
	}
}

func TestParse_NamedColorsCaseInsensitive(t *testing.T) {
	assertColor(t, Parse("red"), 1.0, 0.0, 0.0)
	assertColor(t, Parse("RED"), 1.0, 0.0, 0.0)
	assertColor(t, Parse("Orange"), 1.0, 0.6, 0.0)
	assertColor(t, Parse("bLuE"), 0.0, 0.4, 1.0)
}

func TestParse_HexWithAndWithoutMarker(t *testing.T) {
	assertColor(t, Parse("#ff9900"), 1.0, 0.6, 0.0)
	assertColor(t, Parse("ff9900"), 1.0, 0.6, 0.0)
	assertColor(t, Parse("#FF9900"), 1.0, 0.6, 0.0)
	assertColor(t, Parse("000000"), 0.0, 0.0, 0.0)
	assertColor(t, Parse("#ffffff"), 1.0, 1.0, 1.0)
}

func TestParse_MalformedInputFallsBackToRed(t *testing.T) {
	// The fallback is red even though the CLI default color is orange;
	// this mirrors the tool's historical behavior.
	for _, input := range []string{"ff99", "zzzzzz", "#zzzzzz", "", "#", "not a color", "ff99001"} {
		assertColor(t, Parse(input), 1.0, 0.0, 0.0)
	}
}

func TestParse_AlwaysReturnsNormalizedComponents(t *testing.T) {
	inputs := append(Names(), "#123456", "garbage", "", "ABCDEF", "#gg0000")
	for _, input := range inputs {
		c := Parse(input)
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Fatalf("Parse(%q) component %g out of [0,1]", input, v)
			}
		}
	}
}

func TestPixel(t *testing.T) {
	if got := Pixel(colorful.Color{R: 1.0, G: 0.6, B: 0.0}); got != 0xff9900 {
		t.Fatalf("Pixel(orange) = %#x, want 0xff9900", got)
	}
	if got := Pixel(colorful.Color{R: 0.0, G: 0.0, B: 0.0}); got != 0 {
		t.Fatalf("Pixel(black) = %#x, want 0", got)
	}
	if got := Pixel(colorful.Color{R: 1.0, G: 1.0, B: 1.0}); got != 0xffffff {
		t.Fatalf("Pixel(white) = %#x, want 0xffffff", got)
	}
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) != 9 {
		t.Fatalf("expected 9 palette entries, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	for _, name := range names {
		if _, ok := Named(name); !ok {
			t.Fatalf("Named(%q) missing", name)
		}
	}
}

package colorspace

import "testing"

func TestContrastRatio_BlackOnWhite(t *testing.T) {
	res := ContrastRatio(RGB{0, 0, 0}, RGB{255, 255, 255})
	if !closeTo(res.Ratio, 21.0, 1e-9) {
		t.Errorf("ratio: got %v, want 21.0", res.Ratio)
	}
	if !res.PassesAA || !res.PassesAAA || !res.PassesAALarge {
		t.Errorf("black on white should pass every threshold: %+v", res)
	}
	if res.Rating != "AAA (Excellent)" {
		t.Errorf("rating: got %q", res.Rating)
	}
}

func TestContrastRatio_IdenticalColors(t *testing.T) {
	res := ContrastRatio(RGB{80, 120, 200}, RGB{80, 120, 200})
	if !closeTo(res.Ratio, 1.0, 1e-9) {
		t.Errorf("ratio: got %v, want 1.0", res.Ratio)
	}
	if res.PassesAALarge {
		t.Error("identical colors cannot pass any threshold")
	}
	if res.Rating != "Fail (Poor)" {
		t.Errorf("rating: got %q", res.Rating)
	}
}

func TestContrastRatio_Symmetric(t *testing.T) {
	pairs := [][2]RGB{
		{{255, 0, 0}, {255, 255, 255}},
		{{10, 20, 30}, {200, 210, 220}},
		{{0, 0, 0}, {128, 128, 128}},
		{{33, 99, 166}, {250, 128, 7}},
	}
	for _, p := range pairs {
		ab := ContrastRatio(p[0], p[1])
		ba := ContrastRatio(p[1], p[0])
		if ab != ba {
			t.Errorf("asymmetric result for %+v: %+v vs %+v", p, ab, ba)
		}
		if ab.Ratio < 1.0 {
			t.Errorf("ratio below 1.0 for %+v: %v", p, ab.Ratio)
		}
	}
}

func TestContrastRatio_RedOnWhite(t *testing.T) {
	// Red on white sits just under the 4.5 AA threshold, a standard WCAG
	// worked example.
	res := ContrastRatio(RGB{255, 0, 0}, RGB{255, 255, 255})
	if !closeTo(res.Ratio, 4.0, 0.01) {
		t.Errorf("ratio: got %v, want ~4.0", res.Ratio)
	}
	if res.PassesAA {
		t.Error("red on white must not pass AA for normal text")
	}
	if !res.PassesAALarge {
		t.Error("red on white should pass the large-text threshold")
	}
	if res.Rating != "AA Large (Acceptable)" {
		t.Errorf("rating: got %q", res.Rating)
	}
}

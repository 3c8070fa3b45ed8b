package chroma

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestWeightedColorMean(t *testing.T) {
	tests := []struct {
		name   string
		w      float64
		c1, c2 Color
		want   Color
	}{
		{"midpoint rgb", 0.5, Red, Blue, RGB{0.5, 0, 0.5}},
		{"all first", 1, Red, Blue, RGB{1, 0, 0}},
		{"all second", 0, Red, Blue, RGB{0, 0, 1}},
		{"midpoint lab", 0.5, Lab{20, 10, -10}, Lab{40, -10, 30}, Lab{30, 0, 10}},
		{"quarter", 0.25, XYZ{0, 0, 0}, XYZ{1, 1, 1}, XYZ{0.75, 0.75, 0.75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedColorMean(tt.w, tt.c1, tt.c2)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("WeightedColorMean(%v) mismatch (-want +got):\n%s", tt.w, diff)
			}
		})
	}
}

func TestWeightedColorMeanConvertsSecondOperand(t *testing.T) {
	// The blend happens in the first color's space: a Lab second
	// operand is converted to RGB first.
	got := WeightedColorMean(0.5, Red, ToLab(Blue))
	if _, ok := got.(RGB); !ok {
		t.Fatalf("result is %T, want the first operand's space RGB", got)
	}
	want := WeightedColorMean(0.5, Red, Blue)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("cross-space blend mismatch (-want +got):\n%s", diff)
	}
}

func TestLinspaceEndpoints(t *testing.T) {
	out := Linspace(Red, Blue, 5)
	if len(out) != 5 {
		t.Fatalf("got %d colors, want 5", len(out))
	}
	if diff := cmp.Diff(Color(Red), out[0], cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("first color mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Color(Blue), out[4], cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("last color mismatch (-want +got):\n%s", diff)
	}
}

func TestLinspaceEvenSteps(t *testing.T) {
	out := Linspace(Lab{0, 0, 0}, Lab{100, 0, 0}, 3)
	want := []Color{Lab{0, 0, 0}, Lab{50, 0, 0}, Lab{100, 0, 0}}
	if diff := cmp.Diff(want, out, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Linspace mismatch (-want +got):\n%s", diff)
	}
}

func TestLinspaceDegenerate(t *testing.T) {
	if out := Linspace(Red, Blue, 0); out != nil {
		t.Errorf("Linspace(n=0) = %v, want nil", out)
	}
	out := Linspace(Red, Blue, 1)
	if len(out) != 1 {
		t.Fatalf("Linspace(n=1) has %d colors, want 1", len(out))
	}
	if diff := cmp.Diff(Color(Red), out[0], cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Linspace(n=1) mismatch (-want +got):\n%s", diff)
	}
}

func TestLinspaceStaysInFirstSpace(t *testing.T) {
	out := Linspace(HSV{0, 1, 1}, ToLab(Blue), 4)
	for i, c := range out {
		if _, ok := c.(HSV); !ok {
			t.Errorf("color %d is %T, want HSV", i, c)
		}
	}
}

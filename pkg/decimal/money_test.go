package decimal

import (
	"testing"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}
	if got := NewMoney(123.45).Float64(); got != 123.45 {
		t.Fatalf("Float64 mismatch: got %v", got)
	}
}

func TestRounding(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{2.344, "2.34"},
		{2.345, "2.35"},
		{2.355, "2.36"},
	}
	for _, c := range cases {
		got := NewMoney(c.in).Round().String()
		if got != c.out {
			t.Fatalf("round(%v) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestScaleAndHelpers(t *testing.T) {
	if got := NewMoney(1200).Scale(0.15).Float64(); got != 180 {
		t.Fatalf("scale got %v", got)
	}
	if got := Cents(0.1 + 0.2); got != 0.3 {
		t.Fatalf("cents got %v", got)
	}
	if got := Whole(849.5); got != 850 {
		t.Fatalf("whole got %v", got)
	}
	if got := NewMoney(5).Format(); got != "$5.00" {
		t.Fatalf("format got %s", got)
	}
}

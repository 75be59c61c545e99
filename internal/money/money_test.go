package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound(t *testing.T) {
	cases := []struct{ in, want string }{
		{"120.005", "120.00"},
		{"120.015", "120.02"},
		{"120.999", "121.00"},
		{"120", "120"},
	}
	for _, c := range cases {
		in, _ := decimal.NewFromString(c.in)
		want, _ := decimal.NewFromString(c.want)
		if got := Round(in); !got.Equal(want) {
			t.Errorf("Round(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestPercent(t *testing.T) {
	base, _ := decimal.NewFromString("1000")
	rate, _ := decimal.NewFromString("20")
	want, _ := decimal.NewFromString("200")
	if got := Percent(base, rate); !got.Equal(want) {
		t.Errorf("Percent = %s, want 200", got)
	}
}

func TestParse(t *testing.T) {
	if _, ok, empty := Parse("  "); ok || !empty {
		t.Error("blank input must report empty")
	}
	if _, ok, empty := Parse("abc"); ok || empty {
		t.Error("malformed input must report not ok, not empty")
	}
	d, ok, empty := Parse("12.50")
	if !ok || empty {
		t.Fatal("valid input rejected")
	}
	want, _ := decimal.NewFromString("12.5")
	if !d.Equal(want) {
		t.Errorf("Parse = %s, want 12.5", d)
	}
}

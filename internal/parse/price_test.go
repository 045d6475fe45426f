package parse

import "testing"

func TestPrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
		nil_ bool
	}{
		{in: "$731,200", want: 731200},
		{in: "+$85,300", want: 85300},
		{in: "-$12,100", want: -12100},
		{in: "?", nil_: true},
		{in: "", nil_: true},
		{in: "n/a", nil_: true},
	}
	for _, tc := range cases {
		got := Price(tc.in)
		if tc.nil_ {
			if got != nil {
				t.Fatalf("Price(%q) = %v, want nil", tc.in, *got)
			}
			continue
		}
		if got == nil || *got != tc.want {
			t.Fatalf("Price(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()

	if got := Percent("6%"); got == nil || *got != 6 {
		t.Fatalf("Percent(6%%) = %v", got)
	}
	if got := Percent("-63%"); got == nil || *got != -63 {
		t.Fatalf("Percent(-63%%) = %v", got)
	}
	if got := Percent("?"); got != nil {
		t.Fatalf("Percent(?) = %v, want nil", *got)
	}
}

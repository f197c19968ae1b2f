package utils

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := map[int64]string{
		0:       "0.00",
		5:       "0.05",
		1000000: "10000.00",
		123456:  "1234.56",
		-50:     "-0.50",
	}
	for in, want := range cases {
		if got := FormatMoney(in); got != want {
			t.Errorf("FormatMoney(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestParseMoney(t *testing.T) {
	cases := map[string]int64{
		"5000.00": 500000,
		"5000":    500000,
		"0.5":     50,
		"0.05":    5,
		"-10.25":  -1025,
	}
	for in, want := range cases {
		got, err := ParseMoney(in)
		if err != nil {
			t.Errorf("ParseMoney(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseMoney(%q) = %d, want %d", in, got, want)
		}
	}

	for _, bad := range []string{"", "abc", "1.234"} {
		if _, err := ParseMoney(bad); err == nil {
			t.Errorf("ParseMoney(%q) should fail", bad)
		}
	}
}

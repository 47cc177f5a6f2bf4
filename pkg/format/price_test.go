package format

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{"thousands separator", "15.000", 15000, false},
		{"plain digits", "15000", 15000, false},
		{"millions", "1.234.567", 1234567, false},
		{"small value", "500", 500, false},
		{"zero", "0", 0, false},
		{"surrounding spaces", " 15.000 ", 15000, false},
		{"empty", "", 0, true},
		{"only separators", "...", 0, true},
		{"letters", "abc", 0, true},
		{"mixed", "15.000a", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePrice(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePrice(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1.000"},
		{15000, "15.000"},
		{1234567, "1.234.567"},
		{-15000, "-15.000"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Harga yang masuk sebagai "15.000" harus bisa ditampilkan kembali persis sama.
func TestPriceRoundTrip(t *testing.T) {
	for _, s := range []string{"15.000", "1.000", "999", "1.234.567"} {
		v, err := ParsePrice(s)
		if err != nil {
			t.Fatalf("ParsePrice(%q) unexpected error: %v", s, err)
		}
		if got := FormatPrice(v); got != s {
			t.Errorf("round trip %q -> %d -> %q", s, v, got)
		}
	}
}

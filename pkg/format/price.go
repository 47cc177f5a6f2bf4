package format

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidPrice = errors.New("invalid price string")

// ParsePrice menerima harga berformat rupiah dengan pemisah ribuan titik
// ("15.000") dan mengembalikan nilai integer (15000). Titik hanya
// dibuang, tidak dianggap desimal.
func ParsePrice(s string) (int64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	if cleaned == "" {
		return 0, ErrInvalidPrice
	}
	v, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || v < 0 {
		return 0, ErrInvalidPrice
	}
	return v, nil
}

// FormatPrice mencetak integer dengan pemisah ribuan titik:
// 15000 -> "15.000". Kebalikan dari ParsePrice.
func FormatPrice(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

package format

import (
	"fmt"
	"time"
)

// DiffForHumans renders how long ago t was, in Indonesian:
// "baru saja", "5 menit yang lalu", "3 jam yang lalu", dst.
// Waktu di masa depan (clock skew) diperlakukan sebagai "baru saja".
func DiffForHumans(t time.Time, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}

	switch {
	case d < time.Minute:
		return "baru saja"
	case d < time.Hour:
		return fmt.Sprintf("%d menit yang lalu", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d jam yang lalu", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d hari yang lalu", int(d.Hours()/24))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%d bulan yang lalu", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%d tahun yang lalu", int(d.Hours()/(24*365)))
	}
}

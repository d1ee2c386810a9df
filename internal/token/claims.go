package token

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"tokengrip/internal/domain"
)

// ClaimRows lists claims sorted by name, annotating registered time claims relative to now
func ClaimRows(claims map[string]any, now time.Time) []domain.Claim {
	names := make([]string, 0, len(claims))
	for name := range claims {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]domain.Claim, 0, len(names))
	for _, name := range names {
		v := claims[name]
		value, err := json.Marshal(v)
		if err != nil {
			value = []byte(fmt.Sprintf("%v", v))
		}
		rows = append(rows, domain.Claim{
			Name:  name,
			Value: string(value),
			Note:  timeNote(name, v, now),
		})
	}
	return rows
}

func timeNote(name string, v any, now time.Time) string {
	switch name {
	case "exp", "nbf", "iat":
	default:
		return ""
	}
	at, ok := numericDate(v)
	if !ok {
		return ""
	}

	d := at.Sub(now).Round(time.Second)
	future := d > 0
	if d < 0 {
		d = -d
	}

	switch name {
	case "exp":
		if future {
			return "expires in " + d.String()
		}
		return "expired " + d.String() + " ago"
	case "nbf":
		if future {
			return "valid in " + d.String()
		}
		return "valid since " + d.String() + " ago"
	default:
		if future {
			return "issued in " + d.String()
		}
		return "issued " + d.String() + " ago"
	}
}

// numericDate converts a JWT NumericDate (seconds since the epoch) to a time
func numericDate(v any) (time.Time, bool) {
	var secs float64
	switch n := v.(type) {
	case float64:
		secs = n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return time.Time{}, false
		}
		secs = f
	case int64:
		secs = float64(n)
	case int:
		secs = float64(n)
	default:
		return time.Time{}, false
	}
	whole, frac := math.Modf(secs)
	return time.Unix(int64(whole), int64(frac*1e9)), true
}

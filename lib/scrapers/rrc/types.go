package rrc

import "fmt"

type WellType string

const (
	WellTypeOil WellType = "Oil"
	WellTypeGas WellType = "Gas"
)

// ParseWellType accepts either the API spelling or the portal's
// single-letter code.
func ParseWellType(s string) (WellType, error) {
	switch s {
	case "Oil", "oil", "O", "o":
		return WellTypeOil, nil
	case "Gas", "gas", "G", "g":
		return WellTypeGas, nil
	}
	return "", fmt.Errorf("unknown well type: %q", s)
}

func (t WellType) code() string {
	if t == WellTypeGas {
		return "G"
	}
	return "O"
}

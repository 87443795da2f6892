package geo

import (
	"strings"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
)

// BuildAddress assembles the geocoding query string from whichever lead
// fields are present. The country suffix anchors ambiguous queries.
func BuildAddress(l domain.Lead) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{l.Address, l.City, l.State, l.Pincode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, "India")
	return strings.Join(parts, ", ")
}

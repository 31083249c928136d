package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/twende/twende/internal/pkg/models"
)

// PREFIXES defines the valid Ugandan mobile prefixes per operator.
var PREFIXES = struct {
	MTN    []int
	AIRTEL []int
}{
	MTN:    []int{76, 77, 78},
	AIRTEL: []int{70, 74, 75},
}

// ValidateMSISDN validates a phone number and returns its normalized
// form plus the mobile money provider that serves it.
func ValidateMSISDN(msisdn string) (models.PaymentProvider, string, error) {
	// Clean the input by removing any non-digit characters
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code if present (256 for Uganda)
	if strings.HasPrefix(stripped, "256") {
		stripped = stripped[3:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if matchesPrefixes(stripped, PREFIXES.MTN) {
		return models.ProviderMTN, "256" + stripped, nil
	}
	if matchesPrefixes(stripped, PREFIXES.AIRTEL) {
		return models.ProviderAirtel, "256" + stripped, nil
	}

	return "", "", fmt.Errorf("invalid MSISDN format or unsupported operator")
}

func matchesPrefixes(number string, prefixes []int) bool {
	prefixesStr := make([]string, len(prefixes))
	for i, prefix := range prefixes {
		prefixesStr[i] = fmt.Sprintf("%d", prefix)
	}

	pattern := fmt.Sprintf("^(%s)\\d{7}$", strings.Join(prefixesStr, "|"))
	return regexp.MustCompile(pattern).MatchString(number)
}

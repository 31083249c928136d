package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twende/twende/internal/pkg/models"
)

func TestValidateMSISDN_MTN(t *testing.T) {
	provider, formatted, err := ValidateMSISDN("+256 772 123456")
	assert.NoError(t, err)
	assert.Equal(t, models.ProviderMTN, provider)
	assert.Equal(t, "256772123456", formatted)
}

func TestValidateMSISDN_Airtel(t *testing.T) {
	provider, formatted, err := ValidateMSISDN("0751234567")
	assert.NoError(t, err)
	assert.Equal(t, models.ProviderAirtel, provider)
	assert.Equal(t, "256751234567", formatted)
}

func TestValidateMSISDN_LocalFormat(t *testing.T) {
	provider, formatted, err := ValidateMSISDN("0782-345-678")
	assert.NoError(t, err)
	assert.Equal(t, models.ProviderMTN, provider)
	assert.Equal(t, "256782345678", formatted)
}

func TestValidateMSISDN_Invalid(t *testing.T) {
	cases := []string{
		"",
		"12345",
		"0601234567",  // unsupported operator
		"077123456",   // too short
		"07721234567", // too long
		"not-a-number",
	}

	for _, msisdn := range cases {
		_, _, err := ValidateMSISDN(msisdn)
		assert.Error(t, err, "expected error for %q", msisdn)
	}
}

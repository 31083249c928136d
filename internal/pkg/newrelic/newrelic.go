package newrelic

import (
	"log"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/twende/twende/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application from config.
// Returns nil when disabled; all helpers tolerate a nil application.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		log.Printf("Failed to initialize New Relic: %v", err)
		return nil
	}

	return nrApp
}

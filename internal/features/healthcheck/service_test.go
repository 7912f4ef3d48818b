package healthcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CheckHealth_WithSqliteAndNoCache_ReportsHealthy(t *testing.T) {
	report := GetHealthcheckService().CheckHealth()

	require.NotNil(t, report)
	assert.True(t, report.Healthy)
	assert.True(t, report.Database.Healthy)
	assert.True(t, report.Cache.Healthy)
	assert.Equal(t, "cache disabled", report.Cache.Detail)
	assert.False(t, report.CheckedAt.IsZero())
}

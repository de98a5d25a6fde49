package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskTierOrdinal(t *testing.T) {
	assert.Greater(t, RiskHigh.Ordinal(), RiskMedium.Ordinal())
	assert.Greater(t, RiskMedium.Ordinal(), RiskLow.Ordinal())
	assert.Equal(t, 0, RiskTier("Severe").Ordinal())
}

func TestRiskTierValid(t *testing.T) {
	assert.True(t, RiskLow.Valid())
	assert.True(t, RiskMedium.Valid())
	assert.True(t, RiskHigh.Valid())
	assert.False(t, RiskTier("").Valid())
	assert.False(t, RiskTier("low").Valid())
}

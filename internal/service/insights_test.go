package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibility_UniversalDonor(t *testing.T) {
	svc := NewInsightsService()

	compat, err := svc.Compatibility("O-")
	require.NoError(t, err)

	assert.Equal(t, "O-", compat.BloodType)
	assert.Len(t, compat.CanGiveTo, 8)
	assert.Equal(t, []string{"O-"}, compat.CanReceiveFrom)
}

func TestCompatibility_UniversalRecipient(t *testing.T) {
	svc := NewInsightsService()

	compat, err := svc.Compatibility("AB+")
	require.NoError(t, err)

	assert.Equal(t, []string{"AB+"}, compat.CanGiveTo)
	assert.Len(t, compat.CanReceiveFrom, 8)
}

func TestCompatibility_NormalizesInput(t *testing.T) {
	svc := NewInsightsService()

	compat, err := svc.Compatibility(" ab + ")
	require.NoError(t, err)
	assert.Equal(t, "AB+", compat.BloodType)
}

func TestCompatibility_UnknownType(t *testing.T) {
	svc := NewInsightsService()

	_, err := svc.Compatibility("Z+")
	assert.ErrorIs(t, err, ErrUnknownBloodType)
}

func TestStaticInsights(t *testing.T) {
	svc := NewInsightsService()

	iron := svc.IronAbsorptionTips()
	assert.Equal(t, "Tips for Improving Iron Absorption", iron.Title)
	assert.Len(t, iron.Content, 5)
	assert.NotEmpty(t, iron.Source)

	recovery := svc.DonorRecoveryTips()
	assert.Equal(t, "Post-Donation Recovery Advice", recovery.Title)
	assert.Len(t, recovery.Content, 5)

	guides := svc.FirstAidGuides()
	require.Len(t, guides, 3)
	assert.Equal(t, "Fainting", guides[0].Condition)
	for _, guide := range guides {
		assert.NotEmpty(t, guide.Steps)
	}
}

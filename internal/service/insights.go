package service

import (
	"errors"
	"fmt"

	"github.com/ananyac/lifelink/backend/internal/domain"
)

// ErrUnknownBloodType indicates a compatibility lookup for an unrecognized type.
var ErrUnknownBloodType = errors.New("invalid blood type entered")

// InsightsService serves the static informational content and the blood-type
// compatibility chart.
type InsightsService struct{}

// NewInsightsService constructs an InsightsService.
func NewInsightsService() *InsightsService {
	return &InsightsService{}
}

// IronAbsorptionTips returns dietary guidance for improving iron absorption.
func (s *InsightsService) IronAbsorptionTips() domain.Insight {
	return domain.Insight{
		Title: "Tips for Improving Iron Absorption",
		Content: []string{
			"Consume Vitamin C rich foods (citrus fruits, bell peppers) with iron-rich meals.",
			"Avoid drinking tea or coffee with meals as tannins can inhibit iron absorption.",
			"Cook in cast iron skillets to increase iron content in food.",
			"Include lean meats, poultry, and fish in your diet as they contain heme iron which is easily absorbed.",
			"Soak beans and grains before cooking to reduce phytates which can block iron absorption.",
		},
		Source: "General Health Guidelines",
	}
}

// DonorRecoveryTips returns post-donation recovery advice.
func (s *InsightsService) DonorRecoveryTips() domain.Insight {
	return domain.Insight{
		Title: "Post-Donation Recovery Advice",
		Content: []string{
			"Drink plenty of fluids for the next 24-48 hours.",
			"Avoid strenuous physical activity or heavy lifting for the rest of the day.",
			"Keep the bandage on for the next 5 hours.",
			"If you feel lightheaded, lie down with your feet up until the feeling passes.",
			"Eat a healthy meal rich in iron and protein.",
		},
		Source: "Blood Donation Center Protocols",
	}
}

// FirstAidGuides returns the emergency first-aid playbook.
func (s *InsightsService) FirstAidGuides() []domain.FirstAidGuide {
	return []domain.FirstAidGuide{
		{
			Condition: "Fainting",
			Steps: []string{
				"Lie the person down on their back.",
				"Elevate their legs to restore blood flow to the brain.",
				"Loosen tight clothing.",
				"Check for breathing and pulse.",
				"If they don't wake up within a minute, call emergency services.",
			},
		},
		{
			Condition: "Bleeding",
			Steps: []string{
				"Apply direct pressure to the wound with a clean cloth.",
				"Keep the injured limb elevated if possible.",
				"Do not remove the cloth if it soaks through, add more layers.",
				"Seek medical attention if bleeding is severe or doesn't stop.",
			},
		},
		{
			Condition: "Burn",
			Steps: []string{
				"Cool the burn with cool (not cold) running water for 10-20 minutes.",
				"Cover with a sterile, non-fluffy dressing or cling film.",
				"Do not apply ice, butter, or creams immediately.",
				"Seek medical help for severe burns or chemical burns.",
			},
		},
	}
}

// Compatibility resolves the give-to and receive-from sets for a blood type.
func (s *InsightsService) Compatibility(bloodType string) (domain.Compatibility, error) {
	normalized := normalizeBloodType(bloodType)
	entry, ok := compatibilityChart[normalized]
	if !ok {
		return domain.Compatibility{}, fmt.Errorf("%w: %q", ErrUnknownBloodType, bloodType)
	}
	return domain.Compatibility{
		BloodType:      normalized,
		CanGiveTo:      append([]string(nil), entry.give...),
		CanReceiveFrom: append([]string(nil), entry.receive...),
	}, nil
}

type compatibilityEntry struct {
	give    []string
	receive []string
}

var compatibilityChart = map[string]compatibilityEntry{
	domain.BloodTypeONeg: {
		give:    []string{"O-", "O+", "A-", "A+", "B-", "B+", "AB-", "AB+"},
		receive: []string{"O-"},
	},
	domain.BloodTypeOPos: {
		give:    []string{"O+", "A+", "B+", "AB+"},
		receive: []string{"O+", "O-"},
	},
	domain.BloodTypeANeg: {
		give:    []string{"A-", "A+", "AB-", "AB+"},
		receive: []string{"A-", "O-"},
	},
	domain.BloodTypeAPos: {
		give:    []string{"A+", "AB+"},
		receive: []string{"A+", "A-", "O+", "O-"},
	},
	domain.BloodTypeBNeg: {
		give:    []string{"B-", "B+", "AB-", "AB+"},
		receive: []string{"B-", "O-"},
	},
	domain.BloodTypeBPos: {
		give:    []string{"B+", "AB+"},
		receive: []string{"B+", "B-", "O+", "O-"},
	},
	domain.BloodTypeABNeg: {
		give:    []string{"AB-", "AB+"},
		receive: []string{"AB-", "A-", "B-", "O-"},
	},
	domain.BloodTypeABPos: {
		give:    []string{"AB+"},
		receive: []string{"O-", "O+", "A-", "A+", "B-", "B+", "AB-", "AB+"},
	},
}

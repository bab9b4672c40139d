package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductRiskLabelsTotal(t *testing.T) {
	for _, risk := range []ProductRisk{RiskLow, RiskMedium, RiskHigh, RiskVeryHigh, RiskExtreme} {
		assert.True(t, risk.Valid())
		assert.NotEmpty(t, risk.Label())
		assert.NotEqual(t, "Unknown", risk.Label())
	}
	assert.Equal(t, "Unknown", ProductRisk("CATASTROPHIC").Label())
	assert.False(t, ProductRisk("CATASTROPHIC").Valid())
}

func TestProductStatusLabelsTotal(t *testing.T) {
	for _, status := range []ProductStatus{ProductActive, ProductInactive, ProductComingSoon, ProductDiscontinued} {
		assert.True(t, status.Valid())
		assert.NotEmpty(t, status.Label())
		assert.NotEqual(t, "Unknown", status.Label())
	}
	assert.Equal(t, "Unknown", ProductStatus("").Label())
}

func TestProductCategoryLabelsTotal(t *testing.T) {
	for _, category := range []ProductCategory{CategoryDefi, CategoryRwa, CategoryNft} {
		assert.True(t, category.Valid())
		assert.NotEmpty(t, category.Label())
	}
	assert.Equal(t, "Unknown", ProductCategory("MEME").Label())
}

func TestTestimonialRatingStars(t *testing.T) {
	stars := map[TestimonialRating]int{
		RatingOne: 1, RatingTwo: 2, RatingThree: 3, RatingFour: 4, RatingFive: 5,
	}
	for rating, want := range stars {
		assert.True(t, rating.Valid())
		assert.Equal(t, want, rating.Stars())
	}
	assert.Equal(t, 0, TestimonialRating("SIX").Stars())
	assert.False(t, TestimonialRating("SIX").Valid())
}

func TestTestimonialStatusLabelsTotal(t *testing.T) {
	assert.Equal(t, "Published", TestimonialActive.Label())
	assert.Equal(t, "Draft", TestimonialInactive.Label())
	assert.Equal(t, "Unknown", TestimonialStatus("ARCHIVED").Label())
}

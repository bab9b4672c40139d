package domain

import "time"

type TestimonialRating string

const (
	RatingOne   TestimonialRating = "ONE"
	RatingTwo   TestimonialRating = "TWO"
	RatingThree TestimonialRating = "THREE"
	RatingFour  TestimonialRating = "FOUR"
	RatingFive  TestimonialRating = "FIVE"
)

type TestimonialStatus string

const (
	// TestimonialActive marks a published review, TestimonialInactive a draft.
	TestimonialActive   TestimonialStatus = "ACTIVE"
	TestimonialInactive TestimonialStatus = "INACTIVE"
)

type Testimonial struct {
	ID        int64             `json:"id,string" form:"id"`
	Name      string            `gorm:"index" json:"name" form:"name"`
	Position  string            `json:"position" form:"position"`
	Content   string            `json:"content" form:"content"`
	Rating    TestimonialRating `gorm:"size:16" json:"rating" form:"rating"`
	Status    TestimonialStatus `gorm:"size:16;index" json:"status" form:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

var testimonialRatingStars = map[TestimonialRating]int{
	RatingOne:   1,
	RatingTwo:   2,
	RatingThree: 3,
	RatingFour:  4,
	RatingFive:  5,
}

var testimonialStatusLabels = map[TestimonialStatus]string{
	TestimonialActive:   "Published",
	TestimonialInactive: "Draft",
}

func (r TestimonialRating) Valid() bool {
	_, ok := testimonialRatingStars[r]
	return ok
}

// Stars returns the ordinal star count, 0 for unrecognized ratings.
func (r TestimonialRating) Stars() int {
	return testimonialRatingStars[r]
}

func (s TestimonialStatus) Valid() bool {
	_, ok := testimonialStatusLabels[s]
	return ok
}

func (s TestimonialStatus) Label() string {
	if label, ok := testimonialStatusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

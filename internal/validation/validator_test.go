package validation

import (
	"errors"
	"strings"
	"testing"

	"rentwise/internal/models/request_models"
	"rentwise/pkg/utils"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func validBuilding() request_models.CreateBuildingRequest {
	return request_models.CreateBuildingRequest{
		Name:         "The Ansonia",
		Address:      "2109 Broadway",
		ZipCode:      "10023",
		Neighborhood: strp("Manhattan - Upper West Side"),
		BuildingType: strp("High-rise"),
	}
}

func validReview() request_models.CreateReviewRequest {
	return request_models.CreateReviewRequest{
		OverallRating: 4,
		FloorNumber:   3,
		ReviewText:    strings.Repeat("x", 50),
	}
}

func firstMessage(t *testing.T, err error) string {
	t.Helper()
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	return ve.Message
}

func TestBuildingRules(t *testing.T) {
	v := New()
	if err := v.Struct(validBuilding()); err != nil {
		t.Fatalf("valid building rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*request_models.CreateBuildingRequest)
		want   string
	}{
		{"short name", func(b *request_models.CreateBuildingRequest) { b.Name = "A" }, "name must be at least 2 characters"},
		{"short address", func(b *request_models.CreateBuildingRequest) { b.Address = "1 Rd" }, "address must be at least 5 characters"},
		{"zip letters", func(b *request_models.CreateBuildingRequest) { b.ZipCode = "1002A" }, "Must be a valid 5-digit ZIP code"},
		{"zip length", func(b *request_models.CreateBuildingRequest) { b.ZipCode = "100231" }, "Must be a valid 5-digit ZIP code"},
		{"unknown neighborhood", func(b *request_models.CreateBuildingRequest) { b.Neighborhood = strp("Hoboken") }, "Neighborhood must be one of the supported neighborhoods"},
		{"unknown type", func(b *request_models.CreateBuildingRequest) { b.BuildingType = strp("Castle") }, "Building type must be one of the supported building types"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBuilding()
			tc.mutate(&b)
			if got := firstMessage(t, v.Struct(b)); got != tc.want {
				t.Errorf("message = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOptionalBuildingFieldsMayBeOmitted(t *testing.T) {
	b := validBuilding()
	b.Neighborhood = nil
	b.BuildingType = nil
	if err := New().Struct(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReviewTextBoundary(t *testing.T) {
	v := New()
	r := validReview()
	r.ReviewText = strings.Repeat("x", 49)
	if got := firstMessage(t, v.Struct(r)); got != "Review must be at least 50 characters" {
		t.Errorf("message = %q", got)
	}

	r.ReviewText = strings.Repeat("x", 50)
	if err := v.Struct(r); err != nil {
		t.Fatalf("50 characters rejected: %v", err)
	}
}

func TestReviewRatingRanges(t *testing.T) {
	v := New()

	r := validReview()
	r.OverallRating = 6
	if got := firstMessage(t, v.Struct(r)); got != "overallRating must be at most 5" {
		t.Errorf("message = %q", got)
	}

	r = validReview()
	r.FloorNumber = 101
	if got := firstMessage(t, v.Struct(r)); got != "floorNumber must be at most 100" {
		t.Errorf("message = %q", got)
	}

	r = validReview()
	r.PestRating = intp(0)
	if got := firstMessage(t, v.Struct(r)); got != "pestRating must be at least 1" {
		t.Errorf("message = %q", got)
	}

	r = validReview()
	r.NoiseRating = intp(5)
	r.SafetyRating = intp(1)
	if err := v.Struct(r); err != nil {
		t.Fatalf("valid optional ratings rejected: %v", err)
	}
}

func TestReviewPhotoURLs(t *testing.T) {
	v := New()
	r := validReview()
	r.PhotoURLs = []string{"https://cdn.example.com/a.jpg", "not a url"}
	if got := firstMessage(t, v.Struct(r)); got != "photoUrls must contain valid http(s) URLs" {
		t.Errorf("message = %q", got)
	}

	r.PhotoURLs = []string{"a", "b", "c", "d", "e", "f"}
	if got := firstMessage(t, v.Struct(r)); got != "photoUrls must contain at most 5 items" {
		t.Errorf("message = %q", got)
	}
}

package listing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"

	"rentwise/internal/models/db_models"
	"rentwise/internal/models/request_models"
	"rentwise/internal/models/response_models"
	"rentwise/internal/ratings"
	"rentwise/pkg/utils"
)

var testLimits = Limits{DefaultLimit: 12, MaxLimit: 100}

func building(name string, avg float64, count int64, created time.Time) response_models.BuildingWithRatings {
	var b response_models.BuildingWithRatings
	b.ID = uuid.New()
	b.Name = name
	b.CreatedAt = created
	b.Status = db_models.StatusApproved
	b.Ratings = ratings.Ratings{OverallRating: avg, ReviewCount: count}
	return b
}

type staticSource struct {
	rows   []response_models.BuildingWithRatings
	filter Filter
	err    error
}

func (s *staticSource) FindWithRatings(_ context.Context, filter Filter) ([]response_models.BuildingWithRatings, error) {
	s.filter = filter
	out := make([]response_models.BuildingWithRatings, len(s.rows))
	copy(out, s.rows)
	return out, s.err
}

func TestParseParamsDefaults(t *testing.T) {
	p, err := ParseParams(request_models.ListBuildingsQuery{}, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Limit != 12 || p.Offset != 0 || p.SortBy != SortRating || p.Status != db_models.StatusApproved {
		t.Fatalf("unexpected defaults %+v", p)
	}
	if p.Neighborhood != nil || p.BuildingType != nil {
		t.Fatalf("filters should be unset by default")
	}
}

func TestParseParamsAllMeansNoFilter(t *testing.T) {
	p, err := ParseParams(request_models.ListBuildingsQuery{Neighborhood: "all", BuildingType: "all"}, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Neighborhood != nil || p.BuildingType != nil {
		t.Fatalf("\"all\" must disable filters, got %+v", p.Filter)
	}

	p, err = ParseParams(request_models.ListBuildingsQuery{Neighborhood: "Queens - Astoria", BuildingType: "Loft"}, testLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Neighborhood == nil || *p.Neighborhood != "Queens - Astoria" || p.BuildingType == nil || *p.BuildingType != "Loft" {
		t.Fatalf("filters not applied: %+v", p.Filter)
	}

	p, err = ParseParams(request_models.ListBuildingsQuery{Status: "all"}, testLimits)
	if err != nil {
		t.Fatalf("status=all should parse: %v", err)
	}
	if p.Status != "" {
		t.Fatalf("status=all must disable the status filter, got %q", p.Status)
	}
}

func TestParseParamsRejectsBadInput(t *testing.T) {
	cases := []request_models.ListBuildingsQuery{
		{Limit: "abc"},
		{Limit: "0"},
		{Limit: "-3"},
		{Limit: "101"},
		{Offset: "-1"},
		{Offset: "ten"},
		{SortBy: "price"},
		{Neighborhood: "Atlantis"},
		{BuildingType: "Igloo"},
		{Status: "archived"},
	}
	for _, raw := range cases {
		t.Run(fmt.Sprintf("%+v", raw), func(t *testing.T) {
			_, err := ParseParams(raw, testLimits)
			if !errors.Is(err, utils.ErrInvalidListingQuery) {
				t.Fatalf("expected ErrInvalidListingQuery, got %v", err)
			}
		})
	}
}

func TestSortByReviewsRanksMoreReviewedFirst(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a := building("A", 4.5, 10, t1)
	b := building("B", 4.5, 3, t1.Add(time.Hour))

	rows := []response_models.BuildingWithRatings{b, a}
	Sort(rows, SortReviews)
	if rows[0].Name != "A" {
		t.Fatalf("expected A (10 reviews) first, got %s", rows[0].Name)
	}

	rows = []response_models.BuildingWithRatings{a, b}
	Sort(rows, SortNewest)
	if rows[0].Name != "B" {
		t.Fatalf("expected B (newer) first, got %s", rows[0].Name)
	}
}

func TestSortByRatingTieBreaksDeterministically(t *testing.T) {
	now := time.Now()
	rows := []response_models.BuildingWithRatings{
		building("low", 2, 5, now),
		building("tie-few", 4, 1, now),
		building("tie-many", 4, 9, now),
		building("unrated", 0, 0, now),
	}
	Sort(rows, SortRating)

	want := []string{"tie-many", "tie-few", "low", "unrated"}
	for i, name := range want {
		if rows[i].Name != name {
			t.Fatalf("position %d = %s, want %s", i, rows[i].Name, name)
		}
	}

	x := building("x", 3, 3, now)
	y := building("y", 3, 3, now)
	if Less(SortRating, x, y) == Less(SortRating, y, x) {
		t.Fatal("identical aggregates must still order by id")
	}
}

func TestPaginateBoundaries(t *testing.T) {
	now := time.Now()
	var rows []response_models.BuildingWithRatings
	for i := 0; i < 5; i++ {
		rows = append(rows, building(fmt.Sprint(i), 0, 0, now))
	}

	page := Paginate(rows, 2, 4)
	if len(page.Buildings) != 1 || page.Total != 5 || page.HasMore {
		t.Fatalf("unexpected last page %+v", page)
	}

	page = Paginate(rows, 2, 10)
	if len(page.Buildings) != 0 || page.Total != 5 || page.HasMore {
		t.Fatalf("offset past the end should be empty, got %+v", page)
	}

	page = Paginate(rows, 2, 0)
	if len(page.Buildings) != 2 || !page.HasMore {
		t.Fatalf("unexpected first page %+v", page)
	}

	p, err := ParseParams(request_models.ListBuildingsQuery{Limit: "2", Offset: strconv.Itoa(math.MaxInt)}, testLimits)
	if err != nil {
		t.Fatalf("large offset should parse: %v", err)
	}
	page = Paginate(rows, p.Limit, p.Offset)
	if len(page.Buildings) != 0 || page.Total != 5 || page.HasMore {
		t.Fatalf("huge offset must give an empty last page, got %+v", page)
	}
}

func TestConsecutivePagesConcatenateToLargerPage(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var rows []response_models.BuildingWithRatings
	for i := 0; i < 30; i++ {
		rows = append(rows, building(fmt.Sprintf("b%02d", i), float64(i%4)+1, int64(i%3), base.Add(time.Duration(i%5)*time.Hour)))
	}
	engine := NewMemoryEngine(&staticSource{rows: rows})
	ctx := context.Background()

	for _, sortBy := range []SortBy{SortRating, SortReviews, SortNewest} {
		first, _ := engine.List(ctx, Params{SortBy: sortBy, Limit: 12, Offset: 0})
		second, _ := engine.List(ctx, Params{SortBy: sortBy, Limit: 12, Offset: 12})
		both, _ := engine.List(ctx, Params{SortBy: sortBy, Limit: 24, Offset: 0})

		seen := map[uuid.UUID]bool{}
		joined := append(append([]response_models.BuildingWithRatings{}, first.Buildings...), second.Buildings...)
		for _, b := range first.Buildings {
			seen[b.ID] = true
		}
		for _, b := range second.Buildings {
			if seen[b.ID] {
				t.Fatalf("%s: building %s appears on both pages", sortBy, b.Name)
			}
		}
		if len(joined) != len(both.Buildings) {
			t.Fatalf("%s: got %d rows, want %d", sortBy, len(joined), len(both.Buildings))
		}
		for i := range joined {
			if joined[i].ID != both.Buildings[i].ID {
				t.Fatalf("%s: position %d differs", sortBy, i)
			}
		}
		if first.Total != 30 || !first.HasMore || !second.HasMore || !both.HasMore {
			t.Fatalf("%s: unexpected totals", sortBy)
		}
	}
}

func TestMemoryEnginePassesFilterAndPropagatesErrors(t *testing.T) {
	n := "Brooklyn - DUMBO"
	src := &staticSource{}
	engine := NewMemoryEngine(src)
	_, err := engine.List(context.Background(), Params{Filter: Filter{Q: "park", Neighborhood: &n, Status: db_models.StatusPending}, Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.filter.Q != "park" || src.filter.Status != db_models.StatusPending || *src.filter.Neighborhood != n {
		t.Fatalf("filter not forwarded: %+v", src.filter)
	}

	src.err = errors.New("boom")
	if _, err := engine.List(context.Background(), Params{Limit: 5}); err == nil {
		t.Fatal("expected source error")
	}
}

type pagedSource struct {
	rows  []response_models.BuildingWithRatings
	total int64
}

func (p pagedSource) PageWithRatings(context.Context, Params) ([]response_models.BuildingWithRatings, int64, error) {
	return p.rows, p.total, nil
}

func TestSQLEngineHasMore(t *testing.T) {
	engine := NewSQLEngine(pagedSource{total: 13})
	page, err := engine.List(context.Background(), Params{Limit: 12, Offset: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !page.HasMore || page.Total != 13 || page.Buildings == nil {
		t.Fatalf("unexpected page %+v", page)
	}

	page, _ = engine.List(context.Background(), Params{Limit: 12, Offset: 12})
	if page.HasMore {
		t.Fatal("expected no more pages")
	}

	page, _ = engine.List(context.Background(), Params{Limit: 100, Offset: math.MaxInt})
	if page.HasMore {
		t.Fatal("offset far past the end must not report more pages")
	}
}

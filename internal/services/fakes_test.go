package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rentwise/internal/listing"
	"rentwise/internal/models/db_models"
	"rentwise/internal/models/response_models"
	"rentwise/internal/ratings"
	"rentwise/internal/repositories"
	"rentwise/internal/validation"
	mem "rentwise/pkg/memcache"
)

// fakeStore keeps every table in memory and computes aggregates the way the SQL does.
type fakeStore struct {
	mu        sync.Mutex
	clock     time.Time
	buildings []*db_models.Building
	reviews   []*db_models.Review
	users     map[string]db_models.User

	userLookups [][]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		users: make(map[string]db_models.User),
	}
}

func (s *fakeStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *fakeStore) addBuilding(name, address string, status db_models.ModerationStatus) *db_models.Building {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := &db_models.Building{
		BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: s.tick()},
		Name:      name,
		Address:   address,
		City:      "New York",
		ZipCode:   "10001",
		Status:    status,
	}
	s.buildings = append(s.buildings, b)
	return b
}

func (s *fakeStore) addReview(buildingID uuid.UUID, userID string, overall, floor int, status db_models.ModerationStatus, anonymous bool) *db_models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &db_models.Review{
		BaseModel:     db_models.BaseModel{ID: uuid.New(), CreatedAt: s.tick()},
		BuildingID:    buildingID,
		UserID:        userID,
		OverallRating: overall,
		FloorNumber:   floor,
		ReviewText:    strings.Repeat("x", 60),
		IsAnonymous:   anonymous,
		Status:        status,
	}
	s.reviews = append(s.reviews, r)
	return r
}

func (s *fakeStore) building(id uuid.UUID) *db_models.Building {
	for _, b := range s.buildings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (s *fakeStore) review(id uuid.UUID) *db_models.Review {
	for _, r := range s.reviews {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func addOptional(sum, count *int64, v *int) {
	if v != nil {
		*sum += int64(*v)
		*count++
	}
}

func (s *fakeStore) tally(buildingID uuid.UUID) ratings.Tally {
	t := ratings.Tally{BuildingID: buildingID}
	for _, r := range s.reviews {
		if r.BuildingID != buildingID || r.Status != db_models.StatusApproved {
			continue
		}
		t.ReviewCount++
		t.SumOverall += int64(r.OverallRating)
		addOptional(&t.SumNoise, &t.CountNoise, r.NoiseRating)
		addOptional(&t.SumCleanliness, &t.CountCleanliness, r.CleanlinessRating)
		addOptional(&t.SumMaintenance, &t.CountMaintenance, r.MaintenanceRating)
		addOptional(&t.SumSafety, &t.CountSafety, r.SafetyRating)
		addOptional(&t.SumPest, &t.CountPest, r.PestRating)
	}
	return t
}

func (s *fakeStore) withRatings(b *db_models.Building) response_models.BuildingWithRatings {
	return response_models.BuildingWithRatings{Building: *b, Ratings: s.tally(b.ID).Ratings()}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matches(b *db_models.Building, f listing.Filter) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.Neighborhood != nil && (b.Neighborhood == nil || *b.Neighborhood != *f.Neighborhood) {
		return false
	}
	if f.BuildingType != nil && (b.BuildingType == nil || *b.BuildingType != *f.BuildingType) {
		return false
	}
	if f.Q != "" {
		n := ""
		if b.Neighborhood != nil {
			n = *b.Neighborhood
		}
		if !containsFold(b.Name, f.Q) && !containsFold(b.Address, f.Q) && !containsFold(n, f.Q) {
			return false
		}
	}
	return true
}

// ---------- BuildingRepository ----------

type fakeBuildingRepo struct{ s *fakeStore }

func (r fakeBuildingRepo) Create(_ context.Context, b *db_models.Building) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b.ID = uuid.New()
	b.CreatedAt = r.s.tick()
	cp := *b
	r.s.buildings = append(r.s.buildings, &cp)
	return nil
}

func (r fakeBuildingRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Building, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b := r.s.building(id)
	if b == nil {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r fakeBuildingRepo) FindWithRatingsByID(_ context.Context, id uuid.UUID) (*response_models.BuildingWithRatings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b := r.s.building(id)
	if b == nil {
		return nil, nil
	}
	out := r.s.withRatings(b)
	return &out, nil
}

func (r fakeBuildingRepo) FindWithRatings(_ context.Context, f listing.Filter) ([]response_models.BuildingWithRatings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []response_models.BuildingWithRatings
	for _, b := range r.s.buildings {
		if matches(b, f) {
			out = append(out, r.s.withRatings(b))
		}
	}
	return out, nil
}

func (r fakeBuildingRepo) PageWithRatings(ctx context.Context, p listing.Params) ([]response_models.BuildingWithRatings, int64, error) {
	rows, _ := r.FindWithRatings(ctx, p.Filter)
	listing.Sort(rows, p.SortBy)
	page := listing.Paginate(rows, p.Limit, p.Offset)
	return page.Buildings, page.Total, nil
}

func (r fakeBuildingRepo) Autocomplete(_ context.Context, q string, limit int) ([]response_models.BuildingSuggestion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []response_models.BuildingSuggestion{}
	for _, b := range r.s.buildings {
		if b.Status == db_models.StatusApproved && (containsFold(b.Name, q) || containsFold(b.Address, q)) {
			out = append(out, response_models.BuildingSuggestion{ID: b.ID, Name: b.Name, Address: b.Address})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r fakeBuildingRepo) FloorTallies(_ context.Context, buildingID uuid.UUID) ([]ratings.FloorTally, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	byFloor := map[int]*ratings.FloorTally{}
	for _, rv := range r.s.reviews {
		if rv.BuildingID != buildingID || rv.Status != db_models.StatusApproved {
			continue
		}
		t, ok := byFloor[rv.FloorNumber]
		if !ok {
			t = &ratings.FloorTally{FloorNumber: rv.FloorNumber}
			byFloor[rv.FloorNumber] = t
		}
		t.ReviewCount++
		t.SumOverall += int64(rv.OverallRating)
	}
	out := make([]ratings.FloorTally, 0, len(byFloor))
	for _, t := range byFloor {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FloorNumber < out[j].FloorNumber })
	return out, nil
}

func (r fakeBuildingRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to db_models.ModerationStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b := r.s.building(id)
	if b == nil || b.Status != from {
		return false, nil
	}
	b.Status = to
	return true, nil
}

func (r fakeBuildingRepo) ListByStatus(_ context.Context, status db_models.ModerationStatus) ([]db_models.Building, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []db_models.Building{}
	for _, b := range r.s.buildings {
		if b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

// ---------- ReviewRepositoryInterface ----------

type fakeReviewRepo struct{ s *fakeStore }

func (r fakeReviewRepo) CreateWithPhotos(_ context.Context, review *db_models.Review, photoURLs []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	review.ID = uuid.New()
	review.CreatedAt = r.s.tick()
	review.Photos = []db_models.ReviewPhoto{}
	for _, url := range photoURLs {
		review.Photos = append(review.Photos, db_models.ReviewPhoto{
			BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: review.CreatedAt},
			ReviewID:  review.ID,
			ImageURL:  url,
		})
	}
	cp := *review
	r.s.reviews = append(r.s.reviews, &cp)
	return nil
}

func (r fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rv := r.s.review(id)
	if rv == nil {
		return nil, nil
	}
	cp := *rv
	return &cp, nil
}

func (r fakeReviewRepo) ListApprovedByBuilding(_ context.Context, buildingID uuid.UUID, sortBy repositories.ReviewSort) ([]db_models.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []db_models.Review{}
	for _, rv := range r.s.reviews {
		if rv.BuildingID == buildingID && rv.Status == db_models.StatusApproved {
			out = append(out, *rv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch sortBy {
		case repositories.ReviewSortHighest:
			if a.OverallRating != b.OverallRating {
				return a.OverallRating > b.OverallRating
			}
		case repositories.ReviewSortLowest:
			if a.OverallRating != b.OverallRating {
				return a.OverallRating < b.OverallRating
			}
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return out, nil
}

func (r fakeReviewRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to db_models.ModerationStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rv := r.s.review(id)
	if rv == nil || rv.Status != from {
		return false, nil
	}
	rv.Status = to
	return true, nil
}

func (r fakeReviewRepo) ListByStatus(_ context.Context, status db_models.ModerationStatus) ([]db_models.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []db_models.Review{}
	for _, rv := range r.s.reviews {
		if rv.Status == status {
			out = append(out, *rv)
		}
	}
	return out, nil
}

// ---------- UserRepositoryInterface / DashboardRepository ----------

type fakeUserRepo struct{ s *fakeStore }

func (r fakeUserRepo) Upsert(_ context.Context, u *db_models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[u.ID] = *u
	return nil
}

func (r fakeUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]db_models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.userLookups = append(r.s.userLookups, ids)
	out := map[string]db_models.User{}
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type fakeDashboardRepo struct{ s *fakeStore }

func (r fakeDashboardRepo) CountUsers(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}

func (r fakeDashboardRepo) CountBuildings(_ context.Context, status db_models.ModerationStatus) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, b := range r.s.buildings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (r fakeDashboardRepo) CountReviews(_ context.Context, status db_models.ModerationStatus) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, rv := range r.s.reviews {
		if rv.Status == status {
			n++
		}
	}
	return n, nil
}

// ---------- wiring ----------

type testServices struct {
	store      *fakeStore
	cache      *mem.BuildingTTLCache
	buildings  BuildingServiceInterface
	reviews    ReviewServiceInterface
	moderation ModerationServiceInterface
	dashboard  DashboardService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	store := newFakeStore()
	cache := mem.NewBuildingTTLCache(time.Hour)
	logger := zap.NewNop()
	v := validation.New()

	buildingRepo := fakeBuildingRepo{store}
	reviewRepo := fakeReviewRepo{store}
	userRepo := fakeUserRepo{store}
	users := NewUserService(userRepo, logger)

	return &testServices{
		store: store,
		cache: cache,
		buildings: NewBuildingService(buildingRepo, listing.NewMemoryEngine(buildingRepo),
			listing.Limits{DefaultLimit: 12, MaxLimit: 100}, cache, users, v, logger),
		reviews:    NewReviewService(reviewRepo, buildingRepo, userRepo, users, v, logger),
		moderation: NewModerationService(buildingRepo, reviewRepo, cache, logger),
		dashboard:  NewDashboardService(fakeDashboardRepo{store}, logger),
	}
}

package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InteriorStudio/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestService(now time.Time) *Service {
	s := NewService(logger.Nop())
	s.timeProvider = fixedTime{now: now}
	return s
}

func TestGetCatalog_AvailableDates(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  []string
	}{
		{
			// суббота: воскресенье пропускается
			name:  "from saturday",
			today: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
			want:  []string{"2026-10-19", "2026-10-20", "2026-10-21", "2026-10-22", "2026-10-23"},
		},
		{
			name:  "from sunday",
			today: time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC),
			want:  []string{"2026-10-19", "2026-10-20", "2026-10-21", "2026-10-22", "2026-10-23"},
		},
		{
			name:  "from tuesday across sunday",
			today: time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
			want:  []string{"2026-10-21", "2026-10-22", "2026-10-23", "2026-10-24", "2026-10-26"},
		},
		{
			name:  "month boundary",
			today: time.Date(2026, 10, 29, 9, 0, 0, 0, time.UTC),
			want:  []string{"2026-10-30", "2026-10-31", "2026-11-02", "2026-11-03", "2026-11-04"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newTestService(tt.today).GetCatalog(context.Background())
			require.NoError(t, err)

			got := make([]string, len(resp.AvailableDates))
			for i, d := range resp.AvailableDates {
				got[i] = d.Date
				assert.NotEqual(t, "Sun", d.Weekday)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetCatalog_StaticData(t *testing.T) {
	resp, err := newTestService(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)).GetCatalog(context.Background())
	require.NoError(t, err)

	assert.Len(t, resp.StepTitles, 5)
	assert.Len(t, resp.ServiceTypes, 8)
	assert.Len(t, resp.ContactMethods, 4)
	assert.Equal(t, "phone", resp.ContactMethods[0].Value)
	assert.Len(t, resp.TimeSlots, 7)
	assert.Len(t, resp.PricingPlans, 3)
	assert.Len(t, resp.Routes, 7)

	calc := resp.Calculator
	assert.Equal(t, 50, calc.MinArea)
	assert.Equal(t, 1000, calc.MaxArea)
	assert.Equal(t, 1.5, calc.ComplexityMultipliers["medium"])
	assert.Equal(t, 2.5, calc.MaterialMultipliers["luxury"])
	assert.Equal(t, 100, calc.Defaults.Area)
	assert.True(t, calc.Defaults.Lighting)

	first := resp.AvailableDates[0]
	assert.Equal(t, "Mon", first.Weekday)
	assert.Equal(t, 19, first.Day)
	assert.Equal(t, "Oct", first.Month)
}

func TestGetHeadline(t *testing.T) {
	s := newTestService(time.Now())

	h, err := s.GetHeadline(context.Background(), "pricing-cta")
	require.NoError(t, err)
	assert.True(t, h.Loop)
	assert.Equal(t, "Ready to Get Started?", h.Text)

	_, err = s.GetHeadline(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrHeadlineNotFound)
}

func TestGallery(t *testing.T) {
	tests := []struct {
		name     string
		category string
		query    string
		wantIDs  []int
		wantCat  string
	}{
		{name: "default is all", category: "", wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, wantCat: "all"},
		{name: "category", category: "lighting", wantIDs: []int{3, 7, 11}, wantCat: "lighting"},
		{name: "search by tag", category: "all", query: "warm", wantIDs: []int{3}, wantCat: "all"},
		{name: "search folds case", category: "pop", query: "KITCHEN", wantIDs: []int{9}, wantCat: "pop"},
		{name: "nothing found", category: "tv", query: "ceiling", wantIDs: []int{}, wantCat: "tv"},
	}

	s := newTestService(time.Now())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.Gallery(context.Background(), tt.category, tt.query)
			require.NoError(t, err)

			ids := make([]int, len(resp.Items))
			for i, item := range resp.Items {
				ids[i] = item.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), resp.Total)
			assert.Equal(t, tt.wantCat, resp.Category)
			assert.Len(t, resp.Categories, 6)
		})
	}
}

func TestGallery_NeighborsWrapAround(t *testing.T) {
	resp, err := newTestService(time.Now()).Gallery(context.Background(), "tv", "")
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)

	// 2 -> 6 -> 10 -> 2
	assert.Equal(t, 10, resp.Items[0].PrevID)
	assert.Equal(t, 6, resp.Items[0].NextID)
	assert.Equal(t, 2, resp.Items[1].PrevID)
	assert.Equal(t, 10, resp.Items[1].NextID)
	assert.Equal(t, 6, resp.Items[2].PrevID)
	assert.Equal(t, 2, resp.Items[2].NextID)
}

func TestServices(t *testing.T) {
	s := newTestService(time.Now())

	all, err := s.Services(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "all", all.Category)
	assert.Len(t, all.Services, 6)
	assert.Len(t, all.Categories, 7)
	assert.Len(t, all.Process, 6)

	tv, err := s.Services(context.Background(), "tv")
	require.NoError(t, err)
	require.Len(t, tv.Services, 1)
	assert.Equal(t, "Console Design", tv.Services[0].Title)

	maintenance, err := s.Services(context.Background(), "maintenance")
	require.NoError(t, err)
	require.Len(t, maintenance.Services, 1)
	assert.Equal(t, 6, maintenance.Services[0].ID)
}

func TestUnknownCategory(t *testing.T) {
	s := newTestService(time.Now())

	_, err := s.Gallery(context.Background(), "garden", "")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	// у галереи и услуг разные наборы фильтров
	_, err = s.Services(context.Background(), "commercial")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

package schedule

import (
	"testing"

	"pawhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timedBooking(id, start, end string, ts *models.TimeSlot) models.Booking {
	return models.Booking{
		ID:           id,
		ContractorID: "walker-1",
		StartDate:    start,
		EndDate:      end,
		Time:         ts,
		Status:       models.StatusApproved,
		Services:     []models.ServiceRef{{ServiceID: "svc-walk", Name: "Dog Walking"}},
	}
}

func TestFindConflicts_TimedAgainstTimed(t *testing.T) {
	existing := []models.Booking{
		timedBooking("b1", "2024-07-04", "2024-07-04", &models.TimeSlot{Start: 540, End: 720}), // 09:00-12:00
	}
	rng := DateRange{StartDate: "2024-07-04", EndDate: "2024-07-04"}

	t.Run("overlapping window conflicts", func(t *testing.T) {
		conflicts := FindConflicts(existing, rng, &models.TimeSlot{Start: 600, End: 660}, "")
		require.Len(t, conflicts, 1)
		assert.Equal(t, "b1", conflicts[0].BookingID)
		assert.Equal(t, "2024-07-04", conflicts[0].ConflictDate)
		assert.Equal(t, models.TimeSlot{Start: 540, End: 720}, conflicts[0].ConflictTime)
		assert.Equal(t, []string{"Dog Walking"}, conflicts[0].Services)
	})

	t.Run("back-to-back window is free", func(t *testing.T) {
		conflicts := FindConflicts(existing, rng, &models.TimeSlot{Start: 720, End: 780}, "")
		assert.Empty(t, conflicts)
	})

	t.Run("untimed proposal conflicts with any booking that day", func(t *testing.T) {
		conflicts := FindConflicts(existing, rng, nil, "")
		assert.Len(t, conflicts, 1)
	})
}

func TestFindConflicts_FullDayBlocksEverything(t *testing.T) {
	existing := []models.Booking{
		timedBooking("b1", "2024-07-04", "2024-07-04", nil),
	}
	rng := DateRange{StartDate: "2024-07-04", EndDate: "2024-07-04"}

	conflicts := FindConflicts(existing, rng, &models.TimeSlot{Start: 1380, End: 1410}, "")
	require.Len(t, conflicts, 1)
	assert.True(t, IsFullDay(conflicts[0].ConflictTime))
}

func TestFindConflicts_DayPrefilter(t *testing.T) {
	existing := []models.Booking{
		timedBooking("b1", "2024-07-01", "2024-07-02", nil),
		timedBooking("b2", "2024-07-08", "2024-07-09", nil),
	}
	rng := DateRange{StartDate: "2024-07-04", EndDate: "2024-07-05"}

	assert.Empty(t, FindConflicts(existing, rng, nil, ""))
}

func TestFindConflicts_MultiDayYieldsOnePerDay(t *testing.T) {
	existing := []models.Booking{
		timedBooking("b1", "2024-07-01", "2024-07-05", nil),
	}
	rng := DateRange{StartDate: "2024-07-03", EndDate: "2024-07-10"}

	conflicts := FindConflicts(existing, rng, nil, "")
	require.Len(t, conflicts, 3)
	assert.Equal(t, "2024-07-03", conflicts[0].ConflictDate)
	assert.Equal(t, "2024-07-04", conflicts[1].ConflictDate)
	assert.Equal(t, "2024-07-05", conflicts[2].ConflictDate)
	for _, c := range conflicts {
		assert.Equal(t, "b1", c.BookingID)
	}
}

func TestFindConflicts_OvernightEdges(t *testing.T) {
	// Boarding 20:00-08:00 across three nights.
	existing := []models.Booking{
		timedBooking("b1", "2024-07-01", "2024-07-03", &models.TimeSlot{Start: 1200, End: 480}),
	}

	t.Run("morning of the first day is free", func(t *testing.T) {
		rng := DateRange{StartDate: "2024-07-01", EndDate: "2024-07-01"}
		conflicts := FindConflicts(existing, rng, &models.TimeSlot{Start: 540, End: 660}, "")
		assert.Empty(t, conflicts)
	})

	t.Run("evening of the first day conflicts", func(t *testing.T) {
		rng := DateRange{StartDate: "2024-07-01", EndDate: "2024-07-01"}
		conflicts := FindConflicts(existing, rng, &models.TimeSlot{Start: 1230, End: 1290}, "")
		require.Len(t, conflicts, 1)
		assert.Equal(t, models.TimeSlot{Start: 1200, End: 1439}, conflicts[0].ConflictTime)
	})

	t.Run("middle day is fully blocked", func(t *testing.T) {
		rng := DateRange{StartDate: "2024-07-02", EndDate: "2024-07-02"}
		conflicts := FindConflicts(existing, rng, &models.TimeSlot{Start: 600, End: 660}, "")
		require.Len(t, conflicts, 1)
		assert.True(t, IsFullDay(conflicts[0].ConflictTime))
	})

	t.Run("afternoon of the last day is free", func(t *testing.T) {
		rng := DateRange{StartDate: "2024-07-03", EndDate: "2024-07-03"}
		conflicts := FindConflicts(existing, rng, &models.TimeSlot{Start: 600, End: 660}, "")
		assert.Empty(t, conflicts)
	})
}

func TestFindConflicts_ExcludesOwnBooking(t *testing.T) {
	existing := []models.Booking{
		timedBooking("b1", "2024-07-04", "2024-07-04", &models.TimeSlot{Start: 540, End: 720}),
	}
	rng := DateRange{StartDate: "2024-07-04", EndDate: "2024-07-04"}

	conflicts := FindConflicts(existing, rng, &models.TimeSlot{Start: 600, End: 660}, "b1")
	assert.Empty(t, conflicts)
}

func TestServiceNames_FallbackChain(t *testing.T) {
	tests := []struct {
		name    string
		booking models.Booking
		want    []string
	}{
		{
			"service names win",
			models.Booking{Services: []models.ServiceRef{{ServiceID: "s1", Name: "Grooming"}, {ServiceID: "s2"}}},
			[]string{"Grooming", "s2"},
		},
		{
			"service type when no services",
			models.Booking{ServiceType: "boarding"},
			[]string{"boarding"},
		},
		{
			"placeholder when nothing is known",
			models.Booking{},
			[]string{"Unknown Service"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serviceNames(tt.booking))
		})
	}
}

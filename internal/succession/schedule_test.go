package succession

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func datePtr(t time.Time) *time.Time { return &t }

func int32Ptr(n int32) *int32 { return &n }

func TestUpcomingSuccessionsDueMath(t *testing.T) {
	plants := []PlantSchedule{{
		ID:           1,
		Name:         "Lettuce",
		IntervalDays: int32Ptr(14),
		Plantings: []PlantingDates{
			{ID: 10, BedName: "North Bed", DirectSow: datePtr(day(0))},
		},
	}}

	items := UpcomingSuccessions(plants, day(10))
	require.Len(t, items, 1)
	it := items[0]
	assert.Equal(t, uint64(1), it.PlantID)
	assert.Equal(t, 2, it.NextSuccessionNumber)
	assert.Equal(t, 1, it.CurrentCount)
	assert.Equal(t, ScheduleMaxDefault, it.MaxCount)
	require.NotNil(t, it.DueDate)
	assert.Equal(t, day(14).Format("2006-01-02"), *it.DueDate)
	require.NotNil(t, it.DaysUntilDue)
	assert.Equal(t, 4, *it.DaysUntilDue)
	assert.False(t, it.IsOverdue)
	require.NotNil(t, it.Latest)
	assert.Equal(t, "North Bed", it.Latest.BedName)

	// ten days later the same planting is overdue
	items = UpcomingSuccessions(plants, day(20))
	require.Len(t, items, 1)
	require.NotNil(t, items[0].DaysUntilDue)
	assert.Equal(t, -6, *items[0].DaysUntilDue)
	assert.True(t, items[0].IsOverdue)
}

func TestUpcomingSuccessionsSkipsAtMaxCount(t *testing.T) {
	plants := []PlantSchedule{{
		ID:           1,
		Name:         "Radish",
		IntervalDays: int32Ptr(7),
		MaxCount:     int32Ptr(2),
		Plantings: []PlantingDates{
			{ID: 1, DirectSow: datePtr(day(0))},
			{ID: 2, DirectSow: datePtr(day(7))},
		},
	}}
	assert.Empty(t, UpcomingSuccessions(plants, day(10)))
}

func TestUpcomingSuccessionsDefaultMaxCount(t *testing.T) {
	p := PlantSchedule{ID: 1, Name: "Carrot", IntervalDays: int32Ptr(10)}
	for i := 0; i < ScheduleMaxDefault; i++ {
		p.Plantings = append(p.Plantings, PlantingDates{ID: uint64(i + 1), DirectSow: datePtr(day(i))})
	}
	assert.Empty(t, UpcomingSuccessions([]PlantSchedule{p}, day(30)))

	// one fewer dated planting and the plant qualifies again
	p.Plantings = p.Plantings[:ScheduleMaxDefault-1]
	items := UpcomingSuccessions([]PlantSchedule{p}, day(30))
	require.Len(t, items, 1)
	assert.Equal(t, ScheduleMaxDefault, items[0].NextSuccessionNumber)
}

func TestUpcomingSuccessionsUndatedPlantingsIgnored(t *testing.T) {
	plants := []PlantSchedule{{
		ID:           1,
		Name:         "Spinach",
		IntervalDays: int32Ptr(14),
		Plantings: []PlantingDates{
			{ID: 1}, // no dates at all
			{ID: 2, SeedStart: datePtr(day(3))},
			{ID: 3, Transplant: datePtr(day(5)), SeedStart: datePtr(day(1))},
		},
	}}

	items := UpcomingSuccessions(plants, day(6))
	require.Len(t, items, 1)
	it := items[0]
	assert.Equal(t, 2, it.CurrentCount)
	// transplant outranks the earlier seed-start on planting 3
	require.NotNil(t, it.Latest)
	assert.Equal(t, uint64(3), it.Latest.ID)
	assert.Equal(t, day(5).Format("2006-01-02"), it.Latest.PlantedDate)
}

func TestUpcomingSuccessionsNoIntervalOrNoPlantings(t *testing.T) {
	plants := []PlantSchedule{
		{ID: 1, Name: "Beet", Plantings: []PlantingDates{{ID: 1, DirectSow: datePtr(day(0))}}},
		{ID: 2, Name: "Kale", IntervalDays: int32Ptr(21)},
	}

	items := UpcomingSuccessions(plants, day(5))
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Nil(t, it.DueDate)
		assert.Nil(t, it.DaysUntilDue)
		assert.False(t, it.IsOverdue)
	}
	assert.Nil(t, items[1].Latest)
	assert.Equal(t, 1, items[1].NextSuccessionNumber)
}

func TestUpcomingSuccessionsSortOrder(t *testing.T) {
	plants := []PlantSchedule{
		{ID: 1, Name: "No date A"},
		{ID: 2, Name: "Later", IntervalDays: int32Ptr(20),
			Plantings: []PlantingDates{{ID: 1, DirectSow: datePtr(day(0))}}},
		{ID: 3, Name: "No date B"},
		{ID: 4, Name: "Sooner", IntervalDays: int32Ptr(5),
			Plantings: []PlantingDates{{ID: 2, DirectSow: datePtr(day(0))}}},
	}

	items := UpcomingSuccessions(plants, day(1))
	require.Len(t, items, 4)
	assert.Equal(t, uint64(4), items[0].PlantID)
	assert.Equal(t, uint64(2), items[1].PlantID)
	// undated entries sort last and keep their input order
	assert.Equal(t, uint64(1), items[2].PlantID)
	assert.Equal(t, uint64(3), items[3].PlantID)

	// identical input yields identical output, ordering included
	again := UpcomingSuccessions(plants, day(1))
	assert.Equal(t, items, again)
}

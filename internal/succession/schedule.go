package succession

import (
	"math"
	"sort"
	"time"
)

// PlantingDates carries the planting-related dates of one planting, plus the
// context needed to reference it in scheduler output.  A planting may record
// a direct-sow, transplant and seed-start date independently; PlantedDate
// picks the one that matters for scheduling.
type PlantingDates struct {
	ID         uint64
	BedName    string
	DirectSow  *time.Time
	Transplant *time.Time
	SeedStart  *time.Time
}

// PlantedDate returns the first non-nil date in priority order direct-sow,
// transplant, seed-start, or nil when the planting carries no date at all.
func (p PlantingDates) PlantedDate() *time.Time {
	switch {
	case p.DirectSow != nil:
		return p.DirectSow
	case p.Transplant != nil:
		return p.Transplant
	case p.SeedStart != nil:
		return p.SeedStart
	}
	return nil
}

// PlantSchedule is the scheduler's read-only view of one succession-enabled
// plant and all of its plantings.
type PlantSchedule struct {
	ID           uint64
	Name         string
	IntervalDays *int32
	MaxCount     *int32
	Plantings    []PlantingDates
}

// LatestPlacement references the most recently planted generation of a plant.
type LatestPlacement struct {
	ID          uint64 `json:"id"`
	BedName     string `json:"bed_name"`
	PlantedDate string `json:"planted_date"`
}

// DueItem is one row of the upcoming-successions worklist.
type DueItem struct {
	PlantID              uint64           `json:"plant_id"`
	PlantName            string           `json:"plant_name"`
	NextSuccessionNumber int              `json:"next_succession_number"`
	DueDate              *string          `json:"due_date"`
	DaysUntilDue         *int             `json:"days_until_due"`
	IsOverdue            bool             `json:"is_overdue"`
	CurrentCount         int              `json:"current_count"`
	MaxCount             int              `json:"max_count"`
	IntervalDays         *int32           `json:"interval_days"`
	Latest               *LatestPlacement `json:"latest_placement"`
}

// UpcomingSuccessions computes the next due generation for every plant in the
// input.  Only plantings that carry a planted date count toward a plant's
// current generation tally; a plant whose tally has reached its max count is
// omitted entirely.  The result is sorted ascending by due date string, with
// undated entries last.  The function never mutates its input and is safe to
// call repeatedly and concurrently.
func UpcomingSuccessions(plants []PlantSchedule, today time.Time) []DueItem {
	items := make([]DueItem, 0, len(plants))
	for _, p := range plants {
		var dated []PlantingDates
		for _, pl := range p.Plantings {
			if pl.PlantedDate() != nil {
				dated = append(dated, pl)
			}
		}

		maxCount := ScheduleMaxDefault
		if p.MaxCount != nil {
			maxCount = int(*p.MaxCount)
		}
		if len(dated) >= maxCount {
			continue
		}

		var latest *PlantingDates
		for i := range dated {
			if latest == nil || dated[i].PlantedDate().After(*latest.PlantedDate()) {
				latest = &dated[i]
			}
		}

		item := DueItem{
			PlantID:              p.ID,
			PlantName:            p.Name,
			NextSuccessionNumber: len(dated) + 1,
			CurrentCount:         len(dated),
			MaxCount:             maxCount,
			IntervalDays:         p.IntervalDays,
		}
		if latest != nil {
			planted := *latest.PlantedDate()
			item.Latest = &LatestPlacement{
				ID:          latest.ID,
				BedName:     latest.BedName,
				PlantedDate: planted.Format("2006-01-02"),
			}
			if p.IntervalDays != nil {
				due := midnight(planted.AddDate(0, 0, int(*p.IntervalDays)))
				dueStr := due.Format("2006-01-02")
				days := int(math.Ceil(due.Sub(today).Hours() / 24))
				item.DueDate = &dueStr
				item.DaysUntilDue = &days
				item.IsOverdue = days < 0
			}
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].DueDate, items[j].DueDate
		switch {
		case a == nil:
			return false // nil sorts last, nil vs nil keeps input order
		case b == nil:
			return true
		}
		return *a < *b
	})
	return items
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

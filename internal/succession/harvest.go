// Package succession holds the date arithmetic and lineage numbering rules
// for repeated plantings of the same plant.  All functions are pure; callers
// supply the current time so results stay reproducible.
package succession

import "time"

// EstimateHarvestDate returns anchor plus daysToMaturity calendar days.  It
// returns nil when the maturity value is missing or not a positive number of
// days.  Plain calendar arithmetic, no timezone adjustment.
func EstimateHarvestDate(anchor time.Time, daysToMaturity *int32) *time.Time {
	if daysToMaturity == nil || *daysToMaturity <= 0 {
		return nil
	}
	d := anchor.AddDate(0, 0, int(*daysToMaturity))
	return &d
}

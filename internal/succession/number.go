package succession

// The two caps below govern different decisions and are deliberately kept
// apart.  CreationCap is the hard stop applied when a new generation is
// created and the plant has no succession_max_count of its own.
// ScheduleMaxDefault is the softer horizon the due scheduler uses when
// deciding whether a plant still needs future generations.
const (
	CreationCap        = 20
	ScheduleMaxDefault = 6
)

// NextNumber returns the generation number to assign to the next planting in
// a lineage given the numbers already stored.  It is one past the highest
// stored value, never a recount: deleting an intermediate generation must not
// cause a number to be reused.  With no existing numbers it returns 1.
func NextNumber(existing []int) int {
	max := 0
	for _, n := range existing {
		if n > max {
			max = n
		}
	}
	return max + 1
}

// EffectiveCreationCap resolves a plant's creation-time cap, falling back to
// CreationCap when the plant carries no succession_max_count of its own.
func EffectiveCreationCap(maxCount *int32) int {
	if maxCount != nil {
		return int(*maxCount)
	}
	return CreationCap
}

// CapExceeded reports whether assigning next as a generation number would
// push the lineage past its creation-time cap.
func CapExceeded(next int, maxCount *int32) bool {
	return next > EffectiveCreationCap(maxCount)
}

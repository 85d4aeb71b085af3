package funder

// Status is the qualitative budget-health classification of a funder.
type Status string

const (
	StatusOverBudget Status = "Over Budget"
	StatusMonitor    Status = "Monitor"
	StatusOnTrack    Status = "On Track"
	StatusNoSpending Status = "No Spending"
)

// monitor threshold: more than 75% of the approved ceiling spent.
const monitorNum, monitorDen = 3, 4

// Classify derives a status from an approved ceiling and the spend recorded
// against it, both in cents. The branches are checked in a fixed order: the
// over-budget check runs first, so a funder with approved = 0 and any spend
// is Over Budget and no ratio is ever computed against a zero ceiling.
// The ratio comparison is done on integers, so spent/approved of exactly
// 0.75 stays On Track.
func Classify(approved, spent int64) Status {
	remaining := approved - spent

	switch {
	case remaining < 0:
		return StatusOverBudget
	case approved > 0 && spent*monitorDen > approved*monitorNum:
		return StatusMonitor
	case approved > 0 && spent > 0:
		return StatusOnTrack
	}

	return StatusNoSpending
}

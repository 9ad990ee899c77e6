package nature

import (
	"fmt"
	"math"

	"github.com/granabr/descritor/internal/model"
)

// Recurrence promotion thresholds. A category/subcategory pair is
// promoted to FIXED when it recurs across enough months with stable
// monthly totals.
const (
	minRecurrenceEntries = 3
	minRecurrenceMonths  = 3
	maxRelativeDeviation = 0.20
)

// promoteByRecurrence evaluates the recurrence heuristic for a
// candidate pair. Month coverage currently checks distinct calendar
// months, not strict month-to-month contiguity.
func promoteByRecurrence(in model.ClassificationInput, history []model.HistoryEntry) (model.ExpenseNatureResult, bool) {
	matched := 0
	monthly := make(map[string]float64)
	for _, entry := range history {
		if entry.CategoryID != in.CategoryID || entry.SubcategoryID != in.SubcategoryID {
			continue
		}
		matched++
		monthly[entry.Month()] += entry.Amount
	}
	if matched < minRecurrenceEntries || len(monthly) < minRecurrenceMonths {
		return model.ExpenseNatureResult{}, false
	}

	var total float64
	for _, amount := range monthly {
		total += amount
	}
	mean := total / float64(len(monthly))
	if mean == 0 {
		return model.ExpenseNatureResult{}, false
	}

	var maxDeviation float64
	for _, amount := range monthly {
		if dev := math.Abs(amount-mean) / math.Abs(mean); dev > maxDeviation {
			maxDeviation = dev
		}
	}
	if maxDeviation > maxRelativeDeviation {
		return model.ExpenseNatureResult{}, false
	}

	return model.ExpenseNatureResult{
		Nature:     model.NatureFixed,
		Source:     model.SourceAIInference,
		Confidence: model.ConfidenceHeuristic,
		Reason:     fmt.Sprintf("%d consecutive months, variation ≤20%%", len(monthly)),
	}, true
}

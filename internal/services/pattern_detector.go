package services

import (
	"math"
	"sort"
	"time"

	"bankpulse/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// UpgradeImportanceTxnType is the transaction type whose importance is
	// looked up for every customer when evaluating PatId1, regardless of the
	// customer's actual transaction mix.
	UpgradeImportanceTxnType = "es_transportation"

	upgradeMinMerchantTxns = 50000
	upgradeTxnQuantile     = 0.9
	upgradeImportanceQuant = 0.1

	childMinTxns = 80

	deiMinFemaleTxns = 100
)

var childMaxAverage = decimal.NewFromInt(23)

type PatternDetector struct {
	importance ImportanceLookupInterface
}

func NewPatternDetector(importance ImportanceLookupInterface) PatternDetectorInterface {
	return &PatternDetector{
		importance: importance,
	}
}

// Detect evaluates PatId1, PatId2 and PatId3 in that order. It is a pure
// function of the snapshot, the importance index and now.
func (d *PatternDetector) Detect(snapshot *models.AggregateSnapshot, now time.Time) []models.DetectionEvent {
	if snapshot == nil {
		return nil
	}

	var events []models.DetectionEvent
	events = append(events, d.detectUpgrade(snapshot, now)...)
	events = append(events, detectChild(snapshot, now)...)
	events = append(events, detectDEINeeded(snapshot, now)...)
	return events
}

func (d *PatternDetector) detectUpgrade(snapshot *models.AggregateSnapshot, now time.Time) []models.DetectionEvent {
	var events []models.DetectionEvent

	byMerchant := snapshot.SummariesByMerchant()

	for _, merchant := range snapshot.MerchantCounts {
		if merchant.TxnCount <= upgradeMinMerchantTxns {
			continue
		}

		rows := byMerchant[merchant.MerchantID]
		if len(rows) == 0 {
			continue
		}

		counts := make([]float64, len(rows))
		importances := make([]float64, len(rows))
		for i, row := range rows {
			counts[i] = float64(row.TxnCount)
			importances[i] = d.importance.Lookup(row.CustomerName, UpgradeImportanceTxnType)
		}

		topCount := Quantile(counts, upgradeTxnQuantile)
		bottomImportance := Quantile(importances, upgradeImportanceQuant)

		for i, row := range rows {
			if counts[i] >= topCount && importances[i] <= bottomImportance {
				events = append(events, models.NewDetectionEvent(
					models.PatternUpgrade, models.ActionUpgrade, row.CustomerName, merchant.MerchantID, now))
			}
		}
	}

	return events
}

func detectChild(snapshot *models.AggregateSnapshot, now time.Time) []models.DetectionEvent {
	var events []models.DetectionEvent

	for i := range snapshot.Summaries {
		summary := &snapshot.Summaries[i]
		if summary.TxnCount < childMinTxns {
			continue
		}
		if summary.AverageValue().LessThan(childMaxAverage) {
			events = append(events, models.NewDetectionEvent(
				models.PatternChild, models.ActionChild, summary.CustomerName, summary.MerchantID, now))
		}
	}

	return events
}

func detectDEINeeded(snapshot *models.AggregateSnapshot, now time.Time) []models.DetectionEvent {
	var events []models.DetectionEvent

	for _, stats := range snapshot.GenderStats {
		if stats.FemaleCount > deiMinFemaleTxns && stats.FemaleCount < stats.MaleCount {
			events = append(events, models.NewDetectionEvent(
				models.PatternDEINeeded, models.ActionDEINeeded, "", stats.MerchantID, now))
		}
	}

	return events
}

// Quantile returns the q-th quantile of values by linear interpolation between
// the closest ranks, at position (n-1)*q of the sorted values. values is not
// modified. An empty input yields NaN.
func Quantile(values []float64, q float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := float64(n-1) * q
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}

	frac := pos - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

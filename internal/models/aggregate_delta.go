package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SummaryKey identifies a TxnSummary row.
type SummaryKey struct {
	MerchantID   string
	CustomerName string
}

type SummaryDelta struct {
	TxnCount   int64
	TotalValue decimal.Decimal
}

type GenderDelta struct {
	MaleCount   int64
	FemaleCount int64
}

// AggregateDelta holds the increments a group of records contributes to the
// aggregate tables. Applying the delta yields the same state as applying each
// record on its own.
type AggregateDelta struct {
	MerchantCounts map[string]int64
	Summaries      map[SummaryKey]SummaryDelta
	Genders        map[string]GenderDelta
	Records        int
}

func NewAggregateDelta() *AggregateDelta {
	return &AggregateDelta{
		MerchantCounts: make(map[string]int64),
		Summaries:      make(map[SummaryKey]SummaryDelta),
		Genders:        make(map[string]GenderDelta),
	}
}

// FoldRecords builds the delta for a batch of records.
func FoldRecords(records []TransactionRecord) *AggregateDelta {
	delta := NewAggregateDelta()
	for i := range records {
		delta.Add(&records[i])
	}
	return delta
}

func (d *AggregateDelta) Add(record *TransactionRecord) {
	key := SummaryKey{MerchantID: record.MerchantID, CustomerName: record.CustomerName}
	summary := d.Summaries[key]
	summary.TxnCount++
	summary.TotalValue = summary.TotalValue.Add(record.Amount)
	d.Summaries[key] = summary

	switch {
	case record.IsMale():
		g := d.Genders[record.MerchantID]
		g.MaleCount++
		d.Genders[record.MerchantID] = g
	case record.IsFemale():
		g := d.Genders[record.MerchantID]
		g.FemaleCount++
		d.Genders[record.MerchantID] = g
	}

	d.MerchantCounts[record.MerchantID]++
	d.Records++
}

// SortedSummaryKeys returns the summary keys ordered by merchant then customer,
// so upserts always lock rows in the same order.
func (d *AggregateDelta) SortedSummaryKeys() []SummaryKey {
	keys := make([]SummaryKey, 0, len(d.Summaries))
	for key := range d.Summaries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].MerchantID != keys[j].MerchantID {
			return keys[i].MerchantID < keys[j].MerchantID
		}
		return keys[i].CustomerName < keys[j].CustomerName
	})
	return keys
}

func (d *AggregateDelta) SortedMerchants() []string {
	merchants := make([]string, 0, len(d.MerchantCounts))
	for merchantID := range d.MerchantCounts {
		merchants = append(merchants, merchantID)
	}
	sort.Strings(merchants)
	return merchants
}

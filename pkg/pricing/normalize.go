// Package pricing implements the offering price model: the normalizer that
// reconciles the legacy fixed small/medium/large columns with the flexible
// price list, the validation applied to submitted prices, and the in-memory
// editor a dashboard drives when a pub owner reworks a price list.
package pricing

import (
	"luppolo.dev/Luppolo/pkg/model"
)

// Legacy tap sizes. The original fixed columns carried these three pours
// implicitly; records that predate the flexible list are still read through
// them.
const (
	LegacySmallSize  = "20cl"
	LegacyMediumSize = "40cl"
	LegacyLargeSize  = "50cl"
)

// Normalize computes the canonical price list for one offering as read from
// the repository. A non-empty flexible list always wins, order preserved and
// legacy columns ignored. Otherwise entries are synthesized from whichever
// legacy columns are set, in small, medium, large order. Offerings with no
// prices at all normalize to an empty list.
func Normalize(offering model.Offering) []model.PriceEntry {
	if len(offering.Prices) > 0 {
		return []model.PriceEntry(offering.Prices)
	}

	legacy := []struct {
		size  string
		value *string
	}{
		{LegacySmallSize, offering.PriceSmall},
		{LegacyMediumSize, offering.PriceMedium},
		{LegacyLargeSize, offering.PriceLarge},
	}

	entries := make([]model.PriceEntry, 0, len(legacy))

	for _, column := range legacy {
		if column.value != nil && *column.value != "" {
			entries = append(entries, model.PriceEntry{Size: column.size, Price: *column.value})
		}
	}

	return entries
}

// FilterComplete returns the subsequence of entries where both size and
// price are non-empty, in their original relative order. Half-filled rows
// are dropped silently so a submission never fails on a row the owner left
// blank.
func FilterComplete(entries []model.PriceEntry) []model.PriceEntry {
	complete := make([]model.PriceEntry, 0, len(entries))

	for _, entry := range entries {
		if entry.Size != "" && entry.Price != "" {
			complete = append(complete, entry)
		}
	}

	return complete
}

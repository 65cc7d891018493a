package material

import "sort"

// IOMinimal is one gross, undirected daily material flow: how much of a
// material is consumed (input) and produced (output) before netting.
// Both sides are non-negative; the same ticker may carry both.
type IOMinimal struct {
	Ticker string
	Input  float64
	Output float64
}

// IOMaterial extends IOMinimal with the netted delta and the physical
// attributes looked up from the material catalogue. Delta and the total
// weight/volume figures are signed: negative means net import.
type IOMaterial struct {
	IOMinimal
	Delta            float64
	IndividualWeight float64
	IndividualVolume float64
	TotalWeight      float64
	TotalVolume      float64
}

// IO extends IOMaterial with the monetary value of the daily delta.
// Price is unit price times delta, so net imports carry a negative
// value and net exports a positive one.
type IO struct {
	IOMaterial
	Price float64
}

// CombineIOMinimal merges any number of minimal flow lists into one,
// summing input and output per ticker separately. The merge is
// associative and commutative; the result is ordered by ticker so that
// identical inputs in any arrangement produce identical output.
func CombineIOMinimal(lists ...[]IOMinimal) []IOMinimal {
	merged := make(map[string]IOMinimal)

	for _, list := range lists {
		for _, entry := range list {
			current := merged[entry.Ticker]
			current.Ticker = entry.Ticker
			current.Input += entry.Input
			current.Output += entry.Output
			merged[entry.Ticker] = current
		}
	}

	result := make([]IOMinimal, 0, len(merged))
	for _, entry := range merged {
		result = append(result, entry)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Ticker < result[j].Ticker
	})

	return result
}

// EnhanceIOMinimal nets each minimal flow entry and attaches per-unit
// and total weight/volume from the catalogue. An unknown ticker is a
// configuration integrity error and aborts the enhancement.
func EnhanceIOMinimal(list []IOMinimal, catalogue Catalogue) ([]IOMaterial, error) {
	result := make([]IOMaterial, 0, len(list))

	for _, entry := range list {
		mat, err := catalogue.Material(entry.Ticker)
		if err != nil {
			return nil, err
		}

		delta := entry.Output - entry.Input

		result = append(result, IOMaterial{
			IOMinimal:        entry,
			Delta:            delta,
			IndividualWeight: mat.Weight,
			IndividualVolume: mat.Volume,
			TotalWeight:      mat.Weight * delta,
			TotalVolume:      mat.Volume * delta,
		})
	}

	return result, nil
}

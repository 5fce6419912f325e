package scoring

import "math"

// Dimension weights for the overall score. They sum to 1.
const (
	formattingWeight = 0.20
	keywordsWeight   = 0.30
	impactWeight     = 0.20
	contentWeight    = 0.20
	structureWeight  = 0.10
)

var weights = map[Dimension]float64{
	DimensionFormatting: formattingWeight,
	DimensionKeywords:   keywordsWeight,
	DimensionImpact:     impactWeight,
	DimensionContent:    contentWeight,
	DimensionStructure:  structureWeight,
}

// Aggregate combines dimension scores into the overall score, rounded to one decimal.
// A dimension missing from breakdown contributes zero.
func Aggregate(breakdown map[Dimension]DimensionResult) float64 {
	total := 0.0
	for _, dim := range Dimensions {
		total += weights[dim] * float64(breakdown[dim].Score)
	}
	return math.Round(total*10) / 10
}

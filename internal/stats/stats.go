// package stats computes the descriptive aggregations behind the charts
package stats

import (
	"math"
	"sort"

	"github.com/ospreyhr/attriview/internal/models"
)

// Bucket is one categorical bar: a label and its magnitude.
type Bucket struct {
	Label string
	Value float64
}

// MeanPoint is one x position of a grouped-mean chart: the mean attrition
// rate at that x plus the number of observations behind it.
type MeanPoint struct {
	X     float64
	Mean  float64
	Count int
}

var (
	ageBinEdges  = []float64{18, 20, 30, 40, 50, 60, 70}
	ageBinLabels = []string{"18-19", "20-29", "30-39", "40-49", "50-59", "60-69"}
)

// AgeHistogram buckets ages into the fixed decade-ish bins. Rows with a
// missing age are dropped; values outside the edges are ignored. The last
// bin is closed on the right, matching numpy's histogram convention.
func AgeHistogram(rows []models.Employee) []Bucket {
	counts := make([]float64, len(ageBinLabels))
	for _, row := range rows {
		if !row.HasAge() {
			continue
		}
		for i := 0; i < len(ageBinLabels); i++ {
			upper := ageBinEdges[i+1]
			last := i == len(ageBinLabels)-1
			if row.Age >= ageBinEdges[i] && (row.Age < upper || (last && row.Age == upper)) {
				counts[i]++
				break
			}
		}
	}

	out := make([]Bucket, len(ageBinLabels))
	for i, label := range ageBinLabels {
		out[i] = Bucket{Label: label, Value: counts[i]}
	}
	return out
}

// UnitCounts returns per-unit row frequencies sorted by unit name.
func UnitCounts(rows []models.Employee) []Bucket {
	counts := map[string]float64{}
	for _, row := range rows {
		if row.Unit == "" {
			continue
		}
		counts[row.Unit]++
	}

	out := make([]Bucket, 0, len(counts))
	for unit, n := range counts {
		out = append(out, Bucket{Label: unit, Value: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// MeanAttritionByHometown returns the mean attrition rate per hometown,
// sorted by hometown name. Rows with a missing rate are skipped.
func MeanAttritionByHometown(rows []models.Employee) []Bucket {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, row := range rows {
		if row.Hometown == "" || math.IsNaN(row.AttritionRate) {
			continue
		}
		sums[row.Hometown] += row.AttritionRate
		counts[row.Hometown]++
	}

	out := make([]Bucket, 0, len(sums))
	for town, sum := range sums {
		out = append(out, Bucket{Label: town, Value: sum / float64(counts[town])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// GroupedMean groups rows by the numeric value x extracts, averaging the
// attrition rate within each group. Points come back sorted by x. Rows where
// either value is missing are skipped.
func GroupedMean(rows []models.Employee, x func(models.Employee) float64) []MeanPoint {
	sums := map[float64]float64{}
	counts := map[float64]int{}
	for _, row := range rows {
		xv := x(row)
		if math.IsNaN(xv) || math.IsNaN(row.AttritionRate) {
			continue
		}
		sums[xv] += row.AttritionRate
		counts[xv]++
	}

	out := make([]MeanPoint, 0, len(sums))
	for xv, sum := range sums {
		out = append(out, MeanPoint{X: xv, Mean: sum / float64(counts[xv]), Count: counts[xv]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}

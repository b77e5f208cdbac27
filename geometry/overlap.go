package geometry

import "math"

// Overlap reports the areal agreement of a test footprint against a
// reference footprint, in the units of the input coordinates squared.
type Overlap struct {
	// TruePositive is the area shared by both footprints.
	TruePositive float64
	// FalsePositive is the area covered by the test footprint only.
	FalsePositive float64
	// FalseNegative is the area covered by the reference footprint only.
	FalseNegative float64
}

// AreaOverlap intersects the two footprints and splits their areas into
// true-positive, false-positive and false-negative components. The clipping
// itself is delegated to geom's polygon boolean operations.
func AreaOverlap(test, ref Ring) Overlap {
	tp := ref.Polygon().Intersection(test.Polygon()).Area()

	return Overlap{
		TruePositive:  tp,
		FalsePositive: test.Polygon().Area() - tp,
		FalseNegative: ref.Polygon().Area() - tp,
	}
}

// OverlapPercent returns the intersection area as a percentage of the
// smaller footprint's area. Used when footprint pairs were matched with the
// two-way area-overlap criterion.
func OverlapPercent(test, ref Ring) float64 {
	shared := test.Polygon().Intersection(ref.Polygon()).Area()
	smaller := math.Min(test.Polygon().Area(), ref.Polygon().Area())

	return shared / smaller * 100
}

// CentroidDistance returns the Euclidean distance between the area
// centroids of the two footprints.
func CentroidDistance(a, b Ring) float64 {
	return dist(a.Centroid(), b.Centroid())
}

// PerimeterRatio returns perimeter(test) / perimeter(ref).
func PerimeterRatio(test, ref Ring) float64 {
	return test.Perimeter() / ref.Perimeter()
}

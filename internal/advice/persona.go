package advice

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// ErrNoCentroids is returned when a classifier is built without any centroid.
var ErrNoCentroids = errors.New("classifier needs at least one centroid")

// Centroid is a labeled prototype point in feature space.
type Centroid struct {
	ID          string
	Label       string
	Description string
	Features    []float64
}

// DefaultPersonas are the built-in prototypes over [savingsRate, discretionaryRatio, emergencyCoverage].
var DefaultPersonas = []Centroid{
	{
		ID:          "disciplined-conservative",
		Label:       "Disciplined conservative",
		Description: "Saves a large share of income, spends little on discretionary items and keeps a full emergency fund.",
		Features:    []float64{0.35, 0.15, 1.0},
	},
	{
		ID:          "balanced-builder",
		Label:       "Balanced builder",
		Description: "Saves steadily while allowing moderate discretionary spending and a partial safety net.",
		Features:    []float64{0.20, 0.25, 0.6},
	},
	{
		ID:          "leveraged-aggressive",
		Label:       "Leveraged aggressive",
		Description: "Saves little, spends heavily on discretionary items and runs with a thin liquidity buffer.",
		Features:    []float64{0.05, 0.40, 0.2},
	},
}

// Classifier assigns a feature vector to its nearest centroid by Euclidean distance.
// Ties go to the centroid listed first. A Classifier is immutable after construction and
// safe for concurrent use.
type Classifier struct {
	centroids []Centroid
	dims      int
}

// NewClassifier validates that all centroids share one dimension.
func NewClassifier(centroids []Centroid) (*Classifier, error) {
	if len(centroids) == 0 {
		return nil, ErrNoCentroids
	}
	dims := len(centroids[0].Features)
	copied := make([]Centroid, len(centroids))
	for i, c := range centroids {
		if len(c.Features) != dims || dims == 0 {
			return nil, fmt.Errorf("centroid %q has %d features, want %d", c.ID, len(c.Features), dims)
		}
		c.Features = append([]float64(nil), c.Features...)
		copied[i] = c
	}
	return &Classifier{centroids: copied, dims: dims}, nil
}

// Classify returns the nearest persona together with its distance.
func (c *Classifier) Classify(features []float64) (domain.Persona, error) {
	if len(features) != c.dims {
		return domain.Persona{}, fmt.Errorf("got %d features, classifier expects %d", len(features), c.dims)
	}

	best, bestDistance := 0, math.Inf(1)
	for i, centroid := range c.centroids {
		d := euclidean(features, centroid.Features)
		if d < bestDistance {
			best, bestDistance = i, d
		}
	}

	winner := c.centroids[best]
	return domain.Persona{
		ID:          winner.ID,
		Label:       winner.Label,
		Description: winner.Description,
		Distance:    bestDistance,
		Features:    append([]float64(nil), features...),
	}, nil
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

package analysis

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/auxi/internal/convection"
	"github.com/san-kum/auxi/internal/thermo"
)

const sweepChunk = 16

// LogSpace returns n values spaced evenly in log between lo and hi
// inclusive. Both bounds must be positive.
func LogSpace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.LogSpan(make([]float64, n), lo, hi)
}

// SweepPoint is one length of a sweep.
type SweepPoint struct {
	Length float64
	Ra     float64
	NuX    float64
	NuL    float64
	HX     float64
	HL     float64
	Region string
	Status convection.Status
}

// SweepLength evaluates the engine at each length for a fixed inclination
// and temperatures. The first failure aborts the sweep.
func SweepLength(eng *convection.Engine, lengths []float64, theta, ts, tf float64) ([]SweepPoint, error) {
	points := make([]SweepPoint, len(lengths))

	var (
		mu       sync.Mutex
		firstErr error
		firstIdx = len(lengths)
	)

	thermo.ParallelFor(len(lengths), sweepChunk, func(start, end int) {
		for i := start; i < end; i++ {
			p, err := sweepPoint(eng, lengths[i], theta, ts, tf)
			if err != nil {
				mu.Lock()
				if i < firstIdx {
					firstIdx, firstErr = i, err
				}
				mu.Unlock()
				return
			}
			points[i] = p
		}
	})

	if firstErr != nil {
		return nil, firstErr
	}
	return points, nil
}

func sweepPoint(eng *convection.Engine, length, theta, ts, tf float64) (SweepPoint, error) {
	local, err := eng.Evaluate(convection.Local, length, theta, ts, tf)
	if err != nil {
		return SweepPoint{}, err
	}
	avg, err := eng.Evaluate(convection.Average, length, theta, ts, tf)
	if err != nil {
		return SweepPoint{}, err
	}
	return SweepPoint{
		Length: length,
		Ra:     avg.Ra,
		NuX:    local.Nu,
		NuL:    avg.Nu,
		HX:     local.H,
		HL:     avg.H,
		Region: avg.Region(),
		Status: avg.Classification.Status,
	}, nil
}

// AverageNusselt extracts Nu_L from a sweep.
func AverageNusselt(points []SweepPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.NuL
	}
	return out
}

// LocalNusselt extracts Nu_x from a sweep.
func LocalNusselt(points []SweepPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.NuX
	}
	return out
}

// MaxRelativeJump returns the largest |v[i+1]-v[i]| / |v[i]| over
// neighbouring values and the index i where it occurs. Steps from zero
// are skipped.
func MaxRelativeJump(values []float64) (float64, int) {
	best, at := 0.0, -1
	for i := 0; i+1 < len(values); i++ {
		if values[i] == 0 {
			continue
		}
		j := math.Abs(values[i+1]-values[i]) / math.Abs(values[i])
		if j > best {
			best, at = j, i
		}
	}
	return best, at
}

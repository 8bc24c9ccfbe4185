package analysis

import (
	"io"

	"github.com/gocarina/gocsv"
)

type sweepRecord struct {
	Length float64 `csv:"length_m"`
	Ra     float64 `csv:"ra"`
	NuX    float64 `csv:"nu_x"`
	NuL    float64 `csv:"nu_l"`
	HX     float64 `csv:"h_x"`
	HL     float64 `csv:"h_l"`
	Region string  `csv:"region"`
	Status string  `csv:"status"`
}

// WriteSweepCSV writes a sweep with a header row.
func WriteSweepCSV(w io.Writer, points []SweepPoint) error {
	records := make([]*sweepRecord, len(points))
	for i, p := range points {
		records[i] = &sweepRecord{
			Length: p.Length,
			Ra:     p.Ra,
			NuX:    p.NuX,
			NuL:    p.NuL,
			HX:     p.HX,
			HL:     p.HL,
			Region: p.Region,
			Status: p.Status.String(),
		}
	}
	return gocsv.Marshal(records, w)
}

package rawpipeline

import (
	"fmt"

	"github.com/codahale/hdrhistogram"

	"github.com/abworrall/nefraw/pkg/rawimage"
)

// ChannelStats summarizes the final RGB channel distribution with an
// hdrhistogram, independent of (and coarser than) the exact coarseness
// Histogram the gamma curve is built from.
type ChannelStats struct {
	P50, P90, P99 [3]int64
}

func BuildChannelStats(im *rawimage.RGBImage) ChannelStats {
	hists := [3]*hdrhistogram.Histogram{
		hdrhistogram.New(0, 0xffff, 3),
		hdrhistogram.New(0, 0xffff, 3),
		hdrhistogram.New(0, 0xffff, 3),
	}

	for _, p := range im.Pixels() {
		hists[0].RecordValue(int64(p.R))
		hists[1].RecordValue(int64(p.G))
		hists[2].RecordValue(int64(p.B))
	}

	var stats ChannelStats
	for c := 0; c < 3; c++ {
		stats.P50[c] = hists[c].ValueAtQuantile(50)
		stats.P90[c] = hists[c].ValueAtQuantile(90)
		stats.P99[c] = hists[c].ValueAtQuantile(99)
	}
	return stats
}

func (s ChannelStats) String() string {
	return fmt.Sprintf(
		"p50=[%d,%d,%d] p90=[%d,%d,%d] p99=[%d,%d,%d]",
		s.P50[0], s.P50[1], s.P50[2],
		s.P90[0], s.P90[1], s.P90[2],
		s.P99[0], s.P99[1], s.P99[2],
	)
}

package indicator

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/theAfricanQuant/capstone/internal/series"
)

// overlayExcludedColumns are the signal and auxiliary columns a chart
// consumer omits from the price-scale line overlay. The list is part of
// the consumer contract and must stay exactly as is.
var overlayExcludedColumns = map[string]struct{}{
	"side":               {},
	"standard_deviation": {},
	"%K":                 {},
	"%D":                 {},
	"wr":                 {},
	"RSI":                {},
}

// Overlay is the consumer-facing shaping of a signal-producing indicator:
// the overlay line columns plus buy/sell markers from the crossing events.
// It holds copies and performs no rendering.
type Overlay struct {
	Times []time.Time
	Order []string
	Lines map[string][]float64
	Buys  series.Sparse
	Sells series.Sparse
}

// BuildOverlay shapes sig's frame and events for a chart consumer,
// optionally restricted to rows at or after from.
func BuildOverlay(sig SignalGenerator, from optional.Option[time.Time]) (Overlay, error) {
	f := sig.Frame()

	start := 0

	if from.IsSome() {
		fromTime := from.Unwrap()
		for start < f.Len() && f.Time(start).Before(fromTime) {
			start++
		}
	}

	overlay := Overlay{
		Times: f.Times()[start:],
		Lines: make(map[string][]float64),
		Buys:  sig.SwitchUp(),
		Sells: sig.SwitchDown(),
	}

	for _, name := range f.Columns() {
		if _, excluded := overlayExcludedColumns[name]; excluded {
			continue
		}

		col, err := f.Column(name)
		if err != nil {
			return Overlay{}, err
		}

		overlay.Order = append(overlay.Order, name)
		overlay.Lines[name] = col[start:]
	}

	if from.IsSome() {
		overlay.Buys = overlay.Buys.After(from.Unwrap())
		overlay.Sells = overlay.Sells.After(from.Unwrap())
	}

	return overlay, nil
}

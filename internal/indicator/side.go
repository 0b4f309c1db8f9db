package indicator

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// crossEvent is one entry of the merged, signed event sequence.
type crossEvent struct {
	time time.Time
	side types.Side
}

// assignSide runs the shared side-assignment protocol on a fully computed
// frame: evaluate both crossing predicates, merge their events into one
// signed sequence, and forward-fill it into the frame's side column. The
// prefix before the first event stays None.
func assignSide(f *series.Frame, d CrossDetector) (up, down series.Sparse, err error) {
	up, err = d.UpCross(f)
	if err != nil {
		return series.Sparse{}, series.Sparse{}, err
	}

	down, err = d.DownCross(f)
	if err != nil {
		return series.Sparse{}, series.Sparse{}, err
	}

	events, err := mergeCrossEvents(up, down)
	if err != nil {
		return series.Sparse{}, series.Sparse{}, err
	}

	if err := f.SetSide(forwardFillSide(f.Times(), events)); err != nil {
		return series.Sparse{}, series.Sparse{}, err
	}

	return up, down, nil
}

// mergeCrossEvents merges the up (+1) and down (-1) event sequences into a
// single sequence sorted by time. Both inputs are already time-sorted
// because detectors scan the frame left to right. A timestamp present in
// both sequences violates the detector contract.
func mergeCrossEvents(up, down series.Sparse) ([]crossEvent, error) {
	events := make([]crossEvent, 0, up.Len()+down.Len())

	i, j := 0, 0
	for i < up.Len() || j < down.Len() {
		switch {
		case j >= down.Len():
			events = append(events, crossEvent{time: up.Time(i), side: types.SideLong})
			i++
		case i >= up.Len():
			events = append(events, crossEvent{time: down.Time(j), side: types.SideShort})
			j++
		case up.Time(i).Equal(down.Time(j)):
			return nil, errors.Newf(errors.ErrCodeCrossConflict, "up and down cross share timestamp %s", up.Time(i))
		case up.Time(i).Before(down.Time(j)):
			events = append(events, crossEvent{time: up.Time(i), side: types.SideLong})
			i++
		default:
			events = append(events, crossEvent{time: down.Time(j), side: types.SideShort})
			j++
		}
	}

	return events, nil
}

// forwardFillSide carries the most recent event's side across every
// timestamp at or after it. Timestamps strictly before the first event get
// None. An explicit state-carrying fold keeps the undefined prefix and the
// piecewise-constant behavior visible.
func forwardFillSide(times []time.Time, events []crossEvent) []optional.Option[types.Side] {
	side := make([]optional.Option[types.Side], len(times))

	current := optional.None[types.Side]()
	next := 0

	for i, t := range times {
		for next < len(events) && !events[next].time.After(t) {
			current = optional.Some(events[next].side)
			next++
		}

		side[i] = current
	}

	return side
}

// overrideNeutral is the post-fill neutral-zone pass shared by Ichimoku and
// RSI: every row where the predicate holds gets its side forced to neutral,
// independent of the crossing events. It runs over the already assigned
// side column so the two passes stay separately testable.
func overrideNeutral(f *series.Frame, neutral func(row int) bool) error {
	side := f.Side()
	if side == nil {
		return errors.New(errors.ErrCodeIndicatorCalculation, "neutral override requires an assigned side column")
	}

	for i := range side {
		if neutral(i) {
			side[i] = optional.Some(types.SideNeutral)
		}
	}

	return f.SetSide(side)
}

package indicator

import (
	"sync"

	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/internal/types"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// Params carries the per-variant construction parameters. Zero values fall
// back to the variant's documented default.
type Params struct {
	Window         int
	FastSpan       int
	SlowSpan       int
	NumSD          float64
	StochWindow    int
	TenkaSenWindow int
	KijunSenWindow int
	SenkouWindow   int
}

// Builder constructs an indicator instance over a price series.
type Builder func(prices *series.Series, p Params) (Indicator, error)

// Registry manages the available indicator builders.
type Registry interface {
	Register(name types.IndicatorType, builder Builder) error
	Get(name types.IndicatorType) (Builder, error)
	List() []types.IndicatorType
	Remove(name types.IndicatorType) error
	Build(name types.IndicatorType, prices *series.Series, p Params) (Indicator, error)
}

type registry struct {
	builders map[types.IndicatorType]Builder
	order    []types.IndicatorType
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() Registry {
	return &registry{
		builders: make(map[types.IndicatorType]Builder),
	}
}

// NewDefaultRegistry creates a registry pre-populated with all seven
// variants.
func NewDefaultRegistry() Registry {
	r := NewRegistry()

	register := func(name types.IndicatorType, builder Builder) {
		// Registration of the built-in set cannot collide.
		_ = r.Register(name, builder)
	}

	register(types.IndicatorTypeWilliamsR, func(prices *series.Series, p Params) (Indicator, error) {
		return NewWilliamsR(prices, orDefault(p.Window, DefaultWilliamsRWindow))
	})
	register(types.IndicatorTypeEMACross, func(prices *series.Series, p Params) (Indicator, error) {
		return NewEMACross(prices, orDefault(p.FastSpan, DefaultEMAFastSpan), orDefault(p.SlowSpan, DefaultEMASlowSpan))
	})
	register(types.IndicatorTypeBollingerBands, func(prices *series.Series, p Params) (Indicator, error) {
		numSD := p.NumSD
		if numSD == 0 {
			numSD = DefaultBollingerNumSD
		}

		return NewBollingerBands(prices, orDefault(p.Window, DefaultBollingerWindow), numSD)
	})
	register(types.IndicatorTypeCCI, func(prices *series.Series, p Params) (Indicator, error) {
		return NewCCI(prices, orDefault(p.Window, DefaultCCIWindow))
	})
	register(types.IndicatorTypeStochastic, func(prices *series.Series, p Params) (Indicator, error) {
		return NewStochastic(prices, orDefault(p.Window, DefaultStochasticWindow), orDefault(p.StochWindow, DefaultStochasticSmoothing))
	})
	register(types.IndicatorTypeIchimoku, func(prices *series.Series, p Params) (Indicator, error) {
		return NewIchimoku(prices,
			orDefault(p.TenkaSenWindow, DefaultTenkaSenWindow),
			orDefault(p.KijunSenWindow, DefaultKijunSenWindow),
			orDefault(p.SenkouWindow, DefaultSenkouWindow))
	})
	register(types.IndicatorTypeRSI, func(prices *series.Series, p Params) (Indicator, error) {
		return NewRSI(prices, orDefault(p.Window, DefaultRSIWindow))
	})

	return r
}

func orDefault(value, def int) int {
	if value == 0 {
		return def
	}

	return value
}

// Register adds a builder to the registry.
func (r *registry) Register(name types.IndicatorType, builder Builder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[name]; exists {
		return errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "indicator %s already registered", name)
	}

	r.builders[name] = builder
	r.order = append(r.order, name)

	return nil
}

// Get retrieves a builder by name.
func (r *registry) Get(name types.IndicatorType) (Builder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	builder, exists := r.builders[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator %s not found", name)
	}

	return builder, nil
}

// List returns the registered indicator names in registration order.
func (r *registry) List() []types.IndicatorType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]types.IndicatorType, len(r.order))
	copy(names, r.order)

	return names
}

// Remove removes a builder from the registry.
func (r *registry) Remove(name types.IndicatorType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[name]; !exists {
		return errors.Newf(errors.ErrCodeIndicatorNotFound, "indicator %s not found", name)
	}

	delete(r.builders, name)

	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)

			break
		}
	}

	return nil
}

// Build looks up the named builder and constructs the indicator.
func (r *registry) Build(name types.IndicatorType, prices *series.Series, p Params) (Indicator, error) {
	builder, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	return builder(prices, p)
}

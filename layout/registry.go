package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownStrategy is returned for a strategy tag nobody registered.
var ErrUnknownStrategy = errors.New("layout: unknown strategy")

// StrategyFactory creates a new strategy instance.
type StrategyFactory func() Strategy

var (
	registryMu sync.RWMutex
	strategies = make(map[string]StrategyFactory)
)

func init() {
	Register(FitContentType, func() Strategy { return NewFitContent() })
	Register(FixedType, func() Strategy { return NewFixed() })
	Register(ClipPathType, func() Strategy { return NewClipPath() })
}

// Register makes a strategy constructible from its tag.
// Registering a tag again replaces the previous factory.
func Register(tag string, factory StrategyFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	strategies[tag] = factory
}

// Unregister removes a tag from the registry.
// This is useful for testing.
func Unregister(tag string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(strategies, tag)
}

// Strategies returns the registered tags in sorted order.
func Strategies() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	tags := make([]string, 0, len(strategies))
	for tag := range strategies {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// NewStrategy creates the strategy registered under tag.
func NewStrategy(tag string) (Strategy, error) {
	registryMu.RLock()
	factory, ok := strategies[tag]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, tag)
	}
	return factory(), nil
}

// managerJSON is the serialized form of a Manager: only the strategy tag.
type managerJSON struct {
	Strategy string `json:"strategy"`
}

// MarshalJSON implements json.Marshaler.
func (m *Manager) MarshalJSON() ([]byte, error) {
	return json.Marshal(managerJSON{Strategy: m.strategy.Type()})
}

// UnmarshalJSON implements json.Unmarshaler. It only restores the strategy;
// layout state starts fresh.
func (m *Manager) UnmarshalJSON(data []byte) error {
	var doc managerJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("layout: decode manager: %w", err)
	}
	tag := doc.Strategy
	if tag == "" {
		tag = FitContentType
	}
	s, err := NewStrategy(tag)
	if err != nil {
		return err
	}
	*m = *NewManager(WithStrategy(s))
	return nil
}

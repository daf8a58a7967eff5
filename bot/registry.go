package bot

import (
	"errors"
	"fmt"
	"time"

	"arena/game"
)

var (
	ErrDuplicateID = errors.New("bot: duplicate id")
	ErrUnknownID   = errors.New("bot: unknown id")
)

// Registry is the catalog of available bots, keyed by id. It is populated
// once at startup and read-only afterwards; enumeration order is
// registration order so tournament brackets are deterministic.
type Registry struct {
	ids       []string
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

func (r *Registry) Register(id string, f Factory) error {
	if _, ok := r.factories[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	r.ids = append(r.ids, id)
	r.factories[id] = f
	return nil
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}

func (r *Registry) Has(id string) bool {
	_, ok := r.factories[id]
	return ok
}

// Create builds a fresh instance of the bot registered under id.
func (r *Registry) Create(id string, rules game.Rules, seed uint64) (Bot, error) {
	f, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	return f(rules, seed), nil
}

// DefaultRegistry registers every built-in variant. Registration is an
// explicit call at startup, not an import side effect.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	mustRegister(r, "random", func(rules game.Rules, seed uint64) Bot {
		return NewRandom(seed)
	})
	mustRegister(r, "aggressive", func(rules game.Rules, seed uint64) Bot {
		return NewAggressive(rules, seed)
	})
	mustRegister(r, "defensive", func(rules game.Rules, seed uint64) Bot {
		return NewDefensive(rules, seed)
	})
	mustRegister(r, "paranoid", func(rules game.Rules, seed uint64) Bot {
		return NewParanoid(rules, seed)
	})
	mustRegister(r, "diagonal", func(rules game.Rules, seed uint64) Bot {
		return NewDiagonal(rules, seed)
	})
	mustRegister(r, "chaotic", func(rules game.Rules, seed uint64) Bot {
		return NewChaotic(time.Now)
	})
	mustRegister(r, "math", func(rules game.Rules, seed uint64) Bot {
		return NewMath(rules, seed, time.Now)
	})
	return r
}

func mustRegister(r *Registry, id string, f Factory) {
	if err := r.Register(id, f); err != nil {
		panic(err)
	}
}

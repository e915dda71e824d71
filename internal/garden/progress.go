package garden

import (
	"math/rand/v2"

	"github.com/alexanderramin/gardenhelper/internal/domain"
)

// ProgressGenerator produces the readings a soil test shows while it runs.
// The simulated implementation can be replaced by a real probe without
// touching navigation.
type ProgressGenerator interface {
	// Start resets the generator to zero and sets the value it converges on.
	Start(target float64)
	// Tick advances one step and returns the new value. Values never
	// decrease and never exceed the target.
	Tick() float64
	Complete() bool
	Value() float64
}

// SimulatedProgress climbs toward the target in random increments of
// base + u*spread, u uniform in [0,1).
type SimulatedProgress struct {
	rng    *rand.Rand
	base   float64
	spread float64
	value  float64
	target float64
}

func NewSimulatedProgress(rng *rand.Rand, base, spread float64) *SimulatedProgress {
	return &SimulatedProgress{rng: rng, base: base, spread: spread}
}

// NewTestProgress returns the simulated generator for a soil test kind:
// moisture climbs 5..20 points per tick, pH 0.1..0.3.
func NewTestProgress(rng *rand.Rand, kind domain.TestKind) *SimulatedProgress {
	if kind == domain.TestPH {
		return NewSimulatedProgress(rng, 0.1, 0.2)
	}
	return NewSimulatedProgress(rng, 5, 15)
}

func (p *SimulatedProgress) Start(target float64) {
	p.value = 0
	p.target = target
}

func (p *SimulatedProgress) Tick() float64 {
	if p.Complete() {
		return p.value
	}
	p.value = min(p.value+p.base+p.rng.Float64()*p.spread, p.target)
	return p.value
}

func (p *SimulatedProgress) Complete() bool {
	return p.value >= p.target
}

func (p *SimulatedProgress) Value() float64 {
	return p.value
}

package local

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/core"
)

// breeder holds the fixed inputs of one genetic run.
type breeder[G comparable] struct {
	alphabet []G
	fitness  func([]G) float64
	rng      *rand.Rand
	rate     float64
}

// Genetic evolves population towards an individual that passes goal.
//
// Every generation replaces the whole population. Each child is bred from
// two parents picked by fitness-proportionate (roulette) selection: it takes
// the first c genes of one parent and the rest of the other, c uniform in
// [0, len). With probability MutationRate one random gene of the child is
// then set to a random symbol of alphabet. A population whose total fitness
// is 0 is sampled uniformly.
//
// The initial population counts as generation 0 and is goal-tested too.
// The run is Solved as soon as the fittest individual (first on ties) passes
// goal, and Cutoff after MaxSteps generations, DefaultGenerations when
// MaxSteps is 0. A nil goal always runs to the limit. OnStep sees the fittest
// individual and its fitness of every generation.
//
// The caller's population is not modified. Errors are ErrBadPopulation,
// ErrEmptyAlphabet, ErrNilFitness, ErrOptionViolation, ErrNegativeFitness
// and ctx.Err().
func Genetic[G comparable](population [][]G, alphabet []G, fitness func([]G) float64, goal func([]G) bool, opts ...Option) (*Evolution[G], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = checkPopulation(population); err != nil {
		return nil, err
	}
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if fitness == nil {
		return nil, ErrNilFitness
	}
	limit := o.MaxSteps
	if limit == 0 {
		limit = DefaultGenerations
	}

	b := &breeder[G]{alphabet: alphabet, fitness: fitness, rng: o.Rand, rate: o.MutationRate}
	pop := make([][]G, len(population))
	for i, ind := range population {
		pop[i] = slices.Clone(ind)
	}
	m := core.NewMetrics()
	m.Set(MetricPopulationSize, float64(len(pop)))

	for gen := 0; ; gen++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		values, err := b.evaluate(pop)
		if err != nil {
			return nil, err
		}
		best := fittest(values)
		m.Set(MetricGenerations, float64(gen))
		m.Set(core.MetricNodeValue, values[best])
		o.OnStep(pop[best], values[best])

		status := core.StatusCutoff
		switch {
		case goal != nil && goal(pop[best]):
			status = core.StatusSolved
		case gen < limit:
			pop = b.breed(pop, values)
			continue
		}
		o.Logger.WithFields(logrus.Fields{
			"algorithm":          LabelGenetic,
			"status":             status.String(),
			MetricGenerations:    gen,
			MetricPopulationSize: len(pop),
			core.MetricNodeValue: values[best],
		}).Debug("search finished")

		return &Evolution[G]{
			Status:      status,
			Best:        pop[best],
			Fitness:     values[best],
			Generations: gen,
			Metrics:     m,
		}, nil
	}
}

func checkPopulation[G comparable](population [][]G) error {
	if len(population) == 0 || len(population[0]) == 0 {
		return ErrBadPopulation
	}
	for i, ind := range population {
		if len(ind) != len(population[0]) {
			return fmt.Errorf("%w: individual %d has %d genes, want %d", ErrBadPopulation, i, len(ind), len(population[0]))
		}
	}

	return nil
}

func (b *breeder[G]) evaluate(pop [][]G) ([]float64, error) {
	values := make([]float64, len(pop))
	for i, ind := range pop {
		v := b.fitness(ind)
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: %g for %v", ErrNegativeFitness, v, ind)
		}
		values[i] = v
	}

	return values, nil
}

// fittest returns the index of the highest value, first on ties.
func fittest(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}

	return best
}

// breed returns a new population of the same size.
func (b *breeder[G]) breed(pop [][]G, values []float64) [][]G {
	total := 0.0
	for _, v := range values {
		total += v
	}
	next := make([][]G, len(pop))
	for i := range next {
		x, y := b.pick(pop, values, total), b.pick(pop, values, total)
		child := reproduce(x, y, b.rng.Intn(len(x)))
		if b.rng.Float64() < b.rate {
			child[b.rng.Intn(len(child))] = b.alphabet[b.rng.Intn(len(b.alphabet))]
		}
		next[i] = child
	}

	return next
}

// pick draws one parent with probability proportional to its fitness.
func (b *breeder[G]) pick(pop [][]G, values []float64, total float64) []G {
	if total == 0 {
		return pop[b.rng.Intn(len(pop))]
	}
	u := b.rng.Float64() * total
	acc := 0.0
	for i, v := range values {
		acc += v
		if u < acc {
			return pop[i]
		}
	}

	return pop[len(pop)-1]
}

// reproduce joins x[:c] with y[c:] into a fresh slice.
func reproduce[G comparable](x, y []G, c int) []G {
	child := make([]G, 0, len(x))
	child = append(child, x[:c]...)

	return append(child, y[c:]...)
}

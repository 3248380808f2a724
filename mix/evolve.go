package mix

import (
	"math"
	"sort"
)

// individual is one candidate recipe: genes[i] is the draw from fluid i.
// Genes need not be valid; fitness penalizes invalid ones.
type individual struct {
	genes   []float64
	fitness float64
}

func (ind individual) clone() individual {
	g := make([]float64, len(ind.genes))
	copy(g, ind.genes)
	return individual{genes: g, fitness: ind.fitness}
}

// evolution holds the read-only inputs and the RNG of one
// SolveEvolutionary call.
type evolution struct {
	spec Spec
	opts Options
	rng  RandSource
}

// SolveEvolutionary runs a population search for a mix close to the target.
//
// Algorithm:
//  1. Build P = PopulationFactor·n individuals; gene i is a uniform random
//     multiple of Step in [Step, Volume_i].
//  2. Repeat until the best fitness is 0, StagnationLimit generations pass
//     without strict improvement, or MaxGenerations is reached:
//     a. sort by fitness and keep the better half;
//     b. refill to P with single-point crossover of parents drawn uniformly
//     with replacement from the survivors (split ∈ [1, n−1]);
//     c. record the best offspring if it strictly improves the global best;
//     d. nudge one random gene of every offspring by ±Step.
//  3. Return the best individual ever recorded.
//
// Fitness (lower is better, 0 is perfect):
//
//	#invalid genes (≤0 or > volume) + |V* − ΣV| + |C* − C(mix)|
//
// An individual with ΣV ≤ 0 has fitness +Inf.
//
// This solver never reports infeasibility: the returned Plan may be outside
// tolerance, which Result.WithinTolerance reports. Callers that need a hard
// answer must use SolveExact.
//
// RNG consumption order (relevant for scripted RandSource stubs):
// initialization draws Intn(steps_i) per gene, individual by individual;
// each crossover draws parent a, parent b, then the split (only when n > 1);
// each mutation draws the gene index, then Intn(2) for the direction.
func SolveEvolutionary(spec Spec, opts ...Option) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = spec.Validate(); err != nil {
		return Result{}, err
	}
	return solveEvolutionary(spec, o)
}

func solveEvolutionary(spec Spec, o Options) (Result, error) {
	e := &evolution{spec: spec, opts: o, rng: o.randFor()}
	size := o.PopulationFactor * len(spec.Fluids)

	pop := e.initial(size)
	best := e.bestOf(pop).clone()
	gen, stagnant := 0, 0
	for best.fitness > 0 && stagnant < o.StagnationLimit && gen < o.MaxGenerations {
		if err := o.Ctx.Err(); err != nil {
			return Result{}, err
		}
		gen++

		offspring := e.breed(pop, size)
		if cand := e.bestOf(offspring); cand.fitness < best.fitness {
			best = cand.clone()
			stagnant = 0
		} else {
			stagnant++
		}
		o.OnGeneration(gen, best.fitness)

		for i := range offspring {
			e.mutate(&offspring[i])
			offspring[i].fitness = e.fitness(offspring[i].genes)
		}
		pop = offspring
	}

	plan := e.plan(best)
	return Result{
		Plan:            plan,
		Strategy:        StrategyEvolutionary,
		WithinTolerance: len(plan) > 0 && plan.Within(spec.Target),
		Deviation:       plan.Deviation(spec.Target),
		Stats:           Stats{Generations: gen, BestFitness: best.fitness},
	}, nil
}

// initial builds a random population of the given size.
func (e *evolution) initial(size int) []individual {
	step := e.spec.Target.Step
	pop := make([]individual, size)
	for p := range pop {
		genes := make([]float64, len(e.spec.Fluids))
		for i, f := range e.spec.Fluids {
			steps := stepsWithin(f.Volume(), step)
			if steps < 1 {
				steps = 1
			}
			genes[i] = stepVolume(1+e.rng.Intn(steps), step, math.Max(f.Volume(), step))
		}
		pop[p] = individual{genes: genes, fitness: e.fitness(genes)}
	}
	return pop
}

// fitness scores genes; see SolveEvolutionary.
func (e *evolution) fitness(genes []float64) float64 {
	var invalid int
	var total, active float64
	for i, g := range genes {
		f := e.spec.Fluids[i]
		if g <= 0 || exceeds(g, f.Volume()) {
			invalid++
		}
		total += g
		active += g * f.Concentration()
	}
	if total <= 0 {
		return math.Inf(1)
	}
	t := e.spec.Target
	return float64(invalid) + math.Abs(t.Volume-total) + math.Abs(t.Concentration-active/total)
}

// bestOf returns the fittest individual without reordering pop.
func (e *evolution) bestOf(pop []individual) individual {
	best := pop[0]
	for _, ind := range pop[1:] {
		if ind.fitness < best.fitness {
			best = ind
		}
	}
	return best
}

// breed applies truncation selection to pop and refills to size by crossover.
func (e *evolution) breed(pop []individual, size int) []individual {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].fitness < pop[j].fitness })
	survivors := pop[:max(1, len(pop)/2)]

	next := make([]individual, 0, size)
	for len(next) < size {
		a := survivors[e.rng.Intn(len(survivors))]
		b := survivors[e.rng.Intn(len(survivors))]
		c1, c2 := e.crossover(a, b)
		next = append(next, c1)
		if len(next) < size {
			next = append(next, c2)
		}
	}
	return next
}

// crossover swaps the gene tails of a and b at a random split.
func (e *evolution) crossover(a, b individual) (individual, individual) {
	n := len(a.genes)
	c1, c2 := a.clone(), b.clone()
	if n > 1 {
		split := 1 + e.rng.Intn(n-1)
		copy(c1.genes[split:], b.genes[split:])
		copy(c2.genes[split:], a.genes[split:])
	}
	c1.fitness = e.fitness(c1.genes)
	c2.fitness = e.fitness(c2.genes)
	return c1, c2
}

// mutate moves exactly one gene by one step up or down.
func (e *evolution) mutate(ind *individual) {
	i := e.rng.Intn(len(ind.genes))
	if e.rng.Intn(2) == 0 {
		ind.genes[i] += e.spec.Target.Step
	} else {
		ind.genes[i] -= e.spec.Target.Step
	}
}

// plan lists every strictly positive gene in candidate order, clipped to
// the fluid's volume.
func (e *evolution) plan(ind individual) Plan {
	plan := make(Plan, 0, len(ind.genes))
	for i, g := range ind.genes {
		if g <= 0 {
			continue
		}
		f := e.spec.Fluids[i]
		plan = append(plan, Draw{Index: i, Fluid: f, Volume: math.Min(g, f.Volume())})
	}
	return plan
}

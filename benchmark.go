package gatesym

import "time"

// Circuit is a benchmarkable unit of work: build wires up a fresh network
// and returns the gate whose value should be sampled after a drain.
type Circuit struct {
	// Name is a descriptive label for the circuit being benchmarked.
	Name string

	// Build constructs the circuit on a fresh Network and returns the
	// gate to read once the network has drained.
	Build func(net *Network) Gate
}

// Result is one Circuit's measured outcome.
type Result struct {
	Name     string
	Value    bool
	Steps    int
	Duration time.Duration
}

// Benchmark times Network.Drain over a set of named, freshly constructed
// circuits, the way the teacher's Benchmark timed bare boolean closures —
// generalized here to actually build and drain a Network per circuit
// instead of calling a func() bool.
//
// Example:
//
//	b := gatesym.NewBenchmark()
//	b.Add("4-bit ripple add", func(net *gatesym.Network) gatesym.Gate {
//		... build circuit, return the gate to sample ...
//	})
//	b.Run()
type Benchmark struct {
	circuits []Circuit

	// Results stores each circuit's measured outcome after Run.
	Results []Result
}

// NewBenchmark creates an empty Benchmark.
func NewBenchmark() *Benchmark {
	return &Benchmark{}
}

// Add registers a circuit to be built and timed when Run is called.
func (b *Benchmark) Add(name string, build func(net *Network) Gate) {
	b.circuits = append(b.circuits, Circuit{Name: name, Build: build})
}

// Run builds and drains every registered circuit on its own fresh
// Network, recording the drain step count and wall-clock duration.
func (b *Benchmark) Run() {
	b.Results = make([]Result, len(b.circuits))

	for i, c := range b.circuits {
		net := NewNetwork()
		g := c.Build(net)
		start := time.Now()
		steps := net.Drain()
		duration := time.Since(start)

		b.Results[i] = Result{
			Name:     c.Name,
			Value:    g.Read(),
			Steps:    steps,
			Duration: duration,
		}
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/rhartert/dpll/internal/dimacs"
	"github.com/rhartert/dpll/internal/sat"
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"the instance file is gzip-compressed",
)

var flagTraceDecisions = flag.Bool(
	"trace-decisions",
	false,
	"print a line for every decision split",
)

var flagTracePropagations = flag.Bool(
	"trace-propagations",
	false,
	"print a line for every unit propagation",
)

var flagTraceBackjumps = flag.Bool(
	"trace-backjumps",
	false,
	"print a line for every backjump",
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

type config struct {
	instanceFile string
	gzip         bool
	opts         sat.Options
	cpuProfile   bool
	memProfile   bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzip:         *flagGzip,
		opts: sat.Options{
			Trace:             os.Stdout,
			TraceDecisions:    *flagTraceDecisions,
			TracePropagations: *flagTracePropagations,
			TraceBackjumps:    *flagTraceBackjumps,
		},
		cpuProfile: *flagCPUProfile,
		memProfile: *flagMemProfile,
	}, nil
}

func run(cfg *config) error {
	formula, err := dimacs.LoadFormula(cfg.instanceFile, cfg.gzip)
	if err != nil {
		return fmt.Errorf("could not load instance: %s", err)
	}

	fmt.Printf("c variables: %d\n", formula.NumVars)
	fmt.Printf("c clauses:   %d\n", len(formula.Clauses))

	s := sat.NewSolver(formula, cfg.opts)
	status := s.CheckSat()

	fmt.Printf("c time (sec):        %f\n", s.Elapsed().Seconds())
	fmt.Printf("c decisions:         %d\n", s.TotalDecisions)
	fmt.Printf("c propagations:      %d\n", s.TotalPropagations)
	fmt.Printf("c conflicts:         %d\n", s.TotalConflicts)
	fmt.Printf("c backjumps:         %d\n", s.TotalBackjumps)
	fmt.Printf("c avg-backjump-span: %f\n", s.BackjumpSpan())

	if status == sat.Sat {
		fmt.Printf("s SATISFIABLE\nv ")
		model := s.GetModel()
		for v := 1; v <= formula.NumVars; v++ {
			if model[v] {
				fmt.Printf("%d ", v)
			} else {
				fmt.Printf("%d ", -v)
			}
		}
		fmt.Printf("0\n")
	} else {
		fmt.Printf("s UNSATISFIABLE\n")
	}

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/kr/pretty"

	"github.com/gosat/cdcl/internal/parsers"
	"github.com/gosat/cdcl/internal/sat"
)

var (
	flagStrict     = flag.Bool("strict", false, "reject DIMACS files whose header counts don't match their contents")
	flagPreprocess = flag.Bool("pre", true, "run the simplifier before solving")
	flagSolve      = flag.Bool("solve", true, "run the CDCL search after preprocessing")
	flagModel      = flag.String("model", "", "write a satisfying model to this path, if one is found")
	flagSimplified = flag.String("simplified", "", "write the simplified clause set to this path in DIMACS CNF format")
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile in memprof")
	flagDebug      = flag.Bool("debug", false, "pretty-print final solver statistics")
)

type config struct {
	instanceFile   string
	strict         bool
	preprocess     bool
	solve          bool
	modelFile      string
	simplifiedFile string
	cpuProfile     bool
	memProfile     bool
	debug          bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile:   flag.Arg(0),
		strict:         *flagStrict,
		preprocess:     *flagPreprocess,
		solve:          *flagSolve,
		modelFile:      *flagModel,
		simplifiedFile: *flagSimplified,
		cpuProfile:     *flagCPUProfile,
		memProfile:     *flagMemProfile,
		debug:          *flagDebug,
	}, nil
}

// run loads the instance, optionally preprocesses and solves it, and
// returns the resulting verdict alongside any error.
func run(cfg *config) (sat.LBool, error) {
	s := sat.NewDefaultSolver()

	if err := parsers.LoadDIMACS(cfg.instanceFile, false, cfg.strict, s); err != nil {
		return sat.Unknown, fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", s.NumConstraints())

	status := sat.Unknown
	t := time.Now()

	if cfg.preprocess {
		if !s.Preprocess() {
			status = sat.False
		}
	}

	if status == sat.Unknown && cfg.solve {
		status = s.Solve()
	}

	elapsed := time.Since(t)
	stats := s.Stats()

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", stats.Conflicts, float64(stats.Conflicts)/elapsed.Seconds())
	fmt.Printf("c status:     %s\n", status.String())

	if cfg.debug {
		fmt.Println("c statistics:")
		pretty.Println(stats)
	}

	if cfg.simplifiedFile != "" {
		if err := parsers.WriteSimplified(cfg.simplifiedFile, s.NumVariables(), s.Clauses()); err != nil {
			return status, fmt.Errorf("could not write simplified instance: %s", err)
		}
	}

	if status == sat.True && cfg.modelFile != "" {
		if err := parsers.WriteModel(cfg.modelFile, s.Models[len(s.Models)-1]); err != nil {
			return status, fmt.Errorf("could not write model: %s", err)
		}
	}

	return status, nil
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

	status, err := run(cfg)
	if err != nil {
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

	switch status {
	case sat.True:
		os.Exit(10)
	case sat.False:
		os.Exit(20)
	default:
		os.Exit(0)
	}
}

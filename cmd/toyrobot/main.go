package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"toyrobot/internal/config"
	"toyrobot/internal/log"
	"toyrobot/internal/simulator"
)

var (
	configPath = flag.String("config", "", "Path to optional TOML configuration file")
	verbose    = flag.Bool("verbose", false, "Log ignored input lines to stderr")
	visual     bool
)

func init() {
	flag.BoolVar(&visual, "visual", false, "Render the ASCII tabletop after each report")
	flag.BoolVar(&visual, "v", false, "Shorthand for --visual")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [commands file]\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Reads robot commands from the file, or stdin when no file is given.")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetVerbose(*verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var in io.Reader = os.Stdin
	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("open commands file: %v", err)
		}
		defer f.Close()
		in = f
	}

	reporter, err := simulator.NewReporter(cfg.Output.ReportTemplate)
	if err != nil {
		log.Fatalf("invalid report template: %v", err)
	}

	runner := simulator.NewRunner(cfg.Tabletop(), reporter, visual || cfg.Output.Visual, os.Stdout)
	if err := runner.Run(in); err != nil {
		log.Fatalf("%v", err)
	}
}

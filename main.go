// Package main provides the analemma command line interface.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/devskill-org/analemma/analemma"
	"github.com/devskill-org/analemma/chart"
	"github.com/devskill-org/analemma/sun"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	defaults := analemma.DefaultConfig()

	fs := flag.NewFlagSet("analemma", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Command line flags
	var (
		lat         = fs.Float64("lat", defaults.Latitude, "Latitude in decimal degrees")
		lon         = fs.Float64("lon", defaults.Longitude, "Longitude in decimal degrees")
		year        = fs.Int("y", defaults.Year, "Year")
		hour        = fs.Int("h", defaults.Hour, "Hour in 24-hour clock format (UTC)")
		minute      = fs.Int("m", defaults.Minute, "Minute")
		seasons     = fs.Bool("s", defaults.Seasons, "Label the equinoxes and solstices (-s=false to disable)")
		trueSeasons = fs.Bool("true-seasons", defaults.TrueSeasons, "Mark the actual equinox and solstice dates of the year instead of the 2018 dates")
		figSize     = fs.Int("f", defaults.FigSize, "Figure size in inches")
		output      = fs.String("o", defaults.Output, "Output file (.png, .jpg), empty to skip writing")
		table       = fs.Bool("table", false, "Print the sample table")
		configFile  = fs.String("config", "", "Configuration file path (JSON or YAML)")
		verbose     = fs.Bool("v", defaults.Verbose, "Log progress to stderr")
		help        = fs.Bool("help", false, "Show help message")
		helpShort   = fs.Bool("H", false, "Show help message")
	)
	fs.Usage = func() { showHelp(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected argument %q, boolean flags take the form -s=false\n", fs.Arg(0))
		return 2
	}

	if *help || *helpShort {
		showHelp(stdout, fs)
		return 0
	}

	config := defaults
	if *configFile != "" {
		var err error
		config, err = analemma.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintln(stderr, "Error loading configuration:", err)
			return 1
		}
	}

	// explicitly set flags win over the configuration file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			config.Latitude = *lat
		case "lon":
			config.Longitude = *lon
		case "y":
			config.Year = *year
		case "h":
			config.Hour = *hour
		case "m":
			config.Minute = *minute
		case "s":
			config.Seasons = *seasons
		case "true-seasons":
			config.TrueSeasons = *trueSeasons
		case "f":
			config.FigSize = *figSize
		case "o":
			config.Output = *output
		case "v":
			config.Verbose = *verbose
		}
	})

	// Create logger
	logWriter := io.Discard
	if config.Verbose {
		logWriter = stderr
	}
	logger := log.New(logWriter, "[ANALEMMA] ", log.LstdFlags)

	renderer, err := chart.NewGGRenderer()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	result, _, err := analemma.New(config, sun.NewSuncalcResolver(), renderer, logger).Run()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	if *table {
		if err := analemma.WriteTable(stdout, result, analemma.ResolveEvents(result)); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
	}

	return 0
}

func showHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "analemma - map the analemma in the sky")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "DESCRIPTION:")
	fmt.Fprintln(w, "  Computes the position of the sun at the same UTC clock time on the 1st and")
	fmt.Fprintln(w, "  16th of every month and plots the resulting figure-eight on a polar sky")
	fmt.Fprintln(w, "  chart centred on the zenith, north up and east to the right.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Season markers are placed on Mar 20, Jun 21, Sep 23 and Dec 21, the 2018")
	fmt.Fprintln(w, "  equinox and solstice dates. For other years use -true-seasons.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "  analemma -lat <latitude> -lon <longitude> -y <year> -h <hour> -m <minute>")
	fmt.Fprintln(w, "           -s=<true|false> -f <figsize> -o <output>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "OPTIONS:")
	out := fs.Output()
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(out)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "EXAMPLES:")
	fmt.Fprintln(w, "  # Tropic of Capricorn at noon UTC, written to analemma.png")
	fmt.Fprintln(w, "  analemma")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Riga at 09:30 UTC in 2024 with the real season dates")
	fmt.Fprintln(w, "  analemma -lat 56.9496 -lon 24.1052 -y 2024 -h 9 -m 30 -true-seasons -o riga.png")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # No season markers, print the sample table")
	fmt.Fprintln(w, "  analemma -s=false -table")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Settings from a configuration file, overriding the hour")
	fmt.Fprintln(w, "  analemma -config analemma.yaml -h 15")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Show this help")
	fmt.Fprintln(w, "  analemma -help")
}

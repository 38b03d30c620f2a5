package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sgostarter/i/l"
	"gopkg.in/yaml.v3"

	naca16 "github.com/flywave/go-naca16"
)

type queryCase struct {
	Name  string  `yaml:"name,omitempty"`
	Cld   float64 `yaml:"cld"`
	Tc    float64 `yaml:"tc"`
	Mach  float64 `yaml:"mach"`
	Alpha float64 `yaml:"alpha"`
}

type caseFile struct {
	Cases []queryCase `yaml:"cases"`
}

func loadCases(path string) ([]queryCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf caseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cf.Cases, nil
}

func run(w io.Writer, inter *naca16.CoefficientInterpolator, cases []queryCase) error {
	for _, c := range cases {
		set, err := inter.BuildInterpolants(c.Cld, c.Tc)
		if err != nil {
			return err
		}
		for _, warning := range set.Warnings {
			fmt.Fprintf(w, "warning: %s\n", warning)
		}
		cl, cd := set.Evaluate(c.Mach, c.Alpha)
		name := c.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\tcld=%.3f tc=%.3f mach=%.4f alpha=%.2f %s\tcl=%.6f cd=%.6f\n",
			name, set.Point[0], set.Point[1], c.Mach, c.Alpha, naca16.RegimeOf(c.Mach), cl, cd)
	}
	return nil
}

func main() {
	databank := flag.String("databank", "N16TABLE.dat", "path to the tabulated NACA 16-series databank")
	cld := flag.Float64("cld", 0.2, "design lift coefficient")
	tc := flag.Float64("tc", 0.2, "thickness-to-chord ratio")
	mach := flag.Float64("mach", 0.3, "freestream Mach number")
	alpha := flag.Float64("alpha", 4, "angle of attack in degrees")
	surface := flag.String("surface", string(naca16.CUBIC), "alpha/Mach surface: cubic, akima, monotone, natural or linear")
	cases := flag.String("cases", "", "YAML file with a list of query cases; overrides -cld/-tc/-mach/-alpha")

	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	t0 := time.Now()
	db, err := naca16.LoadDatabankFile(*databank)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("load databank")
	}
	logger.WithFields(l.IntField("tables", db.Len()),
		l.StringField("elapsed", time.Since(t0).String())).Debug("databank loaded")

	kind := naca16.SurfaceKind(*surface)
	opts := naca16.Options{Logger: logger, Surface: &kind}

	queries := []queryCase{{Cld: *cld, Tc: *tc, Mach: *mach, Alpha: *alpha}}
	if *cases != "" {
		if queries, err = loadCases(*cases); err != nil {
			logger.WithFields(l.ErrorField(err)).Fatal("load cases")
		}
		ttl := time.Duration(0)
		opts.CacheTTL = &ttl
	}

	inter, err := naca16.NewCoefficientInterpolator(db, opts)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("init interpolator")
	}

	if err := run(os.Stdout, inter, queries); err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("evaluate")
	}
}

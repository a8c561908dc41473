// The staticlint command bundles the static analyzers used on this
// project into a single multichecker binary: a fixed set of passes from
// the Go toolchain, the ineffassign and nilerr analyzers, the
// project-specific exitcheck analyzer, and a configurable selection of
// staticcheck analyzers.
//
// The staticcheck selection is read from a config.json file placed next
// to the binary:
//
//	{"staticcheck": ["SA1000", "SA4010"]}
//
// When the file is absent, every SA-class analyzer is enabled.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/gordonklaus/ineffassign/pkg/ineffassign"
	"github.com/gostaticanalysis/nilerr"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"honnef.co/go/tools/staticcheck"

	"github.com/yemaster/vtix-ng/cmd/staticlint/exitcheck"
)

const configName = "config.json"

type configData struct {
	Staticcheck []string `json:"staticcheck"`
}

func main() {
	checks := []*analysis.Analyzer{
		copylock.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		printf.Analyzer,
		structtag.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,

		ineffassign.Analyzer,
		nilerr.Analyzer,

		exitcheck.Analyzer,
	}

	multichecker.Main(append(checks, staticcheckAnalyzers()...)...)
}

func staticcheckAnalyzers() []*analysis.Analyzer {
	enabled := loadStaticcheckConfig()

	var checks []*analysis.Analyzer
	for _, v := range staticcheck.Analyzers {
		name := v.Analyzer.Name
		if enabled == nil {
			if strings.HasPrefix(name, "SA") {
				checks = append(checks, v.Analyzer)
			}
			continue
		}
		if enabled[name] {
			checks = append(checks, v.Analyzer)
		}
	}

	return checks
}

// loadStaticcheckConfig returns the configured analyzer names, or nil
// when no config file exists next to the binary.
func loadStaticcheckConfig() map[string]bool {
	appfile, err := os.Executable()
	if err != nil {
		return nil
	}

	data, err := os.ReadFile(filepath.Join(filepath.Dir(appfile), configName))
	if err != nil {
		return nil
	}

	var cfg configData
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil
	}

	enabled := make(map[string]bool, len(cfg.Staticcheck))
	for _, name := range cfg.Staticcheck {
		enabled[name] = true
	}

	return enabled
}

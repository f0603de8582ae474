package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/toyz/slashgen/internal/errors"
	"github.com/toyz/slashgen/internal/generator"
	"github.com/toyz/slashgen/internal/parser"
	"github.com/toyz/slashgen/internal/utils"
)

// Runner drives one generation pass over a set of directories.
type Runner struct {
	cfg  *Config
	diag *utils.DiagnosticSystem

	parser    *parser.Parser
	generator *generator.Generator
}

// Summary counts what a run touched.
type Summary struct {
	ScannedDirs    int
	GeneratedFiles []string
	Elapsed        time.Duration
}

func NewRunner(cfg *Config) *Runner {
	diag := cfg.Diagnostics()
	return &Runner{
		cfg:       cfg,
		diag:      diag,
		parser:    parser.NewParser(diag),
		generator: generator.NewGenerator(diag),
	}
}

// Run generates (or cleans) every configured directory. Generation
// problems across all directories are accumulated and reported together;
// the returned error is non-nil when anything failed.
func (r *Runner) Run() error {
	start := time.Now()

	dirs, err := utils.ExpandDirectories(r.cfg.Paths)
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		r.diag.Warn("no Go packages found under %v", r.cfg.Paths)
		return nil
	}

	if r.cfg.Clean {
		return r.clean(dirs)
	}

	module := r.cfg.Module
	if module == "" {
		if m, err := utils.ModulePath(dirs[0]); err == nil {
			module = m
		}
	}
	if module != "" {
		r.diag.Verbose("module %s", module)
	}

	acc := errors.NewAccumulator()
	summary := Summary{ScannedDirs: len(dirs)}

	for _, dir := range dirs {
		r.diag.StartProgress(fmt.Sprintf("scanning %s", dir))
		path, err := r.generateDir(dir, acc)
		r.diag.EndProgress(err == nil, "")
		if err != nil {
			return err
		}
		if path != "" {
			summary.GeneratedFiles = append(summary.GeneratedFiles, path)
		}
	}

	if acc.HasErrors() {
		count := acc.Len()
		r.report(acc)
		return fmt.Errorf("generation failed with %d problems", count)
	}

	summary.Elapsed = time.Since(start)
	r.summarize(&summary)
	return nil
}

// generateDir parses one directory and writes its generated file. An empty
// path means the directory has no annotated declarations.
func (r *Runner) generateDir(dir string, acc *errors.Accumulator) (string, error) {
	local := errors.NewAccumulator()
	meta, err := r.parser.ParseDirectory(dir, local)
	if err != nil {
		return "", err
	}
	if meta == nil && !local.HasErrors() {
		return "", nil
	}

	var source []byte
	if !local.HasErrors() {
		source, err = r.generator.GenerateFile(meta, local)
		if err != nil {
			return "", err
		}
	}
	if local.HasErrors() {
		acc.Merge(local)
		return "", nil
	}

	path := filepath.Join(dir, generator.GeneratedFileName)
	if err := utils.WriteGeneratedFile(path, source); err != nil {
		return "", err
	}
	r.diag.Info("generated %s", path)
	return path, nil
}

// report prints every accumulated diagnostic with its location and
// suggestions.
func (r *Runner) report(acc *errors.Accumulator) {
	drained := acc.Drain()
	r.diag.Error("%d problems found", len(drained))
	for _, e := range drained {
		if e.Location.File != "" {
			r.diag.List("%s:%d: [%s] %s", e.Location.File, e.Location.Line, e.Code, e.Message)
		} else {
			r.diag.List("[%s] %s", e.Code, e.Message)
		}
		for _, s := range e.Suggestions {
			r.diag.List("  hint: %s", s)
		}
	}
}

func (r *Runner) summarize(s *Summary) {
	if len(s.GeneratedFiles) == 0 {
		r.diag.Info("no annotated declarations found in %d directories", s.ScannedDirs)
		return
	}
	r.diag.Summary("Generation complete", []string{
		fmt.Sprintf("%d directories scanned", s.ScannedDirs),
		fmt.Sprintf("%d files generated", len(s.GeneratedFiles)),
		fmt.Sprintf("finished in %s", s.Elapsed.Round(time.Millisecond)),
	})
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	md2slides "github.com/alnah/go-md2slides"
	"github.com/alnah/go-md2slides/internal/config"
	"github.com/alnah/go-md2slides/internal/dateutil"
	"github.com/alnah/go-md2slides/internal/fileutil"
	"github.com/alnah/go-md2slides/internal/hints"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadInput          = errors.New("failed to read input file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("input must have a .md, .markdown or .Rmd extension")
	ErrOutputExists       = errors.New("output file already exists")
	ErrOutputConflict     = errors.New("--output cannot be used with multiple inputs")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrBatchFailed        = errors.New("conversion failed")
)

// filePermissions is applied to every written output.
const filePermissions = 0o644 // rw-r--r--

// maxWorkers bounds --workers to something sane.
const maxWorkers = 32

// deckJob holds the resolved paths and metadata of one conversion.
type deckJob struct {
	inputPath     string
	deckPath      string
	exercisesPath string
	previewPath   string
	title         string
}

// jobResult holds the outcome of a single conversion.
type jobResult struct {
	job      deckJob
	pages    int
	hasEx    bool
	warnings []string
	err      error
	duration time.Duration
}

// runConvert orchestrates the conversion of all inputs.
func runConvert(inputs []string, flags *convertFlags) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(inputs) > 1 && flags.output != "" {
		return ErrOutputConflict
	}

	// Load configuration, then merge CLI flags into it (CLI wins).
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound())
		}
		cfg = loaded
	}
	mergeFlags(flags, cfg)

	// Resolve "auto" date once for the entire batch.
	date, err := dateutil.ResolveDate(cfg.Deck.Date, time.Now())
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	cfg.Deck.Date = date

	jobs := make([]deckJob, 0, len(inputs))
	for _, input := range inputs {
		job, err := buildJob(input, flags, cfg)
		if err != nil {
			return err
		}
		jobs = append(jobs, job)
	}

	// The only pre-condition check: destinations must not exist. Performed
	// for the whole batch before any write, so a failing job never leaves
	// partial files behind.
	for _, job := range jobs {
		if fileutil.FileExists(job.deckPath) {
			return fmt.Errorf("%w: %s%s", ErrOutputExists, job.deckPath, hints.ForOutputExists(job.deckPath))
		}
	}

	results := convertAll(jobs, flags, cfg)

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.job.inputPath, r.err)
			continue
		}
		for _, w := range r.warnings {
			fmt.Fprintf(os.Stderr, "warning: %s: %s%s\n", r.job.inputPath, w, hints.ForUnbalancedMath())
		}
		if flags.common.quiet {
			continue
		}
		fmt.Printf("Created %s (%d pages)\n", r.job.deckPath, r.pages)
		if r.hasEx && cfg.Exercises.Save {
			fmt.Printf("Created %s\n", r.job.exercisesPath)
		}
		if flags.common.verbose {
			fmt.Fprintf(os.Stderr, "%s converted in %s\n", r.job.inputPath, r.duration.Round(time.Millisecond))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d inputs", ErrBatchFailed, failed, len(jobs))
	}
	return nil
}

// convertAll runs the jobs with bounded concurrency. Each job is one
// strictly sequential pass; only distinct inputs run in parallel.
func convertAll(jobs []deckJob, flags *convertFlags, cfg *config.Config) []jobResult {
	workers := resolveWorkers(flags.workers, len(jobs))
	sem := make(chan struct{}, workers)
	results := make([]jobResult, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job deckJob) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			start := time.Now()
			r := convertJob(context.Background(), job, flags, cfg)
			r.duration = time.Since(start)
			results[i] = r
		}(i, job)
	}
	wg.Wait()

	return results
}

// convertJob performs one full conversion: read, convert, write.
func convertJob(ctx context.Context, job deckJob, flags *convertFlags, cfg *config.Config) jobResult {
	res := jobResult{job: job}

	content, err := os.ReadFile(job.inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		res.err = fmt.Errorf("%w: %v", ErrReadInput, err)
		return res
	}

	var opts []md2slides.Option
	if flags.common.verbose {
		opts = append(opts, md2slides.WithTrace(os.Stderr))
	}
	svc := md2slides.New(opts...)

	out, err := svc.Convert(ctx, md2slides.Input{
		Markdown: string(content),
		Meta: &md2slides.DeckMeta{
			Title:    job.title,
			Author:   cfg.Deck.Author,
			Date:     cfg.Deck.Date,
			ImageDir: cfg.Deck.ImageDir,
		},
		Layout: &md2slides.PageLayout{
			MaxLines:     cfg.Layout.MaxLines,
			CharsPerLine: cfg.Layout.CharsPerLine,
			MaxTitleLen:  cfg.Layout.MaxTitleLen,
		},
		NoExercises: !cfg.Exercises.Save,
	})
	if err != nil {
		res.err = err
		return res
	}
	res.pages = out.Pages
	res.hasEx = out.HasExercises()
	res.warnings = out.Warnings

	if err := os.WriteFile(job.deckPath, []byte(out.Deck), filePermissions); err != nil {
		res.err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return res
	}
	if cfg.Exercises.Save && out.HasExercises() {
		if err := os.WriteFile(job.exercisesPath, []byte(out.Exercises), filePermissions); err != nil {
			res.err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			return res
		}
	}

	if flags.previewHTML {
		html, err := md2slides.NewHTMLPreviewer().Render(ctx, out.Deck)
		if err != nil {
			res.err = err
			return res
		}
		if err := os.WriteFile(job.previewPath, []byte(html), filePermissions); err != nil {
			res.err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			return res
		}
	}

	return res
}

// buildJob resolves every output path and the title for one input.
func buildJob(input string, flags *convertFlags, cfg *config.Config) (deckJob, error) {
	if err := validateInputExtension(input); err != nil {
		return deckJob{}, err
	}

	suffix := cfg.Output.Suffix
	name := flags.output
	if name == "" {
		name = fileutil.WithSuffix(fileutil.BaseName(input), suffix)
	} else if filepath.Ext(name) == "" {
		name = fileutil.WithSuffix(name, suffix)
	}

	deckPath := name
	if cfg.Output.Dir != "" {
		deckPath = filepath.Join(cfg.Output.Dir, name)
	}

	stem := strings.TrimSuffix(deckPath, filepath.Ext(deckPath))
	exercisesPath := flags.exercises.path
	if exercisesPath == "" {
		exercisesPath = stem + cfg.Exercises.Suffix + filepath.Ext(deckPath)
	}

	title := cfg.Deck.Title
	if title == "" {
		title = deriveTitle(fileutil.BaseName(deckPath))
	}

	return deckJob{
		inputPath:     input,
		deckPath:      deckPath,
		exercisesPath: exercisesPath,
		previewPath:   stem + ".html",
		title:         title,
	}, nil
}

// mergeFlags overlays explicitly set CLI flags on the config.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.outDir != "" {
		cfg.Output.Dir = flags.outDir
	}
	if flags.suffix != "" {
		cfg.Output.Suffix = flags.suffix
	}
	if flags.deck.title != "" {
		cfg.Deck.Title = flags.deck.title
	}
	if flags.deck.author != "" {
		cfg.Deck.Author = flags.deck.author
	}
	if flags.deck.date != "" {
		cfg.Deck.Date = flags.deck.date
	}
	if flags.deck.imgDir != "" {
		cfg.Deck.ImageDir = flags.deck.imgDir
	}
	if flags.layout.maxLines > 0 {
		cfg.Layout.MaxLines = flags.layout.maxLines
	}
	if flags.layout.charsPerLine > 0 {
		cfg.Layout.CharsPerLine = flags.layout.charsPerLine
	}
	if flags.layout.maxTitle > 0 {
		cfg.Layout.MaxTitleLen = flags.layout.maxTitle
	}
	if flags.exercises.disabled {
		cfg.Exercises.Save = false
	}
}

// deriveTitle turns an output name into a presentable deck title:
// dashes and underscores become spaces, words are title-cased.
func deriveTitle(name string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	s = strings.Join(strings.Fields(s), " ")
	return cases.Title(language.Und).String(s)
}

// validateInputExtension checks that the input looks like a markdown file.
func validateInputExtension(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".rmd":
		return nil
	}
	return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
}

// validateWorkers rejects out-of-range worker counts.
func validateWorkers(n int) error {
	if n < 0 || n > maxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// resolveWorkers picks the effective pool size: explicit value, or one
// worker per CPU, never more than there are jobs.
func resolveWorkers(n, jobs int) int {
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > jobs {
		n = jobs
	}
	if n < 1 {
		n = 1
	}
	return n
}

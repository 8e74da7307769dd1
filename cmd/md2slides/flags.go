package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// deckFlags holds preamble metadata flags.
type deckFlags struct {
	title  string
	author string
	date   string
	imgDir string
}

// layoutFlags holds page geometry flags.
type layoutFlags struct {
	maxLines     int
	charsPerLine int
	maxTitle     int
}

// exerciseFlags holds companion-file flags.
type exerciseFlags struct {
	path     string
	disabled bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common      commonFlags
	output      string
	outDir      string
	suffix      string
	workers     int
	previewHTML bool
	deck        deckFlags
	layout      layoutFlags
	exercises   exerciseFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "trace per-line pagination decisions")
}

// addDeckFlags adds preamble metadata flags to a FlagSet.
func addDeckFlags(fs *flag.FlagSet, f *deckFlags) {
	fs.StringVar(&f.title, "title", "", "deck title (\"\" = derive from output name)")
	fs.StringVar(&f.author, "author", "", "deck author")
	fs.StringVar(&f.date, "date", "", "deck date: \"auto\", \"auto:FORMAT\", or literal")
	fs.StringVar(&f.imgDir, "img-dir", "", "image directory referenced by the preamble")
}

// addLayoutFlags adds page geometry flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.IntVar(&f.maxLines, "max-lines", 0, "estimated lines per page (default 15)")
	fs.IntVar(&f.charsPerLine, "chars-per-line", 0, "characters per rendered line (default 60)")
	fs.IntVar(&f.maxTitle, "max-title", 0, "section title truncation (0 = unlimited)")
}

// addExerciseFlags adds companion-file flags to a FlagSet.
func addExerciseFlags(fs *flag.FlagSet, f *exerciseFlags) {
	fs.StringVar(&f.path, "exercises", "", "exercise file path (default: output name + \"-exercises\")")
	fs.BoolVar(&f.disabled, "no-exercises", false, "do not write the exercise file")
}

// parseConvertFlags parses convert flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("md2slides", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file name")
	fs.StringVar(&f.outDir, "out-dir", "", "output directory")
	fs.StringVar(&f.suffix, "suffix", "", "output file suffix (default .md)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for multiple inputs (0 = auto)")
	fs.BoolVar(&f.previewHTML, "preview-html", false, "also render the deck to HTML for review")

	addCommonFlags(fs, &f.common)
	addDeckFlags(fs, &f.deck)
	addLayoutFlags(fs, &f.layout)
	addExerciseFlags(fs, &f.exercises)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

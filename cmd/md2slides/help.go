package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2slides [flags] <input.md> [more inputs...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a long-form markdown document into a paginated slide deck,")
	fmt.Fprintln(w, "extracting exercise sections into a companion file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <name>         Output file name (default: input basename)")
	fmt.Fprintln(w, "      --out-dir <dir>         Output directory")
	fmt.Fprintln(w, "      --suffix <s>            Output file suffix (default .md)")
	fmt.Fprintln(w, "      --exercises <path>      Exercise file path (default: output + \"-exercises\")")
	fmt.Fprintln(w, "      --no-exercises          Do not write the exercise file")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers for multiple inputs (0 = auto)")
	fmt.Fprintln(w, "      --preview-html          Also render the deck to HTML for review")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Deck:")
	fmt.Fprintln(w, "      --title <s>             Deck title (\"\" = derive from output name)")
	fmt.Fprintln(w, "      --author <s>            Deck author")
	fmt.Fprintln(w, "      --date <s>              Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "      --img-dir <dir>         Image directory (default img)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pagination:")
	fmt.Fprintln(w, "      --max-lines <n>         Estimated lines per page (default 15)")
	fmt.Fprintln(w, "      --chars-per-line <n>    Characters per rendered line (default 60)")
	fmt.Fprintln(w, "      --max-title <n>         Section title truncation (0 = unlimited)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -v, --verbose               Trace per-line pagination decisions")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The pagination is an estimate: it cannot account for output produced by")
	fmt.Fprintln(w, "executing code chunks, so review the generated deck before rendering it.")
}

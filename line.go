package md2slides

// Tag is the structural role assigned to exactly one input line.
type Tag string

// Line tags assigned by the classifier. Region interiors keep their family
// tag for every line between the delimiters, so the paginator can account
// for them without consulting the region index again.
const (
	TagSection       Tag = "section"
	TagProse         Tag = "prose"
	TagExerciseStart Tag = "exercise_start"
	TagQuote         Tag = "quote"
	TagTable         Tag = "table"

	TagLatexStart       Tag = "latex_start"
	TagLatexInside      Tag = "latex_inside"
	TagLatexEnd         Tag = "latex_end"
	TagLatexOneline     Tag = "latex_oneline"
	TagLatexStartAndEnd Tag = "latex_start_and_end"

	TagCodeStart  Tag = "code_start"
	TagCodeInside Tag = "code_inside"
	TagCodeEnd    Tag = "code_end"

	TagPlotCodeStart Tag = "plot_code_start"
	TagPlotCodeEnd   Tag = "plot_code_end"

	TagDontPrint Tag = "dont_print"
	TagLastLine  Tag = "last_line"
)

// Line pairs the immutable raw text of an input line with its tag.
type Line struct {
	Text string
	Tag  Tag
}

package pipeline

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/goldenbell/qbank/internal/extract"
	"github.com/goldenbell/qbank/internal/logger"
	"github.com/goldenbell/qbank/internal/parser"
	"github.com/goldenbell/qbank/internal/report"
	"github.com/goldenbell/qbank/internal/store"
)

// Options configures one extraction run
type Options struct {
	Source   string
	Output   string
	Lookback int
	Report   io.Writer // Console report destination, nil to skip
	Styles   report.Styles
}

// Run extracts, parses, validates and saves the question bank.
// A count mismatch is reported but never fails the run.
func Run(ext extract.Extractor, opts Options, log *logger.Logger) (*report.Report, error) {
	log = log.With("source", opts.Source)
	log.Info("extracting text")
	text, err := ext.Extract(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	log.Info("parsing questions", "chars", utf8.RuneCountInString(text), "lookback", opts.Lookback)
	res := parser.NewParser(parser.WithLookback(opts.Lookback)).Parse(text)
	log.Debug("markers found",
		"sections", len(res.Sections),
		"difficulties", len(res.Difficulties),
		"answers", len(res.Answers))
	for _, m := range res.HeadingMismatches() {
		log.Warn("difficulty heading count differs from expected",
			"course", m.Course,
			"month", m.Month,
			"difficulty", m.Difficulty,
			"printed", m.Printed,
			"expected", m.Expected)
	}
	for _, d := range res.Discards {
		log.Debug("answer discarded", "offset", d.AnswerOffset, "reason", d.Reason, "answer", d.Answer)
	}

	rep := report.Validate(res.Questions)
	if opts.Report != nil {
		if err := report.Render(opts.Report, rep, opts.Styles); err != nil {
			return nil, fmt.Errorf("render report: %w", err)
		}
	}
	if rep.Delta() != 0 {
		log.Warn("question count differs from expected",
			"expected", rep.TotalExpected,
			"actual", rep.TotalActual,
			"mismatched_months", rep.Mismatches(),
			"discarded", len(res.Discards))
	}

	if err := store.Save(opts.Output, res.Questions); err != nil {
		return nil, err
	}
	log.Info("saved questions", "path", opts.Output, "count", len(res.Questions))

	return rep, nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/amp-labs/amp-ordering/envutil"
	"github.com/amp-labs/amp-ordering/logger"
	"github.com/amp-labs/amp-ordering/should"
	"github.com/amp-labs/amp-ordering/sortable"
	"github.com/spf13/cobra"
)

const (
	opSort = "sort"
	opMin  = "min"
	opMax  = "max"
)

// app holds what the commands need from the outside world, so tests can
// replace the terminal and the prompt.
type app struct {
	log        *slog.Logger
	isTerminal func() bool
	selectKind func(label string, choices ...string) (string, error)
}

type options struct {
	kind     string
	desc     bool
	byLength bool
	format   string
	quiet    bool
}

// defaults come from the ORDSORT_* variables; flags win.
type defaults struct {
	kind  string
	order string
	op    string
	quiet bool
}

func loadDefaults(ctx context.Context) (defaults, error) {
	kind, err := envutil.OneOf(ctx, "ORDSORT_KIND", kinds, envutil.Default("")).Value()
	if err != nil {
		return defaults{}, err
	}

	order, err := envutil.OneOf(ctx, "ORDSORT_ORDER", []string{"asc", "desc"}, envutil.Default("asc")).Value()
	if err != nil {
		return defaults{}, err
	}

	op, err := envutil.OneOf(ctx, "ORDSORT_OP", []string{opSort, opMin, opMax}, envutil.Default(opSort)).Value()
	if err != nil {
		return defaults{}, err
	}

	quiet := envutil.Bool(ctx, "ORDSORT_QUIET").ValueOrElse(false)

	return defaults{kind: kind, order: order, op: op, quiet: quiet}, nil
}

func newRootCommand(ctx context.Context, a *app) (*cobra.Command, error) {
	dfl, err := loadDefaults(ctx)
	if err != nil {
		return nil, err
	}

	opts := &options{kind: dfl.kind, desc: dfl.order == "desc", quiet: dfl.quiet}

	root := &cobra.Command{
		Use:   "ordsort [FILE]",
		Short: "sort typed values, or pick the least or greatest one",
		Long: `
Reads one value per line (or a YAML list) from FILE or stdin and orders the
values by their meaning rather than their text: numbers numerically, dates
chronologically, versions by precedence. Values of different kinds are never
compared; mixing them is an error.

Without a subcommand the operation comes from ORDSORT_OP (default sort).
ORDSORT_KIND, ORDSORT_ORDER and ORDSORT_QUIET set the other defaults.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, dfl.op, opts, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.kind, "kind", opts.kind, "kind of the values: "+strings.Join(kinds, ", "))
	flags.BoolVar(&opts.desc, "desc", opts.desc, "sort from greatest to least")
	flags.BoolVar(&opts.byLength, "by-length", false, "order entries by the length of their text")
	flags.StringVar(&opts.format, "format", "", "input format, lines or yaml (default: from the file name)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", opts.quiet, "do not log")

	short := map[string]string{
		opSort: "print the values in order",
		opMin:  "print the least value",
		opMax:  "print the greatest value",
	}

	for _, op := range []string{opSort, opMin, opMax} {
		root.AddCommand(&cobra.Command{
			Use:          op + " [FILE]",
			Short:        short[op],
			Args:         cobra.MaximumNArgs(1),
			SilenceUsage: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, op, opts, args)
			},
		})
	}

	return root, nil
}

func (a *app) run(cmd *cobra.Command, op string, opts *options, args []string) error {
	var (
		input io.Reader = cmd.InOrStdin()
		name            = "stdin"
	)

	if len(args) == 1 {
		name = args[0]
	}

	ctx := logger.With(logger.WithSubsystem(cmd.Context(), "ordsort "+op), "input", name)
	ctx = logger.WithMuted(ctx, opts.quiet)

	log := logger.From(ctx, a.log)

	if len(args) == 1 {
		f, err := os.Open(name)
		if err != nil {
			return err
		}

		defer should.Close(log, f, "closing input")

		input = f
	}

	format, err := resolveFormat(opts.format, name)
	if err != nil {
		return err
	}

	kind, err := a.resolveKind(opts.kind)
	if err != nil {
		return err
	}

	order := sortable.Asc
	if opts.desc {
		order = sortable.Desc
	}

	log = log.With("kind", kind, "format", format, "order", order.String())

	entries, err := readEntries(input, format, kind)
	if err != nil {
		log.Error("reading input failed", "error", err)

		return err
	}

	log.Debug("read input", "entries", len(entries))

	result, err := execute(op, entries, order, opts.byLength)
	if err != nil {
		log.Error("ordering failed", "error", err)

		return err
	}

	return writeEntries(cmd.OutOrStdout(), format, result)
}

// resolveKind validates an explicit kind. Without one, the user is asked when
// stdin is a terminal and auto detection is used otherwise.
func (a *app) resolveKind(kind string) (string, error) {
	if kind == "" {
		if a.isTerminal == nil || !a.isTerminal() {
			return kindAuto, nil
		}

		picked, err := a.selectKind("Kind of the values", kinds...)
		if err != nil {
			return "", fmt.Errorf("choosing a kind: %w", err)
		}

		kind = picked
	}

	kind = strings.ToLower(kind)
	if _, found := parsers[kind]; !found {
		return "", fmt.Errorf("%w: %q (want one of %v)", errUnknownKind, kind, kinds)
	}

	return kind, nil
}

func execute(op string, entries []entry, order sortable.Order, byLength bool) ([]entry, error) {
	if byLength {
		return apply(op, entries, order, textLength)
	}

	return apply(op, entries, order, parsedValue)
}

func apply[K any](op string, entries []entry, order sortable.Order, key func(entry) K) ([]entry, error) {
	if op == opSort {
		return sortable.SortBy(entries, key, order)
	}

	pick := sortable.MaxBy[entry, K]
	if op == opMin {
		pick = sortable.MinBy[entry, K]
	}

	best, err := pick(entries, key)
	if err != nil {
		return nil, err
	}

	return []entry{best}, nil
}

func textLength(e entry) int {
	return utf8.RuneCountInString(e.raw)
}

func parsedValue(e entry) any {
	return e.value
}

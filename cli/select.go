// Package cli holds the interactive terminal helpers used by the commands.
package cli

import (
	"io"
	"strings"

	"github.com/amp-labs/amp-ordering/sortable"
	"github.com/manifoldco/promptui"
)

// Select asks the user to pick one of choices and returns it. Choices are
// listed in natural order and can be narrowed by typing a prefix.
func Select(label string, choices ...string) (string, error) {
	return SelectWith(nil, nil, label, choices...)
}

// SelectWith is Select with explicit terminal streams. Nil streams fall back
// to the process's stdin and stdout.
func SelectWith(stdin io.ReadCloser, stdout io.WriteCloser, label string, choices ...string) (string, error) {
	sel, err := newSelect(label, choices)
	if err != nil {
		return "", err
	}

	sel.Stdin = stdin
	sel.Stdout = stdout

	_, value, err := sel.Run()
	if err != nil {
		return "", err
	}

	return value, nil
}

func newSelect(label string, choices []string) (*promptui.Select, error) {
	natural := make([]sortable.Natural, len(choices))
	for i, c := range choices {
		natural[i] = sortable.Natural(c)
	}

	sorted, err := sortable.Sort(natural, sortable.Asc)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(sorted))
	for i, n := range sorted {
		names[i] = string(n)
	}

	return &promptui.Select{
		Label: label,
		Items: names,
		Size:  len(names),
		Searcher: func(input string, index int) bool {
			if len(input) == 0 {
				return true
			}

			return strings.HasPrefix(strings.ToLower(names[index]), strings.ToLower(input))
		},
	}, nil
}

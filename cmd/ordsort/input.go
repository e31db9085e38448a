package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	formatLines = "lines"
	formatYAML  = "yaml"
)

var errUnknownFormat = errors.New("unknown format")

// entry is one input value. raw is printed back verbatim; value is what the
// entry is ordered by. node is set for YAML input so output keeps its style.
type entry struct {
	raw   string
	value any
	node  *yaml.Node
}

// resolveFormat picks the input format: the flag if given, otherwise YAML
// for .yaml and .yml files and lines for everything else.
func resolveFormat(flag, name string) (string, error) {
	switch strings.ToLower(flag) {
	case formatLines:
		return formatLines, nil
	case formatYAML:
		return formatYAML, nil
	case "":
	default:
		return "", fmt.Errorf("%w: %q", errUnknownFormat, flag)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return formatLines, nil
	}
}

func readEntries(r io.Reader, format, kind string) ([]entry, error) {
	parse, err := parserFor(kind)
	if err != nil {
		return nil, err
	}

	if format == formatYAML {
		return readYAML(r, kind, parse)
	}

	return readLines(r, parse)
}

// readLines reads one entry per non-blank line.
func readLines(r io.Reader, parse parser) ([]entry, error) {
	var entries []entry

	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		value, err := parse(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		entries = append(entries, entry{raw: raw, value: value})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return entries, nil
}

// readYAML reads a YAML list of scalars. With kind auto each scalar keeps the
// type YAML gives it (int, float, string, bool, null).
func readYAML(r io.Reader, kind string, parse parser) ([]entry, error) {
	var doc yaml.Node

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %w", errBadInput, err)
	}

	list := &doc
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		list = doc.Content[0]
	}

	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a YAML list", errBadInput)
	}

	entries := make([]entry, 0, len(list.Content))

	for _, node := range list.Content {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: expected a scalar", errBadInput, node.Line)
		}

		var (
			value any
			err   error
		)

		if kind == kindAuto {
			err = node.Decode(&value)
		} else {
			value, err = parse(node.Value)
		}

		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		entries = append(entries, entry{raw: node.Value, value: value, node: node})
	}

	return entries, nil
}

func writeEntries(w io.Writer, format string, entries []entry) error {
	if format != formatYAML {
		for _, e := range entries {
			if _, err := fmt.Fprintln(w, e.raw); err != nil {
				return err
			}
		}

		return nil
	}

	list := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, e := range entries {
		list.Content = append(list.Content, e.node)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd

	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("writing yaml: %w", err)
	}

	return enc.Close()
}

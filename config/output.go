package config

import (
	"strings"

	"github.com/pkg/errors"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatSpew OutputFormat = "spew"
)

var outputFormats = []OutputFormat{FormatText, FormatYAML, FormatSpew}

var currentOutputFormat = FormatText

func SetOutputFormat(name string) error {
	for _, f := range outputFormats {
		if string(f) == strings.ToLower(name) {
			currentOutputFormat = f
			return nil
		}
	}
	return errors.Errorf("Unknown output format %q, use one of %v", name, ListOutputFormats())
}

func ListOutputFormats() []string {
	list := make([]string, 0, len(outputFormats))
	for _, f := range outputFormats {
		list = append(list, string(f))
	}
	return list
}

func GetOutputFormat() OutputFormat {
	return currentOutputFormat
}

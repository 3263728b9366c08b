// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

// render writes v in the given format. For text output each element of
// lines is written on its own line.
func render(w io.Writer, format types.OutputFormat, v any, lines []string) error {
	switch format {
	case types.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case types.OutputYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		for _, l := range lines {
			if _, err := fmt.Fprintln(w, l); err != nil {
				return err
			}
		}
		return nil
	}
}

// describeID is the one-line text form of an identifier record.
func describeID(id types.ArxivID) string {
	version := "latest"
	if !id.IsLatest() {
		version = fmt.Sprintf("v%d", id.Version)
	}
	return fmt.Sprintf("%s\tscheme=%s year=%d month=%02d number=%s version=%s",
		id, id.Scheme, id.Year, id.Month, id.Number, version)
}

// describeStamp is the one-line text form of a stamp record.
func describeStamp(st types.Stamp) string {
	return fmt.Sprintf("%s\tcategory=%s submitted=%s", describeID(st.ID), st.Category, st.Submitted)
}

// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export encodes lists of civil times as text, JSON, YAML or TOML.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"gonih.org/civil"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

var formats = []string{FormatText, FormatJSON, FormatYAML, FormatTOML}

// Formats returns the names of all supported formats.
func Formats() []string {
	return slices.Clone(formats)
}

// Supported reports whether format names a supported format.
func Supported(format string) bool {
	return slices.Contains(formats, format)
}

// A Record describes a single civil time.
type Record struct {
	Time    string `json:"time" yaml:"time" toml:"time"`
	Weekday string `json:"weekday" yaml:"weekday" toml:"weekday"`
	YearDay int    `json:"year_day" yaml:"year_day" toml:"year_day"`
}

// NewRecord returns the Record of v. The time is formatted using layout, or
// the default layout of v's alignment if layout is empty.
func NewRecord(v civil.Value, layout string) Record {
	s := v.String()
	if layout != "" {
		s = v.Format(layout)
	}
	return Record{
		Time:    s,
		Weekday: v.Weekday().String(),
		YearDay: v.YearDay(),
	}
}

// document is the top-level TOML table, as TOML can not encode a bare array.
type document struct {
	Values []Record `toml:"values"`
}

// Write encodes records to w in the given format. The text format writes one
// time per line.
func Write(w io.Writer, format string, records []Record) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatText:
		bw := bufio.NewWriter(w)
		for _, r := range records {
			bw.WriteString(r.Time)
			bw.WriteByte('\n')
		}
		return bw.Flush()
	case FormatJSON:
		if records == nil {
			records = []Record{}
		}
		data, err = json.MarshalIndent(records, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(records)
	case FormatTOML:
		data, err = toml.Marshal(document{Values: records})
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

// Read decodes records written by Write. Records read from the text format
// only have their Time set.
func Read(r io.Reader, format string) ([]Record, error) {
	if !Supported(format) {
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var records []Record
	switch format {
	case FormatText:
		for line := range strings.Lines(string(data)) {
			if line = strings.TrimSuffix(line, "\n"); line != "" {
				records = append(records, Record{Time: line})
			}
		}
		return records, nil
	case FormatJSON:
		err = json.Unmarshal(data, &records)
	case FormatYAML:
		err = yaml.Unmarshal(data, &records)
	case FormatTOML:
		var doc document
		err = toml.Unmarshal(data, &doc)
		records = doc.Values
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	return records, nil
}

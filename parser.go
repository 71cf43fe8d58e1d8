// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/cybrota/courseplanner/catalog"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	fieldDelimiter = ","
	maxLineLength  = 1024 * 1024
	byteOrderMark  = "\ufeff"
)

// ParseOptions controls how raw fields become course IDs.
type ParseOptions struct {
	// FoldCase upper-cases course IDs and prerequisite references.
	FoldCase bool
}

// Record is a parsed course together with the line it came from.
type Record struct {
	Line int
	catalog.Course
}

type courseRecord struct {
	ID    string `validate:"required"`
	Title string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// newIDFolder returns the function applied to every course ID. The caser is
// stateful, so each parse or planner gets its own.
func newIDFolder(fold bool) func(string) string {
	if !fold {
		return func(s string) string { return s }
	}
	caser := cases.Upper(language.Und)
	return func(s string) string { return caser.String(s) }
}

// ParseCourses reads "id,title[,prerequisite]*" lines from r. Blank lines are
// skipped. Lines without both an ID and a title are reported as
// DiagnosticMalformed and skipped. Only a read failure returns an error.
func ParseCourses(r io.Reader, opts ParseOptions) ([]Record, []Diagnostic, error) {
	foldID := newIDFolder(opts.FoldCase)

	var records []Record
	var diagnostics []Diagnostic

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, fieldDelimiter)
		if len(fields) < 2 {
			diagnostics = append(diagnostics, Diagnostic{
				Line:   lineNo,
				Kind:   DiagnosticMalformed,
				Reason: "missing course number or title",
			})
			continue
		}

		rec := courseRecord{
			ID:    foldID(strings.TrimSpace(fields[0])),
			Title: strings.TrimSpace(fields[1]),
		}
		if err := validate.Struct(rec); err != nil {
			diagnostics = append(diagnostics, Diagnostic{
				Line:   lineNo,
				Kind:   DiagnosticMalformed,
				Course: rec.ID,
				Reason: malformedReason(err),
			})
			continue
		}

		var prerequisites []string
		for _, field := range fields[2:] {
			ref := strings.TrimSpace(field)
			if ref == "" {
				continue
			}
			prerequisites = append(prerequisites, foldID(ref))
		}

		records = append(records, Record{
			Line: lineNo,
			Course: catalog.Course{
				ID:            rec.ID,
				Title:         rec.Title,
				Prerequisites: prerequisites,
			},
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return records, diagnostics, nil
}

func malformedReason(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	switch verrs[0].Field() {
	case "ID":
		return "missing course number"
	case "Title":
		return "missing course title"
	default:
		return "invalid field " + verrs[0].Field()
	}
}

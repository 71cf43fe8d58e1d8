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
	"errors"
	"fmt"
)

var (
	ErrNoPath         = errors.New("no file name provided")
	ErrEmptyInput     = errors.New("no valid course rows found")
	ErrNotLoaded      = errors.New("no course data loaded")
	ErrNoID           = errors.New("no course number entered")
	ErrCourseNotFound = errors.New("course not found")
)

// DiagnosticKind classifies a non-fatal problem found while loading.
type DiagnosticKind int

const (
	DiagnosticMalformed DiagnosticKind = iota
	DiagnosticUnresolved
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticMalformed:
		return "malformed record"
	case DiagnosticUnresolved:
		return "unresolved prerequisite"
	default:
		return "unknown"
	}
}

// Diagnostic is reported to the user but never stops a load.
type Diagnostic struct {
	Line   int // 1-based source line, 0 when not tied to a line
	Kind   DiagnosticKind
	Course string // course the problem belongs to, if known
	Ref    string // missing prerequisite ID for DiagnosticUnresolved
	Reason string
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagnosticMalformed:
		return fmt.Sprintf("line %d: %s", d.Line, d.Reason)
	case DiagnosticUnresolved:
		return fmt.Sprintf("prerequisite '%s' referenced by %s not found in file", d.Ref, d.Course)
	default:
		return d.Reason
	}
}

// LoadReport summarises one load.
type LoadReport struct {
	Source      string
	Loaded      int
	Diagnostics []Diagnostic
}

// Count returns how many diagnostics of the given kind were reported.
func (r *LoadReport) Count(kind DiagnosticKind) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

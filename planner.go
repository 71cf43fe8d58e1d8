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
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/cybrota/courseplanner/catalog"
	"github.com/patrickmn/go-cache"
	"github.com/sahilm/fuzzy"
	"github.com/schollz/progressbar/v3"
)

// Prerequisite is one prerequisite reference resolved against the catalog.
type Prerequisite struct {
	ID    string
	Title string
	Found bool
}

// CourseDetail is a course plus its prerequisites, in the order listed.
type CourseDetail struct {
	catalog.Course
	Prerequisites []Prerequisite
}

// Planner is one session over a course catalog: the tree, whether a load has
// succeeded, and where the data came from. It is not safe for concurrent use.
type Planner struct {
	tree    *catalog.Tree
	loaded  bool
	source  string
	config  *Config
	details *cache.Cache
	foldID  func(string) string

	// progressOut receives the load progress bar; nil disables it.
	progressOut io.Writer
}

func NewPlanner(config *Config) *Planner {
	if config == nil {
		config = defaultConfig()
	}
	p := &Planner{
		tree:    catalog.New(),
		config:  config,
		details: NewDetailCache(config.CacheExpiration()),
		foldID:  newIDFolder(config.Catalog.FoldCase),
	}
	if config.Load.ShowProgress {
		p.progressOut = os.Stderr
	}
	return p
}

func (p *Planner) Loaded() bool   { return p.loaded }
func (p *Planner) Source() string { return p.source }
func (p *Planner) Len() int       { return p.tree.Len() }

// Load replaces the catalog with the courses in the file at path. A file that
// cannot be opened or read leaves the current catalog untouched.
func (p *Planner) Load(path string) (*LoadReport, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoPath
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("course file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("couldn't open course file %s: %w", path, err)
	}
	defer file.Close()

	var r io.Reader = file
	if p.progressOut != nil {
		if stat, err := file.Stat(); err == nil && stat.Size() > 0 {
			bar := progressbar.NewOptions64(stat.Size(),
				progressbar.OptionSetWriter(p.progressOut),
				progressbar.OptionSetDescription("📚 Loading courses..."),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowBytes(true),
				progressbar.OptionSetRenderBlankState(true),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "█",
					SaucerHead:    "█",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionClearOnFinish(),
			)
			defer bar.Finish()
			r = io.TeeReader(file, bar)
		}
	}

	return p.LoadFrom(r, path)
}

// LoadFrom parses r completely, then resets the catalog and inserts every
// valid course in input order. With no valid rows the catalog is left empty
// and ErrEmptyInput is returned alongside the report.
func (p *Planner) LoadFrom(r io.Reader, source string) (*LoadReport, error) {
	records, diagnostics, err := ParseCourses(r, ParseOptions{FoldCase: p.config.Catalog.FoldCase})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	report := &LoadReport{Source: source, Diagnostics: diagnostics}

	p.reset()
	if len(records) == 0 {
		return report, fmt.Errorf("%s: %w", source, ErrEmptyInput)
	}

	for _, rec := range records {
		p.tree.Insert(rec.Course)
	}
	report.Loaded = len(records)
	report.Diagnostics = append(report.Diagnostics, unresolvedPrerequisites(records, p.tree)...)

	p.loaded = true
	p.source = source
	return report, nil
}

func (p *Planner) reset() {
	p.tree.Reset()
	p.loaded = false
	p.source = ""
	p.details.Flush()
}

// Courses yields every course in ascending ID order; nothing when no data
// is loaded.
func (p *Planner) Courses() iter.Seq[catalog.Course] {
	return p.tree.All()
}

func (p *Planner) List() ([]catalog.Course, error) {
	if !p.loaded {
		return nil, ErrNotLoaded
	}
	return slices.Collect(p.tree.All()), nil
}

// ListPrefix returns the courses whose ID starts with prefix, e.g. a
// department code.
func (p *Planner) ListPrefix(prefix string) ([]catalog.Course, error) {
	if !p.loaded {
		return nil, ErrNotLoaded
	}
	return p.tree.Prefix(p.normalize(prefix)), nil
}

func (p *Planner) normalize(id string) string {
	return p.foldID(strings.TrimSpace(id))
}

// Lookup finds a course and resolves each prerequisite's title.
func (p *Planner) Lookup(id string) (*CourseDetail, error) {
	if !p.loaded {
		return nil, ErrNotLoaded
	}
	key := p.normalize(id)
	if key == "" {
		return nil, ErrNoID
	}

	course, ok := p.tree.Search(key)
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrCourseNotFound)
	}

	return p.Resolve(course), nil
}

// Resolve looks up the titles of the prerequisites of a course that is
// already in hand, such as a row taken from a listing. Unlike Lookup it
// works for every copy of a duplicated ID.
func (p *Planner) Resolve(course catalog.Course) *CourseDetail {
	detail := &CourseDetail{Course: course}
	for _, ref := range course.Prerequisites {
		prereq := Prerequisite{ID: ref}
		if found, ok := p.tree.Search(ref); ok {
			prereq.Title = found.Title
			prereq.Found = true
		}
		detail.Prerequisites = append(detail.Prerequisites, prereq)
	}
	return detail
}

// Detail returns the rendered detail text for id, caching it until the next
// load.
func (p *Planner) Detail(id string) (string, error) {
	key := p.normalize(id)
	if p.loaded {
		if page := GetDetail(p.details, key); page != "" {
			return page, nil
		}
	}

	detail, err := p.Lookup(key)
	if err != nil {
		return "", err
	}
	page := FormatCourseDetail(detail)
	CacheDetail(p.details, key, page)
	return page, nil
}

// Suggest returns up to n loaded course IDs that fuzzily match id, best
// match first.
func (p *Planner) Suggest(id string, n int) []string {
	pattern := p.normalize(id)
	if !p.loaded || pattern == "" || n <= 0 {
		return nil
	}

	var known []string
	for c := range p.tree.All() {
		if len(known) > 0 && known[len(known)-1] == c.ID {
			continue // shadowed duplicate
		}
		known = append(known, c.ID)
	}

	matches := fuzzy.Find(pattern, known)
	suggestions := make([]string, 0, min(n, len(matches)))
	for _, m := range matches {
		if len(suggestions) == n {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

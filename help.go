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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Course Planner %s**

Load a course catalog from a comma separated file, list it in alphanumeric order
and look up any course together with the titles of its prerequisites.

Built with Go %s

# 1. File format
* One course per line: *course number, title, prerequisite, prerequisite, ...*
* No header row and no quoting. Blank lines are ignored
* Lines with fewer than two fields are reported and skipped
* Prerequisites that are not in the file are reported as warnings

# 2. Commands
* **courseplanner** or **courseplanner menu**: numbered menu (1 load, 2 list, 3 show, 9 exit)
* **courseplanner browse --file courses.csv**: filterable terminal UI
* **courseplanner list --file courses.csv --prefix CSCI**: print the catalog
* **courseplanner show --file courses.csv CSCI300**: print one course
* **courseplanner settings**: show or create ~/.courseplanner.yaml

# 3. Menu tips
* Options take their argument on the same line: *1 "fall courses.csv"* or *3 csci200*
* Option 2 accepts a course number prefix: *2 MATH*
* Unquoted paths are taken as typed. Inside double quotes a backslash escapes the next character, so quote Windows paths with single quotes

# Please be aware
* Copy to clipboard in the browser on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

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
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	asciiLogo := `
 ██████╗ ██████╗ ██╗   ██╗██████╗ ███████╗███████╗███████╗
██╔════╝██╔═══██╗██║   ██║██╔══██╗██╔════╝██╔════╝██╔════╝
██║     ██║   ██║██║   ██║██████╔╝███████╗█████╗  ███████╗
██║     ██║   ██║██║   ██║██╔══██╗╚════██║██╔══╝  ╚════██║
╚██████╗╚██████╔╝╚██████╔╝██║  ██║███████║███████╗███████║
 ╚═════╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝
Course catalog loader with ordered listing and prerequisite lookup [Version: %s%s%s]

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var (
		courseFile string
		verbose    bool
	)

	// newSession loads the configuration and, when a file is given either by
	// flag or by catalog.default_file, loads it into a fresh planner.
	newSession := func(required bool) *Planner {
		config, err := LoadConfig()
		if err != nil {
			log.Printf("Failed to load configuration: %v. Using default settings.", err)
		}

		planner := NewPlanner(config)

		path := courseFile
		if path == "" {
			path = config.Catalog.DefaultFile
		}
		if path == "" {
			if required {
				log.Fatalf("No course file given. Use --file or set catalog.default_file in %s", configFileName)
			}
			return planner
		}

		start := time.Now()
		report, err := planner.Load(path)
		writeDiagnostics(os.Stderr, report)
		if err != nil {
			if required {
				log.Fatalf("Error loading courses: %v", err)
			}
			log.Printf("Error loading courses: %v", err)
			return planner
		}
		if verbose {
			log.Printf("Loaded %d course(s) from %s in %v (tree height %d)",
				report.Loaded, path, time.Since(start), planner.tree.Height())
		}
		return planner
	}

	runMenu := func(cmd *cobra.Command, args []string) {
		menu := NewMenu(newSession(false), os.Stdin, os.Stdout, os.Stderr)
		if err := menu.Run(); err != nil {
			log.Fatalf("Error reading input: %v", err)
		}
	}

	var cmdMenu = &cobra.Command{
		Use:   "menu",
		Short: "Launches the numbered course planner menu",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Menu lets you load a course file, list the catalog and look up courses`),
		Args:  cobra.NoArgs,
		Run:   runMenu,
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Browse the course catalog in a terminal UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Browse opens a filterable course list with prerequisite details`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runBrowseApp(newSession(true)); err != nil {
				log.Fatalf("Error running browser: %v", err)
			}
		},
	}

	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "Print the course list in alphanumeric order",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `List prints every course, or those whose number starts with --prefix`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			planner := newSession(true)
			courses, err := planner.ListPrefix(cmd.Flag("prefix").Value.String())
			if err != nil {
				log.Fatalf("Error listing courses: %v", err)
			}
			printCourses(os.Stdout, courses)
		},
	}
	cmdList.Flags().String("prefix", "", "only list course numbers starting with this prefix")

	var cmdShow = &cobra.Command{
		Use:   "show COURSE",
		Short: "Print a course with its prerequisites",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Show prints the course title and the titles of its prerequisites`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			planner := newSession(true)
			page, err := planner.Detail(args[0])
			if errors.Is(err, ErrCourseNotFound) {
				fmt.Fprintf(os.Stderr, "%sCourse not found.%s\n", Error, Reset)
				if alt := planner.Suggest(args[0], planner.config.Display.Suggestions); len(alt) > 0 {
					fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", strings.Join(alt, ", "))
				}
				os.Exit(1)
			}
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			fmt.Print(page)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings displays the configuration file location and current values`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Course Planner usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the courseplanner CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Course Planner version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "courseplanner",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.NoArgs,
		// Default to the menu when no subcommand is provided
		Run: runMenu,
	}
	rootCmd.PersistentFlags().StringVarP(&courseFile, "file", "f", "", "course file to load (comma separated)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log load timing")

	rootCmd.AddCommand(cmdMenu, cmdBrowse, cmdList, cmdShow, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

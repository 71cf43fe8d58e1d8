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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".courseplanner.yaml"

type CatalogConfig struct {
	DefaultFile string `yaml:"default_file"`
	FoldCase    bool   `yaml:"fold_case"`
}

type LoaderConfig struct {
	ShowProgress bool `yaml:"show_progress"`
}

type DisplayConfig struct {
	Suggestions  int `yaml:"suggestions" validate:"min=0,max=10"`
	CacheMinutes int `yaml:"cache_minutes" validate:"min=1,max=1440"`
}

type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Load    LoaderConfig  `yaml:"load"`
	Display DisplayConfig `yaml:"display"`
}

func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			DefaultFile: "",
			FoldCase:    true,
		},
		Load: LoaderConfig{
			ShowProgress: true,
		},
		Display: DisplayConfig{
			Suggestions:  3,
			CacheMinutes: 30,
		},
	}
}

// CacheExpiration is how long a rendered course detail stays cached.
func (c *Config) CacheExpiration() time.Duration {
	return time.Duration(c.Display.CacheMinutes) * time.Minute
}

// LoadConfig reads ~/.courseplanner.yaml. A missing file or home directory
// yields the defaults without an error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom overlays the file at configPath on the defaults. When the
// file cannot be parsed or fails validation the defaults are returned along
// with the reason.
func loadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return defaultConfig(), fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaultConfig(), fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	if err := validate.Struct(config); err != nil {
		return defaultConfig(), fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("⚠️  %v. Using default settings.\n\n", err)
	}

	fmt.Printf("🔧 Course Planner Configuration Settings\n")
	fmt.Printf("═════════════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	defaultFile := config.Catalog.DefaultFile
	if defaultFile == "" {
		defaultFile = "(none)"
	}

	fmt.Printf("📚 %sCatalog:%s\n", Green, Reset)
	fmt.Printf("  • %sdefault_file%s: %s\n", Green, Reset, defaultFile)
	fmt.Printf("  • %sfold_case%s: %t\n", Green, Reset, config.Catalog.FoldCase)
	if config.Catalog.FoldCase {
		fmt.Printf("    Course numbers are upper-cased when loaded and when looked up\n\n")
	} else {
		fmt.Printf("    Course numbers are matched exactly as written\n\n")
	}

	fmt.Printf("📥 %sLoad:%s\n", Green, Reset)
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, config.Load.ShowProgress)

	fmt.Printf("🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %ssuggestions%s: %d\n", Green, Reset, config.Display.Suggestions)
	fmt.Printf("  • %scache_minutes%s: %d\n\n", Green, Reset, config.Display.CacheMinutes)

	fmt.Printf("💡 To preload a catalog, edit %s:\n", configPath)
	fmt.Printf("   catalog:\n     default_file: /path/to/courses.csv\n")
}

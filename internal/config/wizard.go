package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .refview.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to refview! Let's configure your viewer.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Document source.
	sourcePrompt := promptui.Prompt{
		Label:    "Document endpoint (URL or local JSON file)",
		Validate: validateSource,
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}

	// 2. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: defaults.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("port must be 1-65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 4. Default view mode.
	modePrompt := promptui.Select{
		Label: "Default view mode",
		Items: []string{
			"user — public members only",
			"dev  — include protected members and dev notes",
		},
	}
	modeIdx, _, err := modePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("mode selection: %w", err)
	}
	mode := []string{"user", "dev"}[modeIdx]

	cfg := &Config{
		Source:              strings.TrimSpace(source),
		Title:               title,
		Port:                port,
		Mode:                mode,
		FetchTimeoutSeconds: defaults.FetchTimeoutSeconds,
	}

	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)
	return cfg, nil
}

// validateSource accepts an http(s) URL or a path to an existing file.
func validateSource(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("source is required")
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		if _, err := url.Parse(s); err != nil {
			return fmt.Errorf("invalid URL")
		}
		return nil
	}
	if _, err := os.Stat(s); err != nil {
		return fmt.Errorf("file not found: %s", s)
	}
	return nil
}

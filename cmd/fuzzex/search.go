package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/coregx/fuzzex"
)

var (
	searchMaxErrors    int
	searchPatternsPath string
	searchJSON         bool
	searchCount        bool
	searchShowRegions  bool
	searchColor        string
)

var searchCmd = &cobra.Command{
	Use:   "search [pattern] [file]",
	Short: "Search text for approximate pattern occurrences",
	Long: `Search a file (or stdin) for approximate occurrences of a pattern.

The pattern matches with at most --max-errors single-character insertions,
deletions, or substitutions. Multiple patterns with individual budgets can be
given via a --patterns YAML file instead of the positional pattern:

    patterns:
      - pattern: recieve
        max-errors: 1
      - pattern: accomodate
        max-errors: 2

With --patterns the positional argument, if any, is the input file.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchMaxErrors, "max-errors", "e", 0, "Maximum edits allowed per match")
	searchCmd.Flags().StringVar(&searchPatternsPath, "patterns", "", "Path to YAML file of patterns with per-pattern budgets")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output matches as JSON")
	searchCmd.Flags().BoolVarP(&searchCount, "count", "c", false, "Output only the match count per pattern")
	searchCmd.Flags().BoolVar(&searchShowRegions, "regions", false, "Also output the candidate regions from the filtering pass")
	searchCmd.Flags().StringVar(&searchColor, "color", "auto", "Color output: auto, always, never")
}

// patternsFile is the on-disk format accepted by --patterns.
type patternsFile struct {
	Patterns []patternEntry `yaml:"patterns"`
}

type patternEntry struct {
	Pattern   string `yaml:"pattern"`
	MaxErrors int    `yaml:"max-errors"`
}

// searchStyles holds the color formatters for human output.
type searchStyles struct {
	pattern  *color.Color
	match    *color.Color
	metadata *color.Color
}

func newSearchStyles(enabled bool) *searchStyles {
	s := &searchStyles{
		pattern:  color.New(color.Bold, color.FgHiBlue),
		match:    color.New(color.FgYellow),
		metadata: color.New(color.FgHiGreen),
	}
	if !enabled {
		s.pattern.DisableColor()
		s.match.DisableColor()
		s.metadata.DisableColor()
	}
	return s
}

func colorEnabled() bool {
	switch searchColor {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	configs, textArg, err := resolvePatterns(args)
	if err != nil {
		return err
	}

	text, err := readInput(textArg)
	if err != nil {
		return err
	}

	set, err := fuzzex.CompileAll(configs)
	if err != nil {
		return err
	}
	result := set.Search(text)

	total := 0
	for _, matches := range result.Matches {
		total += len(matches)
	}
	if total == 0 {
		exitStatus = exitNoMatch
	}
	if quiet {
		return nil
	}

	out := cmd.OutOrStdout()
	switch {
	case searchJSON:
		return writeJSON(out, configs, text, result)
	case searchCount:
		for i, cfg := range configs {
			fmt.Fprintf(out, "%s\t%d\n", cfg.Pattern, len(result.Matches[i]))
		}
	default:
		writeHuman(out, configs, text, result)
	}
	return nil
}

// resolvePatterns turns the positional args and flags into pattern configs
// plus the input path ("" means stdin).
func resolvePatterns(args []string) ([]fuzzex.PatternConfig, string, error) {
	if searchPatternsPath != "" {
		data, err := os.ReadFile(searchPatternsPath)
		if err != nil {
			return nil, "", fmt.Errorf("reading patterns file: %w", err)
		}
		var pf patternsFile
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, "", fmt.Errorf("parsing patterns file: %w", err)
		}
		if len(pf.Patterns) == 0 {
			return nil, "", fmt.Errorf("patterns file %s contains no patterns", searchPatternsPath)
		}
		configs := make([]fuzzex.PatternConfig, len(pf.Patterns))
		for i, entry := range pf.Patterns {
			configs[i] = fuzzex.PatternConfig{
				Pattern:   []byte(entry.Pattern),
				MaxErrors: entry.MaxErrors,
			}
		}
		textArg := ""
		if len(args) > 0 {
			textArg = args[0]
		}
		return configs, textArg, nil
	}

	if len(args) == 0 {
		return nil, "", fmt.Errorf("a pattern argument or --patterns file is required")
	}
	configs := []fuzzex.PatternConfig{{
		Pattern:   []byte(args[0]),
		MaxErrors: searchMaxErrors,
	}}
	textArg := ""
	if len(args) == 2 {
		textArg = args[1]
	}
	return configs, textArg, nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

type jsonMatch struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Errors int    `json:"errors"`
	Text   string `json:"text"`
}

type jsonPattern struct {
	Pattern string      `json:"pattern"`
	Matches []jsonMatch `json:"matches"`
}

type jsonRegion struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type jsonOutput struct {
	Patterns []jsonPattern `json:"patterns"`
	Regions  []jsonRegion  `json:"regions,omitempty"`
}

func writeJSON(out io.Writer, configs []fuzzex.PatternConfig, text []byte, result *fuzzex.Result) error {
	output := jsonOutput{Patterns: make([]jsonPattern, len(configs))}
	for i, cfg := range configs {
		jp := jsonPattern{Pattern: string(cfg.Pattern), Matches: []jsonMatch{}}
		for _, m := range result.Matches[i] {
			jp.Matches = append(jp.Matches, jsonMatch{
				Start:  m.Start,
				End:    m.End,
				Errors: m.Errors,
				Text:   string(text[m.Start:m.End]),
			})
		}
		output.Patterns[i] = jp
	}
	if searchShowRegions {
		output.Regions = make([]jsonRegion, 0, len(result.Regions))
		for _, r := range result.Regions {
			output.Regions = append(output.Regions, jsonRegion{Start: r.Start, End: r.End})
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// contextBytes is how much surrounding text human output shows per side.
const contextBytes = 20

func writeHuman(out io.Writer, configs []fuzzex.PatternConfig, text []byte, result *fuzzex.Result) {
	s := newSearchStyles(colorEnabled())
	for i, cfg := range configs {
		for _, m := range result.Matches[i] {
			before, matched, after := snippet(text, m.Start, m.End)
			fmt.Fprintf(out, "%s %s %s%s%s\n",
				s.pattern.Sprintf("%s:", cfg.Pattern),
				s.metadata.Sprintf("[%d:%d] errors=%d", m.Start, m.End, m.Errors),
				before, s.match.Sprint(matched), after)
		}
	}
	if searchShowRegions {
		for _, r := range result.Regions {
			fmt.Fprintf(out, "%s\n", s.metadata.Sprintf("region [%d:%d]", r.Start, r.End))
		}
	}
}

// snippet returns the matched text with up to contextBytes of surrounding
// context on each side, truncation marked with ellipses.
func snippet(text []byte, start, end int) (before, matched, after string) {
	lo := start - contextBytes
	if lo < 0 {
		lo = 0
	}
	hi := end + contextBytes
	if hi > len(text) {
		hi = len(text)
	}
	before = string(text[lo:start])
	if lo > 0 {
		before = "..." + before
	}
	after = string(text[end:hi])
	if hi < len(text) {
		after = after + "..."
	}
	return before, string(text[start:end]), after
}

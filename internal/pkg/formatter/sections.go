package formatter

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode"

	"github.com/futig/resignation-backend/internal/entity"
)

// line is one rendered entry; depth 0 lines are plain text, deeper lines
// are bullets.
type line struct {
	depth int
	text  string
}

type section struct {
	title string
	lines []line
}

// buildSections orders known checklist keys first, then any extra keys
// alphabetically, so every format renders the same layout.
func buildSections(checklist entity.ContractChecklist) []section {
	keys := make([]string, 0, len(checklist))
	for _, k := range entity.ChecklistKeys {
		if _, ok := checklist[k]; ok {
			keys = append(keys, k)
		}
	}

	var extra []string
	for k := range checklist {
		if !slices.Contains(entity.ChecklistKeys, k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	keys = append(keys, extra...)

	sections := make([]section, 0, len(keys))
	for _, k := range keys {
		sections = append(sections, section{
			title: humanize(k),
			lines: valueLines(checklist[k], 0),
		})
	}
	return sections
}

func valueLines(v any, depth int) []line {
	switch val := v.(type) {
	case nil:
		return []line{{depth: depth, text: "-"}}
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		lines := make([]line, 0, len(keys))
		for _, k := range keys {
			switch inner := val[k].(type) {
			case map[string]any, []any:
				lines = append(lines, line{depth: depth + 1, text: humanize(k) + ":"})
				lines = append(lines, valueLines(inner, depth+1)...)
			default:
				lines = append(lines, line{depth: depth + 1, text: humanize(k) + ": " + scalar(inner)})
			}
		}
		return lines
	case []any:
		if len(val) == 0 {
			return []line{{depth: depth, text: "-"}}
		}
		lines := make([]line, 0, len(val))
		for _, item := range val {
			switch inner := item.(type) {
			case map[string]any, []any:
				lines = append(lines, valueLines(inner, depth+1)...)
			default:
				lines = append(lines, line{depth: depth + 1, text: scalar(inner)})
			}
		}
		return lines
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return valueLines(items, depth)
	default:
		return []line{{depth: depth, text: scalar(val)}}
	}
}

func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		if val == "" {
			return "-"
		}
		return val
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case float64, int, json.Number:
		return fmt.Sprint(val)
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(raw)
	}
}

func humanize(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

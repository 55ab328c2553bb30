package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

func applyTheme(form map[string]any, cfg *theme.RendererConfig) {
	if cfg == nil {
		return
	}
	if name := strings.TrimSpace(cfg.Theme); name != "" {
		form["theme"] = name
	}
	if variant := strings.TrimSpace(cfg.Variant); variant != "" {
		form["variant"] = variant
	}
	if style := inlineCSSVars(cfg.CSSVars); style != "" {
		form["style"] = style
	}
}

// inlineCSSVars serialises custom properties for a style attribute. Keys
// without the leading "--" are skipped.
func inlineCSSVars(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if strings.HasPrefix(strings.TrimSpace(key), "--") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := strings.TrimSpace(vars[key])
		if value == "" || strings.ContainsAny(value, ";{}") {
			continue
		}
		parts = append(parts, strings.TrimSpace(key)+": "+value)
	}
	return strings.Join(parts, "; ")
}

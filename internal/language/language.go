package language

import (
	"strings"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName renders a detected ISO language code ("en", "pt-BR") as a
// human-readable English name for listings. Unrecognized codes pass through
// unchanged; empty or "unknown" input reads as "Unknown".
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || strings.EqualFold(code, "unknown") {
		return "Unknown"
	}
	tag, err := xlang.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return code
	}
	return name
}

// Package textcase converts identifiers between CamelCase and snake_case.
package textcase

import (
	"regexp"
	"strings"
)

var (
	namespacePattern = regexp.MustCompile(`(:|/)(.?)`)
	separatorPattern = regexp.MustCompile(`(?:_+|-+)([a-z])`)
	wordStartPattern = regexp.MustCompile(`(\A|\s)([a-z])`)

	acronymPattern = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	boundPattern   = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// Camel converts a snake_case, kebab-case, or path-like identifier to CamelCase.
// Path separators ('/' and ':') become "::" namespace separators.
//
//	Camel("app/text_tools") == "App::TextTools"
func Camel(s string) string {
	s = replaceSubmatch(namespacePattern, s, func(groups []string) string {
		return "::" + strings.ToUpper(groups[2])
	})
	s = replaceSubmatch(separatorPattern, s, func(groups []string) string {
		return strings.ToUpper(groups[1])
	})
	return replaceSubmatch(wordStartPattern, s, func(groups []string) string {
		return groups[1] + strings.ToUpper(groups[2])
	})
}

// Snake converts a CamelCase identifier to snake_case.
// Namespace separators ("::") are collapsed to ':'.
//
//	Snake("HTTPServer") == "http_server"
func Snake(s string) string {
	s = strings.ReplaceAll(s, "::", ":")
	s = acronymPattern.ReplaceAllString(s, "${1}_${2}")
	s = boundPattern.ReplaceAllString(s, "${1}_${2}")
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ToLower(s)
}

// Kebab converts an identifier to the hyphenated form used for long flag names.
func Kebab(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

func replaceSubmatch(pattern *regexp.Regexp, s string, repl func(groups []string) string) string {
	return pattern.ReplaceAllStringFunc(s, func(match string) string {
		return repl(pattern.FindStringSubmatch(match))
	})
}

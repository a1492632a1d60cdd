package task

import (
	"sort"
	"strings"
)

// tagRules maps trigger keywords to the category tag they produce. Every rule
// whose keywords appear in the task fires; the result is the union.
var tagRules = []struct {
	keywords []string
	tag      string
}{
	{[]string{"file", "create", "delete"}, "file_operations"},
	{[]string{"git", "commit", "push"}, "git"},
	{[]string{"search", "find"}, "search"},
	{[]string{"code", "generate", "function"}, "code_generation"},
	{[]string{"hello", "greet"}, "greeting"},
}

// ExtractTags returns the set of category tags for a task description.
// Matching is case-insensitive substring matching; the result is sorted,
// duplicate-free and empty (never nil) when nothing matches.
func ExtractTags(task string) []string {
	lower := strings.ToLower(task)
	tags := []string{}
	for _, rule := range tagRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}
	sort.Strings(tags)
	return tags
}

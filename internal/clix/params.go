package clix

import (
	"strings"

	"github.com/spf13/pflag"
)

// PaginationParams are shared list-command parameters.
type PaginationParams struct {
	Limit  int
	Offset int
}

// ParsePagination reads --limit/--offset with sane floors.
func ParsePagination(flags *pflag.FlagSet) PaginationParams {
	limit, _ := flags.GetInt("limit")
	offset, _ := flags.GetInt("offset")
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return PaginationParams{Limit: limit, Offset: offset}
}

// ParseTags reads a comma-separated --tags flag into a trimmed,
// empty-free slice.
func ParseTags(flags *pflag.FlagSet) []string {
	tagsStr, _ := flags.GetString("tags")
	return SplitTags(tagsStr)
}

// SplitTags splits a comma-separated tag list, trimming whitespace and
// dropping empties.
func SplitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Fetcher is the outbound side of every tool operation: one GET against the
// WDS API with the given query parameters.
type Fetcher interface {
	Fetch(ctx context.Context, params map[string]string) (gjson.Result, error)
}

// stringSliceArgument coerces a JSON array argument into a []string, trimming
// whitespace and dropping empty entries. A bare string counts as a one-element
// list. Any other shape is an input error.
func stringSliceArgument(args map[string]any, key string) ([]string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be a list of strings", key)
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil, nil
		}
		return out, nil
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}, nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("%s must be a list of strings", key)
	}
}

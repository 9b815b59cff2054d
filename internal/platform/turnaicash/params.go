package turnaicash

import "net/url"

// Params converts a filter map to query parameters, skipping empty values.
// The same map feeds the cache key, so a filter either shows up in both the
// request and the key or in neither.
func Params(filters map[string]string) url.Values {
	if len(filters) == 0 {
		return nil
	}
	values := url.Values{}
	for k, v := range filters {
		if v != "" {
			values.Set(k, v)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

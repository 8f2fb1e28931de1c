package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	purifyPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// UGCPolicy keeps common formatting markup and links and drops
		// scripts, styles, event handlers and unsafe URLs.
		purifyPolicy = bluemonday.UGCPolicy()
	})
}

// Purify removes unsafe markup while keeping a safe subset of HTML such as
// <b>, <i>, <p>, lists and links. <script> and <style> elements are removed
// along with their content. The result is deterministic.
func Purify(s string) string {
	initPolicies()
	return purifyPolicy.Sanitize(s)
}

// PurifyWith applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func PurifyWith(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}

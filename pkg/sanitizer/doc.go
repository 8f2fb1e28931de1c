// Package sanitizer provides the string transformations applied to untrusted
// request input before it is validated or stored.
//
//   - Trim and NormalizeWhitespace tidy whitespace.
//   - EscapeHTML entity-encodes special characters for literal display.
//   - StripHTML removes all tags and keeps the text.
//   - Purify keeps a safe subset of HTML using a bluemonday policy; PurifyWith
//     accepts a custom policy.
//
// The higher-order Apply and Compose helpers build pipelines from these
// functions:
//
//	clean := sanitizer.Compose(
//	    sanitizer.StripHTML,
//	    sanitizer.Trim,
//	)
//
//	safe := clean("  <b>Bob</b> ") // "Bob"
//
// None of the helpers returns an error, and all of them are safe for
// concurrent use.
package sanitizer

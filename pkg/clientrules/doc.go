// Package clientrules turns the validators of a schema into client-side
// rules for the jQuery Validation plugin, so that browsers can check a form
// with the same schema the server validates it with.
//
//	adapter := clientrules.NewJQueryAdapter(translator)
//	out, err := adapter.JSON(s)
//	// {"rules":{"email":{"required":true,"email":true}},"messages":{}}
//
// Validators declared with domain "server" stay on the server. The array
// validator has no client counterpart and is left out.
package clientrules

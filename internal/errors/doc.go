// Package errors provides structured, coded errors for crel.
//
// Every failure the library and its tooling can report has a code (e.g.
// "E001") registered with a category, a short message and a longer
// explanation. Errors are created from the registry and decorated with
// context:
//
//	err := errors.New("E001").
//	    WithDetail("got int").
//	    WithSuggestion("Convert the value to a string before passing it as a child")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Unsupported node type
//	//
//	//   got int
//	//
//	//   Hint: Convert the value to a string before passing it as a child
//
// # Categories
//
//   - render: node tree flattening (unsupported values, consumed sequences)
//   - attribute: tag invocation (invalid attribute values)
//   - markup: declarative page documents
//   - config: crel.json loading and validation
//   - publish: building and uploading pages
//
// Two errors with the same code match under errors.Is, so packages can
// export a registry error as a sentinel and return decorated copies of it.
package errors

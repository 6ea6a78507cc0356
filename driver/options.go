/*
File    : jackc/driver/options.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)
*/
package driver

// Options configures a single run of the driver.
type Options struct {
	// TokensOnly, when true, skips the parser entirely and emits a flat
	// <tokens> wrapper with one leaf per token instead of a parse tree.
	TokensOnly bool
}

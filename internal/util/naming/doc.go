// Package naming provides consistent naming functions for pipeline resources.
//
// Names follow the pattern {pipeline}_{kind}. Packaging channel and origin
// endpoint names double as their ids, so they are known before creation.
package naming

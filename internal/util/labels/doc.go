// Package labels provides the tag set that marks every pipeline resource.
//
// All resources carry a single "project" tag whose value is the pipeline name.
// Cleanup discovers resources by matching that tag exactly, so a pipeline can
// be torn down from a fresh process without any local state.
package labels

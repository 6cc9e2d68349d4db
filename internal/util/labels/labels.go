package labels

// KeyProject identifies which pipeline a resource belongs to.
const KeyProject = "project"

// TagSet is the tag mapping attached to every resource created for a pipeline.
type TagSet map[string]string

// TagBuilder provides a fluent interface for building resource tags.
type TagBuilder struct {
	tags map[string]string
}

// NewTagBuilder creates a new tag builder with the pipeline name pre-set.
func NewTagBuilder(pipelineName string) *TagBuilder {
	return &TagBuilder{
		tags: map[string]string{
			KeyProject: pipelineName,
		},
	}
}

// Build returns a copy of the tags.
func (tb *TagBuilder) Build() TagSet {
	result := make(TagSet, len(tb.tags))
	for k, v := range tb.tags {
		result[k] = v
	}
	return result
}

// ForPipeline returns the standard tag set for a pipeline.
func ForPipeline(pipelineName string) TagSet {
	return NewTagBuilder(pipelineName).Build()
}

// Project returns the pipeline name the tag set belongs to.
func (ts TagSet) Project() string {
	return ts[KeyProject]
}

// Matches reports whether a resource's tags belong to this tag set's pipeline.
// The comparison is strict equality on the project tag: a missing tag, a
// different value, or a value that merely shares a prefix never matches.
func (ts TagSet) Matches(resourceTags map[string]string) bool {
	want, ok := ts[KeyProject]
	if !ok {
		return false
	}
	got, ok := resourceTags[KeyProject]
	return ok && got == want
}

// Filter returns the items whose tags match the tag set, preserving order.
func Filter[T any](ts TagSet, items []T, tagsOf func(T) map[string]string) []T {
	var out []T
	for _, item := range items {
		if ts.Matches(tagsOf(item)) {
			out = append(out, item)
		}
	}
	return out
}

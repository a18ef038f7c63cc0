package ports

import "context"

// DepartmentSuggester proposes the department most relevant to an issue
// based on its description and attached image.
type DepartmentSuggester interface {
	Suggest(ctx context.Context, description, image string) (string, error)
}

package views

import "github.com/dmitrijs2005/devshowcase/internal/models"

// CommentsForProject drops comments that belong to another project, which
// can linger in the list while a new fetch is in flight.
func CommentsForProject(items []models.Comment, projectID string) []models.Comment {
	out := make([]models.Comment, 0, len(items))
	for _, c := range items {
		if c.ProjectID == projectID {
			out = append(out, c)
		}
	}
	return out
}

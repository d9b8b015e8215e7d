package models

// Category is one of the fixed content classifications a post must belong to.
type Category struct {
	Key   string
	Label string
}

// Categories is the closed set of post categories, in display order.
var Categories = []Category{
	{Key: "jobs", Label: "Jobs"},
	{Key: "results", Label: "Results"},
	{Key: "schemes", Label: "Schemes"},
	{Key: "exam_cutoffs", Label: "Exam Cutoffs"},
	{Key: "current_affairs", Label: "Current Affairs"},
}

// ValidCategory reports whether key belongs to the fixed category set.
func ValidCategory(key string) bool {
	for _, c := range Categories {
		if c.Key == key {
			return true
		}
	}
	return false
}

// CategoryLabel returns the display label for key, or key itself when unknown.
func CategoryLabel(key string) string {
	for _, c := range Categories {
		if c.Key == key {
			return c.Label
		}
	}
	return key
}

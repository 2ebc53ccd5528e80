package core

import (
	"sort"
	"strings"

	"taskdeck/pkg/models"
)

// Counts aggregates completion totals for the presentation shell.
type Counts struct {
	Total     int
	Completed int
	Pending   int
}

// CountTasks computes the aggregate counts over the full task collection.
func CountTasks(tasks []models.Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		}
	}
	c.Pending = c.Total - c.Completed
	return c
}

// DeriveView filters and orders the task collection for display. It is a
// pure function: the input slice is never mutated and re-applying it with
// identical parameters yields an identical result.
//
// Filtering: case-insensitive substring match of searchText against title or
// description, then categoryFilter (unless the "all" sentinel), then
// statusFilter. Ordering: incomplete tasks always sort before completed
// ones; within each completion group the sortBy mode picks the key. Ties
// preserve relative input order.
func DeriveView(tasks []models.Task, searchText, categoryFilter string, statusFilter models.StatusFilter, sortBy models.SortMode) []models.Task {
	search := strings.ToLower(searchText)

	view := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		if categoryFilter != models.FilterCategoryAll && t.Category != categoryFilter {
			continue
		}
		switch statusFilter {
		case models.StatusPending:
			if t.Completed {
				continue
			}
		case models.StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		view = append(view, t)
	}

	sort.SliceStable(view, func(i, j int) bool {
		a, b := view[i], view[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		switch sortBy {
		case models.SortByPriority:
			return a.Priority.Rank() < b.Priority.Rank()
		case models.SortByAlphabetical:
			return a.Title < b.Title
		default:
			return a.DueDate < b.DueDate
		}
	})

	return view
}

// matchesSearch reports whether the lowercased search term occurs in the
// task's title or description. An absent description never matches a
// non-empty term on its own.
func matchesSearch(t models.Task, search string) bool {
	if strings.Contains(strings.ToLower(t.Title), search) {
		return true
	}
	return t.Description != "" && strings.Contains(strings.ToLower(t.Description), search)
}

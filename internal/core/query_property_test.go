package core

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"taskdeck/pkg/models"
)

func genTasks(rt *rapid.T) []models.Task {
	n := rapid.IntRange(0, 40).Draw(rt, "n")
	tasks := make([]models.Task, n)
	priorities := []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow}
	for i := range tasks {
		tasks[i] = models.Task{
			ID:          rapid.StringMatching(`task_[a-z0-9]{6}`).Draw(rt, "id"),
			Title:       rapid.StringMatching(`[a-zA-Z ]{0,12}[a-zA-Z]`).Draw(rt, "title"),
			Description: rapid.StringMatching(`[a-zA-Z ]{0,16}`).Draw(rt, "desc"),
			Category:    rapid.SampledFrom([]string{"cat_1", "cat_2", "cat_3"}).Draw(rt, "cat"),
			Priority:    rapid.SampledFrom(priorities).Draw(rt, "priority"),
			DueDate:     rapid.StringMatching(`2026-(0[1-9]|1[0-2])-(0[1-9]|2[0-8])`).Draw(rt, "due"),
			Completed:   rapid.Bool().Draw(rt, "completed"),
			CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return tasks
}

// Property: re-applying DeriveView with identical parameters yields an
// identical result, and every incomplete task precedes every completed one.
func TestProperty_DeriveViewIdempotentAndPartitioned(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tasks := genTasks(rt)
		search := rapid.SampledFrom([]string{"", "a", "task"}).Draw(rt, "search")
		category := rapid.SampledFrom([]string{models.FilterCategoryAll, "cat_1", "cat_9"}).Draw(rt, "category")
		status := rapid.SampledFrom([]models.StatusFilter{models.StatusAll, models.StatusPending, models.StatusCompleted}).Draw(rt, "status")
		sortBy := rapid.SampledFrom([]models.SortMode{models.SortByDate, models.SortByPriority, models.SortByAlphabetical}).Draw(rt, "sortBy")

		once := DeriveView(tasks, search, category, status, sortBy)
		twice := DeriveView(once, search, category, status, sortBy)

		if len(once) != len(twice) {
			rt.Fatalf("re-application changed length: %d vs %d", len(once), len(twice))
		}
		for i := range once {
			if once[i].ID != twice[i].ID {
				rt.Fatalf("re-application reordered index %d: %s vs %s", i, once[i].ID, twice[i].ID)
			}
		}

		seenCompleted := false
		for _, task := range once {
			if task.Completed {
				seenCompleted = true
			} else if seenCompleted {
				rt.Fatalf("incomplete task %s after a completed one", task.ID)
			}
		}
	})
}

// Property: the view is a subset of the input and filtering never invents
// or duplicates records.
func TestProperty_DeriveViewIsSubset(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tasks := genTasks(rt)
		view := DeriveView(tasks, "", models.FilterCategoryAll, models.StatusAll, models.SortByDate)
		if len(view) != len(tasks) {
			rt.Fatalf("no-op filters dropped records: %d vs %d", len(view), len(tasks))
		}
		inInput := make(map[string]int)
		for _, task := range tasks {
			inInput[task.ID]++
		}
		for _, task := range view {
			inInput[task.ID]--
		}
		for id, n := range inInput {
			if n != 0 {
				rt.Fatalf("record %s count mismatch %d", id, n)
			}
		}
	})
}

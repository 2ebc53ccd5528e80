package storage

import (
	"testing"

	"pgregory.net/rapid"

	"taskdeck/pkg/models"
)

// Property: after any sequence of create/toggle/delete operations, the
// persisted collection matches an in-memory reference model replaying the
// same operations.
func TestProperty_RepositoryMatchesReferenceModel(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		repo, _ := newTestRepo(t)

		var oracle []models.Task
		ops := rapid.IntRange(1, 60).Draw(rt, "ops")

		for i := 0; i < ops; i++ {
			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0: // create
				title := rapid.StringMatching(`[a-zA-Z][a-zA-Z ]{0,11}`).Draw(rt, "title")
				task, err := repo.CreateTask(models.TaskDraft{
					Title:    title,
					Priority: models.PriorityMedium,
					DueDate:  "2026-01-01",
				})
				if err != nil {
					rt.Fatalf("CreateTask failed: %v", err)
				}
				oracle = append(oracle, *task)
			case 1: // toggle a random existing task
				if len(oracle) == 0 {
					continue
				}
				idx := rapid.IntRange(0, len(oracle)-1).Draw(rt, "toggleIdx")
				task, err := repo.ToggleTaskCompletion(oracle[idx].ID)
				if err != nil {
					rt.Fatalf("ToggleTaskCompletion failed: %v", err)
				}
				oracle[idx] = *task
			case 2: // delete a random existing task
				if len(oracle) == 0 {
					continue
				}
				idx := rapid.IntRange(0, len(oracle)-1).Draw(rt, "deleteIdx")
				if err := repo.DeleteTask(oracle[idx].ID); err != nil {
					rt.Fatalf("DeleteTask failed: %v", err)
				}
				oracle = append(oracle[:idx], oracle[idx+1:]...)
			case 3: // clear completed
				if err := repo.ClearCompletedTasks(); err != nil {
					rt.Fatalf("ClearCompletedTasks failed: %v", err)
				}
				kept := oracle[:0]
				for _, task := range oracle {
					if !task.Completed {
						kept = append(kept, task)
					}
				}
				oracle = kept
			}
		}

		got := repo.ListTasks()
		if len(got) != len(oracle) {
			rt.Fatalf("collection size = %d, oracle = %d", len(got), len(oracle))
		}
		for i := range got {
			if got[i].ID != oracle[i].ID || got[i].Completed != oracle[i].Completed {
				rt.Fatalf("task %d = %+v, oracle = %+v", i, got[i], oracle[i])
			}
		}
	})
}

// Property: every created task gets an ID distinct from all existing ones.
func TestProperty_CreateTaskIDUniqueness(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		repo, _ := newTestRepo(t)
		n := rapid.IntRange(2, 50).Draw(rt, "n")

		seen := make(map[string]struct{}, n)
		for i := 0; i < n; i++ {
			task, err := repo.CreateTask(models.TaskDraft{Title: "t", Priority: models.PriorityLow})
			if err != nil {
				rt.Fatalf("CreateTask failed on call %d: %v", i+1, err)
			}
			if _, dup := seen[task.ID]; dup {
				rt.Fatalf("duplicate task ID %q on call %d", task.ID, i+1)
			}
			seen[task.ID] = struct{}{}
		}
	})
}

// Property: toggling twice returns a task structurally identical to its
// pre-toggle state; CompletedAt must be absent again, not merely zeroed.
func TestProperty_ToggleIsItsOwnInverse(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		repo, _ := newTestRepo(t)
		title := rapid.StringMatching(`[a-z]{1,10}`).Draw(rt, "title")
		task, err := repo.CreateTask(models.TaskDraft{
			Title:    title,
			Priority: models.PriorityHigh,
			DueDate:  "2026-06-01",
		})
		if err != nil {
			rt.Fatalf("CreateTask failed: %v", err)
		}

		if _, err := repo.ToggleTaskCompletion(task.ID); err != nil {
			rt.Fatalf("first toggle failed: %v", err)
		}
		back, err := repo.ToggleTaskCompletion(task.ID)
		if err != nil {
			rt.Fatalf("second toggle failed: %v", err)
		}

		if back.Completed != task.Completed {
			rt.Fatal("Completed differs after double toggle")
		}
		if back.CompletedAt != nil {
			rt.Fatalf("CompletedAt = %v after double toggle, want absent", back.CompletedAt)
		}
		if back.Title != task.Title || back.DueDate != task.DueDate || !back.CreatedAt.Equal(task.CreatedAt) {
			rt.Fatalf("double toggle changed unrelated fields: %+v vs %+v", back, task)
		}
	})
}

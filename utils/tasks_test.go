package utils

import (
	"errors"
	"sync"
	"testing"
	"time"

	"daydo/models"
)

// newTestService pins the clock so "today" is stable for the whole test.
func newTestService(t *testing.T, now time.Time) *TaskService {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	svc := NewTaskService(store, time.UTC)
	svc.now = func() time.Time { return now }

	seed := &models.User{
		Name:     "Alice",
		UserID:   "alice",
		Password: "hunter2",
		Gmail:    "alice@gmail.com",
		Tasks:    map[string][]models.Task{},
	}
	if err := store.Save(seed); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return svc
}

var testNow = time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

func TestAddTaskThenListToday(t *testing.T) {
	svc := newTestService(t, testNow)

	task, err := svc.AddTask("alice", "buy milk")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if task.Text != "buy milk" || task.Completed || task.Date != "2026-09-01" {
		t.Errorf("AddTask() = %+v, want uncompleted task dated today", task)
	}

	tasks, err := svc.ListToday("alice")
	if err != nil {
		t.Fatalf("ListToday() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("ListToday() returned %d tasks, want 1", len(tasks))
	}
	if tasks[0].ID != task.ID || tasks[0].Text != "buy milk" {
		t.Errorf("ListToday()[0] = %+v, want the added task", tasks[0])
	}
}

func TestAddTaskEmptyText(t *testing.T) {
	svc := newTestService(t, testNow)

	if _, err := svc.AddTask("alice", ""); !errors.Is(err, ErrTaskTextRequired) {
		t.Errorf("AddTask() error = %v, want ErrTaskTextRequired", err)
	}
}

func TestAddTaskIDsNeverCollide(t *testing.T) {
	// The clock is frozen, so every add sees the same millisecond.
	svc := newTestService(t, testNow)

	for i := 0; i < 5; i++ {
		if _, err := svc.AddTask("alice", "task"); err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
	}

	tasks, err := svc.ListToday("alice")
	if err != nil {
		t.Fatalf("ListToday() error = %v", err)
	}
	seen := make(map[int64]bool)
	for _, task := range tasks {
		if seen[task.ID] {
			t.Fatalf("duplicate task id %d in today's bucket", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestCompleteTask(t *testing.T) {
	svc := newTestService(t, testNow)

	task, err := svc.AddTask("alice", "buy milk")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	if err := svc.CompleteTask("alice", task.ID); err != nil {
		t.Fatalf("CompleteTask() error = %v", err)
	}
	// Completing an already-completed task is idempotent.
	if err := svc.CompleteTask("alice", task.ID); err != nil {
		t.Fatalf("CompleteTask() second call error = %v", err)
	}

	tasks, err := svc.ListToday("alice")
	if err != nil {
		t.Fatalf("ListToday() error = %v", err)
	}
	if !tasks[0].Completed {
		t.Error("task not marked completed after CompleteTask()")
	}
}

func TestCompleteTaskErrors(t *testing.T) {
	svc := newTestService(t, testNow)

	// No bucket for today yet.
	if err := svc.CompleteTask("alice", 123); !errors.Is(err, ErrNoTasksToday) {
		t.Errorf("CompleteTask() with no bucket error = %v, want ErrNoTasksToday", err)
	}

	if _, err := svc.AddTask("alice", "buy milk"); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	// Bucket exists but the id does not.
	if err := svc.CompleteTask("alice", 123); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("CompleteTask() with unknown id error = %v, want ErrTaskNotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	svc := newTestService(t, testNow)

	// Deleting with no bucket at all is an error.
	if err := svc.DeleteTask("alice", 123); !errors.Is(err, ErrNoTasksToday) {
		t.Errorf("DeleteTask() with no bucket error = %v, want ErrNoTasksToday", err)
	}

	task, err := svc.AddTask("alice", "buy milk")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	// Deleting an unknown id inside an existing bucket is a silent no-op.
	if err := svc.DeleteTask("alice", task.ID+999); err != nil {
		t.Errorf("DeleteTask() with unknown id error = %v, want nil", err)
	}
	tasks, err := svc.ListToday("alice")
	if err != nil {
		t.Fatalf("ListToday() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("no-op delete changed the bucket: %d tasks", len(tasks))
	}

	if err := svc.DeleteTask("alice", task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	tasks, err = svc.ListToday("alice")
	if err != nil {
		t.Fatalf("ListToday() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("ListToday() returned %d tasks after delete, want 0", len(tasks))
	}
}

func TestEditTask(t *testing.T) {
	svc := newTestService(t, testNow)

	if err := svc.EditTask("alice", 123, "new text"); !errors.Is(err, ErrNoTasksToday) {
		t.Errorf("EditTask() with no bucket error = %v, want ErrNoTasksToday", err)
	}

	task, err := svc.AddTask("alice", "buy milk")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	if err := svc.EditTask("alice", task.ID, ""); !errors.Is(err, ErrTaskTextRequired) {
		t.Errorf("EditTask() with empty text error = %v, want ErrTaskTextRequired", err)
	}
	if err := svc.EditTask("alice", task.ID+999, "new text"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("EditTask() with unknown id error = %v, want ErrTaskNotFound", err)
	}

	if err := svc.EditTask("alice", task.ID, "buy oat milk"); err != nil {
		t.Fatalf("EditTask() error = %v", err)
	}
	tasks, err := svc.ListToday("alice")
	if err != nil {
		t.Fatalf("ListToday() error = %v", err)
	}
	if tasks[0].Text != "buy oat milk" {
		t.Errorf("task text = %q after edit, want %q", tasks[0].Text, "buy oat milk")
	}
}

func TestYesterdaysTasksAreInvisibleToday(t *testing.T) {
	svc := newTestService(t, testNow)

	// Create a task, then move the clock to the next day.
	task, err := svc.AddTask("alice", "buy milk")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	svc.now = func() time.Time { return testNow.AddDate(0, 0, 1) }

	if err := svc.CompleteTask("alice", task.ID); !errors.Is(err, ErrNoTasksToday) {
		t.Errorf("CompleteTask() on yesterday's task error = %v, want ErrNoTasksToday", err)
	}
	if err := svc.EditTask("alice", task.ID, "new text"); !errors.Is(err, ErrNoTasksToday) {
		t.Errorf("EditTask() on yesterday's task error = %v, want ErrNoTasksToday", err)
	}
	tasks, err := svc.ListToday("alice")
	if err != nil {
		t.Fatalf("ListToday() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("ListToday() returned %d tasks from yesterday, want 0", len(tasks))
	}
}

func TestListTodayUnknownUser(t *testing.T) {
	svc := newTestService(t, testNow)

	if _, err := svc.ListToday("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("ListToday() error = %v, want ErrUserNotFound", err)
	}
}

func TestConcurrentAddsLoseNothing(t *testing.T) {
	svc := newTestService(t, testNow)

	const adds = 25
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.AddTask("alice", "task"); err != nil {
				t.Errorf("AddTask() error = %v", err)
			}
		}()
	}
	wg.Wait()

	tasks, err := svc.ListToday("alice")
	if err != nil {
		t.Fatalf("ListToday() error = %v", err)
	}
	if len(tasks) != adds {
		t.Errorf("ListToday() returned %d tasks after %d concurrent adds", len(tasks), adds)
	}
}

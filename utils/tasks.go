package utils

import (
	"sync"
	"time"

	"daydo/models"
)

// TaskService owns per-user, per-date task buckets. Every mutation is a
// load-mutate-save of the whole user record, serialized per user so two
// concurrent writers cannot drop each other's changes.
type TaskService struct {
	store UserStore
	loc   *time.Location
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewTaskService(store UserStore, loc *time.Location) *TaskService {
	return &TaskService{
		store: store,
		loc:   loc,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *TaskService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// Today returns the current calendar date in the configured zone.
func (s *TaskService) Today() string {
	return s.now().In(s.loc).Format("2006-01-02")
}

// nextID hands out millisecond timestamps, bumped past any id already in the
// bucket so rapid adds cannot collide.
func (s *TaskService) nextID(bucket []models.Task) int64 {
	id := s.now().UnixMilli()
	for _, t := range bucket {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

func (s *TaskService) AddTask(userID string, text string) (*models.Task, error) {
	if err := ValidateTaskText(text); err != nil {
		return nil, err
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.store.Load(userID)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	bucket := user.Tasks[today]
	task := models.Task{
		ID:        s.nextID(bucket),
		Text:      text,
		Completed: false,
		Date:      today,
	}
	user.Tasks[today] = append(bucket, task)

	if err := s.store.Save(user); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) CompleteTask(userID string, taskID int64) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.store.Load(userID)
	if err != nil {
		return err
	}

	bucket, ok := user.Tasks[s.Today()]
	if !ok {
		return ErrNoTasksToday
	}
	for i := range bucket {
		if bucket[i].ID == taskID {
			bucket[i].Completed = true
			return s.store.Save(user)
		}
	}
	return ErrTaskNotFound
}

// DeleteTask filters the matching task out of today's bucket. An unknown id
// inside an existing bucket is a silent no-op; an absent bucket is not.
func (s *TaskService) DeleteTask(userID string, taskID int64) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.store.Load(userID)
	if err != nil {
		return err
	}

	today := s.Today()
	bucket, ok := user.Tasks[today]
	if !ok {
		return ErrNoTasksToday
	}
	kept := make([]models.Task, 0, len(bucket))
	for _, t := range bucket {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	user.Tasks[today] = kept
	return s.store.Save(user)
}

func (s *TaskService) EditTask(userID string, taskID int64, newText string) error {
	if err := ValidateTaskText(newText); err != nil {
		return err
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.store.Load(userID)
	if err != nil {
		return err
	}

	bucket, ok := user.Tasks[s.Today()]
	if !ok {
		return ErrNoTasksToday
	}
	for i := range bucket {
		if bucket[i].ID == taskID {
			bucket[i].Text = newText
			return s.store.Save(user)
		}
	}
	return ErrTaskNotFound
}

// ListToday returns today's bucket; a missing bucket is an empty list, not an
// error. Tasks from other days are never visible here.
func (s *TaskService) ListToday(userID string) ([]models.Task, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.store.Load(userID)
	if err != nil {
		return nil, err
	}

	tasks := user.Tasks[s.Today()]
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

package utils

import "daydo/models"

// Analysis summarizes the last 7 days of buckets, today first. Days without a
// bucket come back with zero counts and an empty task list.
func (s *TaskService) Analysis(userID string) ([]models.DayStat, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.store.Load(userID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	stats := make([]models.DayStat, 0, 7)
	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		bucket := user.Tasks[date]

		completed := 0
		for _, t := range bucket {
			if t.Completed {
				completed++
			}
		}
		if bucket == nil {
			bucket = []models.Task{}
		}
		stats = append(stats, models.DayStat{
			Date:      date,
			Total:     len(bucket),
			Completed: completed,
			Tasks:     bucket,
		})
	}
	return stats, nil
}

package models

type RegisterRequest struct {
	Name     string `json:"name"`
	UserID   string `json:"userId"`
	Password string `json:"password"`
	Gmail    string `json:"gmail"`
}

type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type AddTaskRequest struct {
	Task string `json:"task"`
}

type TaskIDRequest struct {
	TaskID int64 `json:"taskId"`
}

type EditTaskRequest struct {
	TaskID  int64  `json:"taskId"`
	NewText string `json:"newText"`
}

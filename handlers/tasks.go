package handlers

import (
	"errors"
	"net/http"

	"daydo/models"
	"daydo/utils"
)

func AddTask(w http.ResponseWriter, r *http.Request, registry utils.SessionRegistry, svc *utils.TaskService) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	userID, ok := requireSession(w, r, registry)
	if !ok {
		return
	}

	var req models.AddTaskRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Task == "" {
		writeError(w, http.StatusBadRequest, "Task content required")
		return
	}

	task, err := svc.AddTask(userID, req.Task)
	if err != nil {
		utils.Logger.Errorw("adding task", "userId", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Task added", "task": task})
}

func CompleteTask(w http.ResponseWriter, r *http.Request, registry utils.SessionRegistry, svc *utils.TaskService) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	userID, ok := requireSession(w, r, registry)
	if !ok {
		return
	}

	var req models.TaskIDRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.TaskID == 0 {
		writeError(w, http.StatusBadRequest, "Task ID required")
		return
	}

	switch err := svc.CompleteTask(userID, req.TaskID); {
	case errors.Is(err, utils.ErrNoTasksToday):
		writeError(w, http.StatusNotFound, "No tasks for today")
	case errors.Is(err, utils.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "Task not found")
	case err != nil:
		utils.Logger.Errorw("completing task", "userId", userID, "taskId", req.TaskID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	default:
		writeMessage(w, "Task marked as complete")
	}
}

func DeleteTask(w http.ResponseWriter, r *http.Request, registry utils.SessionRegistry, svc *utils.TaskService) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	userID, ok := requireSession(w, r, registry)
	if !ok {
		return
	}

	var req models.TaskIDRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.TaskID == 0 {
		writeError(w, http.StatusBadRequest, "Task ID required")
		return
	}

	switch err := svc.DeleteTask(userID, req.TaskID); {
	case errors.Is(err, utils.ErrNoTasksToday):
		writeError(w, http.StatusNotFound, "No tasks for today")
	case err != nil:
		utils.Logger.Errorw("deleting task", "userId", userID, "taskId", req.TaskID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	default:
		writeMessage(w, "Task deleted")
	}
}

func EditTask(w http.ResponseWriter, r *http.Request, registry utils.SessionRegistry, svc *utils.TaskService) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	userID, ok := requireSession(w, r, registry)
	if !ok {
		return
	}

	var req models.EditTaskRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.TaskID == 0 || req.NewText == "" {
		writeError(w, http.StatusBadRequest, "Task ID and new text required")
		return
	}

	switch err := svc.EditTask(userID, req.TaskID, req.NewText); {
	case errors.Is(err, utils.ErrNoTasksToday):
		writeError(w, http.StatusNotFound, "No tasks for today")
	case errors.Is(err, utils.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "Task not found")
	case err != nil:
		utils.Logger.Errorw("editing task", "userId", userID, "taskId", req.TaskID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	default:
		writeMessage(w, "Task updated")
	}
}

func GetTasks(w http.ResponseWriter, r *http.Request, registry utils.SessionRegistry, svc *utils.TaskService) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	userID, ok := requireSession(w, r, registry)
	if !ok {
		return
	}

	tasks, err := svc.ListToday(userID)
	if err != nil {
		utils.Logger.Errorw("listing tasks", "userId", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

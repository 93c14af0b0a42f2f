package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/aadarsh726/smart-life/api/handler"
)

type Handlers struct {
	Auth      *apiHandler.AuthHandler
	Task      *apiHandler.TaskHandler
	Habit     *apiHandler.HabitHandler
	Journal   *apiHandler.JournalHandler
	Activity  *apiHandler.ActivityHandler
	ML        *apiHandler.MLHandler
	Chat      *apiHandler.ChatHandler
	Dashboard *apiHandler.DashboardHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/auth/register", handlers.Auth.Register)
	r.POST("/api/auth/login", handlers.Auth.Login)
	r.GET("/api/auth/me", authMiddleware(handlers.Auth.Me))
	r.POST("/api/auth/logout", authMiddleware(handlers.Auth.Logout))

	// Protected resource routes
	r.GET("/api/tasks", authMiddleware(handlers.Task.GetTasks))
	r.POST("/api/tasks", authMiddleware(handlers.Task.CreateTask))
	r.PUT("/api/tasks/{id}", authMiddleware(handlers.Task.UpdateTask))
	r.DELETE("/api/tasks/{id}", authMiddleware(handlers.Task.DeleteTask))

	r.GET("/api/habits", authMiddleware(handlers.Habit.GetHabits))
	r.POST("/api/habits", authMiddleware(handlers.Habit.CreateHabit))
	r.POST("/api/habits/{id}/checkin", authMiddleware(handlers.Habit.CheckIn))

	r.GET("/api/journal", authMiddleware(handlers.Journal.GetEntries))
	r.POST("/api/journal", authMiddleware(handlers.Journal.CreateEntry))

	r.GET("/api/activities", authMiddleware(handlers.Activity.GetActivities))
	r.POST("/api/activities", authMiddleware(handlers.Activity.LogActivity))

	// ML proxy routes
	r.POST("/api/ml/predict-productivity", authMiddleware(handlers.ML.PredictProductivity))
	r.POST("/api/ml/predict-task-completion", authMiddleware(handlers.ML.PredictTaskCompletion))
	r.POST("/api/ml/optimize-schedule", authMiddleware(handlers.ML.OptimizeSchedule))

	r.POST("/api/ai/chat", authMiddleware(handlers.Chat.Chat))

	r.GET("/api/dashboard/summary", authMiddleware(handlers.Dashboard.Summary))

	return r
}

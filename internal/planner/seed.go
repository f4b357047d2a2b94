package planner

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

const day = 24 * time.Hour

// SeedEventID is the id of the built-in event the seed tasks belong to.
const SeedEventID = "event-1"

// SeedEvents returns the built-in event used when a session starts.
func SeedEvents(now time.Time) []model.Event {
	now = now.UTC()
	budget := model.Budget{
		Categories: []model.BudgetCategory{
			{ID: "cat-1", Name: "Venue", Allocated: decimal.NewFromInt(10000), Spent: decimal.NewFromInt(2500)},
			{ID: "cat-2", Name: "Catering", Allocated: decimal.NewFromInt(8000), Spent: decimal.NewFromInt(2000)},
			{ID: "cat-3", Name: "Photography", Allocated: decimal.NewFromInt(3000), Spent: decimal.NewFromInt(500)},
		},
	}
	budget.Recompute()

	return []model.Event{{
		ID:          SeedEventID,
		Name:        "Wedding Ceremony",
		Date:        now.Add(60 * day),
		Location:    "Grand Plaza Hotel",
		Description: "A beautiful wedding ceremony with 150 guests",
		CreatedAt:   now,
		Budget:      budget,
	}}
}

// SeedVendors returns the built-in vendors.
func SeedVendors(now time.Time) []model.Vendor {
	now = now.UTC()
	return []model.Vendor{
		{
			ID:        "vendor-1",
			Name:      "Elite Catering",
			Service:   "Catering",
			Email:     "info@elitecatering.com",
			Phone:     "(555) 123-4567",
			Location:  "New York, NY",
			Rating:    5,
			CreatedAt: now,
		},
		{
			ID:        "vendor-2",
			Name:      "Bloom Floral Design",
			Service:   "Florist",
			Email:     "bloom@floraldesign.com",
			Phone:     "(555) 987-6543",
			Location:  "New York, NY",
			Rating:    4,
			CreatedAt: now,
		},
	}
}

// SeedTasks returns the tasks used when no snapshot has been persisted.
func SeedTasks(now time.Time) []model.Task {
	now = now.UTC()
	venueDue := now.Add(-30 * day)
	venueDone := venueDue.Add(-2 * day)
	photoDue := now.Add(15 * day)
	assigned := now

	return []model.Task{
		{
			ID:          "task-1",
			Title:       "Book venue",
			Description: "Finalize contract with Grand Plaza Hotel",
			Priority:    model.PriorityHigh,
			Completed:   true,
			CompletedAt: &venueDone,
			Progress:    100,
			CreatedAt:   now,
			EventID:     SeedEventID,
			DueDate:     &venueDue,
			SubTasks: []model.SubTask{
				{ID: "subtask-1", Title: "Tour venue", Completed: true},
				{ID: "subtask-2", Title: "Review contract", Completed: true},
			},
			Comments: []model.Comment{
				{ID: "comment-1", Text: "Deposit has been paid", Timestamp: now},
			},
		},
		{
			ID:          "task-2",
			Title:       "Hire photographer",
			Description: "Find and book a professional photographer",
			Priority:    model.PriorityMedium,
			Progress:    50,
			CreatedAt:   now,
			EventID:     SeedEventID,
			DueDate:     &photoDue,
			AssignedTo:  "vendor-2",
			AssignedAt:  &assigned,
			SubTasks: []model.SubTask{
				{ID: "subtask-3", Title: "Research photographers", Completed: true},
				{ID: "subtask-4", Title: "Schedule meetings"},
			},
		},
	}
}

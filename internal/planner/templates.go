package planner

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

// TemplateTask is the blueprint of one task in a template.
type TemplateTask struct {
	Title       string
	Description string
	Priority    model.Priority
	// DueIn, when non-zero, sets the due date relative to the apply time.
	DueIn    time.Duration
	SubTasks []string
}

// Template is a named set of tasks that can be stamped into an event.
type Template struct {
	Key         string
	Name        string
	Description string
	Tasks       []TemplateTask
}

var templates = []Template{
	{
		Key:         "wedding",
		Name:        "Wedding Planning",
		Description: "A comprehensive template for planning a wedding with all essential tasks.",
		Tasks: []TemplateTask{
			{
				Title:       "Set wedding date and budget",
				Description: "Decide on a date and establish your overall budget",
				Priority:    model.PriorityHigh,
				SubTasks:    []string{"Research venue availability", "Create initial budget spreadsheet"},
			},
			{
				Title:       "Book venue and vendors",
				Description: "Secure your ceremony and reception venues, plus key vendors",
				Priority:    model.PriorityHigh,
				SubTasks:    []string{"Visit and compare venues", "Research and contact photographers", "Book catering service"},
			},
			{
				Title:       "Send invitations",
				Description: "Design, order, and mail wedding invitations",
				Priority:    model.PriorityMedium,
				DueIn:       30 * day,
				SubTasks:    []string{"Finalize guest list", "Design invitations", "Address and mail invitations"},
			},
		},
	},
	{
		Key:         "conference",
		Name:        "Conference Organization",
		Description: "Tasks for planning and executing a professional conference or event.",
		Tasks: []TemplateTask{
			{
				Title:       "Define conference goals and theme",
				Description: "Establish the purpose, audience, and theme of your conference",
				Priority:    model.PriorityHigh,
				SubTasks:    []string{"Conduct market research", "Draft conference mission statement"},
			},
			{
				Title:       "Secure venue and set date",
				Description: "Book an appropriate venue and establish conference dates",
				Priority:    model.PriorityHigh,
				SubTasks:    []string{"Research venue options", "Negotiate contracts", "Confirm availability of key speakers"},
			},
			{
				Title:       "Develop marketing strategy",
				Description: "Create and implement a plan to promote the conference",
				Priority:    model.PriorityMedium,
				DueIn:       45 * day,
				SubTasks:    []string{"Design conference logo and branding", "Create social media campaign", "Develop conference website"},
			},
		},
	},
	{
		Key:         "project",
		Name:        "Project Management",
		Description: "A template for managing general projects with phases and milestones.",
		Tasks: []TemplateTask{
			{
				Title:       "Project Initiation",
				Description: "Define the project scope, objectives, and stakeholders",
				Priority:    model.PriorityHigh,
				SubTasks:    []string{"Create project charter", "Identify stakeholders", "Define project scope"},
			},
			{
				Title:       "Project Planning",
				Description: "Develop detailed project plan with timelines and resources",
				Priority:    model.PriorityHigh,
				SubTasks: []string{
					"Create work breakdown structure",
					"Develop project schedule",
					"Allocate resources",
					"Identify risks and mitigation strategies",
				},
			},
			{
				Title:       "Project Execution",
				Description: "Implement the project plan and manage the work",
				Priority:    model.PriorityMedium,
				SubTasks:    []string{"Conduct kickoff meeting", "Execute tasks according to plan", "Monitor progress and report to stakeholders"},
			},
		},
	},
}

// Templates lists the built-in task templates.
func Templates() []Template {
	return slices.Clone(templates)
}

// ApplyTemplate adds fresh copies of a template's tasks to the active event.
func (p *Planner) ApplyTemplate(ctx context.Context, key string) ([]model.Task, error) {
	i := slices.IndexFunc(templates, func(t Template) bool { return t.Key == key })
	if i < 0 {
		return nil, fmt.Errorf("template %q: %w", key, ErrNotFound)
	}
	tmpl := templates[i]
	now := p.now().UTC()

	var added []model.Task
	err := p.update(ctx, func(s *state) (bool, error) {
		tasks := slices.Clip(s.tasks)
		for _, tt := range tmpl.Tasks {
			t := model.Task{
				ID:          newID(),
				Title:       tt.Title,
				Description: tt.Description,
				Priority:    tt.Priority,
				CreatedAt:   now,
				EventID:     s.activeEventID,
			}
			if tt.DueIn > 0 {
				due := now.Add(tt.DueIn)
				t.DueDate = &due
			}
			for _, title := range tt.SubTasks {
				t.SubTasks = append(t.SubTasks, model.SubTask{ID: newID(), Title: title})
			}
			syncProgress(&t)
			tasks = append(tasks, t)
			added = append(added, t.Clone())
		}
		s.tasks = tasks
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

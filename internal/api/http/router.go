package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Favour-325/campusly-myjfn2/internal/api/http/handlers"
	"github.com/Favour-325/campusly-myjfn2/internal/auth"
	"github.com/Favour-325/campusly-myjfn2/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Directory  *handlers.DirectoryHandler
	Campus     *handlers.CampusHandler
	Engagement *handlers.EngagementHandler
	Academic   *handlers.AcademicHandler
	Messages   *handlers.MessageHandler
	Reactions  *handlers.ReactionHandler
	Gate       *auth.AccessGate
}

// RegisterRoutes wires HTTP routes. Every protected route names its allowed
// roles here, and the allow-list is fixed for the life of the process.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	const (
		student   = domain.RoleStudent
		professor = domain.RoleProfessor
		admin     = domain.RoleAdmin
	)
	gate := cfg.Gate

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	login := app.Group("/auth/login")
	login.Post("/student", cfg.Auth.Login(student))
	login.Post("/professor", cfg.Auth.Login(professor))
	login.Post("/admin", cfg.Auth.Login(admin))

	students := app.Group("/students")
	students.Post("", cfg.Directory.RegisterStudent)
	students.Get("/me", gate.Require(student), cfg.Directory.Me)
	students.Get("", gate.Require(admin), cfg.Directory.ListStudents)
	students.Get("/:id", gate.Require(admin, student), cfg.Directory.GetStudent)
	students.Put("/:id", gate.Require(admin, student), cfg.Directory.UpdateStudent)
	students.Delete("/:id", gate.Require(admin), cfg.Directory.DeleteStudent)

	professors := app.Group("/professors")
	professors.Get("/me", gate.Require(professor), cfg.Directory.Me)
	professors.Get("", gate.Require(admin), cfg.Directory.ListProfessors)
	professors.Post("", gate.Require(admin), cfg.Directory.CreateProfessor)
	professors.Get("/:id", gate.Require(admin, professor), cfg.Directory.GetProfessor)
	professors.Put("/:id", gate.Require(admin), cfg.Directory.UpdateProfessor)
	professors.Delete("/:id", gate.Require(admin), cfg.Directory.DeleteProfessor)

	admins := app.Group("/admins")
	admins.Get("/me", gate.Require(admin), cfg.Directory.Me)
	admins.Post("", gate.Require(admin), cfg.Directory.CreateAdmin)
	admins.Get("/:id", gate.Require(admin), cfg.Directory.GetAdmin)

	universities := app.Group("/universities")
	universities.Get("", gate.Require(admin, student, professor), cfg.Campus.ListUniversities)
	universities.Post("", gate.Require(admin), cfg.Campus.CreateUniversity)
	universities.Put("/:id", gate.Require(admin), cfg.Campus.UpdateUniversity)
	universities.Delete("/:id", gate.Require(admin), cfg.Campus.DeleteUniversity)

	posts := app.Group("/posts")
	posts.Post("", gate.Require(admin, professor), cfg.Campus.CreatePost)
	posts.Get("", gate.Require(admin, student), cfg.Campus.ListPosts)
	posts.Put("/:id", gate.Require(admin), cfg.Campus.UpdatePost)
	posts.Delete("/:id", gate.Require(admin), cfg.Campus.DeletePost)

	comments := app.Group("/comments")
	comments.Post("", gate.Require(student), cfg.Engagement.CreateComment)
	comments.Get("", gate.Require(student), cfg.Engagement.ListComments)

	feedback := app.Group("/feedback")
	feedback.Post("", gate.Require(student), cfg.Engagement.CreateFeedback)
	feedback.Get("", gate.Require(admin), cfg.Engagement.ListFeedback)
	feedback.Delete("/:id", gate.Require(admin), cfg.Engagement.DeleteFeedback)

	reactions := app.Group("/reactions")
	reactions.Post("", gate.Require(student), cfg.Reactions.React)
	reactions.Get("", gate.Require(student), cfg.Reactions.List)
	reactions.Get("/count", gate.Require(student), cfg.Reactions.Count)

	messages := app.Group("/messages")
	messages.Post("", gate.Require(admin), cfg.Messages.Send)
	messages.Get("", gate.Require(admin), cfg.Messages.List)
	messages.Get("/student", gate.Require(student), cfg.Messages.Inbox)
	messages.Delete("/:id", gate.Require(admin), cfg.Messages.Delete)

	departments := app.Group("/departments")
	departments.Get("", gate.Require(admin, student), cfg.Academic.ListDepartments)
	departments.Post("", gate.Require(admin), cfg.Academic.CreateDepartment)
	departments.Put("/:id", gate.Require(admin), cfg.Academic.UpdateDepartment)
	departments.Delete("/:id", gate.Require(admin), cfg.Academic.DeleteDepartment)

	levels := app.Group("/levels")
	levels.Get("", gate.Require(admin), cfg.Academic.ListLevels)
	levels.Post("", gate.Require(admin), cfg.Academic.CreateLevel)
	levels.Put("/:id", gate.Require(admin), cfg.Academic.UpdateLevel)
	levels.Delete("/:id", gate.Require(admin), cfg.Academic.DeleteLevel)
}

package routes

import (
	"github.com/gin-gonic/gin"

	"makeyou-digital/backend/controllers"
	"makeyou-digital/backend/middlewares"
)

type Deps struct {
	Contact     controllers.ContactDeps
	Suggest     controllers.SuggestDeps
	Leads       controllers.LeadDeps
	Submissions controllers.SubmissionDeps
	Admin       controllers.AdminDeps
	Features    controllers.Features
}

func Register(r *gin.Engine, d Deps) {
	api := r.Group("/api")
	{
		api.GET("/health", controllers.Health(d.Features))
		api.POST("/contact", controllers.ContactSubmit(d.Contact))
		api.POST("/ai/suggest", controllers.SuggestProject(d.Suggest))
		api.POST("/leads", controllers.CreateLead(d.Leads))
		api.POST("/admin/submit-project", controllers.SubmitProject(d.Submissions))
		api.POST("/admin/login", controllers.AdminLogin(d.Admin))

		// Everything below needs an admin bearer token.
		priv := api.Group("/")
		priv.Use(middlewares.AdminAuth(d.Admin.JWTSecret, d.Admin.Enabled()))
		priv.GET("leads", controllers.ListLeads(d.Leads))
		priv.GET("leads/export", controllers.ExportLeads(d.Leads))
		priv.GET("admin/session", controllers.AdminSession())
		priv.GET("admin/submit-project", controllers.ListSubmissions(d.Submissions))
		priv.PATCH("admin/submissions/:projectId/status", controllers.UpdateSubmissionStatus(d.Submissions))
		priv.GET("admin/submissions/export", controllers.ExportSubmissions(d.Submissions))
	}
}

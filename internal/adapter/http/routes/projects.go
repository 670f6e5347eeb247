package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gems85/bolt-quotes-proxy/internal/adapter/http/handlers"
)

const (
	PathProjects      = "/projects"
	PathPhotos        = "/photos"
	PathCompanyConfig = "/company-config"
)

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:projectId", projectHandler.GetProject)
		projects.PATCH("/:projectId/status", projectHandler.UpdateProjectStatus)
	}

	rg.GET(PathPhotos+"/:projectId", projectHandler.ListPhotos)
	rg.GET(PathCompanyConfig, projectHandler.GetCompanyConfig)
}

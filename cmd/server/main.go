package main

import (
	"flag"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rchalamala/beavered/internal/catalog"
	"github.com/rchalamala/beavered/internal/csvio"
	"github.com/rchalamala/beavered/internal/scheduler"
	"github.com/rchalamala/beavered/internal/workspace"
)

func main() {
	cfg := scheduler.NewDefaultConfiguration()
	catalogPath := flag.String("catalog", cfg.CatalogFile, "catalog file (.csv or .json)")
	addr := flag.String("addr", ":3001", "listen address")
	flag.Parse()

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	log.Printf("loaded %d courses from %s", cat.Len(), *catalogPath)

	store := workspace.NewStore(cat, workspace.DefaultWorkspaceCount)
	api := &api{store: store, cfg: cfg}

	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/courses", api.handleListCourses)
	r.GET("/courses/:id", api.handleGetCourse)

	r.GET("/workspaces", api.handleListWorkspaces)
	r.PUT("/workspaces/active", api.handleSetActive)
	r.GET("/workspaces/:id", api.handleGetWorkspace)
	r.POST("/workspaces/:id/courses", api.handleAddCourse)
	r.DELETE("/workspaces/:id/courses/:courseId", api.handleRemoveCourse)
	r.POST("/workspaces/:id/courses/:courseId/toggle", api.handleToggleCourse)
	r.POST("/workspaces/:id/courses/:courseId/lock", api.handleToggleLock)
	r.POST("/workspaces/:id/reorder", api.handleReorder)
	r.POST("/workspaces/:id/bulk", api.handleBulk)
	r.POST("/workspaces/:id/arrangements/next", api.handleNextArrangement)
	r.POST("/workspaces/:id/arrangements/prev", api.handlePrevArrangement)
	r.PUT("/workspaces/:id/availability", api.handleUpdateAvailability)
	r.GET("/workspaces/:id/code", api.handleExportCode)
	r.POST("/workspaces/:id/code", api.handleImportCode)
	r.GET("/workspaces/:id/schedule.csv", api.handleExportCSV)
	r.GET("/workspaces/:id/schedule.ics", api.handleExportICS)

	r.Run(*addr)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if strings.HasSuffix(path, ".json") {
		return csvio.LoadCatalogJSON(path)
	}
	return csvio.LoadCatalog(path, ',')
}

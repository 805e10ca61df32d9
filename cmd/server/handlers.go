package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rchalamala/beavered/internal/csvio"
	"github.com/rchalamala/beavered/internal/export"
	"github.com/rchalamala/beavered/internal/scheduler"
	"github.com/rchalamala/beavered/internal/workspace"
	"github.com/rchalamala/beavered/pkg/model"
)

type api struct {
	store *workspace.Store
	cfg   *scheduler.Configuration
}

// workspaceID resolves the :id path parameter. The literal "active"
// addresses whichever workspace is currently selected.
func workspaceID(ctx *gin.Context) (uuid.UUID, error) {
	raw := ctx.Param("id")
	if raw == "active" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}

func courseID(ctx *gin.Context) (model.CourseID, error) {
	raw := ctx.Param("courseId")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad course id %q", raw)
	}
	return model.CourseID(id), nil
}

func (a *api) handleListCourses(ctx *gin.Context) {
	query := ctx.Query("q")
	courses := a.store.Catalog().Search(query)

	results := make([]gin.H, 0, len(courses))
	for _, c := range courses {
		results = append(results, gin.H{
			"id":     c.ID,
			"number": c.Number,
			"name":   c.Name,
			"units":  c.Units,
		})
	}
	ctx.JSON(http.StatusOK, gin.H{"courses": results})
}

func (a *api) handleGetCourse(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.String(http.StatusBadRequest, "bad course id")
		return
	}
	course, ok := a.store.Catalog().ByID(model.CourseID(id))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

func (a *api) handleListWorkspaces(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"workspaceIds": a.store.IDs(),
		"activeId":     a.store.ActiveID(),
	})
}

func (a *api) handleSetActive(ctx *gin.Context) {
	var body struct {
		ID uuid.UUID `json:"id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	if err := a.store.SetActive(body.ID); err != nil {
		ctx.String(http.StatusNotFound, err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// snapshot is the full client-facing view of one workspace.
func snapshot(ws *workspace.Workspace) gin.H {
	availability := make([][2]string, model.WeekdayCount)
	for day, window := range ws.Availability {
		availability[day] = [2]string{
			window.Start.Format("15:04"),
			window.End.Format("15:04"),
		}
	}
	idx := any(nil)
	if ws.ArrangementIdx != workspace.NoArrangement {
		idx = ws.ArrangementIdx
	}
	return gin.H{
		"courses":          model.Shorten(ws.Courses),
		"arrangementIdx":   idx,
		"arrangementCount": len(ws.Arrangements),
		"availability":     availability,
		"units":            ws.Units(),
		"allSectionsSet":   ws.AllSectionsSet(),
	}
}

func (a *api) withWorkspace(ctx *gin.Context, fn func(*workspace.Workspace) error) {
	id, err := workspaceID(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, "bad workspace id")
		return
	}
	var view gin.H
	err = a.store.Do(id, func(ws *workspace.Workspace) error {
		if err := fn(ws); err != nil {
			return err
		}
		view = snapshot(ws)
		return nil
	})
	if err != nil {
		ctx.String(http.StatusNotFound, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, view)
}

func (a *api) handleGetWorkspace(ctx *gin.Context) {
	a.withWorkspace(ctx, func(ws *workspace.Workspace) error { return nil })
}

func (a *api) handleAddCourse(ctx *gin.Context) {
	var body struct {
		CourseID  uint64 `json:"courseId"`
		SectionID *int   `json:"sectionId"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	course, ok := a.store.Catalog().ByID(model.CourseID(body.CourseID))
	if !ok {
		ctx.String(http.StatusNotFound, "course %d not in catalog", body.CourseID)
		return
	}
	section := model.NoSection
	if body.SectionID != nil {
		if *body.SectionID < 0 || *body.SectionID >= len(course.Sections) {
			ctx.String(http.StatusBadRequest, "course %d has no section %d", body.CourseID, *body.SectionID)
			return
		}
		section = *body.SectionID
	}
	a.withWorkspace(ctx, func(ws *workspace.Workspace) error {
		ws.AddCourse(model.CourseRequest{
			Course:  course,
			Section: section,
			Enabled: true,
			Locked:  false,
		})
		return nil
	})
}

func (a *api) handleRemoveCourse(ctx *gin.Context) {
	id, err := courseID(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	a.withWorkspace(ctx, func(ws *workspace.Workspace) error {
		ws.RemoveCourse(id)
		return nil
	})
}

func (a *api) handleToggleCourse(ctx *gin.Context) {
	id, err := courseID(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	a.withWorkspace(ctx, func(ws *workspace.Workspace) error {
		ws.ToggleEnabled(id)
		return nil
	})
}

func (a *api) handleToggleLock(ctx *gin.Context) {
	id, err := courseID(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	a.withWorkspace(ctx, func(ws *workspace.Workspace) error {
		ws.ToggleLock(id)
		return nil
	})
}

func (a *api) handleReorder(ctx *gin.Context) {
	var body struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	a.withWorkspace(ctx, func(ws *workspace.Workspace) error {
		ws.Reorder(body.From, body.To)
		return nil
	})
}

func (a *api) handleBulk(ctx *gin.Context) {
	var body struct {
		Action string `json:"action" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	a.withWorkspace(ctx, func(ws *workspace.Workspace) error {
		switch body.Action {
		case "lock":
			ws.LockAll()
		case "unlock":
			ws.UnlockAll()
		case "enable":
			ws.EnableAll()
		case "disable":
			ws.DisableAll()
		case "clear":
			ws.Clear()
		default:
			return fmt.Errorf("unknown bulk action %q", body.Action)
		}
		return nil
	})
}

func (a *api) handleNextArrangement(ctx *gin.Context) {
	a.withWorkspace(ctx, func(ws *workspace.Workspace) error {
		ws.NextArrangement()
		return nil
	})
}

func (a *api) handlePrevArrangement(ctx *gin.Context) {
	a.withWorkspace(ctx, func(ws *workspace.Workspace) error {
		ws.PrevArrangement()
		return nil
	})
}

func (a *api) handleUpdateAvailability(ctx *gin.Context) {
	var body struct {
		Day      int    `json:"day"`
		Boundary string `json:"boundary" binding:"required"`
		Time     string `json:"time" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	if body.Day < 0 || body.Day >= model.WeekdayCount {
		ctx.String(http.StatusBadRequest, "bad weekday %d", body.Day)
		return
	}
	clock, err := time.Parse("15:04", body.Time)
	if err != nil {
		ctx.String(http.StatusBadRequest, "bad time %q", body.Time)
		return
	}
	a.withWorkspace(ctx, func(ws *workspace.Workspace) error {
		ws.UpdateAvailability(
			body.Day,
			body.Boundary == "start",
			model.ReferenceDay(body.Day, clock.Hour(), clock.Minute()),
		)
		return nil
	})
}

func (a *api) handleExportCode(ctx *gin.Context) {
	id, err := workspaceID(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, "bad workspace id")
		return
	}
	var code string
	err = a.store.Do(id, func(ws *workspace.Workspace) error {
		code, err = workspace.ExportCode(ws.Courses)
		return err
	})
	if err != nil {
		ctx.String(http.StatusNotFound, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"code": code})
}

func (a *api) handleImportCode(ctx *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	short, err := workspace.ImportCode(body.Code)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	requests, dropped := a.store.Catalog().Lengthen(short)
	id, err := workspaceID(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, "bad workspace id")
		return
	}
	var view gin.H
	err = a.store.Do(id, func(ws *workspace.Workspace) error {
		ws.SetCourses(requests)
		view = snapshot(ws)
		return nil
	})
	if err != nil {
		ctx.String(http.StatusNotFound, err.Error())
		return
	}
	view["dropped"] = dropped
	ctx.JSON(http.StatusOK, view)
}

func (a *api) handleExportCSV(ctx *gin.Context) {
	id, err := workspaceID(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, "bad workspace id")
		return
	}
	var content string
	err = a.store.Do(id, func(ws *workspace.Workspace) error {
		content, err = csvio.ExportScheduleString(ws.Courses)
		return err
	})
	if err != nil {
		ctx.String(http.StatusNotFound, err.Error())
		return
	}
	ctx.Data(http.StatusOK, "text/csv", []byte(content))
}

func (a *api) handleExportICS(ctx *gin.Context) {
	id, err := workspaceID(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, "bad workspace id")
		return
	}
	var content string
	err = a.store.Do(id, func(ws *workspace.Workspace) error {
		content = export.ICS(ws.Courses, a.cfg.TermStart)
		return nil
	})
	if err != nil {
		ctx.String(http.StatusNotFound, err.Error())
		return
	}
	ctx.Data(http.StatusOK, "text/calendar", []byte(content))
}

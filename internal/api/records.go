package api

import (
	"net/http"

	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/gin-gonic/gin"
)

// listJobs handles listing the employer's jobs
func (server *Server) listJobs(ctx *gin.Context) {
	jobs, err := server.reports.ListJobs(ctx.Request.Context(), authEmployerID(ctx))
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newJobListResponse(jobs))
}

type getJobRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getJob handles getting one of the employer's jobs
func (server *Server) getJob(ctx *gin.Context) {
	var request getJobRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	job, err := server.reports.GetJob(ctx.Request.Context(), authEmployerID(ctx), db.JobID(request.ID))
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newJobResponse(job))
}

// listCourses handles listing the shared course catalog
func (server *Server) listCourses(ctx *gin.Context) {
	courses, err := server.reports.ListCourses(ctx.Request.Context(), authEmployerID(ctx))
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// listCourseCompletions handles listing course completions tied to the employer's jobs
func (server *Server) listCourseCompletions(ctx *gin.Context) {
	records, err := server.reports.ListCourseCompletions(ctx.Request.Context(), authEmployerID(ctx))
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newCompletionListResponse(records))
}

// listApplications handles listing applications to the employer's jobs
func (server *Server) listApplications(ctx *gin.Context) {
	records, err := server.reports.ListApplications(ctx.Request.Context(), authEmployerID(ctx))
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newApplicationListResponse(records))
}

// listViews handles listing job views with the viewer's application, if any
func (server *Server) listViews(ctx *gin.Context) {
	records, err := server.reports.ListViews(ctx.Request.Context(), authEmployerID(ctx))
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newViewListResponse(records))
}

package api

import (
	"net/http"

	"github.com/aalug/hiring-analytics-go/internal/daterange"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/gin-gonic/gin"
)

type rangeRequest struct {
	Start  string `form:"start"`
	End    string `form:"end"`
	Period string `form:"period"`
}

func (r rangeRequest) params() daterange.Params {
	return daterange.Params{Start: r.Start, End: r.End, Period: r.Period}
}

type jobReportRequest struct {
	JobID int64 `uri:"jobId" binding:"required,min=1"`
}

// getSummary handles the headline counts of the employer
func (server *Server) getSummary(ctx *gin.Context) {
	var request rangeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	summary, err := server.reports.Summary(ctx.Request.Context(), authEmployerID(ctx), request.params())
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// getFunnel handles the stage breakdown of one job
func (server *Server) getFunnel(ctx *gin.Context) {
	var request jobReportRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	funnel, err := server.reports.Funnel(ctx.Request.Context(), authEmployerID(ctx), db.JobID(request.JobID))
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, funnel)
}

// getSkillGap handles the skill scores of one job's applicants
func (server *Server) getSkillGap(ctx *gin.Context) {
	var request jobReportRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	rows, err := server.reports.SkillGap(ctx.Request.Context(), authEmployerID(ctx), db.JobID(request.JobID))
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// getTopCourses handles the courses most often completed by hired candidates
func (server *Server) getTopCourses(ctx *gin.Context) {
	var request rangeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	rows, err := server.reports.TopCourses(ctx.Request.Context(), authEmployerID(ctx), request.params())
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// getHiringStatus handles the job counts per status
func (server *Server) getHiringStatus(ctx *gin.Context) {
	var request rangeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	rows, err := server.reports.HiringStatus(ctx.Request.Context(), authEmployerID(ctx), request.params())
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// getGeography handles the applications per applicant country
func (server *Server) getGeography(ctx *gin.Context) {
	var request rangeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	rows, err := server.reports.Geography(ctx.Request.Context(), authEmployerID(ctx), request.params())
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

type exportReportRequest struct {
	Start  string `form:"start"`
	End    string `form:"end"`
	Period string `form:"period"`
	Format string `form:"format"`
}

// exportReport handles downloading the summary as a csv or xlsx attachment
func (server *Server) exportReport(ctx *gin.Context) {
	var request exportReportRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	report, err := server.reports.ExportSummary(ctx.Request.Context(), authEmployerID(ctx), daterange.Params{
		Start:  request.Start,
		End:    request.End,
		Period: request.Period,
	}, request.Format)
	if err != nil {
		server.renderError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+report.Filename)
	ctx.Data(http.StatusOK, report.ContentType, report.Data)
}

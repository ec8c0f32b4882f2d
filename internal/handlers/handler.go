package handlers

import (
	"github.com/kogocampus/course-scraper/internal/service"
)

// Handler glues the HTTP surface to the service layer.
type Handler struct {
	courseSrv *service.CourseService
	schoolSrv *service.SchoolService
	taskSrv   *service.TaskService
	objectSrv *service.ObjectService
}

func New(courseSrv *service.CourseService, schoolSrv *service.SchoolService, taskSrv *service.TaskService, objectSrv *service.ObjectService) *Handler {
	return &Handler{
		courseSrv: courseSrv,
		schoolSrv: schoolSrv,
		taskSrv:   taskSrv,
		objectSrv: objectSrv,
	}
}

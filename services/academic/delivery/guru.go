package delivery

import (
	"hikmah/config"
	"hikmah/domain"
	"hikmah/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type guruHandler struct {
	auc domain.AttendanceUseCase
	guc domain.GradeUseCase
	suc domain.StudentUseCase
	tuc domain.TeacherUseCase
}

func NewGuruHandler(app *fiber.App, auc domain.AttendanceUseCase, guc domain.GradeUseCase, suc domain.StudentUseCase, tuc domain.TeacherUseCase) {
	handler := &guruHandler{
		auc: auc,
		guc: guc,
		suc: suc,
		tuc: tuc,
	}

	route := app.Group("/guru", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleGuru))
	route.Post("/attendance", handler.RecordAttendance)
	route.Post("/grades", handler.SubmitGrade)
	route.Post("/progress", handler.RecordProgress)
	route.Get("/progress/:student_id", handler.ProgressByStudent)
	route.Get("/profile", handler.Profile)
}

func (gh *guruHandler) RecordAttendance(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var req domain.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "RecordAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "RecordAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if err := gh.auc.Record(c.Context(), userToken.UserID, &req); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "RecordAttendance")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to record attendance",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "RecordAttendance")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Attendance recorded successfully",
	})
}

func (gh *guruHandler) SubmitGrade(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var sub domain.GradeSubmission
	if err := c.BodyParser(&sub); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SubmitGrade")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(sub); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SubmitGrade")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if err := gh.guc.Submit(c.Context(), userToken.UserID, &sub); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "SubmitGrade")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to submit grade",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "SubmitGrade")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Grade submitted successfully",
	})
}

func (gh *guruHandler) RecordProgress(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var progress domain.MemorizationProgress
	if err := c.BodyParser(&progress); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "RecordProgress")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(progress); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "RecordProgress")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if err := gh.suc.RecordProgress(c.Context(), userToken.UserID, &progress); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "RecordProgress")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to record progress",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "RecordProgress")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Progress recorded successfully",
	})
}

func (gh *guruHandler) ProgressByStudent(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	studentID, err := c.ParamsInt("student_id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ProgressByStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student ID",
		})
	}

	progress, err := gh.suc.ProgressByStudent(c.Context(), studentID)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "ProgressByStudent")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve progress",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ProgressByStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Progress retrieved successfully",
		"data":    progress,
	})
}

func (gh *guruHandler) Profile(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	profile, err := gh.tuc.ProfileByAccount(c.Context(), userToken.UserID)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "GuruProfile")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve profile",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GuruProfile")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

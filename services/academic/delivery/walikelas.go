package delivery

import (
	"strconv"

	"hikmah/config"
	"hikmah/domain"
	"hikmah/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type walikelasHandler struct {
	cuc domain.ClassUseCase
	ruc domain.ReportUseCase
	buc domain.BehaviorUseCase
}

// NewWalikelasHandler registers the homeroom-teacher surface. Every route runs
// behind HomeroomRequired, which resolves the caller's class into locals.
func NewWalikelasHandler(app *fiber.App, db *gorm.DB, cuc domain.ClassUseCase, ruc domain.ReportUseCase, buc domain.BehaviorUseCase) {
	handler := &walikelasHandler{
		cuc: cuc,
		ruc: ruc,
		buc: buc,
	}

	route := app.Group("/walikelas", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleGuru), middleware.HomeroomRequired(db))
	route.Get("/santri", handler.ClassMembers)
	route.Put("/santri/:id/promotion", handler.SetPromotion)
	route.Get("/report", handler.ClassReport)
	route.Post("/santri/:id/behavior", handler.CreateBehaviorNote)
	route.Get("/santri/:id/behavior", handler.ListBehaviorNotes)
	route.Put("/behavior/:id", handler.UpdateBehaviorNote)
	route.Delete("/behavior/:id", handler.DeleteBehaviorNote)
}

func (wh *walikelasHandler) ClassMembers(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	classID := c.Locals("class_id").(int)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ClassMembers")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Valid year query parameter is required",
		})
	}

	students, err := wh.cuc.StudentsInClass(c.Context(), classID, year)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "ClassMembers")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve class members",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ClassMembers")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class members retrieved successfully",
		"data":    students,
	})
}

func (wh *walikelasHandler) SetPromotion(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	classID := c.Locals("class_id").(int)

	studentID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SetPromotion")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student ID",
		})
	}

	var req struct {
		AcademicYear int    `json:"academic_year"`
		Status       string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SetPromotion")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	status, err := domain.ParsePromotionStatus(req.Status)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SetPromotion")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	if req.AcademicYear < 2000 {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SetPromotion")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Valid academic year is required",
		})
	}

	if err := wh.cuc.SetPromotion(c.Context(), studentID, classID, req.AcademicYear, status); err != nil {
		httpStatus := statusForError(err)
		config.PrintLogInfo(&userToken.Username, httpStatus, "SetPromotion")
		return c.Status(httpStatus).JSON(fiber.Map{
			"success": false,
			"message": "Failed to set promotion status",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "SetPromotion")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Promotion status updated successfully",
	})
}

func (wh *walikelasHandler) ClassReport(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)
	classID := c.Locals("class_id").(int)

	year, semester, err := parsePeriod(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ClassReport")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	entries, err := wh.ruc.ClassReport(c.Context(), classID, year, semester)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "ClassReport")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to assemble class report",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ClassReport")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class report assembled successfully",
		"data":    entries,
	})
}

func (wh *walikelasHandler) CreateBehaviorNote(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	studentID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateBehaviorNote")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student ID",
		})
	}

	var req domain.BehaviorNoteRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateBehaviorNote")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateBehaviorNote")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if err := wh.buc.Create(c.Context(), userToken.UserID, studentID, &req); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "CreateBehaviorNote")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create behavior note",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateBehaviorNote")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Behavior note created successfully",
	})
}

func (wh *walikelasHandler) ListBehaviorNotes(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	studentID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ListBehaviorNotes")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student ID",
		})
	}

	notes, err := wh.buc.ListByStudent(c.Context(), studentID)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "ListBehaviorNotes")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve behavior notes",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ListBehaviorNotes")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Behavior notes retrieved successfully",
		"data":    notes,
	})
}

func (wh *walikelasHandler) UpdateBehaviorNote(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	noteID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "UpdateBehaviorNote")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID",
		})
	}

	var req struct {
		Category    string `json:"category"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "UpdateBehaviorNote")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if err := wh.buc.Update(c.Context(), userToken.UserID, noteID, req.Category, req.Description); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "UpdateBehaviorNote")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update behavior note",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "UpdateBehaviorNote")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Behavior note updated successfully",
	})
}

func (wh *walikelasHandler) DeleteBehaviorNote(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	noteID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "DeleteBehaviorNote")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID",
		})
	}

	if err := wh.buc.Delete(c.Context(), userToken.UserID, noteID); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "DeleteBehaviorNote")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete behavior note",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteBehaviorNote")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Behavior note deleted successfully",
	})
}

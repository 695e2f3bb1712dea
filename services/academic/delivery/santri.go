package delivery

import (
	"strconv"

	"hikmah/config"
	"hikmah/domain"
	"hikmah/middleware"

	"github.com/gofiber/fiber/v2"
)

type santriHandler struct {
	suc domain.StudentUseCase
	auc domain.AuthUseCase
	ruc domain.ReportUseCase
}

func NewSantriHandler(app *fiber.App, suc domain.StudentUseCase, auc domain.AuthUseCase, ruc domain.ReportUseCase) {
	handler := &santriHandler{
		suc: suc,
		auc: auc,
		ruc: ruc,
	}

	route := app.Group("/santri", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleSantri))
	route.Get("/biodata", handler.Biodata)
	route.Put("/biodata", handler.UpdateBiodata)
	route.Post("/change-password", handler.ChangePassword)
	route.Put("/change-username", handler.ChangeUsername)
	route.Get("/report", handler.Report)
}

func (sh *santriHandler) Biodata(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	student, err := sh.suc.Biodata(c.Context(), userToken.StudentID)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "Biodata")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve biodata",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "Biodata")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Biodata retrieved successfully",
		"data":    student,
	})
}

func (sh *santriHandler) UpdateBiodata(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var upd domain.BiodataUpdate
	if err := c.BodyParser(&upd); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "UpdateBiodata")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if err := sh.suc.UpdateBiodata(c.Context(), userToken.StudentID, &upd); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "UpdateBiodata")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update biodata",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "UpdateBiodata")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Biodata updated successfully",
	})
}

func (sh *santriHandler) ChangePassword(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ChangePassword")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ChangePassword")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Old and new passwords are required",
		})
	}

	if err := sh.auc.ChangePassword(c.Context(), userToken.UserID, req.OldPassword, req.NewPassword); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "ChangePassword")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to change password",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ChangePassword")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Password changed successfully",
	})
}

func (sh *santriHandler) ChangeUsername(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil || req.Username == "" {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ChangeUsername")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Username is required",
		})
	}

	if err := sh.auc.ChangeUsername(c.Context(), userToken.UserID, req.Username); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "ChangeUsername")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to change username",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ChangeUsername")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Username changed successfully",
	})
}

func parsePeriod(c *fiber.Ctx) (int, domain.Semester, error) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		return 0, "", fiber.NewError(fiber.StatusBadRequest, "Valid year query parameter is required")
	}
	semester, err := domain.ParseSemester(c.Query("semester"))
	if err != nil {
		return 0, "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return year, semester, nil
}

func (sh *santriHandler) Report(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	year, semester, err := parsePeriod(c)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "SantriReport")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	report, err := sh.ruc.StudentReport(c.Context(), userToken.StudentID, year, semester)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "SantriReport")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to assemble report",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "SantriReport")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Report assembled successfully",
		"data":    report,
	})
}

package delivery

import (
	"strconv"

	"hikmah/config"
	"hikmah/domain"
	"hikmah/middleware"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type adminHandler struct {
	suc domain.StudentUseCase
	tuc domain.TeacherUseCase
	cuc domain.ClassUseCase
	subc domain.SubjectUseCase
	auc domain.AuthUseCase
}

func NewAdminHandler(app *fiber.App, suc domain.StudentUseCase, tuc domain.TeacherUseCase, cuc domain.ClassUseCase, subc domain.SubjectUseCase, auc domain.AuthUseCase) {
	handler := &adminHandler{
		suc: suc,
		tuc: tuc,
		cuc: cuc,
		subc: subc,
		auc: auc,
	}

	route := app.Group("/admin", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin))

	route.Get("/registrations", handler.PendingRegistrations)
	route.Post("/registrations/:id/verify", handler.VerifyRegistration)

	route.Get("/santri", handler.ListSantri)
	route.Put("/santri/:id/nisn", handler.UpdateNISN)
	route.Delete("/santri/:id", handler.DeleteSantri)

	route.Post("/guru", handler.CreateGuru)
	route.Get("/guru", handler.ListGuru)
	route.Put("/guru/:id", handler.UpdateGuru)
	route.Delete("/guru/:id", handler.DeleteGuru)
	route.Get("/walikelas", handler.HomeroomList)

	route.Post("/classes", handler.CreateClass)
	route.Delete("/classes/:id", handler.DeleteClass)
	route.Put("/classes/:id/homeroom", handler.AssignHomeroom)
	route.Delete("/classes/:id/homeroom", handler.UnassignHomeroom)
	route.Post("/classes/:id/students", handler.PlaceStudent)
	route.Delete("/classes/:id/students/:student_id", handler.RemovePlacement)

	route.Post("/subjects", handler.CreateSubject)
	route.Get("/subjects", handler.ListSubjects)
	route.Delete("/subjects/:id", handler.DeleteSubject)
	route.Post("/curriculum", handler.AddSubjectToLevel)

	route.Post("/assignments", handler.CreateAssignment)
	route.Get("/assignments", handler.ListAssignments)
	route.Put("/assignments/:id", handler.UpdateAssignmentTeacher)
	route.Delete("/assignments/:id", handler.DeleteAssignment)

	route.Post("/change-password", handler.ChangePassword)
	route.Put("/change-username", handler.ChangeUsername)
}

func (ah *adminHandler) PendingRegistrations(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	pending, err := ah.suc.PendingRegistrations(c.Context())
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "PendingRegistrations")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve pending registrations",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "PendingRegistrations")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Pending registrations retrieved successfully",
		"data":    pending,
	})
}

func (ah *adminHandler) VerifyRegistration(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	studentID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "VerifyRegistration")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student ID",
		})
	}

	creds, err := ah.suc.Verify(c.Context(), studentID)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "VerifyRegistration")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to verify registration",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "VerifyRegistration")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Registration verified successfully",
		"data":    creds,
	})
}

func (ah *adminHandler) ListSantri(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "ListSantri")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Valid year query parameter is required",
		})
	}

	grouped, err := ah.suc.ListGrouped(c.Context(), year)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "ListSantri")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve students",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ListSantri")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Students retrieved successfully",
		"data":    grouped,
	})
}

func (ah *adminHandler) UpdateNISN(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	studentID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "UpdateNISN")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student ID",
		})
	}

	var req struct {
		NISN string `json:"nisn"`
	}
	if err := c.BodyParser(&req); err != nil || req.NISN == "" {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "UpdateNISN")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "NISN is required",
		})
	}

	if err := ah.suc.UpdateNISN(c.Context(), studentID, req.NISN); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "UpdateNISN")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update NISN",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "UpdateNISN")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "NISN updated successfully",
	})
}

func (ah *adminHandler) DeleteSantri(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	studentID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "DeleteSantri")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student ID",
		})
	}

	if err := ah.suc.Delete(c.Context(), studentID); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "DeleteSantri")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete student",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteSantri")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student deleted successfully",
	})
}

func (ah *adminHandler) CreateGuru(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var req domain.TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateGuru")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateGuru")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	created, err := ah.tuc.Create(c.Context(), &req)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "CreateGuru")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create teacher",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateGuru")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Teacher created successfully",
		"data":    created,
	})
}

func (ah *adminHandler) ListGuru(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	teachers, err := ah.tuc.List(c.Context())
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "ListGuru")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve teachers",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ListGuru")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Teachers retrieved successfully",
		"data":    teachers,
	})
}

func (ah *adminHandler) UpdateGuru(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	teacherID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "UpdateGuru")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid teacher ID",
		})
	}

	var req domain.TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "UpdateGuru")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "UpdateGuru")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if err := ah.tuc.Update(c.Context(), teacherID, &req); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "UpdateGuru")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update teacher",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "UpdateGuru")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Teacher updated successfully",
	})
}

func (ah *adminHandler) DeleteGuru(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	teacherID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "DeleteGuru")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid teacher ID",
		})
	}

	if err := ah.tuc.Delete(c.Context(), teacherID); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "DeleteGuru")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete teacher",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteGuru")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Teacher deleted successfully",
	})
}

func (ah *adminHandler) HomeroomList(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	grouped, err := ah.tuc.HomeroomList(c.Context())
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "HomeroomList")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve homeroom list",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "HomeroomList")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Homeroom list retrieved successfully",
		"data":    grouped,
	})
}

func (ah *adminHandler) CreateClass(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var class domain.Class
	if err := c.BodyParser(&class); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(class); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if err := ah.cuc.Create(c.Context(), &class); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "CreateClass")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create class",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateClass")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Class created successfully",
		"data":    class,
	})
}

func (ah *adminHandler) DeleteClass(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	classID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "DeleteClass")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid class ID",
		})
	}

	if err := ah.cuc.Delete(c.Context(), classID); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "DeleteClass")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete class, remove dependents first",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteClass")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class deleted successfully",
	})
}

func (ah *adminHandler) AssignHomeroom(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	classID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "AssignHomeroom")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid class ID",
		})
	}

	var req struct {
		TeacherID int `json:"teacher_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.TeacherID == 0 {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "AssignHomeroom")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Teacher ID is required",
		})
	}

	if err := ah.cuc.AssignHomeroom(c.Context(), classID, req.TeacherID); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "AssignHomeroom")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to assign homeroom teacher",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "AssignHomeroom")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Homeroom teacher assigned successfully",
	})
}

func (ah *adminHandler) UnassignHomeroom(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	classID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "UnassignHomeroom")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid class ID",
		})
	}

	if err := ah.cuc.UnassignHomeroom(c.Context(), classID); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "UnassignHomeroom")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to unassign homeroom teacher",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "UnassignHomeroom")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Homeroom teacher unassigned successfully",
	})
}

func (ah *adminHandler) PlaceStudent(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	classID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "PlaceStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid class ID",
		})
	}

	var req struct {
		StudentID    int `json:"student_id"`
		AcademicYear int `json:"academic_year"`
	}
	if err := c.BodyParser(&req); err != nil || req.StudentID == 0 || req.AcademicYear < 2000 {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "PlaceStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Student ID and a valid academic year are required",
		})
	}

	if err := ah.cuc.PlaceStudent(c.Context(), classID, req.StudentID, req.AcademicYear); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "PlaceStudent")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to place student",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "PlaceStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student placed successfully",
	})
}

func (ah *adminHandler) RemovePlacement(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	classID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "RemovePlacement")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid class ID",
		})
	}
	studentID, err := c.ParamsInt("student_id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "RemovePlacement")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student ID",
		})
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "RemovePlacement")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Valid year query parameter is required",
		})
	}

	if err := ah.cuc.RemovePlacement(c.Context(), classID, studentID, year); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "RemovePlacement")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to remove placement",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "RemovePlacement")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Placement removed successfully",
	})
}

func (ah *adminHandler) CreateSubject(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var subject domain.Subject
	if err := c.BodyParser(&subject); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(subject); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if err := ah.subc.Create(c.Context(), &subject); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "CreateSubject")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create subject",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateSubject")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Subject created successfully",
		"data":    subject,
	})
}

func (ah *adminHandler) ListSubjects(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	subjects, err := ah.subc.List(c.Context())
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "ListSubjects")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve subjects",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ListSubjects")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Subjects retrieved successfully",
		"data":    subjects,
	})
}

func (ah *adminHandler) DeleteSubject(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	subjectID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "DeleteSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid subject ID",
		})
	}

	if err := ah.subc.Delete(c.Context(), subjectID); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "DeleteSubject")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete subject, remove dependents first",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteSubject")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Subject deleted successfully",
	})
}

func (ah *adminHandler) AddSubjectToLevel(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var req struct {
		SubjectID int `json:"subject_id"`
		LevelID   int `json:"level_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.SubjectID == 0 || req.LevelID == 0 {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "AddSubjectToLevel")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Subject ID and level ID are required",
		})
	}

	if err := ah.subc.AddToLevel(c.Context(), req.SubjectID, req.LevelID); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "AddSubjectToLevel")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to add subject to level",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "AddSubjectToLevel")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Subject added to level successfully",
	})
}

func (ah *adminHandler) CreateAssignment(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var assignment domain.TeachingAssignment
	if err := c.BodyParser(&assignment); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateAssignment")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}
	if assignment.TeacherID == 0 || assignment.SubjectID == 0 || assignment.ClassID == 0 || assignment.AcademicYear < 2000 {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateAssignment")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Teacher, subject, class and a valid academic year are required",
		})
	}

	if err := ah.subc.CreateAssignment(c.Context(), &assignment); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "CreateAssignment")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create teaching assignment",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateAssignment")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Teaching assignment created successfully",
		"data":    assignment,
	})
}

func (ah *adminHandler) ListAssignments(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	assignments, err := ah.subc.ListAssignments(c.Context())
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "ListAssignments")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve teaching assignments",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ListAssignments")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Teaching assignments retrieved successfully",
		"data":    assignments,
	})
}

func (ah *adminHandler) UpdateAssignmentTeacher(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	assignmentID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "UpdateAssignmentTeacher")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid assignment ID",
		})
	}

	var req struct {
		TeacherID int `json:"teacher_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.TeacherID == 0 {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "UpdateAssignmentTeacher")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Teacher ID is required",
		})
	}

	if err := ah.subc.UpdateAssignmentTeacher(c.Context(), assignmentID, req.TeacherID); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "UpdateAssignmentTeacher")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update teaching assignment",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "UpdateAssignmentTeacher")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Teaching assignment updated successfully",
	})
}

func (ah *adminHandler) DeleteAssignment(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	assignmentID, err := c.ParamsInt("id")
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "DeleteAssignment")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid assignment ID",
		})
	}

	if err := ah.subc.DeleteAssignment(c.Context(), assignmentID); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "DeleteAssignment")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete teaching assignment",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteAssignment")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Teaching assignment deleted successfully",
	})
}

func (ah *adminHandler) ChangePassword(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil || req.OldPassword == "" || req.NewPassword == "" {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "AdminChangePassword")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Old and new passwords are required",
		})
	}

	if err := ah.auc.ChangePassword(c.Context(), userToken.UserID, req.OldPassword, req.NewPassword); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "AdminChangePassword")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to change password",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "AdminChangePassword")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Password changed successfully",
	})
}

func (ah *adminHandler) ChangeUsername(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil || req.Username == "" {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "AdminChangeUsername")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Username is required",
		})
	}

	if err := ah.auc.ChangeUsername(c.Context(), userToken.UserID, req.Username); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "AdminChangeUsername")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to change username",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "AdminChangeUsername")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Username changed successfully",
	})
}

// file: internals/route/setup.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	correctionRoute "sekolahku_backend/internals/features/school/attendance_corrections/route"
	policyRoute "sekolahku_backend/internals/features/school/attendance_policy/route"
	reportRoute "sekolahku_backend/internals/features/school/attendance_reports/route"
	auditRoute "sekolahku_backend/internals/features/school/audit/route"
	holidayRoute "sekolahku_backend/internals/features/school/holidays/route"
	studentRoute "sekolahku_backend/internals/features/school/students/route"
	assignmentRoute "sekolahku_backend/internals/features/school/teacher_assignments/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes: dua grup utama —
//
//	/api/a : khusus admin (kelola policy, libur, penugasan, putusan koreksi, audit)
//	/api/u : guru ke atas (absensi, review, pengajuan koreksi, laporan)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	api := app.Group("/api", authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	admin := api.Group("/a", authMiddleware.RequireRoles("manajemen sekolah", constants.AdminOnly...))
	user := api.Group("/u", authMiddleware.RequireRoles("operasional sekolah", constants.TeacherAndAbove...))

	log.Println("[INFO] Setting up AttendancePolicyRoutes...")
	policyRoute.AdminRoutes(admin, db)
	policyRoute.UserRoutes(user, db)

	log.Println("[INFO] Setting up HolidayRoutes...")
	holidayRoute.AdminRoutes(admin, db)
	holidayRoute.UserRoutes(user, db)

	log.Println("[INFO] Setting up StudentRoutes...")
	studentRoute.AdminRoutes(admin, db)

	log.Println("[INFO] Setting up TeacherAssignmentRoutes...")
	assignmentRoute.AdminRoutes(admin, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.UserRoutes(user, db)

	log.Println("[INFO] Setting up AttendanceCorrectionRoutes...")
	correctionRoute.AdminRoutes(admin, db)
	correctionRoute.UserRoutes(user, db)

	log.Println("[INFO] Setting up AttendanceReportRoutes...")
	reportRoute.UserRoutes(user, db)

	log.Println("[INFO] Setting up AuditRoutes...")
	auditRoute.AdminRoutes(admin, db)

	// uptime sederhana untuk cek liveness di belakang auth
	api.Get("/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "OK",
			"data":    fiber.Map{"uptime": time.Since(startTime).String()},
		})
	})
}

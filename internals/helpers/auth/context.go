// file: internals/helpers/auth/context.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

/* ==========================
   Locals keys (diisi middleware AuthJWT)
========================== */

const (
	LocUserID    = "user_id"
	LocOrgID     = "org_id"
	LocSchoolID  = "school_id"
	LocRole      = "role"
	LocTeacherID = "teacher_id"
)

/* ==========================
   Konteks aktor bertipe
   Satu kali resolve di boundary auth, lalu dioper eksplisit ke service —
   bukan map claims yang dibaca ulang di tiap callsite.
========================== */

type TeacherContext struct {
	TeacherID uuid.UUID
	UserID    uuid.UUID
	OrgID     uuid.UUID
	SchoolID  uuid.UUID
}

type AdminContext struct {
	UserID   uuid.UUID
	OrgID    uuid.UUID
	SchoolID uuid.UUID
}

func RoleFromLocals(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return ""
}

func localsUUID(c *fiber.Ctx, key string) (uuid.UUID, bool) {
	s, ok := c.Locals(key).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// TeacherFromLocals: konteks guru (termasuk koordinator — status koordinator
// dicek per-section di registry, bukan dari token).
func TeacherFromLocals(c *fiber.Ctx) (TeacherContext, error) {
	if RoleFromLocals(c) != constants.RoleTeacher {
		return TeacherContext{}, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher("absensi"))
	}
	teacherID, ok1 := localsUUID(c, LocTeacherID)
	userID, ok2 := localsUUID(c, LocUserID)
	orgID, ok3 := localsUUID(c, LocOrgID)
	schoolID, ok4 := localsUUID(c, LocSchoolID)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return TeacherContext{}, fiber.NewError(fiber.StatusUnauthorized, "Konteks teacher tidak lengkap di token")
	}
	return TeacherContext{TeacherID: teacherID, UserID: userID, OrgID: orgID, SchoolID: schoolID}, nil
}

func AdminFromLocals(c *fiber.Ctx) (AdminContext, error) {
	if RoleFromLocals(c) != constants.RoleAdmin {
		return AdminContext{}, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("admin sekolah"))
	}
	userID, ok1 := localsUUID(c, LocUserID)
	orgID, ok2 := localsUUID(c, LocOrgID)
	schoolID, ok3 := localsUUID(c, LocSchoolID)
	if !ok1 || !ok2 || !ok3 {
		return AdminContext{}, fiber.NewError(fiber.StatusUnauthorized, "Konteks admin tidak lengkap di token")
	}
	return AdminContext{UserID: userID, OrgID: orgID, SchoolID: schoolID}, nil
}

// SchoolIDFromLocals untuk endpoint read yang boleh diakses teacher maupun admin.
func SchoolIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := localsUUID(c, LocSchoolID)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school_id tidak ada di token")
	}
	return id, nil
}

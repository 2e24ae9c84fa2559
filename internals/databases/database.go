package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	correctionModel "sekolahku_backend/internals/features/school/attendance_corrections/model"
	policyModel "sekolahku_backend/internals/features/school/attendance_policy/model"
	auditModel "sekolahku_backend/internals/features/school/audit/model"
	holidayModel "sekolahku_backend/internals/features/school/holidays/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	assignmentModel "sekolahku_backend/internals/features/school/teacher_assignments/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(0)
}

// Migrate menjalankan AutoMigrate + index unik yang tidak bisa dinyatakan
// lewat tag GORM (COALESCE pada subject nullable).
func Migrate() {
	if err := DB.AutoMigrate(
		&policyModel.AttendancePolicyModel{},
		&holidayModel.HolidayModel{},
		&studentModel.StudentModel{},
		&studentModel.RollNumberSequenceModel{},
		&teacherModel.TeacherModel{},
		&assignmentModel.TeacherAssignmentModel{},
		&assignmentModel.SectionCoordinatorModel{},
		&attendanceModel.AttendanceRecordModel{},
		&correctionModel.AttendanceCorrectionModel{},
		&auditModel.AuditLogModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	// Kunci alami dokumen absensi harian. subject_id NULL (mode koordinator)
	// ikut dalam keunikan lewat COALESCE, supaya cuma ada satu dokumen
	// tanpa subject per class/section/tanggal.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_attendance_daily_slot
		ON attendance_records (
			attendance_record_school_id,
			attendance_record_class_id,
			attendance_record_section_id,
			COALESCE(attendance_record_subject_id, '00000000-0000-0000-0000-000000000000'::uuid),
			attendance_record_academic_year,
			attendance_record_date
		)
	`).Error; err != nil {
		log.Fatalf("❌ Gagal membuat index unik absensi: %v", err)
	}

	log.Println("✅ Migrasi skema selesai.")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	auditModel "hostelshub_backend/internals/features/audit/model"
	bookingModel "hostelshub_backend/internals/features/bookings/model"
	chatModel "hostelshub_backend/internals/features/chat/model"
	feeModel "hostelshub_backend/internals/features/fees/model"
	hostelModel "hostelshub_backend/internals/features/hostels/model"
	reportModel "hostelshub_backend/internals/features/reports/model"
	reservationModel "hostelshub_backend/internals/features/reservations/model"
	authModel "hostelshub_backend/internals/features/users/auth/model"
	userModel "hostelshub_backend/internals/features/users/user/model"
	verificationModel "hostelshub_backend/internals/features/verification/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=hostelshub&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible with PgBouncer transaction pooling
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync with the models at boot.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&userModel.StudentProfileModel{},
		&userModel.ManagerProfileModel{},
		&authModel.RefreshTokenModel{},
		&hostelModel.HostelModel{},
		&bookingModel.BookingModel{},
		&bookingModel.ReviewModel{},
		&reservationModel.ReservationModel{},
		&feeModel.MonthlyAdminFeeModel{},
		&reportModel.ReportModel{},
		&chatModel.ConversationModel{},
		&chatModel.MessageModel{},
		&auditModel.AuditLogModel{},
		&verificationModel.VerificationRequestModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] automigrate failed: %v", err)
	}
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wallxy/internal/config"
	"wallxy/internal/db"
	"wallxy/internal/model"
	"wallxy/internal/repository"
)

// seedPassword is shared by every demo account.
const seedPassword = "password123"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.Project{},
		&model.Application{},
		&model.Proposal{},
		&model.Notification{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)
	proposalRepo := repository.NewProposalRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	employer := seedUser(ctx, userRepo, &model.User{
		Email:        "employer@wallxy.dev",
		PasswordHash: string(hash),
		FullName:     "Dana Employer",
		UserType:     model.UserTypeEmployer,
		Location:     "Berlin, Germany",
	})
	client := seedUser(ctx, userRepo, &model.User{
		Email:        "client@wallxy.dev",
		PasswordHash: string(hash),
		FullName:     "Chris Client",
		UserType:     model.UserTypeClient,
		Location:     "Austin, TX",
	})
	seeker := seedUser(ctx, userRepo, &model.User{
		Email:           "seeker@wallxy.dev",
		PasswordHash:    string(hash),
		FullName:        "Sam Seeker",
		UserType:        model.UserTypeJobSeeker,
		Skills:          model.StringList{"AutoCAD", "Revit", "SketchUp"},
		ExperienceLevel: "mid",
		Location:        "Remote",
	})
	freelancer := seedUser(ctx, userRepo, &model.User{
		Email:        "freelancer@wallxy.dev",
		PasswordHash: string(hash),
		FullName:     "Farah Freelancer",
		UserType:     model.UserTypeFreelancer,
		Skills:       model.StringList{"Go", "React", "PostgreSQL"},
		HourlyRate:   decimal.NewFromInt(65),
		Location:     "Lisbon, Portugal",
	})

	job := &model.Job{
		EmployerID:      employer.ID,
		Title:           "Architectural Drafter",
		CompanyName:     "Studio Nord",
		Description:     "Produce construction drawings for residential projects.",
		Requirements:    model.StringList{"3+ years drafting experience", "Fluent English"},
		Category:        "engineering",
		JobType:         "full-time",
		ExperienceLevel: "mid",
		SalaryMin:       decimal.NewFromInt(48000),
		SalaryMax:       decimal.NewFromInt(62000),
		Location:        "Berlin, Germany",
		Skills:          model.StringList{"AutoCAD", "Revit"},
		Status:          model.ListingStatusActive,
	}
	if err := jobRepo.Create(ctx, job); err != nil {
		log.Fatalf("Failed to seed job: %v", err)
	}

	project := &model.Project{
		ClientID:    client.ID,
		Title:       "Marketplace dashboard",
		Description: "Build an analytics dashboard for an existing marketplace API.",
		Category:    "web-development",
		BudgetType:  "fixed",
		BudgetMin:   decimal.NewFromInt(3000),
		BudgetMax:   decimal.NewFromInt(5000),
		Duration:    "6 weeks",
		Skills:      model.StringList{"Go", "React"},
		Status:      model.ListingStatusActive,
	}
	if err := projectRepo.Create(ctx, project); err != nil {
		log.Fatalf("Failed to seed project: %v", err)
	}

	application := &model.Application{
		JobID:       job.ID,
		ApplicantID: seeker.ID,
		CoverLetter: "I have five years of drafting experience on residential builds.",
		Status:      model.SubmissionStatusPending,
	}
	if err := applicationRepo.Create(ctx, application); err != nil {
		log.Fatalf("Failed to seed application: %v", err)
	}
	if err := jobRepo.IncrementApplicants(ctx, job.ID); err != nil {
		log.Fatalf("Failed to bump applicant counter: %v", err)
	}

	proposal := &model.Proposal{
		ProjectID:      project.ID,
		FreelancerID:   freelancer.ID,
		CoverLetter:    "I ship Go + React dashboards weekly; happy to share references.",
		ProposedBudget: decimal.NewFromInt(4200),
		DeliveryTime:   "5 weeks",
		Status:         model.SubmissionStatusPending,
	}
	if err := proposalRepo.Create(ctx, proposal); err != nil {
		log.Fatalf("Failed to seed proposal: %v", err)
	}
	if err := projectRepo.IncrementProposals(ctx, project.ID); err != nil {
		log.Fatalf("Failed to bump proposal counter: %v", err)
	}

	notifications := []model.Notification{
		{
			UserID:  employer.ID,
			Title:   "New application",
			Message: "Sam Seeker applied to \"Architectural Drafter\"",
			Type:    model.NotificationTypeApplication,
			Link:    "/jobs/" + job.ID,
		},
		{
			UserID:  client.ID,
			Title:   "New proposal",
			Message: "Farah Freelancer sent a proposal for \"Marketplace dashboard\"",
			Type:    model.NotificationTypeProposal,
			Link:    "/projects/" + project.ID,
		},
	}
	for i := range notifications {
		if err := notificationRepo.Create(ctx, &notifications[i]); err != nil {
			log.Fatalf("Failed to seed notification: %v", err)
		}
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Users: employer, client, seeker, freelancer (password %q)", seedPassword)
	log.Printf("  - Job %s with one pending application", job.ID)
	log.Printf("  - Project %s with one pending proposal", project.ID)
}

// seedUser creates the user unless the email is already registered, in
// which case the existing record is reused so reruns stay idempotent.
func seedUser(ctx context.Context, repo repository.UserRepository, user *model.User) *model.User {
	existing, err := repo.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		log.Printf("User %s already exists, reusing", user.Email)
		return existing
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to look up user %s: %v", user.Email, err)
	}
	if err := repo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to seed user %s: %v", user.Email, err)
	}
	return user
}

package database

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/talentflow-hq/talentflow/internal/models"
)

// Seed bootstraps the store with demo data: 25 jobs, 1000 candidates and 3
// assessments. It is idempotent, gated by a count check, so restarting the
// server never duplicates data.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	var existing int64
	if err := db.Model(&models.Job{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("counting jobs: %w", err)
	}
	if existing > 0 {
		logger.Debug("seed skipped, data already present", zap.Int64("jobs", existing))
		return nil
	}

	logger.Info("seeding database with initial data")

	jobs := seedJobs()
	if err := db.CreateInBatches(jobs, 50).Error; err != nil {
		return fmt.Errorf("seeding jobs: %w", err)
	}
	if err := db.CreateInBatches(seedCandidates(jobs), 200).Error; err != nil {
		return fmt.Errorf("seeding candidates: %w", err)
	}
	if err := db.Create(seedAssessments()).Error; err != nil {
		return fmt.Errorf("seeding assessments: %w", err)
	}

	logger.Info("database seeded")
	return nil
}

var (
	departments = []string{"Engineering", "Design", "Product", "Marketing", "Sales"}
	locations   = []string{"Remote", "San Francisco, CA", "New York, NY", "Austin, TX", "Seattle, WA"}
	jobTypes    = []models.EmploymentType{models.EmploymentFullTime, models.EmploymentPartTime, models.EmploymentContract}
	tagPool     = []string{"React", "TypeScript", "Python", "Design", "Marketing", "Sales"}
)

func seedDate(day int) string {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
}

func seedJobs() []models.Job {
	jobs := []models.Job{
		{
			Title: "Senior Frontend Developer", Slug: "senior-frontend-developer",
			Department: "Engineering", Location: "San Francisco, CA",
			Type: models.EmploymentFullTime, Salary: "$120k - $160k",
			Status: models.JobActive, Applicants: 24, PostedDate: seedDate(15),
			Tags: []string{"React", "TypeScript", "Frontend"}, DisplayOrder: 1,
		},
		{
			Title: "UX Designer", Slug: "ux-designer",
			Department: "Design", Location: "New York, NY",
			Type: models.EmploymentFullTime, Salary: "$90k - $120k",
			Status: models.JobActive, Applicants: 18, PostedDate: seedDate(12),
			Tags: []string{"Design", "Figma", "User Research"}, DisplayOrder: 2,
		},
	}

	for i := 3; i <= 25; i++ {
		status := models.JobActive
		if rand.Float64() <= 0.3 {
			status = models.JobArchived
		}
		jobs = append(jobs, models.Job{
			Title:        fmt.Sprintf("Job Title %d", i),
			Slug:         fmt.Sprintf("job-title-%d", i),
			Department:   departments[rand.Intn(len(departments))],
			Location:     locations[rand.Intn(len(locations))],
			Type:         jobTypes[rand.Intn(len(jobTypes))],
			Salary:       fmt.Sprintf("$%dk - $%dk", 60+rand.Intn(100), 100+rand.Intn(100)),
			Status:       status,
			Applicants:   rand.Intn(50),
			PostedDate:   seedDate(rand.Intn(30) + 1),
			Tags:         tagPool[:rand.Intn(3)+1],
			DisplayOrder: i,
		})
	}
	return jobs
}

func seedCandidates(jobs []models.Job) []models.Candidate {
	candidates := make([]models.Candidate, 0, 1000)
	for i := 1; i <= 1000; i++ {
		candidates = append(candidates, models.Candidate{
			Name:        fmt.Sprintf("Candidate %d", i),
			Email:       fmt.Sprintf("candidate%d@email.com", i),
			Phone:       fmt.Sprintf("+1 (555) %03d-%04d", rand.Intn(900)+100, rand.Intn(9000)+1000),
			Position:    jobs[rand.Intn(len(jobs))].Title,
			Stage:       models.Stages[rand.Intn(len(models.Stages))],
			AppliedDate: seedDate(rand.Intn(30) + 1),
			Location:    locations[rand.Intn(len(locations))],
		})
	}
	return candidates
}

func seedAssessments() []models.Assessment {
	return []models.Assessment{
		{
			Title:       "Frontend Developer Technical Assessment",
			Description: "Comprehensive evaluation of React, TypeScript, and modern frontend development skills",
			Status:      models.AssessmentPublished,
			Responses:   45,
			CreatedDate: seedDate(10),
			LastUpdated: seedDate(15),
			Sections: []models.AssessmentSection{
				{
					ID:          "section-1",
					Title:       "Technical Knowledge",
					Description: "Core frontend development concepts",
					Order:       1,
					Questions: []models.AssessmentQuestion{
						{
							ID: "q1", Type: models.QuestionSingleChoice,
							Title: "What is the purpose of React hooks?", Required: true,
							Options: []string{
								"To manage state in functional components",
								"To create class components",
								"To style components",
								"To handle routing",
							},
							Order: 1,
						},
						{
							ID: "q2", Type: models.QuestionMultiChoice,
							Title: "Which of the following are valid TypeScript types?", Required: true,
							Options: []string{"string", "number", "boolean", "undefined", "symbol"},
							Order:   2,
						},
						{
							ID: "q3", Type: models.QuestionLongText,
							Title: "Explain the difference between `useEffect` and `useLayoutEffect`", Required: true,
							Validation: &models.ValidationRules{MinLength: intPtr(50), MaxLength: intPtr(500)},
							Order:      3,
						},
					},
				},
			},
		},
		{
			Title:       "UX Design Portfolio Review",
			Description: "Design thinking, user research, and prototyping skills evaluation",
			Status:      models.AssessmentPublished,
			Responses:   23,
			CreatedDate: seedDate(8),
			LastUpdated: seedDate(12),
			Sections: []models.AssessmentSection{
				{
					ID: "section-1", Title: "Design Process", Order: 1,
					Questions: []models.AssessmentQuestion{
						{
							ID: "q1", Type: models.QuestionSingleChoice,
							Title: "What is the first step in the design thinking process?", Required: true,
							Options: []string{"Empathize", "Define", "Ideate", "Prototype"},
							Order:   1,
						},
					},
				},
			},
		},
		{
			Title:       "Product Management Case Study",
			Description: "Strategic thinking and product roadmap planning assessment",
			Status:      models.AssessmentDraft,
			Responses:   0,
			CreatedDate: seedDate(16),
			LastUpdated: seedDate(16),
			Sections: []models.AssessmentSection{
				{
					ID: "section-1", Title: "Strategic Thinking", Order: 1,
					Questions: []models.AssessmentQuestion{
						{
							ID: "q1", Type: models.QuestionLongText,
							Title: "How would you prioritize features for a new product launch?", Required: true,
							Validation: &models.ValidationRules{MinLength: intPtr(100), MaxLength: intPtr(1000)},
							Order:      1,
						},
					},
				},
			},
		},
	}
}

func intPtr(n int) *int {
	return &n
}

package seed

import (
	"fmt"

	"collabotree_backend/internal/auth"
	"collabotree_backend/internal/logger"
	"collabotree_backend/internal/models"
	"collabotree_backend/internal/repositories"
)

type demoStudent struct {
	email      string
	name       string
	university string
	studentID  string
	program    string
	status     models.VerificationStatus
	skills     []string
	projects   []demoProject
}

type demoProject struct {
	title        string
	slug         string
	description  string
	price        int
	category     string
	deliveryTime int
}

// demoPassword - пароль всех демонстрационных аккаунтов
const demoPassword = "password123"

// Demo наполняет витрину демонстрационными пользователями и проектами.
// Повторный запуск безопасен: сид пропускается, если демо-админ уже есть.
func Demo(repos *repositories.Repositories) error {
	if _, err := repos.Users.FindByEmail("admin@collabotree.com"); err == nil {
		logger.Info("Demo data already seeded, skipping")
		return nil
	}

	adminHash, err := auth.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("hash demo admin password: %w", err)
	}
	admin := &models.User{
		Email:        "admin@collabotree.com",
		PasswordHash: adminHash,
		Name:         "Admin User",
		Role:         models.UserRoleAdmin,
	}
	if err := repos.Users.Create(admin); err != nil {
		return fmt.Errorf("seed demo admin: %w", err)
	}

	studentHash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	for _, s := range demoStudents() {
		user := &models.User{
			Email:        s.email,
			PasswordHash: studentHash,
			Name:         s.name,
			Role:         models.UserRoleStudent,
		}
		if err := repos.Users.Create(user); err != nil {
			return fmt.Errorf("seed student %s: %w", s.email, err)
		}

		profile := &models.StudentProfile{
			UserID:             user.ID,
			University:         s.university,
			StudentID:          s.studentID,
			Program:            s.program,
			VerificationStatus: s.status,
		}
		if err := repos.Profiles.CreateStudentProfile(profile); err != nil {
			return fmt.Errorf("seed student profile %s: %w", s.email, err)
		}

		for _, p := range s.projects {
			project := &models.Project{
				OwnerID:      user.ID,
				Title:        p.title,
				Slug:         p.slug,
				Description:  p.description,
				Skills:       s.skills,
				Tags:         []string{p.category},
				Price:        p.price,
				Status:       models.ProjectStatusListed,
				DeliveryTime: p.deliveryTime,
			}
			if err := repos.Projects.Create(project); err != nil {
				return fmt.Errorf("seed project %q: %w", p.title, err)
			}
		}
	}

	for _, b := range demoBuyers() {
		user := &models.User{
			Email:        b.email,
			PasswordHash: studentHash,
			Name:         b.name,
			Role:         models.UserRoleBuyer,
		}
		if err := repos.Users.Create(user); err != nil {
			return fmt.Errorf("seed buyer %s: %w", b.email, err)
		}

		companyName := b.companyName
		profile := &models.BuyerProfile{
			UserID:      user.ID,
			CompanyName: &companyName,
		}
		if err := repos.Profiles.CreateBuyerProfile(profile); err != nil {
			return fmt.Errorf("seed buyer profile %s: %w", b.email, err)
		}
	}

	logger.Info("Demo data seeded")
	return nil
}

func demoStudents() []demoStudent {
	return []demoStudent{
		{
			email:      "alex.kim@mit.edu",
			name:       "Alex Kim",
			university: "MIT",
			studentID:  "STU-2024-001",
			program:    "Computer Science",
			status:     models.VerificationApproved,
			skills:     []string{"React", "Node.js", "MongoDB", "JavaScript"},
			projects: []demoProject{{
				title:        "Full-Stack React Application",
				slug:         "full-stack-react-application",
				description:  "I'll build a modern, responsive web application using React, Node.js, and MongoDB with authentication and payment integration.",
				price:        299,
				category:     "Web Development",
				deliveryTime: 8,
			}},
		},
		{
			email:      "emma.rodriguez@stanford.edu",
			name:       "Emma Rodriguez",
			university: "Stanford",
			studentID:  "STU-2024-002",
			program:    "Design",
			status:     models.VerificationApproved,
			skills:     []string{"UI/UX", "Figma", "Branding", "Graphic Design"},
			projects: []demoProject{{
				title:        "Brand Identity Package",
				slug:         "brand-identity-package",
				description:  "Complete brand identity design including logo, business cards, letterhead, and brand guidelines for startups.",
				price:        149,
				category:     "Design",
				deliveryTime: 3,
			}},
		},
		{
			email:      "david.park@berkeley.edu",
			name:       "David Park",
			university: "UC Berkeley",
			studentID:  "STU-2024-003",
			program:    "Data Science",
			status:     models.VerificationApproved,
			skills:     []string{"Python", "Machine Learning", "Tableau", "SQL"},
			projects: []demoProject{{
				title:        "Data Analysis & Visualization",
				slug:         "data-analysis-visualization",
				description:  "Comprehensive data analysis with Python, machine learning insights, and interactive dashboards using Tableau.",
				price:        399,
				category:     "Data Science",
				deliveryTime: 6,
			}},
		},
		{
			// Непроверенный студент, чтобы в очереди модерации было что показать
			email:      "sarah.chen@berkeley.edu",
			name:       "Sarah Chen",
			university: "UC Berkeley",
			studentID:  "STU-2024-004",
			program:    "Computer Science",
			status:     models.VerificationPending,
			skills:     []string{"React", "TypeScript", "Node.js"},
		},
	}
}

type demoBuyer struct {
	email       string
	name        string
	companyName string
}

func demoBuyers() []demoBuyer {
	return []demoBuyer{
		{email: "buyer1@company.com", name: "John Smith", companyName: "Tech Startup Inc"},
		{email: "buyer2@business.com", name: "Jane Doe", companyName: "Marketing Solutions"},
	}
}

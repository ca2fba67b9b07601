package fakeapi

import (
	"fmt"

	"github.com/dmitrijs2005/devshowcase/internal/models"
	"github.com/dmitrijs2005/devshowcase/internal/timex"
	"golang.org/x/crypto/bcrypt"
)

// SeedPassword is the password of every seeded account.
const SeedPassword = "password123"

var seedUsers = []models.User{
	{
		ID: "1", Username: "johndoe", Email: "john@example.com", FullName: "John Doe",
		Bio:      "Full-stack developer passionate about creating innovative web applications",
		Avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		Location: "San Francisco, CA", Website: "https://johndoe.dev",
		Skills:     []string{"React", "Node.js", "TypeScript", "Python"},
		JoinedDate: timex.MustParse("2023-01-15"),
	},
	{
		ID: "2", Username: "sarahsmith", Email: "sarah@example.com", FullName: "Sarah Smith",
		Bio:      "UI/UX Designer and Frontend Developer with a love for clean, intuitive designs",
		Avatar:   "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		Location: "New York, NY", Website: "https://sarahdesigns.com",
		Skills:     []string{"React", "Vue.js", "Figma", "CSS"},
		JoinedDate: timex.MustParse("2023-02-20"),
	},
	{
		ID: "3", Username: "mikejohnson", Email: "mike@example.com", FullName: "Mike Johnson",
		Bio:      "Backend engineer specializing in scalable systems and microservices",
		Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		Location: "Austin, TX", Website: "https://miketech.io",
		Skills:     []string{"Java", "Spring", "Docker", "AWS"},
		JoinedDate: timex.MustParse("2022-11-10"),
	},
	{
		ID: "4", Username: "emilychen", Email: "emily@example.com", FullName: "Emily Chen",
		Bio:      "Data scientist and machine learning enthusiast building AI-powered applications",
		Avatar:   "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
		Location: "Seattle, WA", Website: "https://emilychen.ai",
		Skills:     []string{"Python", "TensorFlow", "React", "SQL"},
		JoinedDate: timex.MustParse("2023-03-05"),
	},
}

var seedProjects = []models.Project{
	{
		ID: "1", Title: "Task Management App",
		Description:  "A collaborative task management application built with React and Node.js. Features include real-time updates, team collaboration, drag-and-drop functionality, and project analytics.",
		ImageURL:     "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=400&h=300&fit=crop",
		GithubURL:    "https://github.com/johndoe/task-manager",
		LiveURL:      "https://taskapp.johndoe.dev",
		Technologies: []string{"React", "Node.js", "Socket.io", "MongoDB"},
		AuthorID:     "1",
		CreatedAt:    timex.MustParse("2024-01-15T10:00:00Z"), UpdatedAt: timex.MustParse("2024-01-20T14:30:00Z"),
	},
	{
		ID: "2", Title: "E-commerce Dashboard",
		Description:  "Modern admin dashboard for e-commerce platforms with advanced analytics, inventory management, and customer insights. Built with Vue.js and features beautiful data visualizations.",
		ImageURL:     "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400&h=300&fit=crop",
		GithubURL:    "https://github.com/sarahsmith/ecommerce-dashboard",
		LiveURL:      "https://dashboard.sarahdesigns.com",
		Technologies: []string{"Vue.js", "Chart.js", "Express", "PostgreSQL"},
		AuthorID:     "2",
		CreatedAt:    timex.MustParse("2024-02-01T09:15:00Z"), UpdatedAt: timex.MustParse("2024-02-10T16:45:00Z"),
	},
	{
		ID: "3", Title: "Microservices API Gateway",
		Description:  "Scalable API gateway built with Spring Boot for managing microservices architecture. Includes authentication, rate limiting, load balancing, and comprehensive monitoring.",
		ImageURL:     "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=400&h=300&fit=crop",
		GithubURL:    "https://github.com/mikejohnson/api-gateway",
		Technologies: []string{"Java", "Spring Boot", "Docker", "Kubernetes", "Redis"},
		AuthorID:     "3",
		CreatedAt:    timex.MustParse("2024-01-20T11:30:00Z"), UpdatedAt: timex.MustParse("2024-01-25T13:20:00Z"),
	},
	{
		ID: "4", Title: "AI-Powered Recipe Recommender",
		Description:  "Machine learning application that recommends recipes based on available ingredients, dietary preferences, and past user behavior. Features a beautiful React frontend and Python ML backend.",
		ImageURL:     "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=300&fit=crop",
		GithubURL:    "https://github.com/emilychen/recipe-ai",
		LiveURL:      "https://recipes.emilychen.ai",
		Technologies: []string{"Python", "TensorFlow", "React", "FastAPI", "Docker"},
		AuthorID:     "4",
		CreatedAt:    timex.MustParse("2024-02-05T08:00:00Z"), UpdatedAt: timex.MustParse("2024-02-12T15:10:00Z"),
	},
	{
		ID: "5", Title: "Social Media Analytics Tool",
		Description:  "Comprehensive analytics platform for social media managers to track engagement, analyze trends, and schedule content across multiple platforms.",
		ImageURL:     "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=400&h=300&fit=crop",
		GithubURL:    "https://github.com/johndoe/social-analytics",
		LiveURL:      "https://analytics.johndoe.dev",
		Technologies: []string{"React", "D3.js", "Node.js", "Redis", "PostgreSQL"},
		AuthorID:     "1",
		CreatedAt:    timex.MustParse("2024-01-10T12:45:00Z"), UpdatedAt: timex.MustParse("2024-01-18T10:30:00Z"),
	},
	{
		ID: "6", Title: "Mobile Banking App Design",
		Description:  "Complete UI/UX design system for a modern mobile banking application. Includes user research, wireframes, prototypes, and design components.",
		ImageURL:     "https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=400&h=300&fit=crop",
		Technologies: []string{"Figma", "Principle", "Adobe XD", "Sketch"},
		AuthorID:     "2",
		CreatedAt:    timex.MustParse("2024-01-25T14:20:00Z"), UpdatedAt: timex.MustParse("2024-02-01T09:15:00Z"),
	},
}

var seedComments = []models.Comment{
	{
		ID: "1", Content: "This is fantastic! The real-time collaboration feature works seamlessly. Great job on the UI design too.",
		AuthorID: "2", ProjectID: "1",
		CreatedAt: timex.MustParse("2024-01-16T15:30:00Z"), UpdatedAt: timex.MustParse("2024-01-16T15:30:00Z"),
	},
	{
		ID: "2", Content: "Love the clean architecture and the use of Socket.io for real-time updates. Have you considered adding file attachments to tasks?",
		AuthorID: "3", ProjectID: "1",
		CreatedAt: timex.MustParse("2024-01-17T10:15:00Z"), UpdatedAt: timex.MustParse("2024-01-17T10:15:00Z"),
	},
	{
		ID: "3", Content: "The data visualizations are stunning! The performance is also impressive even with large datasets.",
		AuthorID: "4", ProjectID: "2",
		CreatedAt: timex.MustParse("2024-02-02T11:45:00Z"), UpdatedAt: timex.MustParse("2024-02-02T11:45:00Z"),
	},
	{
		ID: "4", Content: "Excellent work on the microservices architecture. The documentation is also very comprehensive.",
		AuthorID: "1", ProjectID: "3",
		CreatedAt: timex.MustParse("2024-01-21T09:20:00Z"), UpdatedAt: timex.MustParse("2024-01-21T09:20:00Z"),
	},
	{
		ID: "5", Content: "The ML model recommendations are surprisingly accurate! How did you handle the cold start problem?",
		AuthorID: "2", ProjectID: "4",
		CreatedAt: timex.MustParse("2024-02-06T16:10:00Z"), UpdatedAt: timex.MustParse("2024-02-06T16:10:00Z"),
	},
}

// Seed loads the demo users, projects and comments. Every account gets
// SeedPassword.
func (d *Data) Seed() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), d.hashCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range seedUsers {
		d.users = append(d.users, u.Clone())
		d.passwords[u.ID] = hash
	}
	for _, p := range seedProjects {
		p.Technologies = append([]string(nil), p.Technologies...)
		d.projects = append(d.projects, p)
	}
	d.comments = append(d.comments, seedComments...)
	return nil
}

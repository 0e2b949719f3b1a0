package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"campusevents/config"
	"campusevents/internal/domain"
	"campusevents/internal/repository/postgres"
)

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &t
}

// sampleEvents is the demo data set loaded by the seeder. Reseeding wipes all
// existing events and registrations first.
var sampleEvents = []*domain.Event{
	{Title: "Tech Expo: Future of Engineering", Description: "Exhibition of student projects in robotics, AI, IoT, and sustainable tech.", Date: date("2026-03-14"), Location: "Central Expo Ground", Category: "Academic Project"},
	{Title: "Final Year Project Showcase (ECE & CSE)", Description: "Capstone demos: embedded systems, web apps, ML prototypes, and IoT builds.", Date: date("2026-03-20"), Location: "Innovation Atrium", Category: "Academic Project"},
	{Title: "IoT for Smart Campus Workshop", Description: "Hands-on workshop building IoT prototypes for smarter campus infrastructure.", Date: date("2026-03-12"), Location: "Electronics Lab 2", Category: "Workshop"},
	{Title: "Advanced React Workshop", Description: "Hands-on workshop on hooks, state management, and performance tuning.", Date: date("2026-03-27"), Location: "Software Lab 5", Category: "Workshop"},
	{Title: "AI & Machine Learning Hackathon", Description: "24-hour hackathon focused on real-world AI and ML problem statements.", Date: date("2026-03-11"), Location: "Computer Science Innovation Lab", Category: "Hackathon"},
	{Title: "Overnight Hack Sprint", Description: "Short 12-hour hackathon focusing on campus problem statements.", Date: date("2026-03-29"), Location: "Innovation Hub", Category: "Hackathon"},
	{Title: "Robotics Challenge 2026", Description: "Build and program autonomous robots to complete obstacle courses and tasks.", Date: date("2026-03-10"), Location: "Mechanical Engineering Block Auditorium", Category: "Competition"},
	{Title: "Coding Marathon - Algorithms & Data Structures", Description: "Intense competitive programming contest for algorithm enthusiasts.", Date: date("2026-03-13"), Location: "Main Seminar Hall", Category: "Competition"},
	{Title: "College Tech Fest Inauguration", Description: "Opening ceremony with chief guest talk and cultural performance.", Date: date("2026-03-01"), Location: "Main Auditorium", Category: "Fest"},
	{Title: "Open Mic + Cultural Night", Description: "Music, poetry, and performances to wrap up the fest with high energy.", Date: date("2026-03-22"), Location: "Open Air Theatre", Category: "Fest"},
	{Title: "Sustainability in Tech Panel", Description: "Discussion on sustainable engineering practices and green tech initiatives.", Date: date("2026-03-19"), Location: "Conference Room 3", Category: "Talk"},
	{Title: "Alumni Tech Talk Series", Description: "Alumni share industry experience across software, core, and research.", Date: date("2026-04-02"), Location: "Seminar Hall C", Category: "Talk"},
	{Title: "Hostel Coding Jam", Description: "Informal late-night coding meetup in hostel common room.", Date: date("2026-04-04"), Location: "Hostel Common Room", Category: "General"},
	{Title: "Dept Open House & Lab Tour", Description: "Guided tours of department labs for juniors and school visitors.", Date: date("2026-04-05"), Location: "Department Blocks", Category: "General"},
}

// sampleRegistrations maps an index into sampleEvents to attendee name/email pairs.
var sampleRegistrations = []struct {
	eventIndex int
	name       string
	email      string
}{
	{0, "Alice Johnson", "alice@example.com"},
	{1, "Rahul Verma", "rahul@example.com"},
	{2, "Mei Chen", "mei@example.com"},
	{5, "Carlos Mendes", "carlos@example.com"},
	{6, "Priya Singh", "priya@example.com"},
	{8, "Liam O'Connor", "liam@example.com"},
}

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database for seeding")

	mig := filepath.Join("migrations", "0001_init.sql")
	if err := postgres.RunMigration(ctx, db, mig); err != nil {
		logger.Error("migration failed", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	if err := registrationRepo.DeleteAll(ctx); err != nil {
		logger.Error("clear registrations", "err", err)
		os.Exit(1)
	}
	if err := eventRepo.DeleteAll(ctx); err != nil {
		logger.Error("clear events", "err", err)
		os.Exit(1)
	}

	for _, e := range sampleEvents {
		if err := eventRepo.Create(ctx, e); err != nil {
			logger.Error("insert event", "title", e.Title, "err", err)
			os.Exit(1)
		}
	}
	logger.Info("inserted events", "count", len(sampleEvents))

	now := time.Now().UTC()
	for i, r := range sampleRegistrations {
		reg := domain.NewRegistration(sampleEvents[r.eventIndex].ID, r.name, r.email, now.Add(time.Duration(i)*time.Minute))
		if err := registrationRepo.Create(ctx, reg); err != nil {
			logger.Error("insert registration", "name", r.name, "err", err)
			os.Exit(1)
		}
	}
	logger.Info("inserted registrations", "count", len(sampleRegistrations))
	logger.Info("seeding complete")
}

// Command main runs the database seeder.
package main

import (
	"flag"
	"log"

	"agora/internal/config"
	"agora/internal/database"
	"agora/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.NumUsers, "users", opts.NumUsers, "Number of users to create")
	flag.IntVar(&opts.NumFeeds, "feeds", opts.NumFeeds, "Number of feeds to create")
	flag.IntVar(&opts.NumArticles, "articles", opts.NumArticles, "Number of articles to create")
	flag.IntVar(&opts.NumPolls, "polls", opts.NumPolls, "Number of polls to create")
	flag.IntVar(&opts.NumQs, "questions", opts.NumQs, "Number of questions to create")
	flag.BoolVar(&opts.ShouldClean, "clean", opts.ShouldClean, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.NewSeeder(db).Run(opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Seed users share the password: password123")
}

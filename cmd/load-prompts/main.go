package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strings"

	"prompt-library/internal/config"
	"prompt-library/internal/db"
	"prompt-library/internal/generation"
	"prompt-library/internal/library"

	"golang.org/x/text/language"
)

type promptRecord struct {
	Title    string
	Text     string
	Negative string
}

func main() {
	filePath := flag.String("file", "prompts.csv", "path to prompts csv (title,text[,negativeText])")
	serverURL := flag.String("server", "", "base URL of a running server; when set, a thumbnail is generated per prompt")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}
	store := library.NewStore(db.NewSlot(conn, cfg.SlotName), language.Make(cfg.Locale))

	records, err := readPrompts(*filePath)
	if err != nil {
		log.Fatalf("failed to read prompts: %v", err)
	}

	var client *generation.Client
	if *serverURL != "" {
		client = generation.NewClient(*serverURL)
	}
	flight := generation.NewFlight()

	loaded := 0
	for _, record := range records {
		thumbnail := ""
		if client != nil {
			image, err := flight.Run(context.Background(), func(ctx context.Context) (string, error) {
				return client.Generate(ctx, record.Text)
			})
			if err != nil {
				log.Printf("thumbnail generation failed for %q: %v", record.Title, err)
			} else {
				thumbnail = image
			}
		}
		if _, err := store.Create(record.Title, record.Text, thumbnail, record.Negative); err != nil {
			log.Fatalf("failed to create prompt %q: %v", record.Title, err)
		}
		loaded++
	}

	log.Printf("loaded %d prompts", loaded)
}

func readPrompts(path string) ([]promptRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []promptRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 2 {
			continue
		}
		record := promptRecord{
			Title: strings.TrimSpace(row[0]),
			Text:  strings.TrimSpace(row[1]),
		}
		if len(row) > 2 {
			record.Negative = strings.TrimSpace(row[2])
		}
		if record.Title == "" || record.Text == "" {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

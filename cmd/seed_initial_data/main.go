package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"vocaquiz/cmd/seed_initial_data/internal/seedmodels"
	"vocaquiz/database"
	"vocaquiz/internal/config"
	"vocaquiz/internal/logger"
	"vocaquiz/internal/repository/models"
	"vocaquiz/internal/util"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const seedFilePath = "configs/seed_data/initial_words.json"

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()
	log.Info("Successfully connected to Oracle database.")

	log.Info("Loading seed data from file", zap.String("path", seedFilePath))
	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var seedCategories []seedmodels.SeedCategory
	if err := json.Unmarshal(byteValue, &seedCategories); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("categories_loaded", len(seedCategories)))

	for _, sc := range seedCategories {
		if err := seedCategoryData(ctx, db, log, sc); err != nil {
			log.Error("Error seeding category, transaction rolled back", zap.String("category", sc.Name), zap.Error(err))
		}
	}
	log.Info("Initial data seeding process completed.")
}

func seedCategoryData(
	ctx context.Context,
	db *sqlx.DB,
	log *zap.Logger,
	seedCat seedmodels.SeedCategory,
) (err error) {
	log.Info("Processing category", zap.String("name", seedCat.Name))
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for category %s: %w", seedCat.Name, err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			log.Error("Rolling back transaction due to error", zap.Error(err), zap.String("category", seedCat.Name))
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("Failed to rollback transaction", zap.Error(rbErr))
			}
		} else {
			if cErr := tx.Commit(); cErr != nil {
				log.Error("Failed to commit transaction", zap.Error(cErr))
				err = cErr
			} else {
				log.Info("Successfully committed transaction for category", zap.String("name", seedCat.Name))
			}
		}
	}()

	categoryID, err := ensureCategory(ctx, tx, seedCat)
	if err != nil {
		return err
	}

	for _, sw := range seedCat.Words {
		if err = insertWordIfAbsent(ctx, tx, log, categoryID, sw); err != nil {
			return fmt.Errorf("failed to seed word %q: %w", sw.Text, err)
		}
	}
	return nil
}

func ensureCategory(ctx context.Context, tx *sqlx.Tx, seedCat seedmodels.SeedCategory) (string, error) {
	var existingID string
	err := tx.GetContext(ctx, &existingID, `SELECT id "id" FROM categories WHERE name = :1`, seedCat.Name)
	if err == nil {
		return existingID, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("error checking category %s: %w", seedCat.Name, err)
	}

	category := models.Category{
		ID:          util.NewULID(),
		Name:        seedCat.Name,
		Description: sql.NullString{String: seedCat.Description, Valid: seedCat.Description != ""},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO categories (id, name, description, created_at, updated_at)
		VALUES (:id, :name, :description, :created_at, :updated_at)`, category)
	if err != nil {
		return "", fmt.Errorf("failed to save category %s: %w", seedCat.Name, err)
	}
	return category.ID, nil
}

func insertWordIfAbsent(ctx context.Context, tx *sqlx.Tx, log *zap.Logger, categoryID string, sw seedmodels.SeedWord) error {
	var count int
	err := tx.GetContext(ctx, &count,
		`SELECT COUNT(*) "count" FROM words WHERE category_id = :1 AND text = :2`, categoryID, sw.Text)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("Word exists, skipping.", zap.String("text", sw.Text))
		return nil
	}

	word := models.Word{
		ID:           util.NewULID(),
		CategoryID:   categoryID,
		Text:         sw.Text,
		Meaning:      sw.Meaning,
		Phonetic:     sql.NullString{String: sw.Phonetic, Valid: sw.Phonetic != ""},
		PartOfSpeech: sql.NullString{String: sw.PartOfSpeech, Valid: sw.PartOfSpeech != ""},
		Example:      sql.NullString{String: sw.Example, Valid: sw.Example != ""},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO words (id, category_id, text, meaning, phonetic, part_of_speech, example, created_at, updated_at)
		VALUES (:id, :category_id, :text, :meaning, :phonetic, :part_of_speech, :example, :created_at, :updated_at)`, word)
	if err != nil {
		return err
	}
	log.Info("Created word.", zap.String("id", word.ID), zap.String("text", word.Text))
	return nil
}

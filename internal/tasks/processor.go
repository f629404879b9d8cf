package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"dartview/internal/config"
	"dartview/internal/models"
	"dartview/internal/pkg/dart"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertBatchSize = 500

// TaskProcessor holds dependencies for our task handlers
type TaskProcessor struct {
	DB         *gorm.DB
	config     *config.Config
	dartClient *dart.DartClient
}

// NewTaskProcessor creates a new TaskProcessor
func NewTaskProcessor(db *gorm.DB, config *config.Config) *TaskProcessor {
	return &TaskProcessor{
		DB:         db,
		config:     config,
		dartClient: dart.New(config.DartAPIKey),
	}
}

// HandleRefreshDirectoryTask downloads the corpCode directory and
// upserts it into the companies mirror table.
func (p *TaskProcessor) HandleRefreshDirectoryTask(ctx context.Context, t *asynq.Task) error {
	log.Println("Refreshing company directory")

	var payload RefreshDirectoryPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	entries, err := p.dartClient.GetCompanies()
	if err != nil {
		// directory refresh is periodic; a failed run waits for the next one
		log.Printf("failed to fetch company directory: %v", err)
		return nil
	}

	if payload.Limit != nil && *payload.Limit < len(entries) {
		entries = entries[:*payload.Limit]
	}

	companies := make([]models.Company, 0, len(entries))
	for _, e := range entries {
		if e.CorpCode == "" {
			continue
		}
		companies = append(companies, models.Company{
			CorpCode:  e.CorpCode,
			CorpName:  e.CorpName,
			StockCode: e.StockCode,
		})
	}

	err = p.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "corp_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"corp_name", "stock_code", "updated_at"}),
	}).CreateInBatches(&companies, upsertBatchSize).Error
	if err != nil {
		return err
	}

	log.Printf("Company directory refreshed: %d rows", len(companies))

	return nil
}

func (p *TaskProcessor) GetDartClient() *dart.DartClient {
	return p.dartClient
}

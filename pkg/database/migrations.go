package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"livelink/pkg/logger"
)

const (
	migrationsCollection = "migrations"
	auditLogsCollection  = "audit_logs"
)

type Migration struct {
	Version     int
	Description string
	Up          func(context.Context, *mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	migrations []Migration
	logger     *logger.Logger
}

func NewMigrator(db *mongo.Database, log *logger.Logger) *Migrator {
	if log == nil {
		log = logger.Discard()
	}
	return &Migrator{
		db:         db,
		migrations: getMigrations(),
		logger:     log.WithField("component", "migrator"),
	}
}

func (m *Migrator) Up(ctx context.Context) error {
	if err := m.createMigrationsCollection(ctx); err != nil {
		return err
	}

	currentVersion, err := m.getCurrentVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range pending(m.migrations, currentVersion) {
		log := m.logger.WithField("version", migration.Version)
		log.Infof("Running migration: %s", migration.Description)

		if err := migration.Up(ctx, m.db); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if err := m.updateVersion(ctx, migration.Version); err != nil {
			return fmt.Errorf("failed to update migration version: %w", err)
		}

		log.Info("Migration completed successfully")
	}

	return nil
}

// pending returns the migrations newer than current, in version order.
func pending(migrations []Migration, current int) []Migration {
	var out []Migration
	for _, migration := range migrations {
		if migration.Version > current {
			out = append(out, migration)
		}
	}
	return out
}

func (m *Migrator) createMigrationsCollection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	collections, err := m.db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: migrationsCollection}})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil
	}

	return m.db.CreateCollection(ctx, migrationsCollection)
}

func (m *Migrator) getCurrentVersion(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result struct {
		Version int `bson:"version"`
	}

	err := m.db.Collection(migrationsCollection).FindOne(ctx, bson.D{}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}

	return result.Version, nil
}

func (m *Migrator) updateVersion(ctx context.Context, version int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.db.Collection(migrationsCollection).ReplaceOne(
		ctx,
		bson.D{},
		bson.D{{Key: "version", Value: version}, {Key: "updated_at", Value: time.Now()}},
		options.Replace().SetUpsert(true),
	)

	return err
}

func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create audit_logs collection with indexes",
			Up:          createAuditLogIndexes,
		},
		{
			Version:     2,
			Description: "Index audit_logs by operator",
			Up:          createAuditLogOperatorIndex,
		},
	}
}

func auditLogIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "resource", Value: 1},
				{Key: "resource_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("resource_created_at"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at"),
		},
	}
}

func createAuditLogIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(auditLogsCollection).Indexes().CreateMany(ctx, auditLogIndexModels())
	return err
}

func createAuditLogOperatorIndex(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(auditLogsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "operator", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("operator_created_at"),
	})
	return err
}

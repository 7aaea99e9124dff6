package integration_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/laodict/laodict-admin/internal/config"
	"github.com/laodict/laodict-admin/internal/database"
	"github.com/laodict/laodict-admin/internal/models"
	"github.com/laodict/laodict-admin/internal/services"
	"github.com/laodict/laodict-admin/internal/types"
	"github.com/laodict/laodict-admin/tests/helpers"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestWithMariaDB tests the service with a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	runStoreTests(t, db)

	t.Run("HealthCheck", func(t *testing.T) {
		result := services.HealthCheck(cfg, db)
		if result.Status != "healthy" || result.Database != "ok" {
			t.Errorf("Expected healthy database, got %+v", result)
		}
	})
}

// TestWithPostgreSQL tests the service with a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("POSTGRES_IMAGE"),
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	time.Sleep(2 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	runStoreTests(t, db)
}

// runStoreTests runs the shared aggregate checks against a real database
func runStoreTests(t *testing.T, db *gorm.DB) {
	t.Run("WordAggregateLifecycle", func(t *testing.T) {
		testWordAggregateLifecycle(t, db)
	})

	t.Run("DuplicateWordRollsBack", func(t *testing.T) {
		testDuplicateWordRollsBack(t, db)
	})

	t.Run("UserEmailConstraint", func(t *testing.T) {
		testUserEmailConstraint(t, db)
	})

	t.Run("PairDelete", func(t *testing.T) {
		testPairDelete(t, db)
	})
}

// testWordAggregateLifecycle walks a word through create, update and delete
func testWordAggregateLifecycle(t *testing.T, db *gorm.DB) {
	record, err := services.CreateWord(db, services.WordInput{
		Word:          "ສະບາຍດີ",
		Pronunciation: "sabaidee",
		PartOfSpeech:  "greeting",
		Definitions: []services.DefinitionInput{
			{Language: "en", Kind: "meaning", Text: "hello"},
			{Language: "th", Kind: "meaning", Text: "สวัสดี"},
		},
		Examples: []services.ExampleInput{
			{Text: "ສະບາຍດີ, ມ"},
		},
	})
	if err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}
	if len(record.Definitions) != 2 || len(record.Examples) != 1 {
		t.Fatalf("Unexpected aggregate shape %+v", record)
	}

	// Update one child in place
	err = services.UpdateWord(db, record.ID, services.WordInput{
		Word:          "ສະບາຍດີ",
		Pronunciation: "sabaidee",
		PartOfSpeech:  "greeting",
		Definitions: []services.DefinitionInput{
			{ID: types.FlexUint64(record.Definitions[0].ID), Language: "en", Kind: "meaning", Text: "hello there"},
		},
	}, false)
	if err != nil {
		t.Fatalf("Failed to update word: %v", err)
	}

	after, err := services.GetWord(db, record.ID)
	if err != nil {
		t.Fatalf("Failed to reload word: %v", err)
	}
	if len(after.Definitions) != 2 {
		t.Errorf("Expected untouched sibling to survive, got %d definitions", len(after.Definitions))
	}
	if after.Definitions[0].Text != "hello there" {
		t.Errorf("Expected in-place update, got %q", after.Definitions[0].Text)
	}

	// Delete removes the whole aggregate
	if err := services.DeleteWord(db, record.ID); err != nil {
		t.Fatalf("Failed to delete word: %v", err)
	}
	var groups int64
	db.Model(&models.DefinitionGroup{}).Where("word_id = ?", record.ID).Count(&groups)
	if groups != 0 {
		t.Errorf("Delete left %d orphaned groups", groups)
	}
	if _, err := services.GetWord(db, record.ID); err != services.ErrNotFound {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

// testDuplicateWordRollsBack verifies the create transaction on a real engine
func testDuplicateWordRollsBack(t *testing.T, db *gorm.DB) {
	input := services.WordInput{
		Word:          "ຊ້ຳ",
		Pronunciation: "sam",
		PartOfSpeech:  "adjective",
		Definitions: []services.DefinitionInput{
			{Language: "en", Kind: "meaning", Text: "duplicate"},
		},
	}
	if _, err := services.CreateWord(db, input); err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}

	var groupsBefore int64
	db.Model(&models.DefinitionGroup{}).Count(&groupsBefore)

	if _, err := services.CreateWord(db, input); err != services.ErrWordExists {
		t.Fatalf("Expected ErrWordExists, got %v", err)
	}

	var groupsAfter int64
	db.Model(&models.DefinitionGroup{}).Count(&groupsAfter)
	if groupsAfter != groupsBefore {
		t.Errorf("Duplicate create leaked %d group rows", groupsAfter-groupsBefore)
	}
}

// testUserEmailConstraint verifies duplicate detection via the store constraint
func testUserEmailConstraint(t *testing.T, db *gorm.DB) {
	email := "constraint@example.com"
	if _, err := services.CreateUser(db, email, helpers.GeneratePassword()); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if _, err := services.CreateUser(db, "CONSTRAINT@example.com", helpers.GeneratePassword()); err != services.ErrEmailExists {
		t.Errorf("Expected ErrEmailExists, got %v", err)
	}
}

func testPairDelete(t *testing.T, db *gorm.DB) {
	pair, err := services.CreatePair(db, services.PairInput{
		CorrectWord:   "ແທ້",
		IncorrectWord: "ແທ",
	})
	if err != nil {
		t.Fatalf("Failed to create pair: %v", err)
	}
	if err := services.DeletePair(db, pair.ID); err != nil {
		t.Fatalf("Failed to delete pair: %v", err)
	}
	if err := services.DeletePair(db, pair.ID); err != services.ErrNotFound {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// runStoreWorkflow runs the store-backed CLI workflow against the backend
// configured through the environment.
func runStoreWorkflow(t *testing.T) {
	workDir := t.TempDir()
	cataloguePath, err := writeSampleCatalogue(workDir)
	require.NoError(t, err)

	// Start from a clean store
	err = runCurriculaCommand(t, "catalog", "clear")
	require.NoError(t, err)

	// Run migrations to the latest version
	err = runCurriculaCommand(t, "catalog", "migrate")
	require.NoError(t, err)

	// Select a curriculum, which snapshots the catalogue and records a run
	err = runCurriculaCommand(t, "select", cataloguePath,
		"--topic", "Green Software Development",
		"--role", "DAN",
		"--ects", "20")
	require.NoError(t, err)

	// The snapshot must satisfy a catalogue-less run
	err = runCurriculaCommand(t, "score",
		"--topic", "Carbon Footprint Measurement",
		"--role", "DAN")
	require.NoError(t, err)

	// Inspect the store and run history
	err = runCurriculaCommand(t, "catalog", "status")
	require.NoError(t, err)

	err = runCurriculaCommand(t, "catalog", "runs")
	require.NoError(t, err)
}

// TestCurriculaWithMySQL tests the curricula CLI with a MySQL backend.
func TestCurriculaWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "curricula",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/curricula?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("CURRICULA_STORE_BACKEND", "mysql")
	_ = os.Setenv("CURRICULA_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("CURRICULA_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("CURRICULA_STORE_DB_CONNECT") }()

	runStoreWorkflow(t)
}

// TestCurriculaWithPostgres tests the curricula CLI with a PostgreSQL backend.
func TestCurriculaWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("CURRICULA_STORE_BACKEND", "postgresql")
	_ = os.Setenv("CURRICULA_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("CURRICULA_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("CURRICULA_STORE_DB_CONNECT") }()

	runStoreWorkflow(t)
}

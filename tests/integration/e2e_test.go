//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	zakatv1 "github.com/simaogato/zakatflow-backend/internal/adapter/grpc/zakat/v1"
	"github.com/simaogato/zakatflow-backend/internal/adapter/repository/mongodb"
	"github.com/simaogato/zakatflow-backend/internal/adapter/repository/postgres"
)

// Each backend is optional: tests needing one skip when it is not configured.
var (
	pgDB       *postgres.DB
	mongoDB    *mongodb.DB
	grpcClient zakatv1.ZakatServiceClient
	grpcConn   *grpc.ClientConn
)

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	// 1. Connect to PostgreSQL
	if connStr := getDBConnectionString(); connStr != "" {
		db, err := postgres.NewDB(connStr)
		if err != nil {
			panic(fmt.Sprintf("Failed to connect to database: %v", err))
		}
		if err := db.EnsureSchema(ctx); err != nil {
			panic(fmt.Sprintf("Failed to apply schema: %v", err))
		}
		pgDB = db
	}

	// 2. Connect to MongoDB
	if uri := os.Getenv("ZAKAT_STORE_MONGO_URI"); uri != "" {
		db, err := mongodb.Connect(ctx, uri, getMongoDatabase())
		if err != nil {
			panic(fmt.Sprintf("Failed to connect to mongodb: %v", err))
		}
		mongoDB = db
	}

	// 3. Connect to a running gRPC server
	if addr := getGRPCAddress(); addr != "" {
		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
		}
		grpcConn = conn
		grpcClient = zakatv1.NewZakatServiceClient(conn)
	}
	cancel()

	code := m.Run()

	if pgDB != nil {
		pgDB.Close()
	}
	if mongoDB != nil {
		_ = mongoDB.Close(context.Background())
	}
	if grpcConn != nil {
		grpcConn.Close()
	}

	os.Exit(code)
}

// getAuthContext returns a context with authorization metadata
func getAuthContext() context.Context {
	token := os.Getenv("ZAKAT_SERVER_AUTH_TOKEN")
	if token == "" {
		token = "dev-token"
	}
	md := metadata.New(map[string]string{
		"authorization": token,
	})
	return metadata.NewOutgoingContext(context.Background(), md)
}

// getDBConnectionString returns the DSN from the environment, empty when postgres is not under test
func getDBConnectionString() string {
	if dsn := os.Getenv("ZAKAT_STORE_POSTGRES_DSN"); dsn != "" {
		return dsn
	}
	if dsn := os.Getenv("DB_CONN_STR"); dsn != "" {
		return dsn
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}

	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		password = "postgres"
	}

	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "zakat"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

func getMongoDatabase() string {
	if name := os.Getenv("ZAKAT_STORE_MONGO_DB"); name != "" {
		return name
	}
	return "zakat_integration"
}

// getGRPCAddress returns the address of a running server, empty when none is under test
func getGRPCAddress() string {
	return os.Getenv("GRPC_ADDRESS")
}

func requirePostgres(t *testing.T) *postgres.DB {
	t.Helper()
	if pgDB == nil {
		t.Skip("postgres not configured (set ZAKAT_STORE_POSTGRES_DSN or DB_HOST)")
	}
	return pgDB
}

func requireMongo(t *testing.T) *mongodb.DB {
	t.Helper()
	if mongoDB == nil {
		t.Skip("mongodb not configured (set ZAKAT_STORE_MONGO_URI)")
	}
	return mongoDB
}

func requireServer(t *testing.T) zakatv1.ZakatServiceClient {
	t.Helper()
	if grpcClient == nil {
		t.Skip("gRPC server not configured (set GRPC_ADDRESS)")
	}
	return grpcClient
}

// Package main runs the gymplan MCP server over stdio (for local Cursor use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP,
// so either transport can be used.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"time"

	"github.com/2beens/gymplan/internal/config"
	"github.com/2beens/gymplan/internal/db"
	gymplanmcp "github.com/2beens/gymplan/internal/gymplan/mcp"
	"github.com/2beens/gymplan/internal/gymplan/progress"

	"github.com/go-redis/redis/v8"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     os.Getenv("GYMPLAN_DB_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("GYMPLAN_REDIS_PASS"),
		DB:       0,
	})
	defer rdb.Close()

	// no metrics manager here, the stdio server is not scraped
	planner := progress.NewService(progress.ServiceParams{
		Repo:            progress.NewRepo(dbPool),
		Store:           progress.NewScheduleStore(rdb, time.Duration(cfg.ScheduleCacheTTLMinutes)*time.Minute),
		PrefsCache:      progress.NewPreferencesCache(cfg.PreferencesCacheSizeMB, cfg.PreferencesCacheTTLSeconds),
		DefaultRestDays: cfg.DefaultRestDays,
	})

	server := gymplanmcp.NewServer(gymplanmcp.NewPoolSchemaRepo(dbPool), planner)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}

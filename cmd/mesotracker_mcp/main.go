// Package main runs the mesotracker MCP server over stdio (for local editor use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/mesotracker/internal/config"
	"github.com/2beens/mesotracker/internal/db"
	mesomcp "github.com/2beens/mesotracker/internal/mcp"
	"github.com/2beens/mesotracker/internal/progression"
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
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("MESO_POSTGRES_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	planner := progression.NewPlanner(progression.DeloadPolicy{
		Enabled: cfg.DeloadEnabled,
		Factor:  cfg.DeloadFactor,
	})
	server := mesomcp.NewServer(mesomcp.NewPoolSchemaRepo(dbPool), planner)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}

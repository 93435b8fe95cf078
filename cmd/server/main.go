package main

import (
	"fmt"
	"net/http"
	"time"

	"safeindiatransport/auth"
	"safeindiatransport/config"
	"safeindiatransport/db"
	"safeindiatransport/db/mongo"
	"safeindiatransport/db/postgres"
	"safeindiatransport/handlers"
	"safeindiatransport/repository"
	"safeindiatransport/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var biltyRepo repository.BiltyRepository
	var partyRepo repository.PartyRepository
	var userRepo repository.UserRepository
	var vehicleRepo repository.VehicleRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		// Migrations only apply to the relational backend
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		biltyRepo = repository.NewPostgresBiltyRepo(pg.Conn)
		partyRepo = repository.NewPostgresPartyRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		vehicleRepo = repository.NewPostgresVehicleRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		mdb := mg.Database()
		biltyRepo = repository.NewMongoBiltyRepo(mdb)
		partyRepo = repository.NewMongoPartyRepo(mdb)
		userRepo = repository.NewMongoUserRepo(mdb)
		vehicleRepo = repository.NewMongoVehicleRepo(mdb)

	default:
		panic("DB_TYPE not supported")
	}

	jwtSvc := auth.NewJWTService(cfg.JWTSecret, 24*time.Hour)

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo, Auth: jwtSvc}
	biltyHandler := &handlers.BiltyHandler{Repo: biltyRepo, PublicBaseURL: cfg.PublicBaseURL}
	partyHandler := &handlers.PartyHandler{Repo: partyRepo, BiltyRepo: biltyRepo}
	vehicleHandler := &handlers.VehicleHandler{Repo: vehicleRepo}
	dashboardHandler := &handlers.DashboardHandler{BiltyRepo: biltyRepo, PartyRepo: partyRepo}
	publicHandler := &handlers.PublicHandler{Repo: biltyRepo}
	pdfHandler := &handlers.PDFHandler{Repo: biltyRepo, SavePath: cfg.PDFSavePath}

	routes.SetupRoutes(jwtSvc, userHandler, biltyHandler, partyHandler,
		vehicleHandler, dashboardHandler, publicHandler, pdfHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}

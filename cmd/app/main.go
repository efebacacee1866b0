package main

import (
	"fmt"
	"log/slog"
	"os"

	"workshop/cmd"
	workshophttp "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/postgres/catalogrepo"
	"workshop/internal/adapters/out/postgres/clientrepo"
	"workshop/internal/adapters/out/postgres/partrepo"
	"workshop/internal/adapters/out/postgres/vehiclerepo"
	"workshop/internal/adapters/out/postgres/workorderrepo"
	"workshop/internal/jobs"

	_ "workshop/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Workshop API
//	@version		1.0
//	@description	Management backend for an auto-repair shop: clients, vehicles, service catalog, parts and work orders.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(root.CreateGetWorkOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:     goDotEnvVariable("JWT_SECRET"),
		AdminUsername: goDotEnvVariable("ADMIN_USERNAME"),
		AdminPassword: goDotEnvVariable("ADMIN_PASSWORD"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&workorderrepo.OrderDTO{},
		&workorderrepo.LineItemDTO{},
		&partrepo.PartDTO{},
		&catalogrepo.ServiceDTO{},
		&clientrepo.ClientDTO{},
		&vehiclerepo.VehicleDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	server := workshophttp.NewServer(workshophttp.Handlers{
		CreateWorkOrder:     root.CreateCreateWorkOrderCommandHandler(),
		AttachClientVehicle: root.CreateAttachClientVehicleCommandHandler(),
		AddLineItem:         root.CreateAddLineItemCommandHandler(),
		ChangeStatus:        root.CreateChangeWorkOrderStatusCommandHandler(),
		ApproveBudget:       root.CreateApproveBudgetCommandHandler(),
		RejectBudget:        root.CreateRejectBudgetCommandHandler(),
		RemoveWorkOrder:     root.CreateRemoveWorkOrderCommandHandler(),
		CreatePart:          root.CreateCreatePartCommandHandler(),
		RestockPart:         root.CreateRestockPartCommandHandler(),
		CreateService:       root.CreateCreateServiceCommandHandler(),
		CreateClient:        root.CreateCreateClientCommandHandler(),
		CreateVehicle:       root.CreateCreateVehicleCommandHandler(),

		GetWorkOrders:    root.CreateGetWorkOrdersQueryHandler(),
		GetWorkOrderByID: root.CreateGetWorkOrderByIDQueryHandler(),
		GetParts:         root.CreateGetPartsQueryHandler(),
		GetServices:      root.CreateGetServicesQueryHandler(),
		GetClients:       root.CreateGetClientsQueryHandler(),
		GetVehicles:      root.CreateGetVehiclesQueryHandler(),
	})

	auth := workshophttp.NewAuthenticator(configs.JWTSecret, configs.AdminUsername, configs.AdminPassword)

	e := echo.New()
	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/peoplecore/employee-records/internal/config"
	"github.com/peoplecore/employee-records/internal/domain"
	"github.com/peoplecore/employee-records/internal/handler"
	"github.com/peoplecore/employee-records/internal/logger"
	"github.com/peoplecore/employee-records/internal/storage"
)

type App struct {
	Echo  *echo.Echo
	Store domain.Storage
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	return &App{Echo: e}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	store, err := OpenStorage(config.DefaultEnvConfig.STORAGE_DRIVER, config.DefaultEnvConfig.DATA_DIR)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	a.Store = store
	logger.InfoLog(ctx, "Storage ready (driver=%s, dir=%s)",
		config.DefaultEnvConfig.STORAGE_DRIVER, config.DefaultEnvConfig.DATA_DIR)

	a.RegisterMiddlewares()
	a.RegisterRoutes()

	return nil
}

// OpenStorage selects a backend by driver name: "json" for the snapshot file,
// "sqlite" for the embedded database.
func OpenStorage(driver, dataDir string) (domain.Storage, error) {
	switch driver {
	case "", "json":
		return storage.NewStore(dataDir)
	case "sqlite":
		return storage.NewSQLiteStore(dataDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes() {
	api := a.Echo.Group("/api")

	api.GET("/health", a.healthHandler)

	empHandler := handler.NewEmployeeHandler(a.Store)
	api.GET("/employees", empHandler.ListHandler)
	api.POST("/employees", empHandler.CreateHandler)
	api.GET("/employees/:id", empHandler.GetHandler)
	api.PATCH("/employees/:id", empHandler.UpdateHandler)
	api.DELETE("/employees/:id", empHandler.DeleteHandler)

	reportHandler := handler.NewReportHandler(a.Store, config.DefaultEnvConfig.REPORT_CONFIG_PATH)
	api.GET("/employees/:id/report", reportHandler.ExportHandler)

	registerChildRoutes(api, a.Store)
}

// registerChildRoutes wires the four standard routes for every child
// collection through the typed route factory.
func registerChildRoutes(api *echo.Group, store domain.Storage) {
	handler.RegisterChildRoutes[domain.Education](api,
		handler.ResourceConfig{Name: "education"},
		handler.ChildOps[domain.Education]{
			List:   store.EducationByEmployee,
			Create: store.CreateEducation,
			Update: store.UpdateEducation,
			Delete: store.DeleteEducation,
		})
	handler.RegisterChildRoutes[domain.EmploymentHistory](api,
		handler.ResourceConfig{Name: "employmentHistory"},
		handler.ChildOps[domain.EmploymentHistory]{
			List:   store.EmploymentHistoryByEmployee,
			Create: store.CreateEmploymentHistory,
			Update: store.UpdateEmploymentHistory,
			Delete: store.DeleteEmploymentHistory,
		})
	handler.RegisterChildRoutes[domain.Compensation](api,
		handler.ResourceConfig{Name: "compensation", LogRequests: true},
		handler.ChildOps[domain.Compensation]{
			List:   store.CompensationByEmployee,
			Create: store.CreateCompensation,
			Update: store.UpdateCompensation,
			Delete: store.DeleteCompensation,
		})
	handler.RegisterChildRoutes[domain.Bonus](api,
		handler.ResourceConfig{Name: "bonuses"},
		handler.ChildOps[domain.Bonus]{
			List:   store.BonusesByEmployee,
			Create: store.CreateBonus,
			Update: store.UpdateBonus,
			Delete: store.DeleteBonus,
		})
	handler.RegisterChildRoutes[domain.TimeOff](api,
		handler.ResourceConfig{Name: "timeOff"},
		handler.ChildOps[domain.TimeOff]{
			List:   store.TimeOffByEmployee,
			Create: store.CreateTimeOff,
			Update: store.UpdateTimeOff,
			Delete: store.DeleteTimeOff,
		})
	handler.RegisterChildRoutes[domain.Document](api,
		handler.ResourceConfig{Name: "documents", RequireBodyMatch: true, LogRequests: true, NoCache: true},
		handler.ChildOps[domain.Document]{
			List:   store.DocumentsByEmployee,
			Create: store.CreateDocument,
			Update: store.UpdateDocument,
			Delete: store.DeleteDocument,
		})
	handler.RegisterChildRoutes[domain.Benefit](api,
		handler.ResourceConfig{Name: "benefits"},
		handler.ChildOps[domain.Benefit]{
			List:   store.BenefitsByEmployee,
			Create: store.CreateBenefit,
			Update: store.UpdateBenefit,
			Delete: store.DeleteBenefit,
		})
	handler.RegisterChildRoutes[domain.Dependent](api,
		handler.ResourceConfig{Name: "dependents"},
		handler.ChildOps[domain.Dependent]{
			List:   store.DependentsByEmployee,
			Create: store.CreateDependent,
			Update: store.UpdateDependent,
			Delete: store.DeleteDependent,
		})
	handler.RegisterChildRoutes[domain.Training](api,
		handler.ResourceConfig{Name: "training"},
		handler.ChildOps[domain.Training]{
			List:   store.TrainingByEmployee,
			Create: store.CreateTraining,
			Update: store.UpdateTraining,
			Delete: store.DeleteTraining,
		})
	handler.RegisterChildRoutes[domain.Asset](api,
		handler.ResourceConfig{Name: "assets"},
		handler.ChildOps[domain.Asset]{
			List:   store.AssetsByEmployee,
			Create: store.CreateAsset,
			Update: store.UpdateAsset,
			Delete: store.DeleteAsset,
		})
	handler.RegisterChildRoutes[domain.Note](api,
		handler.ResourceConfig{Name: "notes"},
		handler.ChildOps[domain.Note]{
			List:   store.NotesByEmployee,
			Create: store.CreateNote,
			Update: store.UpdateNote,
			Delete: store.DeleteNote,
		})
	handler.RegisterChildRoutes[domain.EmergencyContact](api,
		handler.ResourceConfig{Name: "emergencyContacts"},
		handler.ChildOps[domain.EmergencyContact]{
			List:   store.EmergencyContactsByEmployee,
			Create: store.CreateEmergencyContact,
			Update: store.UpdateEmergencyContact,
			Delete: store.DeleteEmergencyContact,
		})
	handler.RegisterChildRoutes[domain.Onboarding](api,
		handler.ResourceConfig{Name: "onboarding"},
		handler.ChildOps[domain.Onboarding]{
			List:   store.OnboardingByEmployee,
			Create: store.CreateOnboarding,
			Update: store.UpdateOnboarding,
			Delete: store.DeleteOnboarding,
		})
	handler.RegisterChildRoutes[domain.Offboarding](api,
		handler.ResourceConfig{Name: "offboarding"},
		handler.ChildOps[domain.Offboarding]{
			List:   store.OffboardingByEmployee,
			Create: store.CreateOffboarding,
			Update: store.UpdateOffboarding,
			Delete: store.DeleteOffboarding,
		})
}

func (a *App) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"driver": config.DefaultEnvConfig.STORAGE_DRIVER,
	})
}

func (a *App) Run() error {
	defer a.closeStore()
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}

func (a *App) closeStore() {
	if closer, ok := a.Store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.ErrorLog(context.Background(), "failed to close storage: %v", err)
		}
	}
}

package app

import (
	"context"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	academicsAPI "studyhub_backend/internal/api/academics"
	authAPI "studyhub_backend/internal/api/auth"
	canvasAPI "studyhub_backend/internal/api/canvas"
	essaysAPI "studyhub_backend/internal/api/essays"
	goalsAPI "studyhub_backend/internal/api/goals"
	profileAPI "studyhub_backend/internal/api/profile"
	tasksAPI "studyhub_backend/internal/api/tasks"
	"studyhub_backend/internal/cache"
	canvasclient "studyhub_backend/internal/client/canvas"
	"studyhub_backend/internal/config"
	"studyhub_backend/internal/config/env"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/repository/canvas_repo"
	"studyhub_backend/internal/repository/course_repo"
	"studyhub_backend/internal/repository/essay_repo"
	"studyhub_backend/internal/repository/goal_repo"
	"studyhub_backend/internal/repository/profile_repo"
	"studyhub_backend/internal/repository/session_repo"
	"studyhub_backend/internal/repository/task_repo"
	"studyhub_backend/internal/repository/user_repo"
	"studyhub_backend/internal/service"
	academicsServ "studyhub_backend/internal/service/academics"
	authServ "studyhub_backend/internal/service/auth"
	canvasServ "studyhub_backend/internal/service/canvas"
	essaysServ "studyhub_backend/internal/service/essays"
	goalsServ "studyhub_backend/internal/service/goals"
	profileServ "studyhub_backend/internal/service/profile"
	tasksServ "studyhub_backend/internal/service/tasks"
	"studyhub_backend/pkg/resp"
)

const gradeScalePath = "config.yaml"

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Общий in-process кэш
	cacheCfg config.CacheConfig
	cache    *cache.Cache

	// Auth bits
	sessionCfg  config.SessionConfig
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	authServ    service.AuthService
	authMW      *middleware.Auth
	authHand    *authAPI.Handler

	// Profile bits
	profileRepo repository.ProfileRepository
	profileServ service.ProfileService
	profileHand *profileAPI.Handler

	// Academics bits
	gradeScale    config.GradeScaleConfig
	courseRepo    repository.CourseRepository
	academicsServ service.AcademicsService
	academicsHand *academicsAPI.Handler

	// Essay bits
	essayRepo repository.EssayRepository
	essayServ service.EssayService
	essayHand *essaysAPI.Handler

	// Task bits
	taskRepo repository.TaskRepository
	taskServ service.TaskService
	taskHand *tasksAPI.Handler

	// Goal bits
	goalRepo repository.GoalRepository
	goalServ service.GoalService
	goalHand *goalsAPI.Handler

	// Canvas bits
	canvasCfg    config.CanvasConfig
	canvasRepo   repository.CanvasAccountRepository
	canvasClient *canvasclient.Client
	canvasServ   service.CanvasService
	canvasHand   *canvasAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) CacheCfg() config.CacheConfig {
	if sp.cacheCfg == nil {
		cfg, err := env.NewCacheConfig()
		if err != nil {
			panic("failed to get cache config: " + err.Error())
		}
		sp.cacheCfg = cfg
	}
	return sp.cacheCfg
}

// Cache - один экземпляр на приложение, передается сервисам через конструкторы
func (sp *ServiceProvider) Cache() *cache.Cache {
	if sp.cache == nil {
		sp.cache = cache.New(sp.CacheCfg().SweepInterval())
	}
	return sp.cache
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) SessionRepo(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.DBClient(ctx))
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = authServ.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.SessionRepo(ctx),
			sp.SessionCfg(),
			sp.Cache(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthMiddleware(ctx context.Context) *middleware.Auth {
	if sp.authMW == nil {
		sp.authMW = middleware.NewAuth(sp.AuthService(ctx))
	}
	return sp.authMW
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:        sp.AuthService(ctx),
			ProfileServ: sp.ProfileService(ctx),
			SessionCfg:  sp.SessionCfg(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) ProfileRepo(ctx context.Context) repository.ProfileRepository {
	if sp.profileRepo == nil {
		sp.profileRepo = profile_repo.NewProfileRepository(sp.DBClient(ctx))
	}
	return sp.profileRepo
}

func (sp *ServiceProvider) ProfileService(ctx context.Context) service.ProfileService {
	if sp.profileServ == nil {
		sp.profileServ = profileServ.NewService(sp.ProfileRepo(ctx))
	}
	return sp.profileServ
}

func (sp *ServiceProvider) ProfileHandler(ctx context.Context) *profileAPI.Handler {
	if sp.profileHand == nil {
		sp.profileHand = profileAPI.NewHandler(profileAPI.HandlerDeps{Serv: sp.ProfileService(ctx)})
	}
	return sp.profileHand
}

func (sp *ServiceProvider) GradeScale() config.GradeScaleConfig {
	if sp.gradeScale == nil {
		cfg, err := env.NewGradeScaleFromYAML(gradeScalePath)
		if err != nil {
			panic("failed to get grade scale config: " + err.Error())
		}
		sp.gradeScale = cfg
	}
	return sp.gradeScale
}

func (sp *ServiceProvider) CourseRepo(ctx context.Context) repository.CourseRepository {
	if sp.courseRepo == nil {
		sp.courseRepo = course_repo.NewCourseRepository(sp.DBClient(ctx))
	}
	return sp.courseRepo
}

func (sp *ServiceProvider) AcademicsService(ctx context.Context) service.AcademicsService {
	if sp.academicsServ == nil {
		sp.academicsServ = academicsServ.NewService(
			sp.CourseRepo(ctx),
			sp.ProfileRepo(ctx),
			sp.GradeScale(),
			sp.CacheCfg(),
			sp.Cache(),
		)
	}
	return sp.academicsServ
}

func (sp *ServiceProvider) AcademicsHandler(ctx context.Context) *academicsAPI.Handler {
	if sp.academicsHand == nil {
		sp.academicsHand = academicsAPI.NewHandler(academicsAPI.HandlerDeps{Serv: sp.AcademicsService(ctx)})
	}
	return sp.academicsHand
}

func (sp *ServiceProvider) EssayRepo(ctx context.Context) repository.EssayRepository {
	if sp.essayRepo == nil {
		sp.essayRepo = essay_repo.NewEssayRepository(sp.DBClient(ctx))
	}
	return sp.essayRepo
}

func (sp *ServiceProvider) EssayService(ctx context.Context) service.EssayService {
	if sp.essayServ == nil {
		sp.essayServ = essaysServ.NewService(sp.EssayRepo(ctx))
	}
	return sp.essayServ
}

func (sp *ServiceProvider) EssaysHandler(ctx context.Context) *essaysAPI.Handler {
	if sp.essayHand == nil {
		sp.essayHand = essaysAPI.NewHandler(essaysAPI.HandlerDeps{Serv: sp.EssayService(ctx)})
	}
	return sp.essayHand
}

func (sp *ServiceProvider) TaskRepo(ctx context.Context) repository.TaskRepository {
	if sp.taskRepo == nil {
		sp.taskRepo = task_repo.NewTaskRepository(sp.DBClient(ctx))
	}
	return sp.taskRepo
}

func (sp *ServiceProvider) TaskService(ctx context.Context) service.TaskService {
	if sp.taskServ == nil {
		sp.taskServ = tasksServ.NewService(sp.TaskRepo(ctx))
	}
	return sp.taskServ
}

func (sp *ServiceProvider) TasksHandler(ctx context.Context) *tasksAPI.Handler {
	if sp.taskHand == nil {
		sp.taskHand = tasksAPI.NewHandler(tasksAPI.HandlerDeps{Serv: sp.TaskService(ctx)})
	}
	return sp.taskHand
}

func (sp *ServiceProvider) GoalRepo(ctx context.Context) repository.GoalRepository {
	if sp.goalRepo == nil {
		sp.goalRepo = goal_repo.NewGoalRepository(sp.DBClient(ctx))
	}
	return sp.goalRepo
}

func (sp *ServiceProvider) GoalService(ctx context.Context) service.GoalService {
	if sp.goalServ == nil {
		sp.goalServ = goalsServ.NewService(sp.GoalRepo(ctx))
	}
	return sp.goalServ
}

func (sp *ServiceProvider) GoalsHandler(ctx context.Context) *goalsAPI.Handler {
	if sp.goalHand == nil {
		sp.goalHand = goalsAPI.NewHandler(goalsAPI.HandlerDeps{Serv: sp.GoalService(ctx)})
	}
	return sp.goalHand
}

func (sp *ServiceProvider) CanvasCfg() config.CanvasConfig {
	if sp.canvasCfg == nil {
		cfg, err := env.NewCanvasConfig()
		if err != nil {
			panic("failed to get canvas config: " + err.Error())
		}
		sp.canvasCfg = cfg
	}
	return sp.canvasCfg
}

func (sp *ServiceProvider) CanvasRepo(ctx context.Context) repository.CanvasAccountRepository {
	if sp.canvasRepo == nil {
		sp.canvasRepo = canvas_repo.NewCanvasAccountRepository(sp.DBClient(ctx))
	}
	return sp.canvasRepo
}

func (sp *ServiceProvider) CanvasClient() *canvasclient.Client {
	if sp.canvasClient == nil {
		sp.canvasClient = canvasclient.NewClient(sp.CanvasCfg().RequestTimeout())
	}
	return sp.canvasClient
}

func (sp *ServiceProvider) CanvasService(ctx context.Context) service.CanvasService {
	if sp.canvasServ == nil {
		sp.canvasServ = canvasServ.NewService(
			sp.CanvasRepo(ctx),
			sp.CanvasClient(),
			sp.CacheCfg(),
			sp.Cache(),
		)
	}
	return sp.canvasServ
}

func (sp *ServiceProvider) CanvasHandler(ctx context.Context) *canvasAPI.Handler {
	if sp.canvasHand == nil {
		sp.canvasHand = canvasAPI.NewHandler(canvasAPI.HandlerDeps{Serv: sp.CanvasService(ctx)})
	}
	return sp.canvasHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware, credentials нужны для session_token cookie
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   sp.HTTPCfg().CORSAllowedOrigins(),
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Handle("/metrics", promhttp.Handler())

		authMW := sp.AuthMiddleware(ctx)

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/api/auth", func(rr chi.Router) {
			rr.Post("/signup", authHandler.Signup)
			rr.Post("/signin", authHandler.Signin)
			rr.Post("/signout", authHandler.Signout)
			rr.With(authMW.RequireAuth).Get("/me", authHandler.Me)
			rr.With(authMW.WithUser).Get("/session", authHandler.Session)
		})

		// Profile endpoints
		profileHandler := sp.ProfileHandler(ctx)
		r.Route("/api/profile", func(rr chi.Router) {
			rr.Use(authMW.RequireAuth)
			rr.Get("/", profileHandler.Get)
			rr.Put("/", profileHandler.Save)
		})

		// Academics endpoints
		academicsHandler := sp.AcademicsHandler(ctx)
		r.Route("/api/academics", func(rr chi.Router) {
			rr.Use(authMW.RequireAuth)
			rr.Get("/summary", academicsHandler.Summary)
			rr.Route("/courses", func(rrr chi.Router) {
				rrr.Post("/", academicsHandler.CreateCourse)
				rrr.Get("/", academicsHandler.ListCourses)
				rrr.Put("/{courseID}", academicsHandler.UpdateCourse)
				rrr.Delete("/{courseID}", academicsHandler.DeleteCourse)
			})
		})

		// Essay endpoints
		essaysHandler := sp.EssaysHandler(ctx)
		r.Route("/api/essays", func(rr chi.Router) {
			rr.Use(authMW.RequireAuth)
			rr.Post("/", essaysHandler.Create)
			rr.Get("/", essaysHandler.List)
			rr.Get("/{essayID}", essaysHandler.Get)
			rr.Put("/{essayID}", essaysHandler.Update)
			rr.Delete("/{essayID}", essaysHandler.Delete)
		})

		// Task endpoints
		tasksHandler := sp.TasksHandler(ctx)
		r.Route("/api/tasks", func(rr chi.Router) {
			rr.Use(authMW.RequireAuth)
			rr.Post("/", tasksHandler.Create)
			rr.Get("/", tasksHandler.List)
			rr.Put("/{taskID}", tasksHandler.Update)
			rr.Delete("/{taskID}", tasksHandler.Delete)
		})

		// Goal endpoints
		goalsHandler := sp.GoalsHandler(ctx)
		r.Route("/api/goals", func(rr chi.Router) {
			rr.Use(authMW.RequireAuth)
			rr.Post("/", goalsHandler.Create)
			rr.Get("/", goalsHandler.List)
			rr.Put("/{goalID}", goalsHandler.Update)
			rr.Delete("/{goalID}", goalsHandler.Delete)
		})

		// Canvas endpoints
		canvasHandler := sp.CanvasHandler(ctx)
		r.Route("/api/canvas", func(rr chi.Router) {
			rr.Use(authMW.RequireAuth)
			rr.Post("/account", canvasHandler.Connect)
			rr.Get("/account", canvasHandler.Account)
			rr.Delete("/account", canvasHandler.Disconnect)
			rr.Get("/courses", canvasHandler.Courses)
			rr.Get("/courses/{courseID}/assignments", canvasHandler.Assignments)
		})

		sp.router = r
	}

	return sp.router
}

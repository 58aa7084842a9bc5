package academics

import (
	"studyhub_backend/internal/cache"
	"studyhub_backend/internal/config"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
)

// Ключ сводки в кэше, вторая часть составного ключа после владельца
const summaryEndpoint = "academics:summary"

const maxCredits = 30

type serv struct {
	courseRepo  repository.CourseRepository
	profileRepo repository.ProfileRepository
	gradeScale  config.GradeScaleConfig
	cacheCfg    config.CacheConfig
	cache       *cache.Cache
}

func NewService(
	courseRepo repository.CourseRepository,
	profileRepo repository.ProfileRepository,
	gradeScale config.GradeScaleConfig,
	cacheCfg config.CacheConfig,
	cache *cache.Cache,
) service.AcademicsService {
	return &serv{
		courseRepo:  courseRepo,
		profileRepo: profileRepo,
		gradeScale:  gradeScale,
		cacheCfg:    cacheCfg,
		cache:       cache,
	}
}

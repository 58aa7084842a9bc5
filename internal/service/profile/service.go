package profile

import (
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
)

type serv struct {
	profileRepo repository.ProfileRepository
}

func NewService(profileRepo repository.ProfileRepository) service.ProfileService {
	return &serv{
		profileRepo: profileRepo,
	}
}

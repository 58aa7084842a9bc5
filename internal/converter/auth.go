package converter

import (
	"studyhub_backend/internal/api/dto/auth"
	"studyhub_backend/internal/model"
)

func ToSignupData(req auth.SignupRequest, userAgent string, ip string) model.SignupData {
	return model.SignupData{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		DeviceName: req.DeviceName,
		UserAgent:  userAgent,
		IP:         ip,
	}
}

func ToSigninData(req auth.SigninRequest, userAgent string, ip string) model.SigninData {
	return model.SigninData{
		Email:      req.Email,
		Password:   req.Password,
		DeviceName: req.DeviceName,
		UserAgent:  userAgent,
		IP:         ip,
	}
}

func ToUserResponse(user *model.User) auth.UserResponse {
	return auth.UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToMeResponse - nil профиль означает, что пользователь его еще не заполнял
func ToMeResponse(user *model.User, p *model.Profile) auth.MeResponse {
	response := auth.MeResponse{
		User: ToUserResponse(user),
	}
	if p != nil {
		profileResponse := ToProfileResponse(p)
		response.Profile = &profileResponse
	}

	return response
}

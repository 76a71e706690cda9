package converter

import (
	dto "mines_backend/internal/api/dto/auth"
	"mines_backend/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}

func ToTokenResponse(data *model.AuthData) dto.TokenResponse {
	return dto.TokenResponse{
		AccessToken: data.AccessToken,
	}
}

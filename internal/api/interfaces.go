package api

import (
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
	jwtservice "github.com/JuliPapp/Redimfinal-sub000/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*jwtservice.Claims, error)
}

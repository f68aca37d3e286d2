package user

import (
	"github.com/Shreyash123-code/AICTE-project1/internal/svc"
)

type UserHandler struct {
	svc *svc.ServiceContext
}

func NewUserHandler(svc *svc.ServiceContext) *UserHandler {
	return &UserHandler{svc: svc}
}

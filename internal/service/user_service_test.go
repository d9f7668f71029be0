package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/JesusPaz145/nails-appointment-app/internal/model"
	"github.com/JesusPaz145/nails-appointment-app/internal/repository"
)

func setupTestUserService() (UserService, *mockUserRepo) {
	userRepo := newMockUserRepo()
	repo := &repository.Repository{
		User:          userRepo,
		Service:       newMockServiceRepo(),
		BusinessHours: newMockBusinessHoursRepo(),
		BlockedDate:   newMockBlockedDateRepo(),
		Appointment:   newMockAppointmentRepo(),
	}
	return NewUserService(repo, zap.NewNop()), userRepo
}

func TestUserService_UpdateRole_Promote(t *testing.T) {
	svc, userRepo := setupTestUserService()
	userRepo.users["user-ana"] = &model.User{
		UserID: "user-ana", Name: "Ana", Username: "ana", Role: model.RoleClient,
	}

	result, err := svc.UpdateRole(context.Background(), "user-ana", model.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole 应成功: %v", err)
	}
	if result.Role != model.RoleAdmin {
		t.Errorf("期望 admin，实际 %s", result.Role)
	}
}

func TestUserService_UpdateRole_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	_, err := svc.UpdateRole(context.Background(), "nonexistent", model.RoleAdmin)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

func TestUserService_List(t *testing.T) {
	svc, userRepo := setupTestUserService()
	userRepo.users["user-ana"] = &model.User{UserID: "user-ana", Username: "ana", Role: model.RoleClient}
	userRepo.users["user-bo"] = &model.User{UserID: "user-bo", Username: "bo", Role: model.RoleAdmin}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("期望 2 个用户，实际 %d 个", len(users))
	}
}

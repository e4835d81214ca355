package main

import (
	"context"

	authsvc "retail_map/internal/api/auth/service"
	"retail_map/internal/global"
	"retail_map/internal/logger"
)

// InitDefaultData tạo tài khoản admin mặc định khi collection users rỗng.
// Thông tin tài khoản lấy từ ADMIN_USERNAME / ADMIN_EMAIL / ADMIN_PASSWORD.
func InitDefaultData() {
	log := logger.GetAppLogger()

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	cfg := global.MongoDB_ServerConfig
	if err := userService.EnsureDefaultAdmin(context.Background(), cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Warnf("Failed to ensure default admin user: %v", err)
		return
	}

	log.Info("Default data initialized")
}

package main

import (
	"context"

	"retail_map/config"
	authmodels "retail_map/internal/api/auth/models"
	catalogmodels "retail_map/internal/api/catalog/models"
	dictmodels "retail_map/internal/api/dictionary/models"
	geomodels "retail_map/internal/api/geography/models"
	placementmodels "retail_map/internal/api/placement/models"
	"retail_map/internal/database"
	"retail_map/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Provinces = "provinces"
	global.MongoDB_ColNames.Cities = "cities"
	global.MongoDB_ColNames.Districts = "districts"
	global.MongoDB_ColNames.Brands = "brands"
	global.MongoDB_ColNames.Malls = "malls"
	global.MongoDB_ColNames.BrandStores = "brand_stores"
	global.MongoDB_ColNames.Dictionaries = "dictionaries"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký các custom validators: no_xss, exists, object_id)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database và các index cho collection
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các index cho các collection theo tag `index` trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	indexTargets := []struct {
		colName string
		model   interface{}
	}{
		{global.MongoDB_ColNames.Users, authmodels.User{}},
		{global.MongoDB_ColNames.Provinces, geomodels.Province{}},
		{global.MongoDB_ColNames.Cities, geomodels.City{}},
		{global.MongoDB_ColNames.Districts, geomodels.District{}},
		{global.MongoDB_ColNames.Brands, catalogmodels.Brand{}},
		{global.MongoDB_ColNames.Malls, catalogmodels.Mall{}},
		{global.MongoDB_ColNames.BrandStores, placementmodels.BrandStore{}},
		{global.MongoDB_ColNames.Dictionaries, dictmodels.Dictionary{}},
	}
	for _, target := range indexTargets {
		if err := database.CreateIndexes(context.TODO(), db.Collection(target.colName), target.model); err != nil {
			logrus.Errorf("Failed to create indexes for %s: %v", target.colName, err)
		}
	}
	logrus.Info("Ensured collection indexes")
}

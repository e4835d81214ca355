package global

import (
	"retail_map/config"
	"retail_map/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users        string // Tên collection cho người dùng
	Provinces    string // Tên collection cho tỉnh/thành
	Cities       string // Tên collection cho thành phố
	Districts    string // Tên collection cho quận/huyện
	Brands       string // Tên collection cho thương hiệu
	Malls        string // Tên collection cho trung tâm thương mại
	BrandStores  string // Tên collection cho điểm bán của thương hiệu trong TTTM
	Dictionaries string // Tên collection cho từ điển danh mục
}

// Các biến toàn cục
var Validate *validator.Validate               // Validator dùng chung cho DTO
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName    // Tên các collection

// Registry chứa các collections đã đăng ký lúc boot
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()

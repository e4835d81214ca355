// Package catalogsvc - service danh mục bán lẻ (Brand/Mall).
package catalogsvc

import (
	"context"
	"fmt"

	basesvc "retail_map/internal/api/base/service"
	models "retail_map/internal/api/catalog/models"
	"retail_map/internal/common"
	"retail_map/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BrandService là service quản lý thương hiệu
type BrandService struct {
	*basesvc.BaseServiceMongoImpl[models.Brand]
	brandStoreCollection *mongo.Collection
}

// NewBrandService tạo mới BrandService
func NewBrandService() (*BrandService, error) {
	brandCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Brands)
	if !exist {
		return nil, fmt.Errorf("failed to get brands collection: %v", common.ErrNotFound)
	}
	brandStoreCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BrandStores)
	if !exist {
		return nil, fmt.Errorf("failed to get brand_stores collection: %v", common.ErrNotFound)
	}

	return &BrandService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Brand](brandCollection),
		brandStoreCollection: brandStoreCollection,
	}, nil
}

// Delete xóa brand. Chặn với 409 khi brand còn điểm bán trong brand_stores.
func (s *BrandService) Delete(ctx context.Context, id primitive.ObjectID) error {
	storeCount, err := s.brandStoreCollection.CountDocuments(ctx, bson.M{"brand": id})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if storeCount > 0 {
		logrus.WithFields(logrus.Fields{"brand_id": id.Hex(), "store_count": storeCount}).Warn("Delete brand: Còn điểm bán tham chiếu")
		return common.ErrHasChildren
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// Package dictsvc - service từ điển danh mục (Dictionary).
package dictsvc

import (
	"context"
	"fmt"
	"strings"

	basemodels "retail_map/internal/api/base/models"
	basesvc "retail_map/internal/api/base/service"
	dictdto "retail_map/internal/api/dictionary/dto"
	models "retail_map/internal/api/dictionary/models"
	"retail_map/internal/common"
	"retail_map/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DictionaryService là service quản lý từ điển danh mục
type DictionaryService struct {
	*basesvc.BaseServiceMongoImpl[models.Dictionary]
}

// DictionaryLookupEntry một mục tra cứu rút gọn trả cho client công khai
type DictionaryLookupEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Sort  int64  `json:"sort"`
}

// NewDictionaryService tạo mới DictionaryService
func NewDictionaryService() (*DictionaryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Dictionaries)
	if !exist {
		return nil, fmt.Errorf("failed to get dictionaries collection: %v", common.ErrNotFound)
	}

	return &DictionaryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Dictionary](collection),
	}, nil
}

// Create tạo mục từ điển mới. Trùng (type, value) trả 400 (hành vi client cũ
// phụ thuộc); unique index vẫn là chốt chặn cuối khi ghi đồng thời.
func (s *DictionaryService) Create(ctx context.Context, input *dictdto.DictionaryCreateInput) (*models.Dictionary, error) {
	exists, err := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{
		"type":  input.Type,
		"value": input.Value,
	})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeValidationInput, "Giá trị đã tồn tại trong loại này", common.StatusBadRequest, nil)
	}

	entry := models.Dictionary{
		Type:        input.Type,
		Label:       input.Label,
		Value:       input.Value,
		Sort:        input.Sort,
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		entry.IsActive = *input.IsActive
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List trả danh sách từ điển phân trang, lọc theo type và tìm kiếm
// trên label/value/type. Sort: type asc, sort asc, createdAt desc.
func (s *DictionaryService) List(ctx context.Context, query *dictdto.DictionaryListQuery) (*basemodels.PaginateResult[models.Dictionary], error) {
	filter := bson.M{}
	if query.Type != "" {
		filter["type"] = query.Type
	}
	if query.Search != "" {
		regex := primitive.Regex{Pattern: query.Search, Options: "i"}
		filter["$or"] = []bson.M{
			{"label": regex},
			{"value": regex},
			{"type": regex},
		}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "type", Value: 1},
		{Key: "sort", Value: 1},
		{Key: "createdAt", Value: -1},
	})

	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, query.Page, query.Limit, opts)
}

// Types trả danh sách các type đang có trong từ điển
func (s *DictionaryService) Types(ctx context.Context) ([]interface{}, error) {
	return s.BaseServiceMongoImpl.Distinct(ctx, "type", bson.M{})
}

// BatchSort cập nhật sort cho nhiều mục cùng lúc, trả số mục đã cập nhật.
// Không rollback: mục lỗi được log và bỏ qua.
func (s *DictionaryService) BatchSort(ctx context.Context, input *dictdto.DictionaryBatchSortInput) (int64, error) {
	var updated int64
	for _, item := range input.Items {
		id, err := primitive.ObjectIDFromHex(item.ID)
		if err != nil {
			return updated, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("ID '%s' không hợp lệ", item.ID), common.StatusBadRequest, nil)
		}
		update := &basesvc.UpdateData{
			Set: map[string]interface{}{"sort": item.Sort},
		}
		if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update); err != nil {
			logrus.WithFields(logrus.Fields{"dictionary_id": item.ID, "error": err.Error()}).Warn("BatchSort: Lỗi cập nhật sort, bỏ qua mục này")
			continue
		}
		updated++
	}
	return updated, nil
}

// LookupGrouped trả các mục đang active gom theo type: {type: [{label,value,sort}]}.
// typesParam là chuỗi type phân cách dấu phẩy, bỏ trống lấy tất cả.
func (s *DictionaryService) LookupGrouped(ctx context.Context, typesParam string) (map[string][]DictionaryLookupEntry, error) {
	filter := bson.M{"isActive": true}
	if typesParam != "" {
		types := []string{}
		for _, t := range strings.Split(typesParam, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				types = append(types, t)
			}
		}
		if len(types) > 0 {
			filter["type"] = bson.M{"$in": types}
		}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "type", Value: 1},
		{Key: "sort", Value: 1},
	})
	entries, err := s.BaseServiceMongoImpl.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	grouped := map[string][]DictionaryLookupEntry{}
	for _, entry := range entries {
		grouped[entry.Type] = append(grouped[entry.Type], DictionaryLookupEntry{
			Label: entry.Label,
			Value: entry.Value,
			Sort:  entry.Sort,
		})
	}
	return grouped, nil
}

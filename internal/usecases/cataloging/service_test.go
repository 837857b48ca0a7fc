package cataloging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/cache"
	cachemocks "github.com/vfg2006/retail-sales-api/infrastructure/cache/mocks"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func expectDistincts(repo *mocks.MockSalesRepository) {
	repo.EXPECT().Distinct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, field domain.Field) ([]string, error) {
			switch field {
			case domain.FieldTags:
				return []string{"wireless", "organic", "", "organic"}, nil
			case domain.FieldGender:
				return []string{"Male", "Female"}, nil
			default:
				return []string{string(field) + "-b", string(field) + "-a"}, nil
			}
		}).
		Times(len(domain.CatalogFields))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "a"}, Normalize([]string{"a", "B", "A", "", "B"}))
	assert.Equal(t, []string{}, Normalize(nil))
}

func TestService_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	expectDistincts(mockRepo)

	service := &Service{salesRepository: mockRepo}

	catalog, err := service.Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"organic", "wireless"}, catalog.Tags)
	assert.Equal(t, []string{"Female", "Male"}, catalog.Gender)
	assert.Equal(t, []string{"brand-a", "brand-b"}, catalog.Brand)
	assert.Equal(t, []string{"customerRegion-a", "customerRegion-b"}, catalog.CustomerRegion)
}

func TestService_Build_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	mockRepo.EXPECT().Distinct(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout")).
		MinTimes(1).
		MaxTimes(len(domain.CatalogFields))

	service := &Service{salesRepository: mockRepo}

	catalog, err := service.Build(context.Background())

	assert.Nil(t, catalog)
	assert.ErrorContains(t, err, "timeout")
}

func TestService_GetFilterOptions(t *testing.T) {
	cached := &domain.FilterCatalog{Gender: []string{"Female"}}

	tests := []struct {
		name  string
		setup func(repo *mocks.MockSalesRepository, c *cachemocks.MockCatalogCache)
		check func(t *testing.T, catalog *domain.FilterCatalog)
	}{
		{
			name: "cache hit não consulta o banco",
			setup: func(_ *mocks.MockSalesRepository, c *cachemocks.MockCatalogCache) {
				c.EXPECT().Get(gomock.Any()).Return(cached, nil)
			},
			check: func(t *testing.T, catalog *domain.FilterCatalog) {
				assert.Same(t, cached, catalog)
			},
		},
		{
			name: "cache miss monta e grava",
			setup: func(repo *mocks.MockSalesRepository, c *cachemocks.MockCatalogCache) {
				c.EXPECT().Get(gomock.Any()).Return(nil, cache.ErrCacheMiss)
				expectDistincts(repo)
				c.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, catalog *domain.FilterCatalog) {
				assert.Equal(t, []string{"Female", "Male"}, catalog.Gender)
			},
		},
		{
			name: "falha do cache degrada para montagem direta",
			setup: func(repo *mocks.MockSalesRepository, c *cachemocks.MockCatalogCache) {
				c.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
				expectDistincts(repo)
				c.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			check: func(t *testing.T, catalog *domain.FilterCatalog) {
				assert.Equal(t, []string{"organic", "wireless"}, catalog.Tags)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockSalesRepository(ctrl)
			mockCache := cachemocks.NewMockCatalogCache(ctrl)
			tt.setup(mockRepo, mockCache)

			catalog, err := NewService(mockRepo, mockCache).GetFilterOptions(context.Background())

			require.NoError(t, err)
			tt.check(t, catalog)
		})
	}
}

func TestService_RefreshFilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	mockCache := cachemocks.NewMockCatalogCache(ctrl)

	expectDistincts(mockRepo)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("READONLY"))

	catalog, err := NewService(mockRepo, mockCache).RefreshFilterOptions(context.Background())

	assert.ErrorContains(t, err, "READONLY")
	assert.NotNil(t, catalog)
}

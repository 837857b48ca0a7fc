package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestBuildQuery(t *testing.T) {
	req := domain.QueryRequest{
		Page:     3,
		PageSize: 20,
		Sort:     SortQuantityLow,
		Filters:  domain.FilterSet{Brand: []string{"Acme"}},
	}

	query := BuildQuery(req)

	assert.Equal(t, int64(40), query.Offset)
	assert.Equal(t, int64(20), query.Limit)
	assert.Equal(t, domain.FieldQuantity, query.Sort.Field)
	assert.False(t, query.Sort.Descending)
	assert.Equal(t, domain.And(domain.In(domain.FieldBrand, []string{"Acme"})), query.Filter)
}

func TestService_ListSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	req := domain.QueryRequest{Page: 1, PageSize: 10, Search: "maria"}
	expected := BuildQuery(req)

	mockRepo.EXPECT().
		Find(gomock.Any(), expected).
		Return([]*domain.SalesRecord{sampleRecord()}, nil)
	mockRepo.EXPECT().
		Count(gomock.Any(), expected.Filter).
		Return(int64(1), nil)

	resp, err := service.ListSales(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
	assert.Equal(t, int64(1), resp.Pagination.TotalRecords)
	assert.Equal(t, SortDateNewest, resp.Sort)
}

func TestService_ListSales_PageBeyondLast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(15), nil)

	resp, err := service.ListSales(context.Background(), domain.QueryRequest{Page: 9, PageSize: 10})

	require.NoError(t, err)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Equal(t, 9, resp.Pagination.Page)
}

func TestService_ListSales_Errors(t *testing.T) {
	storageErr := errors.New("connection refused")

	tests := []struct {
		name  string
		setup func(repo *mocks.MockSalesRepository)
	}{
		{
			name: "falha na busca",
			setup: func(repo *mocks.MockSalesRepository) {
				repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, storageErr)
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
			},
		},
		{
			name: "falha na contagem",
			setup: func(repo *mocks.MockSalesRepository) {
				repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return([]*domain.SalesRecord{}, nil).AnyTimes()
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), storageErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockSalesRepository(ctrl)
			tt.setup(mockRepo)

			resp, err := NewService(mockRepo).ListSales(context.Background(), domain.QueryRequest{Page: 1, PageSize: 10})

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, storageErr)
		})
	}
}

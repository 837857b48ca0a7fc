package importing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const sampleCSV = `Transaction ID,Date,Customer Name,Quantity,Final Amount,Tags
1,2023-01-01,Ana,1,10.5,"organic,skincare"
2,2023-01-02,Bruno,2,20,
3,not-a-date,Carla,1,5,
4,2023-01-04,Davi,x,5,
5,2023-01-05,Eva,3,30,fashion
`

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockSalesLoader(ctrl)

	var inserted [][]string
	gomock.InOrder(
		mockLoader.EXPECT().Reset(gomock.Any()).Return(nil),
		mockLoader.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []*domain.SalesRecord) error {
				ids := make([]string, 0, len(records))
				for _, r := range records {
					ids = append(ids, r.TransactionID)
				}
				inserted = append(inserted, ids)
				return nil
			}).
			Times(2),
	)

	report, err := NewService(mockLoader, 2).Import(context.Background(), strings.NewReader(sampleCSV))

	require.NoError(t, err)
	assert.Equal(t, 5, report.Read)
	assert.Equal(t, 3, report.Imported)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, [][]string{{"1", "2"}, {"5"}}, inserted)
}

func TestService_Import_Errors(t *testing.T) {
	t.Run("cabeçalho sem Date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, err := NewService(mocks.NewMockSalesLoader(ctrl), 10).
			Import(context.Background(), strings.NewReader("Customer Name\nAna\n"))

		assert.ErrorContains(t, err, "Date")
	})

	t.Run("falha no reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLoader := mocks.NewMockSalesLoader(ctrl)
		mockLoader.EXPECT().Reset(gomock.Any()).Return(errors.New("permission denied"))

		_, err := NewService(mockLoader, 10).Import(context.Background(), strings.NewReader(sampleCSV))

		assert.ErrorContains(t, err, "permission denied")
	})

	t.Run("falha na inserção", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLoader := mocks.NewMockSalesLoader(ctrl)
		mockLoader.EXPECT().Reset(gomock.Any()).Return(nil)
		mockLoader.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))

		report, err := NewService(mockLoader, 10).Import(context.Background(), strings.NewReader(sampleCSV))

		assert.ErrorContains(t, err, "duplicate key")
		assert.Equal(t, 0, report.Imported)
	})
}

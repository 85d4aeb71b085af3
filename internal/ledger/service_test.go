package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/communityworks/grantledger/internal/ledger"
)

func TestService_Create(t *testing.T) {
	validParams := ledger.CreateParams{
		Name:    "Case Management Software",
		Amount:  4999,
		PayDate: "2025-03-01",
		Funder:  "United Way General Support",
	}

	type testCase struct {
		name      string
		params    ledger.CreateParams
		setupMock func(m *ledger.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Success",
			params: validParams,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					AppendRecord(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "MissingFunderRejectedBeforeRepo",
			params: ledger.CreateParams{Name: "X", Amount: 100, PayDate: "2025-03-01"},
			// No repo expectation: validation fails first.
			wantErr: true,
		},
		{
			name:   "RepoError",
			params: validParams,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					AppendRecord(gomock.Any(), gomock.Any()).
					Return(errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := ledger.NewService(repo, 2025)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, ledger.Q1, got.Quarter)
			assert.Equal(t, 2025, got.Year)
		})
	}
}

func TestService_ImportBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		AppendRecords(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, recs []*ledger.Record) error {
			require.Len(t, recs, 2)
			assert.Equal(t, ledger.Q1, recs[0].Quarter)
			assert.Equal(t, ledger.Q2, recs[1].Quarter)
			return nil
		})

	svc := ledger.NewService(repo, 2025)

	recs, err := svc.ImportBatch(context.Background(), []ledger.CreateParams{
		{Name: "Rent", Amount: 320000, PayDate: "2025-01-15"},
		{Name: "Supplies", Amount: 15050, PayDate: "2025-04-02"},
	})
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestService_ImportBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// An empty batch never reaches the repository.
	svc := ledger.NewService(ledger.NewMockRepository(ctrl), 2025)

	recs, err := svc.ImportBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().ClearRecords(gomock.Any()).Return(3, nil)

	svc := ledger.NewService(repo, 2025)

	n, err := svc.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

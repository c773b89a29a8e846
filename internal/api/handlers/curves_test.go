package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arunsketh/smoothening-curve/pkg/models"
)

// MockResultStore implements store.ResultStore for testing
type MockResultStore struct {
	mock.Mock
}

func (m *MockResultStore) Put(id string, rec *models.CurveRecord) {
	m.Called(id, rec)
}

func (m *MockResultStore) Get(id string) (*models.CurveRecord, bool, bool) {
	args := m.Called(id)
	rec, _ := args.Get(0).(*models.CurveRecord)
	return rec, args.Bool(1), args.Bool(2)
}

func (m *MockResultStore) Peek(id string) (*models.CurveRecord, bool) {
	args := m.Called(id)
	rec, _ := args.Get(0).(*models.CurveRecord)
	return rec, args.Bool(1)
}

func (m *MockResultStore) Delete(id string) {
	m.Called(id)
}

func TestResampleCurve(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		step      float64
		mockSetup func(*MockResultStore)
		wantError bool
	}{
		{
			name: "valid input",
			data: "0,0\n10,1\n20,2",
			step: 0.5,
			mockSetup: func(st *MockResultStore) {
				st.On("Put", mock.Anything, mock.AnythingOfType("*models.CurveRecord")).Return()
			},
			wantError: false,
		},
		{
			name:      "blank input",
			data:      "   \n  ",
			step:      0.5,
			mockSetup: func(st *MockResultStore) {},
			wantError: true,
		},
		{
			name:      "malformed line",
			data:      "1,2\nabc\n3,4",
			step:      0.5,
			mockSetup: func(st *MockResultStore) {},
			wantError: true,
		},
		{
			name:      "too few points",
			data:      "1,2",
			step:      0.5,
			mockSetup: func(st *MockResultStore) {},
			wantError: true,
		},
		{
			name:      "negative step",
			data:      "0,0\n10,1",
			step:      -1,
			mockSetup: func(st *MockResultStore) {},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &MockResultStore{}
			tt.mockSetup(st)

			handler := NewCurveHandler(st, 0.005)

			req := &models.ResampleRequest{}
			req.Body.Data = tt.data
			req.Body.Step = tt.step

			resp, err := handler.ResampleCurve(context.Background(), req)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.NotEmpty(t, resp.Body.ID)
				assert.Equal(t, len(resp.Body.Resampled.Y), resp.Body.Points)
				assert.Equal(t, "/api/curves/"+resp.Body.ID+"/csv", resp.Body.CSVPath)
				assert.False(t, resp.Body.CreatedAt.IsZero())
			}

			st.AssertExpectations(t)
		})
	}
}

func TestResampleCurveUsesDefaultStep(t *testing.T) {
	st := &MockResultStore{}
	var stored *models.CurveRecord
	st.On("Put", mock.Anything, mock.AnythingOfType("*models.CurveRecord")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.CurveRecord)
		}).Return()

	handler := NewCurveHandler(st, 0.5)

	req := &models.ResampleRequest{}
	req.Body.Data = "0,0\n10,1\n20,2"
	// Step left at zero: the configured default applies.

	resp, err := handler.ResampleCurve(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, stored.Resampled.Y)
	assert.Equal(t, resp.Body.ID, stored.ID)
}

func TestResampleCurveClearsPreviousSlot(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "on success", data: "0,0\n10,1"},
		{name: "on error", data: "not numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &MockResultStore{}
			st.On("Delete", "old-id").Return()
			st.On("Put", mock.Anything, mock.Anything).Return().Maybe()

			handler := NewCurveHandler(st, 0.005)

			req := &models.ResampleRequest{}
			req.Body.Data = tt.data
			req.Body.Step = 0.5
			req.Body.PreviousID = "old-id"

			_, _ = handler.ResampleCurve(context.Background(), req)

			st.AssertCalled(t, "Delete", "old-id")
		})
	}
}

func TestGetCurve(t *testing.T) {
	id := uuid.New().String()
	rec := &models.CurveRecord{
		ID:        id,
		Original:  models.Curve{X: []float64{0, 10}, Y: []float64{0, 1}},
		Resampled: models.Curve{X: []float64{0, 5, 10}, Y: []float64{0, 0.5, 1}},
		CSV:       "X (Strain),Y (Stress)",
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name      string
		id        string
		mockSetup func(*MockResultStore)
		wantError bool
		wantFresh bool
	}{
		{
			name: "fresh result",
			id:   id,
			mockSetup: func(st *MockResultStore) {
				st.On("Get", id).Return(rec, true, true)
			},
			wantError: false,
			wantFresh: true,
		},
		{
			name: "redisplay",
			id:   id,
			mockSetup: func(st *MockResultStore) {
				st.On("Get", id).Return(rec, false, true)
			},
			wantError: false,
			wantFresh: false,
		},
		{
			name: "expired",
			id:   id,
			mockSetup: func(st *MockResultStore) {
				st.On("Get", id).Return(nil, false, false)
			},
			wantError: true,
		},
		{
			name:      "invalid id",
			id:        "not-a-uuid",
			mockSetup: func(st *MockResultStore) {},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &MockResultStore{}
			tt.mockSetup(st)

			handler := NewCurveHandler(st, 0.005)

			resp, err := handler.GetCurve(context.Background(), &models.GetCurveRequest{ID: tt.id})

			if tt.wantError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, resp.Body.ID)
				assert.Equal(t, tt.wantFresh, resp.Body.Fresh)
				assert.Equal(t, 3, resp.Body.Points)
			}

			st.AssertExpectations(t)
		})
	}
}

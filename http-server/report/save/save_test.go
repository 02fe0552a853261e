package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"next-golang/internal/catalog"
	"next-golang/internal/storage"
)

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) SaveReport(ctx context.Context, draft storage.ReportDraft) (int64, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(int64), args.Error(1)
}

func validBody() string {
	return `{
		"basic_info": {"customer": "東海汽船", "ship_name": "第三丸"},
		"selected_workers": ["大竹"],
		"worker_times": {"大竹": [{"start_time": "08:00", "end_time": "17:00", "category": "regular"}]},
		"materials": []
	}`
}

func TestSaveReport_Success(t *testing.T) {
	saver := new(MockSaver)
	saver.On("SaveReport", mock.Anything, mock.Anything).Return(int64(42), nil)

	handler := SaveReport(slog.Default(), saver, catalog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(validBody()))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, float64(42), resp["id"])

	saver.AssertExpectations(t)
}

func TestSaveReport_RequiresCustomerAndShipName(t *testing.T) {
	saver := new(MockSaver)
	handler := SaveReport(slog.Default(), saver, catalog.Default())

	tests := []struct {
		name string
		body string
	}{
		{"顧客名なし", `{"basic_info": {"ship_name": "第三丸"}, "selected_workers": ["大竹"]}`},
		{"船名なし", `{"basic_info": {"customer": "東海汽船"}, "selected_workers": ["大竹"]}`},
		{"作業者なし", `{"basic_info": {"customer": "東海汽船", "ship_name": "第三丸"}, "selected_workers": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}

	saver.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
}

func TestSaveReport_RejectsUnknownWorker(t *testing.T) {
	saver := new(MockSaver)
	handler := SaveReport(slog.Default(), saver, catalog.Default())

	body := `{
		"basic_info": {"customer": "東海汽船", "ship_name": "第三丸"},
		"selected_workers": ["山田"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	saver.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
}

func TestSaveReport_StorageError(t *testing.T) {
	saver := new(MockSaver)
	saver.On("SaveReport", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	handler := SaveReport(slog.Default(), saver, catalog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(validBody()))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

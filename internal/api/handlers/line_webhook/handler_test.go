package line_webhook

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	usecase "github.com/m04kA/SMC-ReservationShowcase/internal/usecase/line_webhook"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*usecase.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRouter(uc *mockUseCase) *mux.Router {
	h := NewHandler(uc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/api/line/{businessType}/webhook", h.Handle).Methods(http.MethodPost)
	r.HandleFunc("/api/line/{businessType}/webhook", h.HandleStatus).Methods(http.MethodGet)
	return r
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &usecase.Request{
		BusinessType: domain.BusinessRestaurant,
		Body:         []byte(`{"events":[]}`),
		Signature:    "c2lnbmF0dXJl",
	}).Return(&usecase.Response{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/line/restaurant/webhook", strings.NewReader(`{"events":[]}`))
	req.Header.Set("X-Line-Signature", "c2lnbmF0dXJl")
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err         error
		wantStatus  int
		wantMessage string
	}{
		{err: usecase.ErrBusinessNotFound, wantStatus: http.StatusBadRequest, wantMessage: "Invalid business type"},
		{err: usecase.ErrNotConfigured, wantStatus: http.StatusInternalServerError, wantMessage: "LINE not configured"},
		{err: usecase.ErrMissingSignature, wantStatus: http.StatusBadRequest, wantMessage: "No signature"},
		{err: usecase.ErrInvalidSignature, wantStatus: http.StatusBadRequest, wantMessage: "Invalid signature"},
		{err: usecase.ErrInvalidPayload, wantStatus: http.StatusInternalServerError, wantMessage: "Internal error"},
		{err: usecase.ErrReplyFailed, wantStatus: http.StatusInternalServerError, wantMessage: "Internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMessage, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: test", tt.err))

			req := httptest.NewRequest(http.MethodPost, "/api/line/salon/webhook", strings.NewReader("{}"))
			rec := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"code":%d,"message":%q}`, tt.wantStatus, tt.wantMessage), rec.Body.String())
		})
	}
}

func TestHandleStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(&mockUseCase{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/line/salon/webhook", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"LINE webhook endpoint ready"}`, rec.Body.String())
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taphoa39/books-backend-go/internal/domain/employee"
)

type fakeEmployeeService struct {
	employees map[string]employee.EmployeeResponse
}

func newFakeEmployeeService() *fakeEmployeeService {
	return &fakeEmployeeService{employees: make(map[string]employee.EmployeeResponse)}
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if _, ok := f.employees[req.MaNhanVien]; ok {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}
	resp := employee.EmployeeResponse{
		MaNhanVien:    req.MaNhanVien,
		HoTen:         req.HoTen,
		NhanVienKhoan: req.NhanVienKhoan,
	}
	f.employees[req.MaNhanVien] = resp
	return resp, nil
}

func (f *fakeEmployeeService) Get(ctx context.Context, maNhanVien string) (employee.EmployeeResponse, error) {
	resp, ok := f.employees[maNhanVien]
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return resp, nil
}

func (f *fakeEmployeeService) List(ctx context.Context, includeTerminated bool) ([]employee.EmployeeResponse, error) {
	out := make([]employee.EmployeeResponse, 0, len(f.employees))
	for _, resp := range f.employees {
		out = append(out, resp)
	}
	return out, nil
}

func (f *fakeEmployeeService) Update(ctx context.Context, maNhanVien string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	resp, ok := f.employees[maNhanVien]
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	if req.HoTen != nil {
		resp.HoTen = *req.HoTen
	}
	f.employees[maNhanVien] = resp
	return resp, nil
}

func (f *fakeEmployeeService) Terminate(ctx context.Context, maNhanVien string, ngayKetThuc string) error {
	if _, ok := f.employees[maNhanVien]; !ok {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func routeRequest(t *testing.T, method, pattern, target string, body []byte, handlerFn http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.MethodFunc(method, pattern, handlerFn)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestEmployeeHandlerCreate(t *testing.T) {
	h := NewEmployeeHandler(newFakeEmployeeService())

	body := []byte(`{"maNhanVien":"NV001","hoTen":"Nguyen Van A","nhanVienKhoan":true}`)
	rec := routeRequest(t, http.MethodPost, "/employees", "/employees", body, h.Create)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "NV001", data["maNhanVien"])
	assert.Equal(t, true, data["nhanVienKhoan"])
}

func TestEmployeeHandlerCreateValidation(t *testing.T) {
	h := NewEmployeeHandler(newFakeEmployeeService())

	body := []byte(`{"maNhanVien":"","hoTen":""}`)
	rec := routeRequest(t, http.MethodPost, "/employees", "/employees", body, h.Create)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
	errDetail := envelope["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
	details := errDetail["details"].(map[string]interface{})
	assert.Contains(t, details, "maNhanVien")
	assert.Contains(t, details, "hoTen")
}

func TestEmployeeHandlerCreateConflict(t *testing.T) {
	svc := newFakeEmployeeService()
	h := NewEmployeeHandler(svc)

	body := []byte(`{"maNhanVien":"NV001","hoTen":"Nguyen Van A"}`)
	rec := routeRequest(t, http.MethodPost, "/employees", "/employees", body, h.Create)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = routeRequest(t, http.MethodPost, "/employees", "/employees", body, h.Create)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestEmployeeHandlerGetNotFound(t *testing.T) {
	h := NewEmployeeHandler(newFakeEmployeeService())

	rec := routeRequest(t, http.MethodGet, "/employees/{maNhanVien}", "/employees/NV999", nil, h.Get)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	errDetail := envelope["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errDetail["code"])
}

func TestEmployeeHandlerInvalidJSON(t *testing.T) {
	h := NewEmployeeHandler(newFakeEmployeeService())

	rec := routeRequest(t, http.MethodPost, "/employees", "/employees", []byte(`{not json`), h.Create)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

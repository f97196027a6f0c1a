package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	apphttp "github.com/jhoicas/stock-ledger-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memCategoryRepo repositorio en memoria con detección de nombre duplicado,
// igual que el índice único de la tabla real.
type memCategoryRepo struct {
	categories map[string]*entity.Category
}

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.categories[c.ID] = c
	return nil
}
func (r *memCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return r.categories[id], nil
}
func (r *memCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}
func (r *memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}
func (r *memCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

// buildTestApp monta las rutas de categorías sobre un repositorio en memoria.
func buildTestApp() (*fiber.App, *memCategoryRepo) {
	repo := &memCategoryRepo{categories: map[string]*entity.Category{}}
	handler := apphttp.NewCategoryHandler(usecase.NewCategoryUseCase(repo))

	app := fiber.New()
	app.Post("/api/categories", handler.Create)
	app.Get("/api/categories/:id", handler.GetByID)
	app.Delete("/api/categories/:id", handler.Delete)
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryHandler_CreateYGet(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", `{"name":"Bebidas"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created dto.CategoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Bebidas", created.Name)
	assert.NotEmpty(t, created.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/categories/"+created.ID, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCategoryHandler_NombreVacioEs400(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", `{"name":""}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestCategoryHandler_NombreDuplicadoEs409(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", `{"name":"Bebidas"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/categories", `{"name":"Bebidas"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCategoryHandler_NoEncontradaEs404(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/categories/no-existe", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/categories/no-existe", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCategoryHandler_DeleteEs204(t *testing.T) {
	app, repo := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/categories", `{"name":"Snacks"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.CategoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = doJSON(t, app, http.MethodDelete, "/api/categories/"+created.ID, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(t, repo.categories)
}

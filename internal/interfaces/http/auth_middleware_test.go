package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/entity"
	apphttp "github.com/yousefroshhdy/dental-pos-harmony/internal/interfaces/http"
	pkgjwt "github.com/yousefroshhdy/dental-pos-harmony/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "dental-pos-test"
	testExpMin    = 60
)

// buildMiddlewareApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildMiddlewareApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doProtected lanza una petición GET /protected y devuelve la respuesta.
func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildMiddlewareApp(entity.RoleAdmin)

	resp := doProtected(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildMiddlewareApp(entity.RoleAdmin)

	resp := doProtected(t, app, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_TokenFirmadoConOtraClave(t *testing.T) {
	app := buildMiddlewareApp(entity.RoleAdmin)

	tok, err := pkgjwt.Generate("otra-clave", testUserID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_TokenValidoCargaLocals(t *testing.T) {
	app := buildMiddlewareApp(entity.RoleAdmin)

	resp := doProtected(t, app, tokenForRole(t, entity.RoleAdmin))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out struct {
		OK   bool   `json:"ok"`
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.OK)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildMiddlewareApp(entity.RoleAdmin)

	resp := doProtected(t, app, tokenForRole(t, entity.RoleAdmin))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: El usuario no tiene el rol requerido → 403 FORBIDDEN.
func TestRequireRole_VendedorRechazadoEnRutaAdmin(t *testing.T) {
	app := buildMiddlewareApp(entity.RoleAdmin)

	resp := doProtected(t, app, tokenForRole(t, entity.RoleVendedor))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

// Caso 3: Varios roles permitidos → cualquiera de ellos pasa.
func TestRequireRole_MultiplesRolesPermitidos(t *testing.T) {
	app := buildMiddlewareApp(entity.RoleAdmin, entity.RoleVendedor)

	resp := doProtected(t, app, tokenForRole(t, entity.RoleVendedor))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 4: Token sin rol → 401 MISSING_ROLE.
func TestRequireRole_TokenSinRol(t *testing.T) {
	app := buildMiddlewareApp(entity.RoleAdmin)

	resp := doProtected(t, app, tokenForRole(t, ""))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLE", errorCode(t, resp))
}

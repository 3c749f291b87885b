package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
	"github.com/nibbleworks/forkful/internal/recipes/service"
	"github.com/nibbleworks/forkful/internal/recipes/store"
	"github.com/nibbleworks/forkful/pkg/httpx"
	"github.com/nibbleworks/forkful/pkg/slogx"

	_ "github.com/nibbleworks/forkful/api/recipes" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     httpx.TokenVerifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	UserService      *service.UserService
	TokenService     *service.TokenService
	RecipeService    *service.RecipeService
	AttributeService *service.AttributeService
}

func NewRouter(
	verifier httpx.TokenVerifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerRecipes()
	r.registerAttributes()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Forkful Recipe API
//	@version		0.1.0
//	@description	Recipe management service with per-user recipes, tags and ingredients.
//	@description
//	@description				Authentication uses opaque bearer tokens issued by the token endpoint.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Opaque API token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	usersHandler := &UsersHandler{UserService: r.UserService}
	tokenHandler := &TokenHandler{TokenService: r.TokenService}

	// POST /users - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /users/token - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /v1/users/token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// /users/me - lenient rate limit by user
	r.Mux.Handle("GET /v1/users/me",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleGetMe),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/users/me",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleUpdateMe),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerRecipes() {
	h := &RecipesHandler{RecipeService: r.RecipeService}
	imageHandler := &RecipeImageHandler{RecipeService: r.RecipeService}

	secured := func(hf http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(hf,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /v1/recipes", secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/recipes", secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/recipes/{id}", secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/recipes/{id}", secured(h.HandlePut, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/recipes/{id}", secured(h.HandlePatch, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/recipes/{id}", secured(h.HandleDelete, httpx.ModerateLimit))

	// Image uploads are heavier than JSON writes; keep them moderate.
	r.Mux.Handle("POST /v1/recipes/{id}/image", secured(imageHandler.ServeHTTP, httpx.ModerateLimit))
}

func (r *Router) registerAttributes() {
	tags := &AttributesHandler{AttributeService: r.AttributeService, Kind: domain.KindTag}
	ingredients := &AttributesHandler{AttributeService: r.AttributeService, Kind: domain.KindIngredient}

	secured := func(hf http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(hf,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /v1/tags", secured(tags.HandleList, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/tags/{id}", secured(tags.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/tags/{id}", secured(tags.HandleDelete, httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/ingredients", secured(ingredients.HandleList, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/ingredients/{id}", secured(ingredients.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/ingredients/{id}", secured(ingredients.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}

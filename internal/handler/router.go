package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/handler/api"
	"campus-reserve/internal/handler/middleware"
	"campus-reserve/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Equipment *api.EquipmentHandler
	Cart      *api.CartHandler
	Res       *api.ReservationHandler
	Staff     *api.StaffReservationHandler
	Scanner   *api.ScannerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		equipment := apiGroup.Group("/equipment")
		{
			addRoutes(equipment, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Equipment.List},
				{Method: http.MethodGet, Path: "/categories", Handler: h.Equipment.Categories},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Equipment.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Equipment.Availability},
			})

			adminOnly := equipment.Group("")
			adminOnly.Use(authMiddleware.RequireAuth())
			adminOnly.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Equipment.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Equipment.Update},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Equipment.ChangeStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Equipment.Delete},
			})
		}

		cartGroup := apiGroup.Group("/cart")
		cartGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cartGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPatch, Path: "/items/:equipmentId", Handler: h.Cart.UpdateItem},
				{Method: http.MethodDelete, Path: "/items/:equipmentId", Handler: h.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Cart.Checkout},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Res.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Res.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Res.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Res.Cancel},
				{Method: http.MethodPost, Path: "/:id/return-request", Handler: h.Res.RequestReturn},
				{Method: http.MethodGet, Path: "/:id/qr", Handler: h.Res.QRToken},
			})
		}

		staff := apiGroup.Group("/staff")
		staff.Use(authMiddleware.RequireAuth())
		staff.Use(authMiddleware.RequireRoleAtLeast(user.RoleStaff))
		{
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Staff.ListAll},
				{Method: http.MethodPost, Path: "/reservations/:id/approve", Handler: h.Staff.Approve},
				{Method: http.MethodPost, Path: "/reservations/:id/reject", Handler: h.Staff.Reject},
				{Method: http.MethodPost, Path: "/reservations/:id/issue", Handler: h.Staff.Issue},
				{Method: http.MethodPost, Path: "/reservations/:id/return", Handler: h.Staff.Return},
				{Method: http.MethodPatch, Path: "/reservations/:id/items/:itemId/condition", Handler: h.Staff.MarkItemCondition},
				{Method: http.MethodPost, Path: "/scanner/scan", Handler: h.Scanner.Scan},
			})
		}

		statistics := apiGroup.Group("/statistics")
		statistics.Use(authMiddleware.RequireAuth())
		statistics.Use(authMiddleware.RequireRoleAtLeast(user.RoleStaff))
		{
			addRoutes(statistics, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Staff.Statistics},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

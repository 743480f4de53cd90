package handlers

import (
	"net/http"

	_ "github.com/akostin/punchpass/docs"
	authhandlers "github.com/akostin/punchpass/internal/handlers/auth"
	membershandlers "github.com/akostin/punchpass/internal/handlers/members"
	pendinghandlers "github.com/akostin/punchpass/internal/handlers/pending"
	scanhandlers "github.com/akostin/punchpass/internal/handlers/scan"
	"github.com/akostin/punchpass/internal/service"
	"github.com/akostin/punchpass/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ScanHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
	RecentScans(w http.ResponseWriter, r *http.Request)
}

type MemberHandler interface {
	GetMember(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
}

type PendingHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	ScanHandler    ScanHandler
	MemberHandler  MemberHandler
	PendingHandler PendingHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		ScanHandler:    scanhandlers.New(s.ScanService),
		MemberHandler:  membershandlers.New(s.MemberService),
		PendingHandler: pendinghandlers.New(s.MemberService, s.SyncService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/scan", h.ScanHandler.Scan)
			r.Route("/members/{id}", func(r chi.Router) {
				r.Get("/", h.MemberHandler.GetMember)
				r.Post("/redeem", h.MemberHandler.Redeem)
			})
			r.Route("/pending", func(r chi.Router) {
				r.Get("/", h.PendingHandler.List)
				r.Post("/{id}/approve", h.PendingHandler.Approve)
				r.Post("/{id}/reject", h.PendingHandler.Reject)
			})
			r.Post("/admin/sync", h.PendingHandler.Sync)
			r.Get("/admin/scans", h.ScanHandler.RecentScans)
		})
	})

	return r
}

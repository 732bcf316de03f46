// Package server wires the HTTP surface: routing, the auth gate, template
// rendering and static files.
package server

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stylemart/stylemart/internal/auth"
	"github.com/stylemart/stylemart/internal/catalog"
	"github.com/stylemart/stylemart/internal/config"
	"github.com/stylemart/stylemart/internal/models"
	"github.com/stylemart/stylemart/internal/orders"
	"github.com/stylemart/stylemart/internal/session"
	"github.com/stylemart/stylemart/internal/userstore"
)

// Server holds the request-handling dependencies.
type Server struct {
	cfg       *config.Config
	log       *slog.Logger
	users     userstore.Store
	catalog   catalog.Loader
	sessions  *session.Manager
	tokens    *auth.TokenSource
	publisher orders.Publisher
	tpl       *template.Template
	router    *mux.Router
}

// New parses the templates and builds the route table. publisher may be
// nil, in which case orders are only logged.
func New(cfg *config.Config, log *slog.Logger, users userstore.Store, loader catalog.Loader, publisher orders.Publisher) (*Server, error) {
	tpl, err := template.ParseGlob(cfg.Server.Templates)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		log:       log,
		users:     users,
		catalog:   loader,
		sessions:  session.NewManager(cfg.Session.Secret),
		tokens:    auth.NewTokenSource(cfg.Auth.Secret, cfg.Auth.TokenTTL),
		publisher: publisher,
		tpl:       tpl,
		router:    mux.NewRouter(),
	}
	s.routes()
	return s, nil
}

// Handler returns the root handler for the HTTP server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	r.HandleFunc("/", s.index).Methods("GET")
	r.HandleFunc("/signup", s.signup).Methods("GET", "POST")
	r.HandleFunc("/login", s.login).Methods("GET", "POST")
	r.HandleFunc("/logout", s.logout).Methods("GET")

	r.Handle("/home", s.requireLogin(http.HandlerFunc(s.home))).Methods("GET")
	r.Handle("/search", s.requireLogin(http.HandlerFunc(s.search))).Methods("GET")
	r.Handle("/checkout", s.requireLogin(http.HandlerFunc(s.checkout))).Methods("GET", "POST")
	r.Handle("/confirm_order", s.requireLogin(http.HandlerFunc(s.confirmOrder))).Methods("POST")

	r.Handle("/add_to_cart", s.requireLogin(http.HandlerFunc(s.addToCart))).Methods("POST")
	r.Handle("/cart", s.requireLogin(http.HandlerFunc(s.viewCart))).Methods("GET")
	r.Handle("/remove_from_cart", s.requireLogin(http.HandlerFunc(s.removeFromCart))).Methods("POST")
	r.Handle("/checkout_cart", s.requireLogin(http.HandlerFunc(s.checkoutCart))).Methods("POST")
	r.Handle("/confirm_cart_order", s.requireLogin(http.HandlerFunc(s.confirmCartOrder))).Methods("POST")

	r.Handle("/image_search", s.requireLogin(http.HandlerFunc(s.imageSearch))).Methods("POST")

	static := func(prefix, dir string) {
		r.PathPrefix(prefix).Handler(http.StripPrefix(prefix, http.FileServer(http.Dir(dir))))
	}
	static("/ProductImages/", config.ProductImageDir)
	static("/styles/", config.StylesDir)
	static("/scripts/", config.ScriptsDir)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := s.tpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("render template", "template", name, "error", err)
	}
}

// loadCatalog reads the catalog for this request. A missing or corrupt
// catalog file is fatal for the request.
func (s *Server) loadCatalog(w http.ResponseWriter) ([]models.Product, bool) {
	products, err := s.catalog.Load()
	if err != nil {
		s.log.Error("load catalog", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	return products, true
}

package server

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/stylemart/stylemart/internal/catalog"
	"github.com/stylemart/stylemart/internal/models"
	"github.com/stylemart/stylemart/internal/orders"
	"github.com/stylemart/stylemart/internal/password"
	"github.com/stylemart/stylemart/internal/userstore"
)

type formPage struct {
	Message   string
	CartCount int
}

type homePage struct {
	Username  string
	Query     string
	Products  []models.Product
	CartCount int
}

type checkoutPage struct {
	Product   models.Product
	CartCount int
}

type cartPage struct {
	CartProducts []models.Product
	TotalPrice   float64
	CartCount    int
}

type orderPage struct {
	Order     orders.Order
	CartCount int
}

func (s *Server) cartCount(r *http.Request) int {
	return s.sessions.Cart(r).Count()
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/signup", http.StatusSeeOther)
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	page := formPage{CartCount: s.cartCount(r)}

	if r.Method == http.MethodPost {
		username := r.FormValue("username")
		candidate := r.FormValue("password")

		_, err := s.users.Lookup(username)
		switch {
		case err == nil:
			page.Message = "Username already exists."
		case !errors.Is(err, userstore.ErrNotFound):
			s.log.Error("lookup user", "username", username, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		default:
			if missing := password.Check(candidate); len(missing) > 0 {
				page.Message = password.Message(missing)
				break
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(candidate), bcrypt.DefaultCost)
			if err != nil {
				s.log.Error("hash password", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if err := s.users.Append(username, string(hashed)); err != nil {
				s.log.Error("append user", "username", username, "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			page.Message = "Signup successful! You can now log in."
		}
	}

	s.render(w, "signup.html", page)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	page := formPage{CartCount: s.cartCount(r)}

	if r.Method == http.MethodPost {
		username := r.FormValue("username")
		candidate := r.FormValue("password")

		hash, err := s.users.Lookup(username)
		switch {
		case errors.Is(err, userstore.ErrNotFound):
			page.Message = "Username not found."
		case err != nil:
			s.log.Error("lookup user", "username", username, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		case bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) != nil:
			page.Message = "Invalid password."
		default:
			token, err := s.tokens.Issue(username)
			if err != nil {
				s.log.Error("issue token", "username", username, "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			s.setIdentity(w, token)
			http.Redirect(w, r, "/home", http.StatusSeeOther)
			return
		}
	}

	s.render(w, "login.html", page)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.clearIdentity(w)
	if err := s.sessions.Destroy(w, r); err != nil {
		s.log.Error("destroy session", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	products, ok := s.loadCatalog(w)
	if !ok {
		return
	}
	s.render(w, "home.html", homePage{
		Username:  usernameFrom(r),
		Products:  products,
		CartCount: s.cartCount(r),
	})
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	products, ok := s.loadCatalog(w)
	if !ok {
		return
	}
	s.render(w, "home.html", homePage{
		Username:  usernameFrom(r),
		Query:     query,
		Products:  catalog.Search(query, products),
		CartCount: s.cartCount(r),
	})
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	products, ok := s.loadCatalog(w)
	if !ok {
		return
	}
	product, found := catalog.FindByName(products, r.FormValue("product_name"))
	if !found {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	s.render(w, "checkout.html", checkoutPage{Product: product, CartCount: s.cartCount(r)})
}

func (s *Server) confirmOrder(w http.ResponseWriter, r *http.Request) {
	productName := r.FormValue("product_name")
	if productName == "" {
		productName = "Multiple Items"
	}
	total, _ := strconv.ParseFloat(r.FormValue("total_price"), 64)

	o := orders.New(usernameFrom(r),
		r.FormValue("name"), r.FormValue("address"),
		r.FormValue("phone"), r.FormValue("email"),
		nil, total)
	o.Product = productName

	s.finishOrder(w, r, o)
}

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	c := s.sessions.Cart(r).Add(r.FormValue("product_name"))
	if err := s.sessions.SaveCart(w, r, c); err != nil {
		s.log.Error("save cart", "error", err)
	}
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (s *Server) viewCart(w http.ResponseWriter, r *http.Request) {
	products, ok := s.loadCatalog(w)
	if !ok {
		return
	}
	c := s.sessions.Cart(r)
	items, total, _ := c.Resolve(products)
	s.render(w, "cart.html", cartPage{
		CartProducts: items,
		TotalPrice:   total,
		CartCount:    c.Count(),
	})
}

func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	c := s.sessions.Cart(r).Remove(r.FormValue("product_name"))
	if err := s.sessions.SaveCart(w, r, c); err != nil {
		s.log.Error("save cart", "error", err)
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (s *Server) checkoutCart(w http.ResponseWriter, r *http.Request) {
	products, ok := s.loadCatalog(w)
	if !ok {
		return
	}
	c := s.sessions.Cart(r)
	items, total, _ := c.Resolve(products)
	s.render(w, "checkout_cart.html", cartPage{
		CartProducts: items,
		TotalPrice:   total,
		CartCount:    c.Count(),
	})
}

func (s *Server) confirmCartOrder(w http.ResponseWriter, r *http.Request) {
	products, ok := s.loadCatalog(w)
	if !ok {
		return
	}
	c := s.sessions.Cart(r)
	items, total, _ := c.Resolve(products)

	// The cart is spent once the order is confirmed.
	if err := s.sessions.SaveCart(w, r, c.Clear()); err != nil {
		s.log.Error("clear cart", "error", err)
	}

	o := orders.New(usernameFrom(r),
		r.FormValue("name"), r.FormValue("address"),
		r.FormValue("phone"), r.FormValue("email"),
		items, total)

	s.finishOrder(w, r, o)
}

func (s *Server) finishOrder(w http.ResponseWriter, r *http.Request, o orders.Order) {
	o.Log(s.log)
	if s.publisher != nil {
		if err := s.publisher.Publish(r.Context(), o); err != nil {
			// Publishing is best effort; the order page still renders.
			s.log.Error("publish order", "order_id", o.ID, "error", err)
		}
	}
	s.render(w, "order_confirmed.html", orderPage{Order: o, CartCount: s.cartCount(r)})
}

func (s *Server) imageSearch(w http.ResponseWriter, r *http.Request) {
	file, hdr, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "No image uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// The upload is saved and its filename stem doubles as the search
	// keyword. No image analysis happens here.
	name := filepath.Base(hdr.Filename)
	if err := s.saveUpload(file, name); err != nil {
		s.log.Error("save upload", "filename", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	keyword := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))

	products, ok := s.loadCatalog(w)
	if !ok {
		return
	}
	s.render(w, "home.html", homePage{
		Username:  usernameFrom(r),
		Products:  catalog.MatchSubstring(keyword, products),
		CartCount: s.cartCount(r),
	})
}

func (s *Server) saveUpload(src io.Reader, name string) error {
	if err := os.MkdirAll(s.cfg.Uploads.Dir, 0o755); err != nil {
		return err
	}
	dst, err := os.Create(filepath.Join(s.cfg.Uploads.Dir, name))
	if err != nil {
		return err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Close()
}

package routes

import (
	"net/http"

	"shop-api/controllers"
	"shop-api/middleware"

	"github.com/gorilla/mux"
)

// chain wraps a handler in middlewares, first listed runs first.
func chain(h http.HandlerFunc, mws ...func(http.Handler) http.Handler) http.Handler {
	var handler http.Handler = h
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}

// RegisterRoutes sets up the full /api route table.
func RegisterRoutes(
	router *mux.Router,
	auth *controllers.AuthController,
	users *controllers.UserController,
	products *controllers.ProductController,
	carts *controllers.CartController,
	orders *controllers.OrderController,
	comments *controllers.CommentController,
	ratings *controllers.RatingController,
	clients *controllers.ClientController,
) {
	api := router.PathPrefix("/api").Subrouter()

	authn := middleware.Authenticate
	objectID := middleware.ValidateObjectID
	adminOrEmployee := middleware.AdminOrEmployee
	admin := middleware.AdminOnly

	// /api/auth
	a := api.PathPrefix("/auth").Subrouter()
	a.HandleFunc("/register", auth.Register).Methods("POST")
	a.HandleFunc("/login", auth.Login).Methods("POST")

	// /api/users
	u := api.PathPrefix("/users").Subrouter()
	u.Handle("/profile", chain(users.GetAll, authn, adminOrEmployee)).Methods("GET")
	u.Handle("/count", chain(users.Count, authn, adminOrEmployee)).Methods("GET")
	u.Handle("/profile/{id}", chain(users.GetProfile, objectID)).Methods("GET")
	u.Handle("/profile/{id}", chain(users.UpdateProfile, objectID, authn, middleware.RequireSelf)).Methods("PUT")
	u.Handle("/profile/{id}", chain(users.Delete, objectID, authn)).Methods("DELETE")
	u.Handle("/update-role/{id}", chain(users.UpdateRole, objectID, authn, admin)).Methods("PUT")

	// /api/products
	p := api.PathPrefix("/products").Subrouter()
	p.Handle("", chain(products.Create, authn, adminOrEmployee)).Methods("POST")
	p.HandleFunc("", products.GetAll).Methods("GET")
	p.HandleFunc("/count", products.Count).Methods("GET")
	p.Handle("/{id}", chain(products.GetByID, objectID)).Methods("GET")
	p.Handle("/{id}", chain(products.Update, objectID, authn, adminOrEmployee)).Methods("PUT")
	p.Handle("/{id}", chain(products.Delete, objectID, authn, adminOrEmployee)).Methods("DELETE")
	p.Handle("/update-image/{id}", chain(products.UpdateImage, objectID, authn, adminOrEmployee)).Methods("PUT")

	// /api/carts
	c := api.PathPrefix("/carts").Subrouter()
	c.Handle("/add", chain(carts.AddItem, authn)).Methods("PUT")
	c.Handle("/remove", chain(carts.RemoveItem, authn)).Methods("PUT")
	c.Handle("/inc-dec-quantity", chain(carts.AdjustQuantity, authn)).Methods("PUT")
	c.Handle("/user/{id}", chain(carts.GetForUser, objectID, authn)).Methods("GET")

	// /api/orders
	o := api.PathPrefix("/orders").Subrouter()
	o.Handle("", chain(orders.Create, authn)).Methods("POST")
	o.Handle("", chain(orders.GetAll, authn, adminOrEmployee)).Methods("GET")
	o.Handle("/{id}", chain(orders.GetByID, objectID, authn)).Methods("GET")
	o.Handle("/{id}", chain(orders.Delete, objectID, authn, adminOrEmployee)).Methods("DELETE")
	o.Handle("/user/{id}", chain(orders.GetForUser, objectID, authn)).Methods("GET")
	o.Handle("/update-status/{id}", chain(orders.UpdateStatus, objectID, authn, adminOrEmployee)).Methods("PUT")
	o.Handle("/update-note/{id}", chain(orders.UpdateNote, objectID, authn, adminOrEmployee)).Methods("PUT")

	// /api/comments
	cm := api.PathPrefix("/comments").Subrouter()
	cm.Handle("/count", chain(comments.Count, authn, adminOrEmployee)).Methods("GET")
	cm.Handle("", chain(comments.Create, authn)).Methods("POST")
	cm.Handle("", chain(comments.GetAll, authn, adminOrEmployee)).Methods("GET")
	cm.Handle("/{id}", chain(comments.Update, objectID, authn)).Methods("PUT")
	cm.Handle("/{id}", chain(comments.Delete, objectID, authn)).Methods("DELETE")
	cm.Handle("/product/{id}", chain(comments.GetForProduct, objectID)).Methods("GET")

	// /api/ratings
	rt := api.PathPrefix("/ratings").Subrouter()
	rt.Handle("", chain(ratings.CreateOrUpdate, authn)).Methods("POST")
	rt.Handle("", chain(ratings.GetAll, authn, adminOrEmployee)).Methods("GET")
	rt.Handle("/{id}", chain(ratings.Delete, objectID, authn)).Methods("DELETE")
	rt.Handle("/product/{id}", chain(ratings.GetForProduct, objectID)).Methods("GET")

	// /api/clients
	cl := api.PathPrefix("/clients").Subrouter()
	cl.Handle("", chain(clients.Create, authn, adminOrEmployee)).Methods("POST")
	cl.HandleFunc("", clients.GetAll).Methods("GET")
	cl.Handle("/{id}", chain(clients.GetByID, objectID)).Methods("GET")
	cl.Handle("/{id}", chain(clients.Update, objectID, authn, adminOrEmployee)).Methods("PUT")
	cl.Handle("/{id}", chain(clients.Delete, objectID, authn, adminOrEmployee)).Methods("DELETE")
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"shop-api/config"
	"shop-api/controllers"
	"shop-api/middleware"
	"shop-api/routes"
	"shop-api/stores"
	"shop-api/utils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Connect to MongoDB
	client, err := stores.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("disconnect database", "error", err)
		}
	}()

	st := stores.New(client.Database("ecommerce"))
	if err := st.EnsureIndexes(context.Background()); err != nil {
		log.Error("ensure indexes", "error", err)
		os.Exit(1)
	}

	imageStore, err := utils.NewCloudinaryStore(cfg.CloudinaryURL)
	if err != nil {
		log.Error("init image store", "error", err)
		os.Exit(1)
	}

	var emailSender utils.EmailSender
	if cfg.SendGridAPIKey != "" {
		emailSender = utils.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailSender)
	}

	// Initialize controllers
	authController := controllers.NewAuthController(st.Users, st.Carts)
	userController := controllers.NewUserController(st.Users, st.Comments, st.Ratings, st.Carts, st.Orders)
	productController := controllers.NewProductController(st.Products, st.Orders, st.Carts, st.Comments, st.Ratings, st.Users, imageStore)
	cartController := controllers.NewCartController(st.Carts, st.Users, st.Products, st.Comments, st.Ratings)
	orderController := controllers.NewOrderController(st.Orders, st.Carts, st.Users, st.Products, st.Comments, st.Ratings, emailSender, log)
	commentController := controllers.NewCommentController(st.Comments, st.Users)
	ratingController := controllers.NewRatingController(st.Ratings, st.Users)
	clientController := controllers.NewClientController(st.Clients, imageStore)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recover(log, cfg.Production()))
	routes.RegisterRoutes(router, authController, userController, productController, cartController, orderController, commentController, ratingController, clientController)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.ClientOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	log.Info("server running", "port", cfg.Port, "env", cfg.Env)
	if err := http.ListenAndServe(":"+cfg.Port, cors(router)); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

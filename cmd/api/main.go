package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"campground/internal/config"
	"campground/internal/database"
	"campground/internal/domain"
	"campground/internal/middleware"
	"campground/internal/modules/auth"
	"campground/internal/modules/booking"
	"campground/internal/modules/catalog"
	"campground/internal/modules/policy"
	"campground/internal/modules/quote"
	jwtsvc "campground/internal/pkg/jwt"
	"campground/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := database.Migrate(db,
		&domain.User{},
		&domain.RefreshToken{},
		&domain.Camp{},
		&domain.Site{},
		&domain.RefundPolicyVersion{},
		&domain.Booking{},
		&domain.BookingNight{},
		&domain.Payment{},
		&domain.Refund{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	refreshRepo := repository.NewRefreshTokenRepository(db)
	campRepo := repository.NewCampRepository(db)
	siteRepo := repository.NewSiteRepository(db)
	policyRepo := repository.NewRefundPolicyRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, refreshRepo, j, cfg.RefreshTTL)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(campRepo, siteRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	policyService := policy.NewService(policyRepo, campRepo)
	policyHandler := policy.NewHandler(policyService)

	quoteService := quote.NewService(siteRepo)
	quoteHandler := quote.NewHandler(quoteService)

	bookingService := booking.NewService(db, campRepo, siteRepo, policyRepo, quoteService, bookingRepo)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)

		// authenticated customers
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			quoteHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}

		// camp owners
		owner := v1.Group("/owner")
		owner.Use(middleware.Auth(j), middleware.OwnerOnly())
		{
			catalogHandler.RegisterOwnerRoutes(owner)
			policyHandler.RegisterRoutes(owner)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

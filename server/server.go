package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"turipass.io/terminal/handlers"
)

type Server struct {
	echo        *echo.Echo
	Redemption  handlers.RedemptionHandler
	Promotion   handlers.PromotionHandler
	Consumption handlers.ConsumptionHandler
	Branch      handlers.BranchHandler
	Catalog     handlers.CatalogHandler
	Partner     handlers.PartnerHandler
}

func NewServer(
	Redemption handlers.RedemptionHandler,
	Promotion handlers.PromotionHandler,
	Consumption handlers.ConsumptionHandler,
	Branch handlers.BranchHandler,
	Catalog handlers.CatalogHandler,
	Partner handlers.PartnerHandler,
) *Server {
	return &Server{
		echo:        echo.New(),
		Redemption:  Redemption,
		Promotion:   Promotion,
		Consumption: Consumption,
		Branch:      Branch,
		Catalog:     Catalog,
		Partner:     Partner,
	}
}

// Start initializes the server by registering middlewares and routes, and starts listening for connections on the provided address.
// It returns an error if there is an issue starting the server.
func (s *Server) Start(address string) error {
	s.registerMiddlewares()
	s.registerRoutes()
	return s.echo.Start(address)
}

// Run starts the server by calling the Start method in a goroutine. If an error occurs, it
// logs the error and terminates the server. It then listens for an OS interrupt signal or a SIGTERM
// signal to gracefully shut down the server. Once the signal is received, it creates a context with
// a timeout of 5 seconds, cancels the context after the method returns, and returns the result of
// shutting down the server.
func (s *Server) Run(address string) error {

	go func() {
		if err := s.Start(address); err != nil {
			s.echo.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.echo.Shutdown(ctx)
}

func (s *Server) registerMiddlewares() {
	s.echo.Use(middleware.Recover())
}

func (s *Server) registerRoutes() {

	s.echo.POST("/sessions", s.Redemption.StartSession)
	s.echo.GET("/sessions/:id", s.Redemption.GetSession)
	s.echo.DELETE("/sessions/:id", s.Redemption.EndSession)
	s.echo.POST("/sessions/:id/scanner/open", s.Redemption.OpenScanner)
	s.echo.POST("/sessions/:id/scanner/close", s.Redemption.CloseScanner)
	s.echo.POST("/sessions/:id/scan", s.Redemption.Scan)
	s.echo.POST("/sessions/:id/promotion", s.Redemption.SelectPromotion)
	s.echo.PUT("/sessions/:id/quantity", s.Redemption.SetQuantity)
	s.echo.PUT("/sessions/:id/amount", s.Redemption.SetAmount)
	s.echo.PUT("/sessions/:id/description", s.Redemption.SetDescription)
	s.echo.POST("/sessions/:id/confirm", s.Redemption.Confirm)
	s.echo.POST("/sessions/:id/cancel", s.Redemption.Cancel)

	s.echo.GET("/promotions", s.Promotion.ListPromotions)
	s.echo.GET("/promotions/eligible", s.Promotion.EligiblePromotions)
	s.echo.POST("/promotions/refresh", s.Promotion.RefreshPromotions)
	s.echo.POST("/promotions", s.Promotion.CreatePromotion)
	s.echo.PUT("/promotions/:id", s.Promotion.UpdatePromotion)
	s.echo.DELETE("/promotions/:id", s.Promotion.DeletePromotion)

	s.echo.GET("/consumptions", s.Consumption.History)
	s.echo.POST("/consumptions/refresh", s.Consumption.RefreshHistory)
	s.echo.DELETE("/consumptions/:id", s.Consumption.DeleteConsumption)

	s.echo.GET("/branches", s.Branch.ListBranches)
	s.echo.POST("/branches/refresh", s.Branch.RefreshBranches)
	s.echo.POST("/branches", s.Branch.CreateBranch)
	s.echo.PUT("/branches/:id", s.Branch.UpdateBranch)
	s.echo.GET("/branches/:id/ratings", s.Branch.BranchRatings)
	s.echo.POST("/branches/:id/ratings", s.Branch.RateBranch)
	s.echo.PUT("/branches/ratings/:id", s.Branch.UpdateBranchRating)
	s.echo.DELETE("/branches/ratings/:id", s.Branch.DeleteBranchRating)

	s.echo.GET("/categories", s.Catalog.Categories)
	s.echo.GET("/tourist_points", s.Catalog.TouristPoints)
	s.echo.GET("/statuses", s.Catalog.Statuses)
	s.echo.GET("/tourist_points/:id/ratings", s.Catalog.TouristPointRatings)
	s.echo.POST("/tourist_points/:id/ratings", s.Catalog.RateTouristPoint)
	s.echo.PUT("/ratings/:id", s.Catalog.UpdateRating)
	s.echo.DELETE("/ratings/:id", s.Catalog.DeleteRating)

	s.echo.GET("/partner", s.Partner.Profile)
	s.echo.GET("/terms", s.Partner.CurrentTerms)
	s.echo.GET("/terms/outstanding", s.Partner.TermsOutstanding)
	s.echo.POST("/terms/accept", s.Partner.AcceptTerms)
	s.echo.POST("/logout", s.Partner.Logout)
}

package terminal

import (
	"context"
	"time"

	"turipass.io/terminal/models"
	"turipass.io/terminal/redemption"
)

// Terminal is the operator-facing surface of the partner terminal.
// Every mutating call goes to the remote TuriPass backend; the shared
// store is only ever updated from backend responses.
type Terminal interface {
	// Redemption workflow
	StartSession() redemption.View
	Session(sessionID string) (redemption.View, error)
	EndSession(sessionID string)
	OpenScanner(sessionID string) error
	CloseScanner(sessionID string) error
	SubmitScan(sessionID, payload string) (redemption.View, error)
	SelectPromotion(sessionID string, promotionID int64) (redemption.View, error)
	SetQuantity(sessionID, text string) (redemption.View, error)
	SetAmount(sessionID, text string) (redemption.View, error)
	SetDescription(sessionID, text string) (redemption.View, error)
	Confirm(ctx context.Context, sessionID string) (*models.ConsumptionRecord, error)
	CancelSession(sessionID string) error

	// Promotions
	RefreshPromotions(ctx context.Context) ([]models.Promotion, error)
	ListPromotions() []models.Promotion
	EligiblePromotions(now time.Time) []models.Promotion
	CreatePromotion(ctx context.Context, create models.PromotionCreate) (*models.Promotion, error)
	UpdatePromotion(ctx context.Context, id int64, update models.PromotionUpdate, deletedImageIDs []int64) (*models.Promotion, error)
	DeletePromotion(ctx context.Context, id int64) (*models.Promotion, error)

	// Consumption history
	RefreshConsumptions(ctx context.Context) ([]models.ConsumptionRecord, error)
	ConsumptionHistory() []models.ConsumptionRecord
	DeleteConsumption(ctx context.Context, id int64) (*models.ConsumptionRecord, error)

	// Branches
	RefreshBranches(ctx context.Context) ([]models.Branch, error)
	ListBranches() []models.Branch
	CreateBranch(ctx context.Context, create models.BranchCreate) (*models.Branch, error)
	UpdateBranch(ctx context.Context, id int64, update models.BranchUpdate) (*models.Branch, error)

	// Ratings
	BranchRatings(ctx context.Context, branchID int64) (*models.BranchRatings, error)
	RateBranch(ctx context.Context, branchID int64, rating models.Rating) (*models.Rating, error)
	UpdateBranchRating(ctx context.Context, ratingID int64, rating models.Rating) (*models.Rating, error)
	DeleteBranchRating(ctx context.Context, ratingID int64) error
	TouristPointRatings(ctx context.Context, touristPointID int64) ([]models.Rating, error)
	RateTouristPoint(ctx context.Context, touristPointID int64, rating models.Rating) (*models.Rating, error)
	UpdateRating(ctx context.Context, ratingID int64, rating models.Rating) (*models.Rating, error)
	DeleteRating(ctx context.Context, ratingID int64) error

	// Reference data
	Categories(ctx context.Context) ([]models.Category, error)
	TouristPoints(ctx context.Context) ([]models.TouristPoint, error)
	Statuses(ctx context.Context) ([]models.Status, error)

	// Partner profile and terms
	Partner(ctx context.Context) (*models.Partner, error)
	CurrentTerms(ctx context.Context) (*models.Terms, error)
	TermsOutstanding(ctx context.Context) (bool, *models.Terms, error)
	AcceptTerms(ctx context.Context) error

	// Logout clears all terminal-held state.
	Logout()
}

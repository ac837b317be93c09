package terminal

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"turipass.io/terminal/branch"
	"turipass.io/terminal/catalog"
	"turipass.io/terminal/config"
	"turipass.io/terminal/consumption"
	"turipass.io/terminal/models"
	"turipass.io/terminal/models/enum"
	"turipass.io/terminal/partner"
	"turipass.io/terminal/promotion"
	"turipass.io/terminal/rating"
	"turipass.io/terminal/redemption"
	"turipass.io/terminal/status"
	"turipass.io/terminal/store"
	"turipass.io/terminal/terms"
)

var ErrPromotionNotEligible = errors.New("promotion is not eligible for redemption")

// PartnerGateway implements Terminal on top of the per-entity services.
// Cross-entity orchestration (status-by-name resolution, the
// post-submit promotion refresh) happens here, keeping the services
// single-purpose.
type PartnerGateway struct {
	partnerID int64
	sessions  *redemption.Manager
	store     *store.Store
	logger    *zap.Logger

	branch      branch.Service
	catalog     catalog.Service
	consumption consumption.Service
	partner     partner.Service
	promotion   promotion.Service
	rating      rating.Service
	status      status.Service
	terms       terms.Service
}

func NewPartnerGateway(
	cfg *config.Config,
	bs branch.Service,
	cat catalog.Service,
	cons consumption.Service,
	ps partner.Service,
	prs promotion.Service,
	rs rating.Service,
	ss status.Service,
	ts terms.Service,
	st *store.Store,
	logger *zap.Logger,
) Terminal {
	return &PartnerGateway{
		partnerID:   cfg.Terminal.PartnerID,
		sessions:    redemption.NewManager(cfg.Terminal.ScanWindow, logger),
		store:       st,
		logger:      logger,
		branch:      bs,
		catalog:     cat,
		consumption: cons,
		partner:     ps,
		promotion:   prs,
		rating:      rs,
		status:      ss,
		terms:       ts,
	}
}

func (g *PartnerGateway) StartSession() redemption.View {
	return g.sessions.Create().View()
}

func (g *PartnerGateway) Session(sessionID string) (redemption.View, error) {
	session, err := g.sessions.Get(sessionID)
	if err != nil {
		return redemption.View{}, err
	}
	return session.View(), nil
}

func (g *PartnerGateway) EndSession(sessionID string) {
	g.sessions.Drop(sessionID)
}

func (g *PartnerGateway) OpenScanner(sessionID string) error {
	return g.sessions.OpenScanWindow(sessionID)
}

func (g *PartnerGateway) CloseScanner(sessionID string) error {
	if _, err := g.sessions.Get(sessionID); err != nil {
		return err
	}
	g.sessions.CloseScanWindow(sessionID)
	return nil
}

func (g *PartnerGateway) SubmitScan(sessionID, payload string) (redemption.View, error) {
	if _, err := g.sessions.Scan(sessionID, payload); err != nil {
		return redemption.View{}, err
	}
	return g.Session(sessionID)
}

// SelectPromotion only accepts promotions from the current eligibility
// view: active status and today inside the validity window.
func (g *PartnerGateway) SelectPromotion(sessionID string, promotionID int64) (redemption.View, error) {
	session, err := g.sessions.Get(sessionID)
	if err != nil {
		return redemption.View{}, err
	}

	var selected *models.Promotion
	for _, p := range g.promotion.Eligible(time.Now()) {
		if p.ID == promotionID {
			selected = &p
			break
		}
	}
	if selected == nil {
		return redemption.View{}, ErrPromotionNotEligible
	}

	if err = session.SelectPromotion(*selected); err != nil {
		return redemption.View{}, err
	}
	return session.View(), nil
}

func (g *PartnerGateway) SetQuantity(sessionID, text string) (redemption.View, error) {
	return g.edit(sessionID, func(s *redemption.Session) error {
		return s.SetQuantity(text)
	})
}

func (g *PartnerGateway) SetAmount(sessionID, text string) (redemption.View, error) {
	return g.edit(sessionID, func(s *redemption.Session) error {
		return s.SetAmount(text)
	})
}

func (g *PartnerGateway) SetDescription(sessionID, text string) (redemption.View, error) {
	return g.edit(sessionID, func(s *redemption.Session) error {
		return s.SetDescription(text)
	})
}

func (g *PartnerGateway) edit(sessionID string, apply func(*redemption.Session) error) (redemption.View, error) {
	session, err := g.sessions.Get(sessionID)
	if err != nil {
		return redemption.View{}, err
	}
	if err = apply(session); err != nil {
		return redemption.View{}, err
	}
	return session.View(), nil
}

// Confirm runs the submission pipeline: validate locally, resolve the
// "active" status id, create the record, then re-fetch the partner's
// promotion list exactly once. On failure the session keeps its fields
// so the operator can retry with a fresh confirm press.
func (g *PartnerGateway) Confirm(ctx context.Context, sessionID string) (*models.ConsumptionRecord, error) {
	session, err := g.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	draft, err := session.BeginSubmit(time.Now())
	if err != nil {
		return nil, err
	}

	active, err := g.status.ResolveByName(ctx, enum.StatusNameActive)
	if err != nil {
		session.FailSubmit()
		return nil, err
	}

	record, err := g.consumption.Submit(ctx, models.ConsumptionCreate{
		UserID:           draft.UserID,
		PromotionID:      draft.PromotionID,
		StatusID:         active.ID,
		QuantityConsumed: draft.Quantity,
		AmountConsumed:   draft.Amount,
		Description:      draft.Description,
		ConsumptionDate:  draft.Date,
	})
	if err != nil {
		session.FailSubmit()
		return nil, err
	}

	// The redemption itself succeeded; a failed refresh only leaves the
	// local list stale until the next fetch.
	if _, err = g.promotion.Refresh(ctx, g.partnerID); err != nil {
		g.logger.Warn("post-redemption promotion refresh failed", zap.Error(err))
	}

	session.CompleteSubmit()
	return record, nil
}

func (g *PartnerGateway) CancelSession(sessionID string) error {
	session, err := g.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	g.sessions.CloseScanWindow(sessionID)
	session.Cancel()
	return nil
}

func (g *PartnerGateway) RefreshPromotions(ctx context.Context) ([]models.Promotion, error) {
	return g.promotion.Refresh(ctx, g.partnerID)
}

func (g *PartnerGateway) ListPromotions() []models.Promotion {
	return g.promotion.List()
}

func (g *PartnerGateway) EligiblePromotions(now time.Time) []models.Promotion {
	return g.promotion.Eligible(now)
}

func (g *PartnerGateway) CreatePromotion(ctx context.Context, create models.PromotionCreate) (*models.Promotion, error) {
	create.PartnerID = g.partnerID
	return g.promotion.Create(ctx, create)
}

func (g *PartnerGateway) UpdatePromotion(ctx context.Context, id int64, update models.PromotionUpdate, deletedImageIDs []int64) (*models.Promotion, error) {
	return g.promotion.Update(ctx, id, update, deletedImageIDs)
}

// DeletePromotion soft-deletes: the status flips to "deleted" via an
// update, and this client never flips it back.
func (g *PartnerGateway) DeletePromotion(ctx context.Context, id int64) (*models.Promotion, error) {
	deleted, err := g.status.ResolveByName(ctx, enum.StatusNameDeleted)
	if err != nil {
		return nil, err
	}
	return g.promotion.SetStatus(ctx, id, deleted.ID)
}

func (g *PartnerGateway) RefreshConsumptions(ctx context.Context) ([]models.ConsumptionRecord, error) {
	return g.consumption.Refresh(ctx, g.partnerID)
}

func (g *PartnerGateway) ConsumptionHistory() []models.ConsumptionRecord {
	return g.consumption.ListActive()
}

func (g *PartnerGateway) DeleteConsumption(ctx context.Context, id int64) (*models.ConsumptionRecord, error) {
	deleted, err := g.status.ResolveByName(ctx, enum.StatusNameDeleted)
	if err != nil {
		return nil, err
	}
	return g.consumption.SetStatus(ctx, id, deleted.ID)
}

func (g *PartnerGateway) RefreshBranches(ctx context.Context) ([]models.Branch, error) {
	return g.branch.Refresh(ctx, g.partnerID)
}

func (g *PartnerGateway) ListBranches() []models.Branch {
	return g.branch.List()
}

func (g *PartnerGateway) CreateBranch(ctx context.Context, create models.BranchCreate) (*models.Branch, error) {
	create.PartnerID = g.partnerID
	return g.branch.Create(ctx, create)
}

func (g *PartnerGateway) UpdateBranch(ctx context.Context, id int64, update models.BranchUpdate) (*models.Branch, error) {
	return g.branch.Update(ctx, id, update)
}

func (g *PartnerGateway) BranchRatings(ctx context.Context, branchID int64) (*models.BranchRatings, error) {
	return g.rating.ListForBranch(ctx, branchID)
}

func (g *PartnerGateway) RateBranch(ctx context.Context, branchID int64, r models.Rating) (*models.Rating, error) {
	return g.rating.CreateForBranch(ctx, branchID, r)
}

func (g *PartnerGateway) UpdateBranchRating(ctx context.Context, ratingID int64, r models.Rating) (*models.Rating, error) {
	return g.rating.UpdateForBranch(ctx, ratingID, r)
}

func (g *PartnerGateway) DeleteBranchRating(ctx context.Context, ratingID int64) error {
	return g.rating.DeleteForBranch(ctx, ratingID)
}

func (g *PartnerGateway) TouristPointRatings(ctx context.Context, touristPointID int64) ([]models.Rating, error) {
	return g.rating.ListForTouristPoint(ctx, touristPointID)
}

func (g *PartnerGateway) RateTouristPoint(ctx context.Context, touristPointID int64, r models.Rating) (*models.Rating, error) {
	return g.rating.CreateForTouristPoint(ctx, touristPointID, r)
}

func (g *PartnerGateway) UpdateRating(ctx context.Context, ratingID int64, r models.Rating) (*models.Rating, error) {
	return g.rating.Update(ctx, ratingID, r)
}

func (g *PartnerGateway) DeleteRating(ctx context.Context, ratingID int64) error {
	return g.rating.Delete(ctx, ratingID)
}

func (g *PartnerGateway) Categories(ctx context.Context) ([]models.Category, error) {
	return g.catalog.RefreshCategories(ctx)
}

func (g *PartnerGateway) TouristPoints(ctx context.Context) ([]models.TouristPoint, error) {
	return g.catalog.RefreshTouristPoints(ctx)
}

func (g *PartnerGateway) Statuses(ctx context.Context) ([]models.Status, error) {
	return g.status.List(ctx)
}

func (g *PartnerGateway) Partner(ctx context.Context) (*models.Partner, error) {
	return g.partner.Refresh(ctx, g.partnerID)
}

func (g *PartnerGateway) CurrentTerms(ctx context.Context) (*models.Terms, error) {
	return g.terms.Current(ctx)
}

// TermsOutstanding compares the partner's accepted terms version with
// the current published one.
func (g *PartnerGateway) TermsOutstanding(ctx context.Context) (bool, *models.Terms, error) {
	current, err := g.terms.Current(ctx)
	if err != nil {
		return false, nil, err
	}

	p := g.partner.Current()
	if p == nil {
		if p, err = g.partner.Refresh(ctx, g.partnerID); err != nil {
			return false, nil, err
		}
	}

	return g.terms.Outstanding(p, current), current, nil
}

func (g *PartnerGateway) AcceptTerms(ctx context.Context) error {
	if err := g.terms.Accept(ctx, g.partnerID); err != nil {
		return err
	}

	// Re-fetch the profile so the acceptance is reflected locally.
	if _, err := g.partner.Refresh(ctx, g.partnerID); err != nil {
		g.logger.Warn("partner refresh after terms acceptance failed", zap.Error(err))
	}
	return nil
}

func (g *PartnerGateway) Logout() {
	g.store.Clear()
}

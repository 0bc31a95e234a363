package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"
	"foodbridge/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// dispatchService turns a queued NotificationEvent into email and push deliveries.
// It always reloads current state, so a stale event never announces something that changed since.
type dispatchService struct {
	productRepo   repository.ProductRepository
	nonprofitRepo repository.NonprofitRepository
	userRepo      repository.UserRepository
	deviceRepo    repository.DeviceRepository
	templates     service.EmailTemplates
	emailSender   service.EmailSender
	pushSender    service.PushSender
	logger        *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
// PushSender is optional; without it only email is sent.
type DispatchServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	NonprofitRepo repository.NonprofitRepository
	UserRepo      repository.UserRepository
	DeviceRepo    repository.DeviceRepository
	Templates     service.EmailTemplates
	EmailSender   service.EmailSender
	PushSender    service.PushSender `optional:"true"`
	Logger        *slog.Logger
}

func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		productRepo:   params.ProductRepo,
		nonprofitRepo: params.NonprofitRepo,
		userRepo:      params.UserRepo,
		deviceRepo:    params.DeviceRepo,
		templates:     params.Templates,
		emailSender:   params.EmailSender,
		pushSender:    params.PushSender,
		logger:        params.Logger,
	}
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// pushNotice is one push message and the users it targets.
type pushNotice struct {
	userIDs []uuid.UUID
	title   string
	body    string
	data    map[string]string
}

// Dispatch delivers one event. Errors wrapping usecase.ErrEventDropped must not be retried.
func (srv *dispatchService) Dispatch(ctx context.Context, event *service.NotificationEvent) (*usecase.DispatchResult, error) {
	var (
		messages []*service.EmailMessage
		notices  []pushNotice
		err      error
	)

	switch event.Kind {
	case service.EventProductClaimed:
		messages, notices, err = srv.productClaimed(ctx, event)
	case service.EventProductsAvailable:
		messages, notices, err = srv.productsAvailable(ctx, event)
	case service.EventApprovalDecision:
		messages, notices, err = srv.approvalDecision(ctx, event)
	default:
		err = errors.Wrapf(usecase.ErrEventDropped, "unknown event kind %q", event.Kind)
	}
	if err != nil {
		return nil, err
	}

	result := &usecase.DispatchResult{}

	if len(messages) > 0 {
		sent, err := srv.emailSender.SendBatch(ctx, messages)
		if err != nil {
			return nil, errors.Wrap(err, "failed to send notification emails")
		}
		result.EmailsSent = sent.Sent
		result.EmailsFailed = len(sent.Failed)
	}

	for _, notice := range notices {
		srv.push(ctx, notice, result)
	}

	srv.log(ctx).Info("Notification dispatched",
		slog.String("kind", string(event.Kind)),
		slog.String("requestID", event.RequestID),
		slog.Int("emailsSent", result.EmailsSent),
		slog.Int("emailsFailed", result.EmailsFailed),
		slog.Int("pushSent", result.PushSent),
		slog.Int("pushFailed", result.PushFailed),
	)

	return result, nil
}

func (srv *dispatchService) productClaimed(ctx context.Context, event *service.NotificationEvent) ([]*service.EmailMessage, []pushNotice, error) {
	if len(event.ProductIDs) == 0 {
		return nil, nil, errors.Wrap(usecase.ErrEventDropped, "product_claimed without product id")
	}
	productID, err := uuid.Parse(event.ProductIDs[0])
	if err != nil {
		return nil, nil, errors.Wrapf(usecase.ErrEventDropped, "invalid product id %q", event.ProductIDs[0])
	}

	product, err := srv.loadProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	if !product.Status.IsClaimed() || product.ClaimedByID == nil {
		return nil, nil, errors.Wrapf(usecase.ErrEventDropped, "product %s is no longer claimed", productID)
	}

	nonprofit, err := srv.loadNonprofit(ctx, *product.ClaimedByID)
	if err != nil {
		return nil, nil, err
	}

	suppliers, err := srv.userRepo.FindRecipientsBySupplier(ctx, product.SupplierID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find supplier recipients")
	}
	claimers, err := srv.userRepo.FindRecipientsByNonprofit(ctx, nonprofit.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find nonprofit recipients")
	}

	productData := productEmailData(product)
	messages := make([]*service.EmailMessage, 0, len(suppliers)+len(claimers))
	for _, recipients := range []struct {
		users       []*entity.Recipient
		forSupplier bool
	}{{suppliers, true}, {claimers, false}} {
		for _, r := range recipients.users {
			msg, err := srv.templates.Render(service.TemplateProductClaimed, r.Email, service.ProductClaimedData{
				RecipientName: r.Name,
				NonprofitName: nonprofit.Name,
				Product:       productData,
				ForSupplier:   recipients.forSupplier,
			})
			if err != nil {
				return nil, nil, errors.Wrap(err, "failed to render product claimed email")
			}
			messages = append(messages, msg)
		}
	}

	notice := pushNotice{
		userIDs: recipientIDs(suppliers),
		title:   "Product claimed",
		body:    fmt.Sprintf("%s claimed %s", nonprofit.Name, product.Name),
		data: map[string]string{
			"type":        string(service.EventProductClaimed),
			"productId":   product.ID.String(),
			"nonprofitId": nonprofit.ID.String(),
		},
	}

	return messages, []pushNotice{notice}, nil
}

// productsAvailable sends one email per (interested user, product). Products that vanished
// or were claimed in the meantime are skipped.
func (srv *dispatchService) productsAvailable(ctx context.Context, event *service.NotificationEvent) ([]*service.EmailMessage, []pushNotice, error) {
	var (
		messages []*service.EmailMessage
		notices  []pushNotice
		found    int
	)

	for _, raw := range event.ProductIDs {
		productID, err := uuid.Parse(raw)
		if err != nil {
			srv.log(ctx).Warn("Skipping invalid product id", slog.String("productID", raw))

			continue
		}

		product, err := srv.productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				srv.log(ctx).Warn("Skipping deleted product", slog.String("productID", raw))

				continue
			}

			return nil, nil, errors.Wrap(err, "failed to find product")
		}
		found++
		if product.Status != entity.ProductStatusAvailable {
			continue
		}

		recipients, err := srv.userRepo.FindInterestedRecipients(ctx, product.Flags())
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to find interested recipients")
		}

		productData := productEmailData(product)
		for _, r := range recipients {
			msg, err := srv.templates.Render(service.TemplateProductAvailable, r.Email, service.ProductAvailableData{
				RecipientName: r.Name,
				Product:       productData,
			})
			if err != nil {
				return nil, nil, errors.Wrap(err, "failed to render product available email")
			}
			messages = append(messages, msg)
		}

		notices = append(notices, pushNotice{
			userIDs: recipientIDs(recipients),
			title:   "New product available",
			body:    fmt.Sprintf("%s (%d %s)", product.Name, product.Quantity, product.Unit),
			data: map[string]string{
				"type":      string(service.EventProductsAvailable),
				"productId": product.ID.String(),
			},
		})
	}

	if found == 0 {
		return nil, nil, errors.Wrap(usecase.ErrEventDropped, "none of the products exist")
	}

	return messages, notices, nil
}

func (srv *dispatchService) approvalDecision(ctx context.Context, event *service.NotificationEvent) ([]*service.EmailMessage, []pushNotice, error) {
	nonprofitID, err := uuid.Parse(event.NonprofitID)
	if err != nil {
		return nil, nil, errors.Wrapf(usecase.ErrEventDropped, "invalid nonprofit id %q", event.NonprofitID)
	}

	nonprofit, err := srv.loadNonprofit(ctx, nonprofitID)
	if err != nil {
		return nil, nil, err
	}
	if nonprofit.DocumentApproval == nil {
		return nil, nil, errors.Wrapf(usecase.ErrEventDropped, "nonprofit %s has no decision", nonprofitID)
	}
	approved := *nonprofit.DocumentApproval

	recipients, err := srv.userRepo.FindRecipientsByNonprofit(ctx, nonprofitID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find nonprofit recipients")
	}

	messages := make([]*service.EmailMessage, 0, len(recipients))
	for _, r := range recipients {
		msg, err := srv.templates.Render(service.TemplateApprovalDecision, r.Email, service.ApprovalDecisionData{
			RecipientName: r.Name,
			NonprofitName: nonprofit.Name,
			Approved:      approved,
		})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to render approval decision email")
		}
		messages = append(messages, msg)
	}

	body := nonprofit.Name + " has been approved"
	if !approved {
		body = "There is an update on " + nonprofit.Name + "'s application"
	}
	notice := pushNotice{
		userIDs: recipientIDs(recipients),
		title:   "Approval decision",
		body:    body,
		data: map[string]string{
			"type":        string(service.EventApprovalDecision),
			"nonprofitId": nonprofitID.String(),
		},
	}

	return messages, []pushNotice{notice}, nil
}

// push sends one notice to every active device of its users in FCM-sized batches.
// Batch failures are counted and logged; tokens FCM reports dead are deactivated.
func (srv *dispatchService) push(ctx context.Context, notice pushNotice, result *usecase.DispatchResult) {
	if srv.pushSender == nil || len(notice.userIDs) == 0 {
		return
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUsers(ctx, notice.userIDs)
	if err != nil {
		srv.log(ctx).Error("Failed to load devices for push", slog.Any("error", err))

		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken != "" {
			tokens = append(tokens, device.FCMToken)
		}
	}

	var invalidTokens []string
	for start := 0; start < len(tokens); start += constants.FirebaseBatchSize {
		end := min(start+constants.FirebaseBatchSize, len(tokens))
		batch := tokens[start:end]

		successCount, failureCount, batchInvalid, err := srv.pushSender.SendBatchNotification(ctx, batch, notice.title, notice.body, notice.data)
		if err != nil {
			srv.log(ctx).Warn("Push batch failed", slog.Int("tokens", len(batch)), slog.Any("error", err))
			result.PushFailed += len(batch)

			continue
		}

		result.PushSent += successCount
		result.PushFailed += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) == 0 {
		return
	}
	result.InvalidTokens += len(invalidTokens)
	if err := srv.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
		srv.log(ctx).Error("Failed to deactivate invalid tokens", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
	}
}

func (srv *dispatchService) loadProduct(ctx context.Context, id uuid.UUID) (*entity.ProductRequest, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrapf(usecase.ErrEventDropped, "product %s not found", id)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *dispatchService) loadNonprofit(ctx context.Context, id uuid.UUID) (*entity.Nonprofit, error) {
	nonprofit, err := srv.nonprofitRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNonprofitNotFound) {
			return nil, errors.Wrapf(usecase.ErrEventDropped, "nonprofit %s not found", id)
		}

		return nil, errors.Wrap(err, "failed to find nonprofit")
	}

	return nonprofit, nil
}

func productEmailData(product *entity.ProductRequest) service.ProductEmailData {
	categories := make([]string, 0, len(entity.Categories))
	for _, c := range product.Flags().Set() {
		categories = append(categories, string(c))
	}

	data := service.ProductEmailData{
		ProductID:   product.ID.String(),
		ProductName: product.Name,
		Quantity:    product.Quantity,
		Unit:        string(product.Unit),
		Categories:  categories,
	}
	if product.PickupInfo != nil {
		data.PickupDate = util.DayKey(product.PickupInfo.PickupDate)
		data.PickupLocation = product.PickupInfo.PickupLocation
	}

	return data
}

func recipientIDs(recipients []*entity.Recipient) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(recipients))
	for _, r := range recipients {
		ids = append(ids, r.UserID)
	}

	return ids
}

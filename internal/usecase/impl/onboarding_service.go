package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodbridge/internal/delivery/context"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/errors"
	"foodbridge/internal/usecase"

	"go.uber.org/fx"
)

type onboardingService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// OnboardingServiceParams holds dependencies for OnboardingService, injected by Fx.
type OnboardingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

func NewOnboardingService(params OnboardingServiceParams) usecase.OnboardingUsecase {
	return &onboardingService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *onboardingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *onboardingService) CreateSupplier(ctx context.Context, principal entity.Principal, input *usecase.CreateSupplierInput) (*entity.Supplier, error) {
	if !input.Cadence.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown cadence " + string(input.Cadence))
	}

	supplier := &entity.Supplier{
		Name:    input.Name,
		Cadence: input.Cadence,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := srv.onboardableUser(ctx, userRepo, principal)
		if err != nil {
			return err
		}

		if err := repoFactory.NewSupplierRepository().Create(ctx, supplier); err != nil {
			if errors.Is(err, repository.ErrDuplicateSupplierName) {
				return domainerrors.ErrSupplierNameTaken
			}

			return errors.Wrap(err, "failed to create supplier")
		}

		user.SupplierID = &supplier.ID
		user.Role = entity.RoleSupplier

		return errors.Wrap(userRepo.Update(ctx, user), "failed to link user to supplier")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Supplier onboarded",
		slog.String("supplierID", supplier.ID.String()),
		slog.String("userID", principal.UserID.String()),
	)

	return supplier, nil
}

func (srv *onboardingService) CreateNonprofit(ctx context.Context, principal entity.Principal, input *usecase.CreateNonprofitInput) (*entity.Nonprofit, error) {
	if !input.OrganizationType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown organization type " + string(input.OrganizationType))
	}

	fundingSources := input.FundingSources
	if fundingSources == nil {
		fundingSources = []string{}
	}
	nonprofit := &entity.Nonprofit{
		Name:              input.Name,
		OrganizationType:  input.OrganizationType,
		HasColdStorage:    input.HasColdStorage,
		HasShelfSpace:     input.HasShelfSpace,
		HasTransportation: input.HasTransportation,
		FundingSources:    fundingSources,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := srv.onboardableUser(ctx, userRepo, principal)
		if err != nil {
			return err
		}

		if err := repoFactory.NewNonprofitRepository().Create(ctx, nonprofit); err != nil {
			return errors.Wrap(err, "failed to create nonprofit")
		}

		user.NonprofitID = &nonprofit.ID
		user.Role = entity.RoleNonprofit

		return errors.Wrap(userRepo.Update(ctx, user), "failed to link user to nonprofit")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Nonprofit onboarded",
		slog.String("nonprofitID", nonprofit.ID.String()),
		slog.String("userID", principal.UserID.String()),
	)

	return nonprofit, nil
}

// SaveProductSurvey overwrites an existing survey in place, otherwise creates and links a new one.
func (srv *onboardingService) SaveProductSurvey(ctx context.Context, principal entity.Principal, flags entity.CategoryFlags) (*entity.ProductInterests, error) {
	for _, pt := range flags.ProteinTypes {
		if !pt.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown protein type " + string(pt))
		}
	}

	interests := &entity.ProductInterests{CategoryFlags: flags}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := loadCaller(ctx, userRepo, principal)
		if err != nil {
			return err
		}

		if user.ProductSurveyID != nil {
			interests.ID = *user.ProductSurveyID
		}
		if err := repoFactory.NewProductInterestsRepository().Save(ctx, interests); err != nil {
			return errors.Wrap(err, "failed to save product interests")
		}

		if user.ProductSurveyID != nil {
			return nil
		}
		user.ProductSurveyID = &interests.ID

		return errors.Wrap(userRepo.Update(ctx, user), "failed to link product survey")
	})
	if err != nil {
		return nil, err
	}

	return interests, nil
}

func (srv *onboardingService) onboardableUser(ctx context.Context, userRepo repository.UserRepository, principal entity.Principal) (*entity.User, error) {
	user, err := loadCaller(ctx, userRepo, principal)
	if err != nil {
		return nil, err
	}
	if user.HasOrganization() || user.Role != entity.RoleOther {
		return nil, domainerrors.ErrAlreadyOnboarded
	}

	return user, nil
}

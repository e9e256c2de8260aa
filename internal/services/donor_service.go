package services

import (
	"errors"
	"log/slog"

	"vereinsbudget/internal/models"
	"vereinsbudget/internal/repositories"

	"github.com/google/uuid"
)

// donorService implements DonorServiceInterface
type donorService struct {
	donorRepo repositories.DonorRepositoryInterface
	logger    *slog.Logger
}

// NewDonorService creates a donor management service
func NewDonorService(donorRepo repositories.DonorRepositoryInterface, logger *slog.Logger) DonorServiceInterface {
	return &donorService{
		donorRepo: donorRepo,
		logger:    logger,
	}
}

func (s *donorService) CreateDonor(donor *models.Donor) (*models.Donor, error) {
	if err := donor.Validate(); err != nil {
		return nil, err
	}
	if err := s.donorRepo.Create(donor); err != nil {
		return nil, err
	}
	s.logger.Info("donor created", "donor_id", donor.ID, "organization_id", donor.OrganizationID)
	return donor, nil
}

func (s *donorService) GetDonor(orgID, id uuid.UUID) (*models.Donor, error) {
	return s.getScoped(orgID, id)
}

func (s *donorService) ListDonors(orgID uuid.UUID, offset, limit int) ([]models.Donor, int64, error) {
	return s.donorRepo.ListByOrganization(orgID, offset, limit)
}

func (s *donorService) UpdateDonor(orgID uuid.UUID, donor *models.Donor) (*models.Donor, error) {
	existing, err := s.getScoped(orgID, donor.ID)
	if err != nil {
		return nil, err
	}

	donor.OrganizationID = existing.OrganizationID
	if err := s.donorRepo.Update(donor); err != nil {
		return nil, err
	}
	return s.donorRepo.GetByID(donor.ID)
}

func (s *donorService) DeleteDonor(orgID, id uuid.UUID) error {
	if _, err := s.getScoped(orgID, id); err != nil {
		return err
	}
	return s.donorRepo.Delete(id)
}

func (s *donorService) getScoped(orgID, id uuid.UUID) (*models.Donor, error) {
	donor, err := s.donorRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrDonorNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}
	if donor.OrganizationID != orgID {
		return nil, ErrWrongOrganization
	}
	return donor, nil
}

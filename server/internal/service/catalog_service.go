package service

import (
	"database/sql"
	"errors"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

// CatalogService covers the remaining site content: staff members and
// social media links.
type CatalogService struct {
	staff  StaffRepository
	social SocialMediaRepository
}

func NewCatalogService(staff StaffRepository, social SocialMediaRepository) *CatalogService {
	return &CatalogService{staff: staff, social: social}
}

func (s *CatalogService) ListStaff() ([]domain.Staff, error) {
	return s.staff.List()
}

func (s *CatalogService) GetStaff(id int) (domain.Staff, error) {
	member, err := s.staff.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return member, ErrNotFound
	}
	return member, err
}

func (s *CatalogService) CreateStaff(input domain.StaffInput) (domain.Staff, error) {
	if err := checkStruct(input); err != nil {
		return domain.Staff{}, err
	}

	member := domain.Staff{
		Name:     input.Name,
		Position: input.Position,
		Bio:      input.Bio,
		Image:    input.Image,
	}
	if err := s.staff.Insert(&member); err != nil {
		return domain.Staff{}, err
	}
	return member, nil
}

func (s *CatalogService) UpdateStaff(id int, update domain.StaffUpdate) (domain.Staff, error) {
	member, err := s.GetStaff(id)
	if err != nil {
		return member, err
	}

	if update.Name != nil {
		member.Name = *update.Name
	}
	if update.Position != nil {
		member.Position = *update.Position
	}
	if update.Bio != nil {
		member.Bio = *update.Bio
	}
	if update.Image != nil {
		member.Image = *update.Image
	}

	if err := s.staff.Update(&member); err != nil {
		return domain.Staff{}, err
	}
	return member, nil
}

func (s *CatalogService) DeleteStaff(id int) error {
	err := s.staff.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *CatalogService) ListSocialMedia() ([]domain.SocialMedia, error) {
	return s.social.List()
}

func (s *CatalogService) GetSocialMedia(id int) (domain.SocialMedia, error) {
	link, err := s.social.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return link, ErrNotFound
	}
	return link, err
}

func (s *CatalogService) CreateSocialMedia(input domain.SocialMediaInput) (domain.SocialMedia, error) {
	if err := checkStruct(input); err != nil {
		return domain.SocialMedia{}, err
	}

	link := domain.SocialMedia{
		Name:     input.Name,
		URL:      input.URL,
		Icon:     input.Icon,
		IsActive: true,
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}

	if err := s.social.Insert(&link); err != nil {
		return domain.SocialMedia{}, err
	}
	return link, nil
}

func (s *CatalogService) UpdateSocialMedia(id int, update domain.SocialMediaUpdate) (domain.SocialMedia, error) {
	link, err := s.GetSocialMedia(id)
	if err != nil {
		return link, err
	}

	if update.Name != nil {
		link.Name = *update.Name
	}
	if update.URL != nil {
		link.URL = *update.URL
	}
	if update.Icon != nil {
		link.Icon = *update.Icon
	}
	if update.IsActive != nil {
		link.IsActive = *update.IsActive
	}

	if err := s.social.Update(&link); err != nil {
		return domain.SocialMedia{}, err
	}
	return link, nil
}

func (s *CatalogService) DeleteSocialMedia(id int) error {
	err := s.social.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
